package config

import "testing"

func TestCalculateDonationPoints(t *testing.T) {
	cases := []struct {
		amount int64
		want   int
	}{
		{0, 0},
		{-5000, 0},
		{9_999, 0},
		{10_000, 1},
		{19_999, 1},
		{50_000, 5},
		{123_456, 12},
		{1_000_000, 100},
	}
	for _, tc := range cases {
		if got := CalculateDonationPoints(tc.amount); got != tc.want {
			t.Errorf("CalculateDonationPoints(%d) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestLevelFor(t *testing.T) {
	cases := []struct {
		points int
		level  int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{299, 2},
		{300, 3},
		{599, 3},
		{600, 4},
		{999, 4},
		{1000, 5},
		{1999, 5},
		{2000, 6},
		{999_999, 6},
	}
	for _, tc := range cases {
		if got := LevelFor(tc.points); got.Level != tc.level {
			t.Errorf("LevelFor(%d) = level %d, want %d", tc.points, got.Level, tc.level)
		}
	}
}

func TestProgressToNext(t *testing.T) {
	cur, next, toNext, progress := ProgressToNext(150)
	if cur.Level != 2 {
		t.Fatalf("current level = %d, want 2", cur.Level)
	}
	if next == nil || next.Level != 3 {
		t.Fatalf("next level = %v, want level 3", next)
	}
	if toNext != 150 {
		t.Errorf("pointsToNext = %d, want 150", toNext)
	}
	if progress != "25.00%" {
		t.Errorf("progress = %q, want 25.00%%", progress)
	}

	// tier terakhir: progress penuh, tidak ada level berikutnya
	_, next, toNext, progress = ProgressToNext(5000)
	if next != nil || toNext != 0 || progress != "100%" {
		t.Errorf("top tier: next=%v toNext=%d progress=%q", next, toNext, progress)
	}
}

func TestAllAchievementsUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range AllAchievements() {
		if seen[a.ID] {
			t.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Points <= 0 {
			t.Errorf("achievement %q has non-positive bonus", a.ID)
		}
	}
	if len(seen) != 5 {
		t.Errorf("expected 5 achievements, got %d", len(seen))
	}
}
