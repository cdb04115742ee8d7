package service

import (
	"testing"

	"github.com/google/uuid"

	userModel "careconnect_backend/internals/features/users/model"
)

func TestParseMetric(t *testing.T) {
	cases := map[string]Metric{
		"points":     MetricPoints,
		"donations":  MetricDonations,
		"volunteers": MetricVolunteers,
		"":           MetricPoints,
		"bogus":      MetricPoints,
	}
	for in, want := range cases {
		if got := ParseMetric(in); got != want {
			t.Errorf("ParseMetric(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildLeaderboardSortsAndRanks(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	users := []userModel.UserModel{
		{UserID: a, UserName: "Andi", UserPoint: 150, UserTotalDonations: 2_000_000},
		{UserID: b, UserName: "Budi", UserPoint: 700, UserTotalDonations: 100_000},
		{UserID: c, UserName: "Citra", UserPoint: 30, UserTotalDonations: 500_000},
	}

	entries := BuildLeaderboard(users, MetricPoints, 100, map[uuid.UUID]int{b: 3})
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	if entries[0].UserID != b || entries[0].Rank != 1 {
		t.Fatalf("top entry = %+v, want Budi rank 1", entries[0])
	}
	if entries[0].AchievementsCount != 3 {
		t.Fatalf("achievementsCount = %d, want 3", entries[0].AchievementsCount)
	}
	if entries[0].Level.Level != 4 {
		t.Fatalf("level = %d, want 4 (Pahlawan)", entries[0].Level.Level)
	}
	if entries[2].UserID != c || entries[2].Rank != 3 {
		t.Fatalf("bottom entry = %+v, want Citra rank 3", entries[2])
	}

	byDonations := BuildLeaderboard(users, MetricDonations, 100, nil)
	if byDonations[0].UserID != a {
		t.Fatalf("donations metric top = %s, want Andi", byDonations[0].Name)
	}
}

func TestBuildLeaderboardTruncatesToLimit(t *testing.T) {
	users := make([]userModel.UserModel, 5)
	for i := range users {
		users[i] = userModel.UserModel{UserID: uuid.New(), UserPoint: i * 10}
	}
	entries := BuildLeaderboard(users, MetricPoints, 2, nil)
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Points != 40 || entries[1].Points != 30 {
		t.Fatalf("wrong top-2: %d, %d", entries[0].Points, entries[1].Points)
	}
}

func TestBuildLeaderboardDoesNotMutateInput(t *testing.T) {
	users := []userModel.UserModel{
		{UserID: uuid.New(), UserPoint: 1},
		{UserID: uuid.New(), UserPoint: 99},
	}
	BuildLeaderboard(users, MetricPoints, 10, nil)
	if users[0].UserPoint != 1 {
		t.Fatal("input slice reordered")
	}
}
