package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	gconfig "careconnect_backend/internals/features/gamification/config"
)

// fakeStore menyimpan state di memori dan mencatat pemanggilan.
type fakeStore struct {
	points         map[uuid.UUID]int
	donationTotals map[uuid.UUID]int64
	volunteerCount map[uuid.UUID]int
	achievements   map[uuid.UUID]map[string]bool
	logEntries     int

	addPointsErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		points:         map[uuid.UUID]int{},
		donationTotals: map[uuid.UUID]int64{},
		volunteerCount: map[uuid.UUID]int{},
		achievements:   map[uuid.UUID]map[string]bool{},
	}
}

func (f *fakeStore) AddPoints(_ context.Context, userID uuid.UUID, delta int, _ string, _ map[string]any) error {
	if f.addPointsErr != nil {
		return f.addPointsErr
	}
	f.points[userID] += delta
	f.logEntries++
	return nil
}

func (f *fakeStore) AwardAchievement(_ context.Context, userID uuid.UUID, ach gconfig.Achievement) (bool, error) {
	if f.achievements[userID] == nil {
		f.achievements[userID] = map[string]bool{}
	}
	if f.achievements[userID][ach.ID] {
		return false, nil
	}
	f.achievements[userID][ach.ID] = true
	f.points[userID] += ach.Points
	return true, nil
}

func (f *fakeStore) AddDonationTotal(_ context.Context, userID uuid.UUID, amount int64) (int64, error) {
	f.donationTotals[userID] += amount
	return f.donationTotals[userID], nil
}

func (f *fakeStore) AddVolunteerCount(_ context.Context, userID uuid.UUID) (int, error) {
	f.volunteerCount[userID]++
	return f.volunteerCount[userID], nil
}

func hasAchievement(res Result, id string) bool {
	for _, a := range res.NewAchievements {
		if a == id {
			return true
		}
	}
	return false
}

func TestProcessDonationFirstDonation(t *testing.T) {
	store := newFakeStore()
	eng := NewEngine(store)
	userID := uuid.New()

	res := eng.ProcessDonation(context.Background(), userID.String(), 50_000)
	if res.Failed() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	// 5 poin donasi + 10 bonus first_donation
	if res.Points != 5+gconfig.AchFirstDonation.Points {
		t.Fatalf("points = %d, want %d", res.Points, 5+gconfig.AchFirstDonation.Points)
	}
	if !hasAchievement(res, "first_donation") {
		t.Fatalf("first_donation not unlocked: %v", res.NewAchievements)
	}
	if store.donationTotals[userID] != 50_000 {
		t.Fatalf("donation total = %d, want 50000", store.donationTotals[userID])
	}
}

func TestProcessDonationSecondDonationNoFirstAchievement(t *testing.T) {
	store := newFakeStore()
	eng := NewEngine(store)
	userID := uuid.New()

	eng.ProcessDonation(context.Background(), userID.String(), 50_000)
	res := eng.ProcessDonation(context.Background(), userID.String(), 30_000)
	if hasAchievement(res, "first_donation") {
		t.Fatal("first_donation awarded twice")
	}
	if res.Points != 3 {
		t.Fatalf("points = %d, want 3", res.Points)
	}
}

func TestProcessDonationGenerousDonorAtExactThreshold(t *testing.T) {
	store := newFakeStore()
	eng := NewEngine(store)
	userID := uuid.New()
	store.donationTotals[userID] = 900_000

	res := eng.ProcessDonation(context.Background(), userID.String(), 100_000)
	if !hasAchievement(res, "generous_donor") {
		t.Fatalf("generous_donor not unlocked at exactly 1M: %v", res.NewAchievements)
	}
	if hasAchievement(res, "first_donation") {
		t.Fatal("first_donation unlocked despite prior total")
	}
	if hasAchievement(res, "super_donor") {
		t.Fatal("super_donor unlocked below 5M")
	}
}

func TestProcessDonationSuperDonorUnlocksBoth(t *testing.T) {
	store := newFakeStore()
	eng := NewEngine(store)
	userID := uuid.New()

	res := eng.ProcessDonation(context.Background(), userID.String(), 5_000_000)
	for _, want := range []string{"first_donation", "generous_donor", "super_donor"} {
		if !hasAchievement(res, want) {
			t.Fatalf("%s not unlocked: %v", want, res.NewAchievements)
		}
	}
	wantPoints := 500 + gconfig.AchFirstDonation.Points + gconfig.AchGenerousDonor.Points + gconfig.AchSuperDonor.Points
	if res.Points != wantPoints {
		t.Fatalf("points = %d, want %d", res.Points, wantPoints)
	}
}

func TestProcessDonationRepeatAwardIsNoOp(t *testing.T) {
	store := newFakeStore()
	eng := NewEngine(store)
	userID := uuid.New()

	eng.ProcessDonation(context.Background(), userID.String(), 1_000_000)
	res := eng.ProcessDonation(context.Background(), userID.String(), 1_000_000)
	if hasAchievement(res, "generous_donor") {
		t.Fatal("generous_donor re-awarded")
	}
	if len(res.NewAchievements) != 0 {
		t.Fatalf("unexpected new achievements on repeat: %v", res.NewAchievements)
	}
}

func TestProcessDonationInvalidUserIDIsNoOp(t *testing.T) {
	store := newFakeStore()
	eng := NewEngine(store)

	res := eng.ProcessDonation(context.Background(), "not-a-uuid", 50_000)
	if res.Points != 0 || res.Failed() || len(res.NewAchievements) != 0 {
		t.Fatalf("expected zero result, got %+v", res)
	}
	if store.logEntries != 0 {
		t.Fatalf("store touched for invalid user id: %d log entries", store.logEntries)
	}
}

func TestProcessDonationStoreErrorSurfacesInResult(t *testing.T) {
	store := newFakeStore()
	store.addPointsErr = errors.New("db down")
	eng := NewEngine(store)

	res := eng.ProcessDonation(context.Background(), uuid.New().String(), 50_000)
	if !res.Failed() {
		t.Fatal("expected Result.Err to carry store failure")
	}
}

func TestProcessVolunteerFirstRegistration(t *testing.T) {
	store := newFakeStore()
	eng := NewEngine(store)
	userID := uuid.New()

	res := eng.ProcessVolunteer(context.Background(), userID.String())
	if res.Failed() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if !hasAchievement(res, "first_volunteer") {
		t.Fatalf("first_volunteer not unlocked: %v", res.NewAchievements)
	}
	if res.Points != gconfig.PointVolunteerRegister+gconfig.AchFirstVolunteer.Points {
		t.Fatalf("points = %d", res.Points)
	}
}

func TestProcessVolunteerActiveAtFifthNotFourth(t *testing.T) {
	store := newFakeStore()
	eng := NewEngine(store)
	userID := uuid.New()

	var res Result
	for i := 0; i < 4; i++ {
		res = eng.ProcessVolunteer(context.Background(), userID.String())
	}
	if hasAchievement(res, "active_volunteer") {
		t.Fatal("active_volunteer unlocked at 4 activities")
	}

	res = eng.ProcessVolunteer(context.Background(), userID.String())
	if !hasAchievement(res, "active_volunteer") {
		t.Fatalf("active_volunteer not unlocked at 5 activities: %v", res.NewAchievements)
	}
}
