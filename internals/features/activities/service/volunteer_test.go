package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"careconnect_backend/internals/features/activities/model"
	gservice "careconnect_backend/internals/features/gamification/service"
)

type fakeVolunteerStore struct {
	addFn    func(ctx context.Context, v *model.ActivityVolunteerModel) error
	removeFn func(ctx context.Context, activityID, userID uuid.UUID) error
}

func (f *fakeVolunteerStore) AddVolunteer(ctx context.Context, v *model.ActivityVolunteerModel) error {
	return f.addFn(ctx, v)
}

func (f *fakeVolunteerStore) RemoveVolunteer(ctx context.Context, activityID, volunteerID uuid.UUID) error {
	return f.removeFn(ctx, activityID, volunteerID)
}

type fakePointProcessor struct {
	calls  int
	result gservice.Result
}

func (f *fakePointProcessor) ProcessVolunteer(_ context.Context, _ string) gservice.Result {
	f.calls++
	return f.result
}

func TestRegisterAddsVolunteerAndAwardsPoints(t *testing.T) {
	activityID, userID := uuid.New(), uuid.New()

	var stored *model.ActivityVolunteerModel
	store := &fakeVolunteerStore{
		addFn: func(_ context.Context, v *model.ActivityVolunteerModel) error {
			stored = v
			return nil
		},
	}
	points := &fakePointProcessor{result: gservice.Result{Points: 50}}
	svc := NewVolunteerService(store, points)

	v, res, err := svc.Register(context.Background(), activityID, userID, "Andi", "0812", "bisa akhir pekan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == nil || stored.ActivityVolunteerActivityID != activityID || stored.ActivityVolunteerUserID != userID {
		t.Fatalf("stored volunteer wrong: %+v", stored)
	}
	if stored.ActivityVolunteerName != "Andi" || stored.ActivityVolunteerPhone != "0812" {
		t.Fatalf("contact fields not stored: %+v", stored)
	}
	if v.ActivityVolunteerID == uuid.Nil {
		t.Fatal("volunteer id not generated")
	}
	if v.ActivityVolunteerStatus != "registered" {
		t.Fatalf("status = %q", v.ActivityVolunteerStatus)
	}
	if points.calls != 1 || res.Points != 50 {
		t.Fatalf("gamification not invoked: calls=%d res=%+v", points.calls, res)
	}
}

func TestRegisterDuplicateDoesNotAwardPoints(t *testing.T) {
	store := &fakeVolunteerStore{
		addFn: func(_ context.Context, _ *model.ActivityVolunteerModel) error {
			return ErrVolunteerExists
		},
	}
	points := &fakePointProcessor{}
	svc := NewVolunteerService(store, points)

	_, _, err := svc.Register(context.Background(), uuid.New(), uuid.New(), "", "", "")
	if err != ErrVolunteerExists {
		t.Fatalf("err = %v, want ErrVolunteerExists", err)
	}
	if points.calls != 0 {
		t.Fatal("gamification invoked on duplicate registration")
	}
}

func TestRegisterUnknownActivity(t *testing.T) {
	store := &fakeVolunteerStore{
		addFn: func(_ context.Context, _ *model.ActivityVolunteerModel) error {
			return ErrActivityNotFound
		},
	}
	points := &fakePointProcessor{}
	svc := NewVolunteerService(store, points)

	_, _, err := svc.Register(context.Background(), uuid.New(), uuid.New(), "", "", "")
	if err != ErrActivityNotFound {
		t.Fatalf("err = %v, want ErrActivityNotFound", err)
	}
	if points.calls != 0 {
		t.Fatal("gamification invoked for unknown activity")
	}
}

func TestUnregisterPassesThroughNotFound(t *testing.T) {
	store := &fakeVolunteerStore{
		removeFn: func(_ context.Context, _, _ uuid.UUID) error {
			return ErrVolunteerNotFound
		},
	}
	svc := NewVolunteerService(store, &fakePointProcessor{})

	if err := svc.Unregister(context.Background(), uuid.New(), uuid.New()); err != ErrVolunteerNotFound {
		t.Fatalf("err = %v, want ErrVolunteerNotFound", err)
	}
}
