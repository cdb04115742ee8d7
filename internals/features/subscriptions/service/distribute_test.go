package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	activityModel "careconnect_backend/internals/features/activities/model"
	donationModel "careconnect_backend/internals/features/donations/model"
	"careconnect_backend/internals/features/subscriptions/model"
)

type fakeChargeStore struct {
	sub        *model.SubscriptionModel
	activities []activityModel.ActivityModel
	recorded   []*donationModel.DonationModel
}

func (f *fakeChargeStore) FindActiveByExternalID(_ context.Context, externalID string) (*model.SubscriptionModel, error) {
	if f.sub != nil && f.sub.SubscriptionExternalID != nil && *f.sub.SubscriptionExternalID == externalID && f.sub.SubscriptionActive {
		return f.sub, nil
	}
	return nil, ErrSubscriptionNotFound
}

func (f *fakeChargeStore) ActiveActivities(_ context.Context) ([]activityModel.ActivityModel, error) {
	return f.activities, nil
}

func (f *fakeChargeStore) RecordRecurringPayment(_ context.Context, sub *model.SubscriptionModel, activity *activityModel.ActivityModel, amount int64) (*donationModel.DonationModel, error) {
	d := &donationModel.DonationModel{
		DonationID:             uuid.New(),
		DonationUserID:         sub.SubscriptionUserID,
		DonationActivityID:     activity.ActivityID,
		DonationAmount:         amount,
		DonationStatus:         donationModel.DonationStatusPaid,
		DonationPaymentMethod:  "xendit_recurring",
		DonationSubscriptionID: &sub.SubscriptionID,
	}
	f.recorded = append(f.recorded, d)
	for i := range f.activities {
		if f.activities[i].ActivityID == activity.ActivityID {
			f.activities[i].ActivityCollectedMoney += amount
		}
	}
	return d, nil
}

func activeSubscription(externalID string, amount int64) *model.SubscriptionModel {
	return &model.SubscriptionModel{
		SubscriptionID:         uuid.New(),
		SubscriptionUserID:     uuid.New(),
		SubscriptionExternalID: &externalID,
		SubscriptionAmount:     amount,
		SubscriptionActive:     true,
	}
}

func TestLowestCollected(t *testing.T) {
	if LowestCollected(nil) != nil {
		t.Fatal("empty slice should yield nil")
	}

	a := activityModel.ActivityModel{ActivityID: uuid.New(), ActivityCollectedMoney: 100_000}
	b := activityModel.ActivityModel{ActivityID: uuid.New(), ActivityCollectedMoney: 50_000}
	c := activityModel.ActivityModel{ActivityID: uuid.New(), ActivityCollectedMoney: 50_000}

	got := LowestCollected([]activityModel.ActivityModel{a, b, c})
	if got.ActivityID != b.ActivityID {
		t.Fatalf("lowest = %s, want first of the tied pair", got.ActivityID)
	}
}

func TestProcessChargeRoutesToLowestActivity(t *testing.T) {
	rich := activityModel.ActivityModel{ActivityID: uuid.New(), ActivityCollectedMoney: 100_000}
	poor := activityModel.ActivityModel{ActivityID: uuid.New(), ActivityCollectedMoney: 50_000}
	store := &fakeChargeStore{
		sub:        activeSubscription("SUBSCRIPTION-1", 100_000),
		activities: []activityModel.ActivityModel{rich, poor},
	}
	svc := NewDistributionService(store)

	out, err := svc.ProcessCharge(context.Background(), "SUBSCRIPTION-1", 100_000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Activity.ActivityID != poor.ActivityID {
		t.Fatalf("charge routed to %s, want lowest-collected activity", out.Activity.ActivityID)
	}
	if out.Donation.DonationPaymentMethod != "xendit_recurring" {
		t.Fatalf("payment method = %q", out.Donation.DonationPaymentMethod)
	}
	if out.Donation.DonationSubscriptionID == nil || *out.Donation.DonationSubscriptionID != store.sub.SubscriptionID {
		t.Fatal("donation not linked to subscription")
	}
	// 50k + 100k charge
	if store.activities[1].ActivityCollectedMoney != 150_000 {
		t.Fatalf("activity balance = %d, want 150000", store.activities[1].ActivityCollectedMoney)
	}
}

func TestProcessChargeIgnoresBookkeepingTarget(t *testing.T) {
	original := activityModel.ActivityModel{ActivityID: uuid.New(), ActivityCollectedMoney: 900_000}
	poor := activityModel.ActivityModel{ActivityID: uuid.New(), ActivityCollectedMoney: 10_000}

	// target tersimpan hanyalah bookkeeping saat create;
	// charge selalu memilih ulang yang terendah
	sub := activeSubscription("SUBSCRIPTION-2", 50_000)
	sub.SubscriptionTargetActivityID = &original.ActivityID
	store := &fakeChargeStore{
		sub:        sub,
		activities: []activityModel.ActivityModel{original, poor},
	}
	svc := NewDistributionService(store)

	out, err := svc.ProcessCharge(context.Background(), "SUBSCRIPTION-2", 50_000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Activity.ActivityID != poor.ActivityID {
		t.Fatal("charge not re-routed to current lowest activity")
	}
}

func TestProcessChargeZeroAmountFallsBackToSubscriptionAmount(t *testing.T) {
	store := &fakeChargeStore{
		sub:        activeSubscription("SUBSCRIPTION-3", 75_000),
		activities: []activityModel.ActivityModel{{ActivityID: uuid.New()}},
	}
	svc := NewDistributionService(store)

	out, err := svc.ProcessCharge(context.Background(), "SUBSCRIPTION-3", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Amount != 75_000 {
		t.Fatalf("amount = %d, want subscription amount", out.Amount)
	}
}

func TestProcessChargeUnknownSubscription(t *testing.T) {
	svc := NewDistributionService(&fakeChargeStore{})
	if _, err := svc.ProcessCharge(context.Background(), "NOPE", 10_000); err != ErrSubscriptionNotFound {
		t.Fatalf("err = %v, want ErrSubscriptionNotFound", err)
	}
}

func TestProcessChargeInactiveSubscription(t *testing.T) {
	sub := activeSubscription("SUBSCRIPTION-4", 10_000)
	sub.SubscriptionActive = false
	svc := NewDistributionService(&fakeChargeStore{sub: sub})

	if _, err := svc.ProcessCharge(context.Background(), "SUBSCRIPTION-4", 10_000); err != ErrSubscriptionNotFound {
		t.Fatalf("err = %v, want ErrSubscriptionNotFound", err)
	}
}

func TestProcessChargeNoActivity(t *testing.T) {
	store := &fakeChargeStore{sub: activeSubscription("SUBSCRIPTION-5", 10_000)}
	svc := NewDistributionService(store)

	if _, err := svc.ProcessCharge(context.Background(), "SUBSCRIPTION-5", 10_000); err != ErrNoActivity {
		t.Fatalf("err = %v, want ErrNoActivity", err)
	}
	if len(store.recorded) != 0 {
		t.Fatal("donation recorded despite no activity")
	}
}
