// file: internals/features/donations/controller/donation_controller_test.go
package controller

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careconnect_backend/internals/features/donations/model"
	"careconnect_backend/internals/features/donations/service"
	gservice "careconnect_backend/internals/features/gamification/service"
)

type fakeSettleStore struct {
	created []*model.DonationModel
}

func (f *fakeSettleStore) FindByExternalID(_ context.Context, _ string) (*model.DonationModel, error) {
	return nil, service.ErrDonationNotFound
}

func (f *fakeSettleStore) SettlePending(_ context.Context, _, _ uuid.UUID, _ int64, _ string, _ *time.Time) (bool, error) {
	return false, nil
}

func (f *fakeSettleStore) ExpirePending(_ context.Context, _ uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeSettleStore) CreateSettled(_ context.Context, d *model.DonationModel) error {
	f.created = append(f.created, d)
	return nil
}

type fakeDonationPoints struct{ calls int }

func (f *fakeDonationPoints) ProcessDonation(_ context.Context, _ string, _ int64) gservice.Result {
	f.calls++
	return gservice.Result{Points: 5, NewAchievements: []string{"first_donation"}}
}

func newDonationTestApp(store *fakeSettleStore, points *fakeDonationPoints) *fiber.App {
	ctrl := &DonationController{
		Validate: validator.New(),
		Settle:   service.NewSettleService(store, points),
	}
	app := fiber.New()
	app.Post("/api/donations", ctrl.CreateDonation)
	return app
}

func postDonation(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/donations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(raw)
}

// Tanpa field payment, donasi harus langsung tercatat settle + gamifikasi
// berjalan — bukan masuk jalur invoice.
func TestCreateDonationWithoutPaymentFieldSettlesImmediately(t *testing.T) {
	store := &fakeSettleStore{}
	points := &fakeDonationPoints{}
	app := newDonationTestApp(store, points)

	body := fmt.Sprintf(`{"userId":%q,"activityId":%q,"amount":50000}`,
		uuid.New().String(), uuid.New().String())
	status, raw := postDonation(t, app, body)

	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", status, raw)
	}
	if len(store.created) != 1 {
		t.Fatalf("settled donations created = %d, want 1", len(store.created))
	}
	d := store.created[0]
	if d.DonationStatus != model.DonationStatusSuccess {
		t.Fatalf("status = %q, want %q", d.DonationStatus, model.DonationStatusSuccess)
	}
	if d.DonationAmount != 50_000 {
		t.Fatalf("amount = %d, want 50000", d.DonationAmount)
	}
	if d.DonationPaidAt == nil {
		t.Fatal("paid timestamp not stamped")
	}
	if points.calls != 1 {
		t.Fatalf("gamification calls = %d, want 1", points.calls)
	}
	if !strings.Contains(raw, "first_donation") {
		t.Fatalf("gamification result missing from response: %s", raw)
	}
}

func TestCreateDonationExplicitDirectSettlesImmediately(t *testing.T) {
	store := &fakeSettleStore{}
	points := &fakeDonationPoints{}
	app := newDonationTestApp(store, points)

	body := fmt.Sprintf(`{"userId":%q,"activityId":%q,"amount":25000,"payment":"direct"}`,
		uuid.New().String(), uuid.New().String())
	status, raw := postDonation(t, app, body)

	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", status, raw)
	}
	if len(store.created) != 1 || points.calls != 1 {
		t.Fatalf("created = %d, gamification calls = %d", len(store.created), points.calls)
	}
}

func TestCreateDonationRejectsUnknownPaymentMethod(t *testing.T) {
	store := &fakeSettleStore{}
	points := &fakeDonationPoints{}
	app := newDonationTestApp(store, points)

	body := fmt.Sprintf(`{"userId":%q,"activityId":%q,"amount":50000,"payment":"cash"}`,
		uuid.New().String(), uuid.New().String())
	status, _ := postDonation(t, app, body)

	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if len(store.created) != 0 || points.calls != 0 {
		t.Fatal("invalid payment method reached the settle path")
	}
}

func TestCreateDonationRejectsNonPositiveAmount(t *testing.T) {
	store := &fakeSettleStore{}
	points := &fakeDonationPoints{}
	app := newDonationTestApp(store, points)

	body := fmt.Sprintf(`{"userId":%q,"activityId":%q,"amount":0}`,
		uuid.New().String(), uuid.New().String())
	status, raw := postDonation(t, app, body)

	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if !strings.Contains(raw, "Donation amount must be greater than 0") {
		t.Fatalf("unexpected body: %s", raw)
	}
	if len(store.created) != 0 {
		t.Fatal("donation created despite zero amount")
	}
}
