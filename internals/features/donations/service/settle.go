// file: internals/features/donations/service/settle.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"careconnect_backend/internals/features/donations/dto"
	"careconnect_backend/internals/features/donations/model"
	gservice "careconnect_backend/internals/features/gamification/service"
)

var (
	ErrDonationNotFound = errors.New("donation not found")
	ErrActivityNotFound = errors.New("activity not found")
)

// SettleStore adalah kontrak persistence settlement donasi.
type SettleStore interface {
	FindByExternalID(ctx context.Context, externalID string) (*model.DonationModel, error)
	// SettlePending memindahkan donasi pending → paid dan menambah saldo
	// activity secara atomik. Return false kalau donasi sudah tidak pending
	// (webhook replay) — tanpa efek samping apa pun.
	SettlePending(ctx context.Context, donationID, activityID uuid.UUID, amount int64, method string, paidAt *time.Time) (bool, error)
	// ExpirePending menandai donasi pending → expired. Replay → false.
	ExpirePending(ctx context.Context, donationID uuid.UUID) (bool, error)
	// CreateSettled menyimpan donasi yang langsung settle (direct/recurring)
	// sekaligus menambah saldo activity dalam satu transaksi.
	CreateSettled(ctx context.Context, d *model.DonationModel) error
}

// PointProcessor: subset engine gamifikasi yang dipakai flow donasi.
type PointProcessor interface {
	ProcessDonation(ctx context.Context, userID string, amount int64) gservice.Result
}

type SettleService struct {
	store  SettleStore
	points PointProcessor
}

func NewSettleService(store SettleStore, points PointProcessor) *SettleService {
	return &SettleService{store: store, points: points}
}

// SettleOutcome merangkum efek satu webhook/donasi untuk response API.
type SettleOutcome struct {
	Donation     *model.DonationModel
	Amount       int64
	Settled      bool
	Replayed     bool
	Gamification gservice.Result
}

// ConfirmedAmount: nominal final memakai paid_amount dari gateway kalau ada,
// fallback ke nominal yang diminta.
func ConfirmedAmount(requested, paid int64) int64 {
	if paid > 0 {
		return paid
	}
	return requested
}

// HandleXenditCallback memproses webhook invoice. Idempoten: replay untuk
// donasi yang sudah settle mengembalikan outcome Replayed tanpa efek samping.
// Gamifikasi berjalan hanya saat transisi pending → paid, best-effort.
func (s *SettleService) HandleXenditCallback(ctx context.Context, cb dto.XenditInvoiceCallback) (*SettleOutcome, error) {
	donation, err := s.store.FindByExternalID(ctx, cb.ExternalID)
	if err != nil {
		return nil, err
	}

	switch cb.Status {
	case "PAID", "SETTLED":
		amount := ConfirmedAmount(donation.DonationAmount, int64(cb.PaidAmount))
		var paidAt *time.Time
		if t, perr := time.Parse(time.RFC3339, cb.PaidAt); perr == nil {
			paidAt = &t
		}

		settled, err := s.store.SettlePending(ctx, donation.DonationID, donation.DonationActivityID, amount, cb.PaymentMethod, paidAt)
		if err != nil {
			return nil, err
		}

		out := &SettleOutcome{Donation: donation, Amount: amount, Settled: settled, Replayed: !settled}
		if settled {
			out.Gamification = s.points.ProcessDonation(ctx, donation.DonationUserID.String(), amount)
		}
		return out, nil

	case "EXPIRED":
		expired, err := s.store.ExpirePending(ctx, donation.DonationID)
		if err != nil {
			return nil, err
		}
		return &SettleOutcome{Donation: donation, Settled: false, Replayed: !expired}, nil

	default:
		// status lain (mis. PENDING) diabaikan, tunggu webhook berikutnya
		return &SettleOutcome{Donation: donation}, nil
	}
}

// CreateDirect menyimpan donasi yang langsung dianggap settle dan
// menjalankan gamifikasi. Dipakai jalur payment=direct.
func (s *SettleService) CreateDirect(ctx context.Context, d *model.DonationModel) (gservice.Result, error) {
	d.DonationStatus = model.DonationStatusSuccess
	now := time.Now()
	d.DonationPaidAt = &now

	if err := s.store.CreateSettled(ctx, d); err != nil {
		return gservice.Result{}, err
	}
	return s.points.ProcessDonation(ctx, d.DonationUserID.String(), d.DonationAmount), nil
}
