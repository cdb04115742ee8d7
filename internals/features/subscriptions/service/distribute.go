// file: internals/features/subscriptions/service/distribute.go
package service

import (
	"context"
	"errors"

	activityModel "careconnect_backend/internals/features/activities/model"
	donationModel "careconnect_backend/internals/features/donations/model"
	"careconnect_backend/internals/features/subscriptions/model"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrNoActivity           = errors.New("no activity available")
)

// ChargeStore adalah kontrak persistence penyaluran charge recurring.
type ChargeStore interface {
	// FindActiveByExternalID mencari subscription aktif; yang sudah
	// dibatalkan dianggap tidak ada.
	FindActiveByExternalID(ctx context.Context, externalID string) (*model.SubscriptionModel, error)
	// ActiveActivities mengembalikan kandidat penerima dana (status active).
	ActiveActivities(ctx context.Context) ([]activityModel.ActivityModel, error)
	// RecordRecurringPayment mencatat donasi hasil charge, menambah saldo
	// activity, dan menstempel pembayaran terakhir subscription — satu transaksi.
	RecordRecurringPayment(ctx context.Context, sub *model.SubscriptionModel, activity *activityModel.ActivityModel, amount int64) (*donationModel.DonationModel, error)
}

// DistributionService menyalurkan charge recurring ke activity.
// Tidak ada gamifikasi di jalur ini: poin hanya untuk donasi manual.
type DistributionService struct {
	store ChargeStore
}

func NewDistributionService(store ChargeStore) *DistributionService {
	return &DistributionService{store: store}
}

type ChargeOutcome struct {
	Subscription *model.SubscriptionModel
	Activity     *activityModel.ActivityModel
	Donation     *donationModel.DonationModel
	Amount       int64
}

// LowestCollected memilih activity dengan dana terkumpul paling sedikit.
// Urutan input stabil: seri dimenangkan elemen yang lebih dulu.
func LowestCollected(activities []activityModel.ActivityModel) *activityModel.ActivityModel {
	if len(activities) == 0 {
		return nil
	}
	lowest := &activities[0]
	for i := 1; i < len(activities); i++ {
		if activities[i].ActivityCollectedMoney < lowest.ActivityCollectedMoney {
			lowest = &activities[i]
		}
	}
	return lowest
}

// ProcessCharge memproses satu pembayaran recurring yang berhasil:
// cari subscription aktif, pilih activity dengan dana paling sedikit
// saat ini, lalu catat donasinya.
func (s *DistributionService) ProcessCharge(ctx context.Context, externalID string, amount int64) (*ChargeOutcome, error) {
	sub, err := s.store.FindActiveByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		amount = sub.SubscriptionAmount
	}

	activities, err := s.store.ActiveActivities(ctx)
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return nil, ErrNoActivity
	}

	target := LowestCollected(activities)
	donation, err := s.store.RecordRecurringPayment(ctx, sub, target, amount)
	if err != nil {
		return nil, err
	}

	return &ChargeOutcome{
		Subscription: sub,
		Activity:     target,
		Donation:     donation,
		Amount:       amount,
	}, nil
}
