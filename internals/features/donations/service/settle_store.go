// file: internals/features/donations/service/settle_store.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "careconnect_backend/internals/features/activities/model"
	"careconnect_backend/internals/features/donations/model"
)

type GormSettleStore struct {
	db *gorm.DB
}

func NewGormSettleStore(db *gorm.DB) *GormSettleStore {
	return &GormSettleStore{db: db}
}

func (s *GormSettleStore) FindByExternalID(ctx context.Context, externalID string) (*model.DonationModel, error) {
	var donation model.DonationModel
	err := s.db.WithContext(ctx).
		First(&donation, "donation_external_id = ?", externalID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}
	return &donation, nil
}

func (s *GormSettleStore) SettlePending(ctx context.Context, donationID, activityID uuid.UUID, amount int64, method string, paidAt *time.Time) (bool, error) {
	settled := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if paidAt == nil {
			now := time.Now()
			paidAt = &now
		}

		// guard WHERE donation_status='pending' membuat replay jadi no-op
		res := tx.Model(&model.DonationModel{}).
			Where("donation_id = ? AND donation_status = ?", donationID, model.DonationStatusPending).
			Updates(map[string]any{
				"donation_status":         model.DonationStatusPaid,
				"donation_amount":         amount,
				"donation_payment_method": method,
				"donation_paid_at":        *paidAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		settled = true
		return tx.Model(&activityModel.ActivityModel{}).
			Where("activity_id = ?", activityID).
			Updates(map[string]any{
				"activity_collected_money": gorm.Expr("activity_collected_money + ?", amount),
			}).Error
	})
	return settled, err
}

func (s *GormSettleStore) ExpirePending(ctx context.Context, donationID uuid.UUID) (bool, error) {
	res := s.db.WithContext(ctx).Model(&model.DonationModel{}).
		Where("donation_id = ? AND donation_status = ?", donationID, model.DonationStatusPending).
		Updates(map[string]any{"donation_status": model.DonationStatusExpired})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormSettleStore) CreateSettled(ctx context.Context, d *model.DonationModel) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&activityModel.ActivityModel{}).
			Where("activity_id = ?", d.DonationActivityID).
			Updates(map[string]any{
				"activity_collected_money": gorm.Expr("activity_collected_money + ?", d.DonationAmount),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrActivityNotFound
		}
		return tx.Create(d).Error
	})
}
