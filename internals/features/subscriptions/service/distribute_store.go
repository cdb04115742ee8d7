// file: internals/features/subscriptions/service/distribute_store.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "careconnect_backend/internals/features/activities/model"
	donationModel "careconnect_backend/internals/features/donations/model"
	"careconnect_backend/internals/features/subscriptions/model"
)

type GormChargeStore struct {
	db *gorm.DB
}

func NewGormChargeStore(db *gorm.DB) *GormChargeStore {
	return &GormChargeStore{db: db}
}

func (s *GormChargeStore) FindActiveByExternalID(ctx context.Context, externalID string) (*model.SubscriptionModel, error) {
	var sub model.SubscriptionModel
	err := s.db.WithContext(ctx).
		First(&sub, "subscription_external_id = ? AND subscription_active = TRUE", externalID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (s *GormChargeStore) ActiveActivities(ctx context.Context) ([]activityModel.ActivityModel, error) {
	var activities []activityModel.ActivityModel
	err := s.db.WithContext(ctx).
		Where("activity_status = ?", "active").
		Order("activity_collected_money ASC").
		Find(&activities).Error
	return activities, err
}

func (s *GormChargeStore) RecordRecurringPayment(ctx context.Context, sub *model.SubscriptionModel, activity *activityModel.ActivityModel, amount int64) (*donationModel.DonationModel, error) {
	now := time.Now()
	donation := &donationModel.DonationModel{
		DonationID:             uuid.New(),
		DonationUserID:         sub.SubscriptionUserID,
		DonationActivityID:     activity.ActivityID,
		DonationAmount:         amount,
		DonationStatus:         donationModel.DonationStatusPaid,
		DonationPaymentMethod:  "xendit_recurring",
		DonationSubscriptionID: &sub.SubscriptionID,
		DonationPaidAt:         &now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(donation).Error; err != nil {
			return err
		}
		if err := tx.Model(&activityModel.ActivityModel{}).
			Where("activity_id = ?", activity.ActivityID).
			Updates(map[string]any{
				"activity_collected_money": gorm.Expr("activity_collected_money + ?", amount),
			}).Error; err != nil {
			return err
		}
		return tx.Model(&model.SubscriptionModel{}).
			Where("subscription_id = ?", sub.SubscriptionID).
			Updates(map[string]any{
				"subscription_last_payment_at":     now,
				"subscription_last_payment_amount": amount,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return donation, nil
}
