// file: internals/features/subscriptions/model/subscription_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel adalah langganan donasi bulanan (recurring Xendit).
// Satu user maksimal satu subscription aktif.
type SubscriptionModel struct {
	SubscriptionID uuid.UUID `gorm:"column:subscription_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subscription_id"`

	SubscriptionUserID uuid.UUID `gorm:"column:subscription_user_id;type:uuid;not null;index" json:"subscription_user_id"`

	// external_id yang kita kirim ke Xendit; kunci lookup webhook recurring
	SubscriptionExternalID *string `gorm:"column:subscription_external_id;size:100;unique" json:"subscription_external_id,omitempty"`
	// id recurring payment dari Xendit (untuk edit/stop)
	SubscriptionXenditID string `gorm:"column:subscription_xendit_id;size:100" json:"subscription_xendit_id,omitempty"`

	SubscriptionAmount int64 `gorm:"column:subscription_amount;not null" json:"subscription_amount"`
	SubscriptionActive bool  `gorm:"column:subscription_active;not null;default:true" json:"subscription_active"`

	// activity dengan dana paling sedikit saat subscription dibuat —
	// bookkeeping saja; penyaluran tiap charge memilih ulang yang terendah
	SubscriptionTargetActivityID *uuid.UUID `gorm:"column:subscription_target_activity_id;type:uuid" json:"subscription_target_activity_id,omitempty"`

	SubscriptionLastPaymentAt     *time.Time `gorm:"column:subscription_last_payment_at" json:"subscription_last_payment_at,omitempty"`
	SubscriptionLastPaymentAmount int64      `gorm:"column:subscription_last_payment_amount;not null;default:0" json:"subscription_last_payment_amount"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
