// file: internals/features/donations/model/donation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status donasi.
// pending → menunggu pembayaran invoice Xendit
// success → donasi direct (tanpa gateway), langsung dihitung
// paid    → invoice dibayar (via webhook)
// expired → invoice kedaluwarsa
const (
	DonationStatusPending = "pending"
	DonationStatusSuccess = "success"
	DonationStatusPaid    = "paid"
	DonationStatusExpired = "expired"
)

type DonationModel struct {
	DonationID uuid.UUID `gorm:"column:donation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_id"`

	DonationUserID     uuid.UUID `gorm:"column:donation_user_id;type:uuid;not null;index" json:"donation_user_id"`
	DonationActivityID uuid.UUID `gorm:"column:donation_activity_id;type:uuid;not null;index" json:"donation_activity_id"`

	DonationAmount int64  `gorm:"column:donation_amount;not null" json:"donation_amount"`
	DonationStatus string `gorm:"column:donation_status;type:varchar(20);not null;default:'pending'" json:"donation_status"`

	// external_id yang dikirim ke Xendit; kunci idempoten webhook
	DonationExternalID    *string `gorm:"column:donation_external_id;size:100;unique" json:"donation_external_id,omitempty"`
	DonationPaymentMethod string  `gorm:"column:donation_payment_method;size:50" json:"donation_payment_method,omitempty"`
	DonationInvoiceURL    string  `gorm:"column:donation_invoice_url;type:text" json:"donation_invoice_url,omitempty"`

	// terisi kalau donasi berasal dari recurring subscription
	DonationSubscriptionID *uuid.UUID `gorm:"column:donation_subscription_id;type:uuid;index" json:"donation_subscription_id,omitempty"`

	DonationPaidAt *time.Time `gorm:"column:donation_paid_at" json:"donation_paid_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DonationModel) TableName() string {
	return "donations"
}
