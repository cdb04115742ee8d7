package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users, termasuk state gamifikasi
// (total poin, akumulasi donasi, jumlah kegiatan relawan).
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;size:100;not null" json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;size:255;unique;not null" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;not null" json:"-"`
	UserRole     string    `gorm:"column:user_role;type:varchar(20);not null;default:'user'" json:"user_role"`

	// State gamifikasi — hanya dimutasi lewat engine gamifikasi
	UserPoint                    int   `gorm:"column:user_point;not null;default:0" json:"user_point"`
	UserTotalDonations           int64 `gorm:"column:user_total_donations;not null;default:0" json:"user_total_donations"`
	UserTotalVolunteerActivities int   `gorm:"column:user_total_volunteer_activities;not null;default:0" json:"user_total_volunteer_activities"`

	// Payment method tersimpan untuk recurring donation (Xendit)
	UserPaymentMethodID *string `gorm:"column:user_payment_method_id;size:100" json:"user_payment_method_id,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
