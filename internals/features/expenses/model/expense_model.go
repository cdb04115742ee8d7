// file: internals/features/expenses/model/expense_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseModel mencatat penggunaan dana per activity (transparansi donatur).
type ExpenseModel struct {
	ExpenseID uuid.UUID `gorm:"column:expense_id;type:uuid;default:gen_random_uuid();primaryKey" json:"expense_id"`

	ExpenseActivityID uuid.UUID `gorm:"column:expense_activity_id;type:uuid;not null;index" json:"expense_activity_id"`

	ExpenseDescription string `gorm:"column:expense_description;type:text;not null" json:"expense_description"`
	ExpenseAmount      int64  `gorm:"column:expense_amount;not null" json:"expense_amount"`

	ExpenseDate *time.Time `gorm:"column:expense_date" json:"expense_date,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ExpenseModel) TableName() string {
	return "expenses"
}
