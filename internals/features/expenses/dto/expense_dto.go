// file: internals/features/expenses/dto/expense_dto.go
package dto

import "time"

type CreateExpenseRequest struct {
	ActivityID  string     `json:"activityId" validate:"required,uuid4"`
	Description string     `json:"description" validate:"required"`
	Amount      int64      `json:"amount"`
	Date        *time.Time `json:"date"`
}

type UpdateExpenseRequest struct {
	Description *string    `json:"description"`
	Amount      *int64     `json:"amount"`
	Date        *time.Time `json:"date"`
}
