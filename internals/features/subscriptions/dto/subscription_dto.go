// file: internals/features/subscriptions/dto/subscription_dto.go
package dto

type AddPaymentMethodRequest struct {
	TokenID string `json:"tokenId" validate:"required"`
}

type CreateSubscriptionRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

type UpdateAmountRequest struct {
	NewAmount int64 `json:"newAmount" validate:"required,gt=0"`
}

// XenditRecurringCallback adalah payload webhook recurring payment Xendit
// (field yang kita pakai saja).
type XenditRecurringCallback struct {
	ID         string  `json:"id"`
	ExternalID string  `json:"external_id"`
	Status     string  `json:"status"`
	Amount     float64 `json:"amount"`
}
