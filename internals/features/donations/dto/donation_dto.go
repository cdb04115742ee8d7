// file: internals/features/donations/dto/donation_dto.go
package dto

type CreateDonationRequest struct {
	UserID     string `json:"userId" validate:"required,uuid4"`
	ActivityID string `json:"activityId" validate:"required,uuid4"`
	Amount     int64  `json:"amount" validate:"required,gt=0"`
	// kosong/direct → langsung dihitung tanpa gateway (default)
	// invoice       → buat invoice Xendit, menunggu webhook
	Payment    string `json:"payment" validate:"omitempty,oneof=direct invoice"`
	PayerEmail string `json:"payerEmail" validate:"omitempty,email"`
}

// XenditInvoiceCallback adalah payload webhook invoice Xendit
// (field yang kita pakai saja).
type XenditInvoiceCallback struct {
	ID            string  `json:"id"`
	ExternalID    string  `json:"external_id"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	PaidAmount    float64 `json:"paid_amount"`
	PaymentMethod string  `json:"payment_method"`
	PaidAt        string  `json:"paid_at"`
}
