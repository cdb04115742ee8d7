// file: internals/features/donations/service/xendit.go
package service

import (
	"errors"
	"log"
	"strings"

	"github.com/xendit/xendit-go"
	"github.com/xendit/xendit-go/invoice"
)

// InitXendit menyetel API key global SDK. Panggil sekali saat startup.
func InitXendit(secretKey string) {
	key := strings.TrimSpace(secretKey)
	if key == "" {
		log.Println("❌ XENDIT_SECRET_KEY kosong, pembuatan invoice akan gagal")
	}
	xendit.Opt.SecretKey = key
}

// CreateInvoice membuat invoice pembayaran satu kali di Xendit.
// Settlement datang belakangan lewat webhook, bukan dari return value ini.
func CreateInvoice(externalID string, amount int64, payerEmail, description string) (*xendit.Invoice, error) {
	inv, xerr := invoice.Create(&invoice.CreateParams{
		ExternalID:  externalID,
		Amount:      float64(amount),
		PayerEmail:  payerEmail,
		Description: description,
	})
	if xerr != nil {
		return nil, errors.New(xerr.Message)
	}
	return inv, nil
}
