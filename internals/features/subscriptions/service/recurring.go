// file: internals/features/subscriptions/service/recurring.go
package service

import (
	"errors"

	"github.com/xendit/xendit-go"
	"github.com/xendit/xendit-go/recurringpayment"
)

// CreateRecurringPayment membuat recurring payment bulanan di Xendit.
func CreateRecurringPayment(externalID string, amount int64, payerEmail, description string) (*xendit.RecurringPayment, error) {
	rp, xerr := recurringpayment.Create(&recurringpayment.CreateParams{
		ExternalID:    externalID,
		PayerEmail:    payerEmail,
		Description:   description,
		Amount:        float64(amount),
		Interval:      "MONTH",
		IntervalCount: 1,
	})
	if xerr != nil {
		return nil, errors.New(xerr.Message)
	}
	return rp, nil
}

// EditRecurringAmount mengubah nominal recurring payment yang sudah jalan.
func EditRecurringAmount(recurringID string, amount int64) (*xendit.RecurringPayment, error) {
	rp, xerr := recurringpayment.Edit(&recurringpayment.EditParams{
		ID:     recurringID,
		Amount: float64(amount),
	})
	if xerr != nil {
		return nil, errors.New(xerr.Message)
	}
	return rp, nil
}

// StopRecurringPayment menghentikan recurring payment di sisi Xendit.
func StopRecurringPayment(recurringID string) (*xendit.RecurringPayment, error) {
	rp, xerr := recurringpayment.Stop(&recurringpayment.StopParams{
		ID: recurringID,
	})
	if xerr != nil {
		return nil, errors.New(xerr.Message)
	}
	return rp, nil
}
