package model

import "time"

// PaymentMethod labels how a payment was made.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodOther        PaymentMethod = "OTHER"
)

// Valid reports whether the method is one of the known values.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodBankTransfer, PaymentMethodCash, PaymentMethodOther:
		return true
	}
	return false
}

// Payment is one immutable contribution toward a transaction's balance.
// Payments are append-only and never updated or deleted.
type Payment struct {
	ID              int64
	TransactionID   int64
	Amount          float64
	Method          PaymentMethod
	ReferenceNumber string
	Notes           string
	PaidAt          time.Time
}
