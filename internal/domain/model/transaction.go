package model

import "time"

// TransactionStatus describes how much of the owed amount has been settled.
type TransactionStatus string

const (
	TransactionStatusPending       TransactionStatus = "PENDING"
	TransactionStatusPartiallyPaid TransactionStatus = "PARTIALLY_PAID"
	TransactionStatusCompleted     TransactionStatus = "COMPLETED"
	TransactionStatusFailed        TransactionStatus = "FAILED"
	TransactionStatusRefunded      TransactionStatus = "REFUNDED"
)

// Sticky reports whether the status was set by an explicit event and must
// never be overwritten by derivation from payment sums.
func (s TransactionStatus) Sticky() bool {
	return s == TransactionStatusRefunded || s == TransactionStatusFailed
}

// DeriveTransactionStatus computes the settlement status from amounts.
func DeriveTransactionStatus(amount, paid float64) TransactionStatus {
	switch {
	case paid >= amount && amount > 0:
		return TransactionStatusCompleted
	case paid > 0:
		return TransactionStatusPartiallyPaid
	default:
		return TransactionStatusPending
	}
}

// Transaction is the financial counterpart of an order: total owed,
// cumulative paid, and the derived settlement status.
type Transaction struct {
	ID            int64
	OrderID       int64
	RetailerID    int64
	WholesalerID  *int64
	PartnerName   string
	Amount        float64
	AmountPaid    float64
	Status        TransactionStatus
	PaymentMethod string
	ReferenceCode string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Outstanding returns the amount still owed.
func (t *Transaction) Outstanding() float64 {
	return t.Amount - t.AmountPaid
}
