package dto

import (
	"time"

	"github.com/merchline/merchline/internal/domain/model"
)

// PaymentRequest records a partial or full payment.
type PaymentRequest struct {
	Amount          float64 `json:"amount"`
	Method          string  `json:"method"`
	ReferenceNumber string  `json:"reference_number"`
	Notes           string  `json:"notes"`
}

// PaymentResponse is one recorded payment.
type PaymentResponse struct {
	ID              int64     `json:"id"`
	Amount          float64   `json:"amount"`
	Method          string    `json:"method"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	PaidAt          time.Time `json:"paid_at"`
}

// TransactionResponse represents the settlement state of an order.
type TransactionResponse struct {
	ID            int64     `json:"id"`
	OrderID       int64     `json:"order_id"`
	Amount        float64   `json:"amount"`
	AmountPaid    float64   `json:"amount_paid"`
	Outstanding   float64   `json:"outstanding"`
	Status        string    `json:"status"`
	ReferenceCode string    `json:"reference_code"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToPaymentResponse maps a payment to its wire form.
func ToPaymentResponse(p model.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		Amount:          p.Amount,
		Method:          string(p.Method),
		ReferenceNumber: p.ReferenceNumber,
		Notes:           p.Notes,
		PaidAt:          p.PaidAt,
	}
}

// ToTransactionResponse maps a settlement record to its wire form.
func ToTransactionResponse(t model.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		OrderID:       t.OrderID,
		Amount:        t.Amount,
		AmountPaid:    t.AmountPaid,
		Outstanding:   t.Outstanding(),
		Status:        string(t.Status),
		ReferenceCode: t.ReferenceCode,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
