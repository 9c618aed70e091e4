package repository

import (
	"context"

	"github.com/merchline/merchline/internal/domain/model"
)

// TransactionRepository describes settlement accounting. Payments are
// append-only; amount_paid and status move only inside the same database
// transaction that records a payment.
type TransactionRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Transaction, error)
	GetByOrderID(ctx context.Context, orderID int64) (*model.Transaction, error)
	// RecordPayment appends a payment after checking the owning order is not
	// cancelled and the amount fits the outstanding balance.
	RecordPayment(ctx context.Context, transactionID int64, payment *model.Payment) (*model.Payment, error)
	ListPayments(ctx context.Context, transactionID int64) ([]model.Payment, error)

	// SelectDriftedBatch claims transactions whose cached amount_paid no
	// longer equals the sum of their payments.
	SelectDriftedBatch(ctx context.Context, limit int) ([]model.Transaction, error)
	// Reconcile rewrites amount_paid from the payment sum and re-derives the
	// status unless it is sticky (Refunded/Failed).
	Reconcile(ctx context.Context, transactionID int64) error
}
