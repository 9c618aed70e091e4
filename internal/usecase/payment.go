package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/merchline/merchline/internal/domain/errors"
	"github.com/merchline/merchline/internal/domain/model"
	"github.com/merchline/merchline/internal/domain/repository"
)

// PaymentUseCase handles settlement: recording partial payments against a
// transaction and the drift reconciliation consumed by the background worker.
type PaymentUseCase struct {
	transactions repository.TransactionRepository
	newReference func() string
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(transactions repository.TransactionRepository) *PaymentUseCase {
	return &PaymentUseCase{transactions: transactions, newReference: uuid.NewString}
}

// RecordPayment appends a payment to the transaction. Only the paying
// retailer (or an admin) records payments; the repository enforces the
// balance and cancellation rules atomically.
func (u *PaymentUseCase) RecordPayment(ctx context.Context, actorID int64, role model.Role, transactionID int64, amount float64, method model.PaymentMethod, referenceNumber, notes string) (*model.Payment, error) {
	if !ValidAmount(amount) {
		return nil, domainErrors.ErrInvalidAmount
	}
	if !method.Valid() {
		return nil, domainErrors.ErrInvalidPayMethod
	}

	trans, err := u.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if role != model.RoleAdmin && (role != model.RoleRetailer || trans.RetailerID != actorID) {
		return nil, domainErrors.ErrForbidden
	}

	referenceNumber = strings.TrimSpace(referenceNumber)
	if referenceNumber == "" {
		referenceNumber = u.newReference()
	}

	return u.transactions.RecordPayment(ctx, transactionID, &model.Payment{
		Amount:          amount,
		Method:          method,
		ReferenceNumber: referenceNumber,
		Notes:           notes,
	})
}

// GetTransaction fetches a settlement record visible to either party.
func (u *PaymentUseCase) GetTransaction(ctx context.Context, actorID int64, role model.Role, transactionID int64) (*model.Transaction, error) {
	trans, err := u.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !canViewTransaction(trans, actorID, role) {
		return nil, domainErrors.ErrForbidden
	}
	return trans, nil
}

// GetTransactionByOrder fetches the settlement record of an order.
func (u *PaymentUseCase) GetTransactionByOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) (*model.Transaction, error) {
	trans, err := u.transactions.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !canViewTransaction(trans, actorID, role) {
		return nil, domainErrors.ErrForbidden
	}
	return trans, nil
}

// ListPayments returns the payment history of a transaction, oldest first.
func (u *PaymentUseCase) ListPayments(ctx context.Context, actorID int64, role model.Role, transactionID int64) ([]model.Payment, error) {
	trans, err := u.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !canViewTransaction(trans, actorID, role) {
		return nil, domainErrors.ErrForbidden
	}
	return u.transactions.ListPayments(ctx, transactionID)
}

// SelectDriftedBatch returns transactions whose cached amount_paid disagrees
// with the payment sum.
func (u *PaymentUseCase) SelectDriftedBatch(ctx context.Context, limit int) ([]model.Transaction, error) {
	return u.transactions.SelectDriftedBatch(ctx, limit)
}

// Reconcile rewrites one transaction's amount_paid from its payment sum.
func (u *PaymentUseCase) Reconcile(ctx context.Context, transactionID int64) error {
	return u.transactions.Reconcile(ctx, transactionID)
}

func canViewTransaction(trans *model.Transaction, actorID int64, role model.Role) bool {
	switch role {
	case model.RoleAdmin:
		return true
	case model.RoleRetailer:
		return trans.RetailerID == actorID
	case model.RoleWholesaler:
		return trans.WholesalerID != nil && *trans.WholesalerID == actorID
	default:
		return false
	}
}
