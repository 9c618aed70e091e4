package repository

import (
	"context"

	"github.com/merchline/merchline/internal/domain/model"
)

// OrderRepository describes order persistence and the atomic lifecycle
// transitions. Each transition re-checks the current status inside its
// transaction, so a stale caller fails instead of corrupting state.
type OrderRepository interface {
	// Checkout atomically creates the order with its items and companion
	// transaction, and deletes the consumed lines from the cart.
	Checkout(ctx context.Context, order *model.Order, cartID int64, referenceCode string) (*model.Order, *model.Transaction, error)
	// CreatePartner atomically creates a partnership order and transaction.
	CreatePartner(ctx context.Context, order *model.Order, referenceCode string) (*model.Order, *model.Transaction, error)

	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByRetailer(ctx context.Context, retailerID int64) ([]model.Order, error)
	ListByWholesaler(ctx context.Context, wholesalerID int64) ([]model.Order, error)

	// Process moves Pending -> Processing after verifying stock covers every
	// line. Stock is not changed.
	Process(ctx context.Context, orderID int64) error
	// Ship moves Processing -> Shipped, decrementing stock per line.
	// A shortfall on any line aborts all lines.
	Ship(ctx context.Context, orderID int64) error
	// Deliver moves Shipped -> Delivered, merging the lines into the
	// retailer's inventory at cost with the suggested resale markup.
	Deliver(ctx context.Context, orderID int64, resaleMarkup float64) error
	// Complete moves Delivered -> Completed and re-derives the transaction
	// settlement status.
	Complete(ctx context.Context, orderID int64) error
	// Cancel moves Pending/Processing -> Cancelled and forces the
	// transaction to Refunded.
	Cancel(ctx context.Context, orderID int64) error
}
