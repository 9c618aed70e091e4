package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/merchline/merchline/internal/domain/model"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidProduct     = errors.New("invalid product")
	ErrInvalidPayMethod   = errors.New("invalid payment method")
	ErrInvalidPartner     = errors.New("invalid partner order")
	ErrEmptyCart          = errors.New("no cart items for wholesaler")
	ErrExceedsBalance     = errors.New("payment exceeds remaining balance")
	ErrOrderCancelled     = errors.New("order is cancelled")
)

// StockShortage describes one under-stocked order line.
type StockShortage struct {
	ProductID   int64
	ProductName string
	Required    int
	Available   int
}

// InsufficientStockError aborts a transition when any line exceeds available
// stock. It enumerates every short line so callers see the full picture.
type InsufficientStockError struct {
	Shortages []StockShortage
}

func (e InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s: required %d, available %d", s.ProductName, s.Required, s.Available))
	}
	return "insufficient stock: " + strings.Join(parts, "; ")
}

// InvalidTransitionError rejects a lifecycle move outside the order graph.
type InvalidTransitionError struct {
	From model.OrderStatus
	To   model.OrderStatus
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order transition %s -> %s", e.From, e.To)
}
