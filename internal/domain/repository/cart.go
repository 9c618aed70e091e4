package repository

import (
	"context"

	"github.com/merchline/merchline/internal/domain/model"
)

// CartRepository describes the retailer's staging cart. One cart exists per
// retailer, created lazily by GetOrCreate.
type CartRepository interface {
	GetOrCreate(ctx context.Context, retailerID int64) (*model.Cart, error)
	Items(ctx context.Context, cartID int64) ([]model.CartItem, error)
	AddItem(ctx context.Context, cartID, productID int64, quantity int, unitPrice float64) error
	UpdateQuantity(ctx context.Context, cartID, productID int64, quantity int) error
	RemoveItem(ctx context.Context, cartID, productID int64) error
}
