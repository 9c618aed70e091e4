package usecase

import (
	"context"

	domainErrors "github.com/merchline/merchline/internal/domain/errors"
	"github.com/merchline/merchline/internal/domain/model"
	"github.com/merchline/merchline/internal/domain/repository"
)

// CartUseCase manages the retailer's staging cart. The unit price of a line
// is captured when the line is first added and does not follow later catalog
// price changes.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// View returns the cart lines grouped per wholesaler with group subtotals.
func (u *CartUseCase) View(ctx context.Context, retailerID int64) ([]model.CartGroup, error) {
	cart, err := u.carts.GetOrCreate(ctx, retailerID)
	if err != nil {
		return nil, err
	}
	items, err := u.carts.Items(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	return model.GroupCartByWholesaler(items), nil
}

// AddItem stages a catalog product, capturing its current price. Adding a
// product already in the cart merges quantities at the captured price.
func (u *CartUseCase) AddItem(ctx context.Context, retailerID, productID int64, quantity int) error {
	if !ValidQuantity(quantity) {
		return domainErrors.ErrInvalidQuantity
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	cart, err := u.carts.GetOrCreate(ctx, retailerID)
	if err != nil {
		return err
	}
	return u.carts.AddItem(ctx, cart.ID, productID, quantity, product.Price)
}

// UpdateQuantity replaces the staged quantity of an existing line.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, retailerID, productID int64, quantity int) error {
	if !ValidQuantity(quantity) {
		return domainErrors.ErrInvalidQuantity
	}

	cart, err := u.carts.GetOrCreate(ctx, retailerID)
	if err != nil {
		return err
	}
	return u.carts.UpdateQuantity(ctx, cart.ID, productID, quantity)
}

// RemoveItem drops a line from the cart.
func (u *CartUseCase) RemoveItem(ctx context.Context, retailerID, productID int64) error {
	cart, err := u.carts.GetOrCreate(ctx, retailerID)
	if err != nil {
		return err
	}
	return u.carts.RemoveItem(ctx, cart.ID, productID)
}
