package usecase

import (
	"context"

	domainErrors "github.com/merchline/merchline/internal/domain/errors"
	"github.com/merchline/merchline/internal/domain/model"
	"github.com/merchline/merchline/internal/domain/repository"
)

// InventoryUseCase manages the retailer's derived stock ledger. Lines are
// created by order delivery; the retailer only edits stock and resale price.
type InventoryUseCase struct {
	inventory repository.InventoryRepository
}

// NewInventoryUseCase constructs InventoryUseCase.
func NewInventoryUseCase(inventory repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{inventory: inventory}
}

// List returns the retailer's inventory lines.
func (u *InventoryUseCase) List(ctx context.Context, retailerID int64) ([]model.RetailerProduct, error) {
	return u.inventory.ListByRetailer(ctx, retailerID)
}

// UpdateLine edits stock and resale price of one owned line.
func (u *InventoryUseCase) UpdateLine(ctx context.Context, retailerID, lineID int64, stock int, resalePrice float64) error {
	if stock < 0 {
		return domainErrors.ErrInvalidQuantity
	}
	if !ValidAmount(resalePrice) {
		return domainErrors.ErrInvalidAmount
	}
	return u.inventory.UpdateLine(ctx, retailerID, lineID, stock, resalePrice)
}
