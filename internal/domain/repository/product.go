package repository

import (
	"context"

	"github.com/merchline/merchline/internal/domain/model"
)

// ProductRepository describes the wholesaler-side catalog store.
type ProductRepository interface {
	Create(ctx context.Context, product *model.WholesalerProduct) (*model.WholesalerProduct, error)
	Update(ctx context.Context, product *model.WholesalerProduct) error
	SetStock(ctx context.Context, productID int64, quantity int) error
	GetByID(ctx context.Context, id int64) (*model.WholesalerProduct, error)
	ListByWholesaler(ctx context.Context, wholesalerID int64) ([]model.WholesalerProduct, error)
	ListAll(ctx context.Context) ([]model.WholesalerProduct, error)
}

// InventoryRepository describes the retailer-side inventory ledger.
type InventoryRepository interface {
	ListByRetailer(ctx context.Context, retailerID int64) ([]model.RetailerProduct, error)
	UpdateLine(ctx context.Context, retailerID, lineID int64, stock int, resalePrice float64) error
}
