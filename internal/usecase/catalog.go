package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/merchline/merchline/internal/cache"
	"github.com/merchline/merchline/internal/config"
	domainErrors "github.com/merchline/merchline/internal/domain/errors"
	"github.com/merchline/merchline/internal/domain/model"
	"github.com/merchline/merchline/internal/domain/repository"
)

// CatalogUseCase manages the wholesaler catalog and its read-through listing
// cache. Every catalog write invalidates the affected listing keys.
type CatalogUseCase struct {
	products repository.ProductRepository
	listings cache.CatalogCache
	ttl      time.Duration
	logger   *slog.Logger
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, listings cache.CatalogCache, cfg *config.Config, logger *slog.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		products: products,
		listings: listings,
		ttl:      cfg.CatalogCacheTTL,
		logger:   logger,
	}
}

// CreateProduct adds a catalog entry owned by the wholesaler.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, wholesalerID int64, name, description string, price float64, stock int) (*model.WholesalerProduct, error) {
	name = strings.TrimSpace(name)
	if name == "" || !ValidAmount(price) {
		return nil, domainErrors.ErrInvalidProduct
	}
	if stock < 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}

	product, err := u.products.Create(ctx, &model.WholesalerProduct{
		WholesalerID:  wholesalerID,
		Name:          name,
		Description:   description,
		Price:         price,
		StockQuantity: stock,
	})
	if err != nil {
		return nil, err
	}

	u.invalidate(ctx, wholesalerID)
	return product, nil
}

// UpdateProduct rewrites name, description and price of an owned entry.
func (u *CatalogUseCase) UpdateProduct(ctx context.Context, actorID int64, role model.Role, productID int64, name, description string, price float64) (*model.WholesalerProduct, error) {
	name = strings.TrimSpace(name)
	if name == "" || !ValidAmount(price) {
		return nil, domainErrors.ErrInvalidProduct
	}

	product, err := u.ownedProduct(ctx, actorID, role, productID)
	if err != nil {
		return nil, err
	}

	product.Name = name
	product.Description = description
	product.Price = price
	if err := u.products.Update(ctx, product); err != nil {
		return nil, err
	}

	u.invalidate(ctx, product.WholesalerID)
	return product, nil
}

// SetStock replaces the absolute stock level of an owned entry.
func (u *CatalogUseCase) SetStock(ctx context.Context, actorID int64, role model.Role, productID int64, quantity int) error {
	if quantity < 0 {
		return domainErrors.ErrInvalidQuantity
	}

	product, err := u.ownedProduct(ctx, actorID, role, productID)
	if err != nil {
		return err
	}
	if err := u.products.SetStock(ctx, productID, quantity); err != nil {
		return err
	}

	u.invalidate(ctx, product.WholesalerID)
	return nil
}

// GetProduct fetches a single catalog entry.
func (u *CatalogUseCase) GetProduct(ctx context.Context, productID int64) (*model.WholesalerProduct, error) {
	return u.products.GetByID(ctx, productID)
}

// ListAll returns the full catalog for retailer browsing.
func (u *CatalogUseCase) ListAll(ctx context.Context) ([]model.WholesalerProduct, error) {
	return u.listCached(ctx, cache.AllListingsKey, func() ([]model.WholesalerProduct, error) {
		return u.products.ListAll(ctx)
	})
}

// ListByWholesaler returns one wholesaler's catalog.
func (u *CatalogUseCase) ListByWholesaler(ctx context.Context, wholesalerID int64) ([]model.WholesalerProduct, error) {
	return u.listCached(ctx, cache.WholesalerListingKey(wholesalerID), func() ([]model.WholesalerProduct, error) {
		return u.products.ListByWholesaler(ctx, wholesalerID)
	})
}

func (u *CatalogUseCase) listCached(ctx context.Context, key string, load func() ([]model.WholesalerProduct, error)) ([]model.WholesalerProduct, error) {
	if cached, ok, err := u.listings.GetListing(ctx, key); err != nil {
		u.logger.Warn("catalog cache read failed", "key", key, "error", err)
	} else if ok {
		return cached, nil
	}

	products, err := load()
	if err != nil {
		return nil, err
	}
	if err := u.listings.SetListing(ctx, key, products, u.ttl); err != nil {
		u.logger.Warn("catalog cache write failed", "key", key, "error", err)
	}
	return products, nil
}

func (u *CatalogUseCase) ownedProduct(ctx context.Context, actorID int64, role model.Role, productID int64) (*model.WholesalerProduct, error) {
	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if role != model.RoleAdmin && product.WholesalerID != actorID {
		return nil, domainErrors.ErrForbidden
	}
	return product, nil
}

func (u *CatalogUseCase) invalidate(ctx context.Context, wholesalerID int64) {
	if err := u.listings.Invalidate(ctx, cache.AllListingsKey, cache.WholesalerListingKey(wholesalerID)); err != nil {
		u.logger.Warn("catalog cache invalidation failed", "wholesaler_id", wholesalerID, "error", err)
	}
}
