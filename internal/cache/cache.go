package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/merchline/merchline/internal/domain/model"
)

// CatalogCache caches catalog listings for retailer browsing. Implementations
// must treat a miss as (nil, false, nil), never as an error.
type CatalogCache interface {
	GetListing(ctx context.Context, key string) ([]model.WholesalerProduct, bool, error)
	SetListing(ctx context.Context, key string, products []model.WholesalerProduct, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// AllListingsKey is the cache key for the full catalog listing.
const AllListingsKey = "catalog:all"

// WholesalerListingKey returns the cache key for one wholesaler's listing.
func WholesalerListingKey(wholesalerID int64) string {
	return fmt.Sprintf("catalog:wholesaler:%d", wholesalerID)
}

// NoopCatalogCache is used when no Redis address is configured.
type NoopCatalogCache struct{}

func (NoopCatalogCache) GetListing(_ context.Context, _ string) ([]model.WholesalerProduct, bool, error) {
	return nil, false, nil
}

func (NoopCatalogCache) SetListing(_ context.Context, _ string, _ []model.WholesalerProduct, _ time.Duration) error {
	return nil
}

func (NoopCatalogCache) Invalidate(_ context.Context, _ ...string) error {
	return nil
}
