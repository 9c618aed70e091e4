package test

import (
	"context"
	"time"

	"github.com/merchline/merchline/internal/cache"
	"github.com/merchline/merchline/internal/domain/model"
)

// CatalogCacheStub records cache traffic for tests.
type CatalogCacheStub struct {
	GetFn        func(context.Context, string) ([]model.WholesalerProduct, bool, error)
	SetFn        func(context.Context, string, []model.WholesalerProduct, time.Duration) error
	InvalidateFn func(context.Context, ...string) error
	Stored       map[string][]model.WholesalerProduct
	Invalidated  []string
}

func (s *CatalogCacheStub) GetListing(ctx context.Context, key string) ([]model.WholesalerProduct, bool, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, key)
	}
	if products, ok := s.Stored[key]; ok {
		return products, true, nil
	}
	return nil, false, nil
}

func (s *CatalogCacheStub) SetListing(ctx context.Context, key string, products []model.WholesalerProduct, ttl time.Duration) error {
	if s.SetFn != nil {
		return s.SetFn(ctx, key, products, ttl)
	}
	if s.Stored == nil {
		s.Stored = make(map[string][]model.WholesalerProduct)
	}
	s.Stored[key] = products
	return nil
}

func (s *CatalogCacheStub) Invalidate(ctx context.Context, keys ...string) error {
	if s.InvalidateFn != nil {
		return s.InvalidateFn(ctx, keys...)
	}
	for _, key := range keys {
		delete(s.Stored, key)
	}
	s.Invalidated = append(s.Invalidated, keys...)
	return nil
}

var _ cache.CatalogCache = (*CatalogCacheStub)(nil)
