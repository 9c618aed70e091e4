package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/merchline/merchline/internal/cache"
	"github.com/merchline/merchline/internal/config"
	domainErrors "github.com/merchline/merchline/internal/domain/errors"
	"github.com/merchline/merchline/internal/domain/model"
	testhelpers "github.com/merchline/merchline/internal/test"
)

func newCatalogUseCase(products *testhelpers.ProductRepositoryStub, listings *testhelpers.CatalogCacheStub) *CatalogUseCase {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{CatalogCacheTTL: time.Minute}
	return NewCatalogUseCase(products, listings, cfg, logger)
}

func TestCatalogUseCaseCreateProduct(t *testing.T) {
	products := &testhelpers.ProductRepositoryStub{}
	listings := &testhelpers.CatalogCacheStub{Stored: map[string][]model.WholesalerProduct{
		cache.AllListingsKey: {},
	}}
	uc := newCatalogUseCase(products, listings)

	product, err := uc.CreateProduct(context.Background(), 3, "  widget ", "steel", 12.5, 40)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if product.Name != "widget" {
		t.Fatalf("expected trimmed name, got %q", product.Name)
	}
	if product.WholesalerID != 3 || product.StockQuantity != 40 {
		t.Fatalf("unexpected product: %+v", product)
	}
	if _, ok := listings.Stored[cache.AllListingsKey]; ok {
		t.Fatalf("expected listing cache invalidated")
	}
}

func TestCatalogUseCaseCreateProductValidation(t *testing.T) {
	uc := newCatalogUseCase(&testhelpers.ProductRepositoryStub{}, &testhelpers.CatalogCacheStub{})

	if _, err := uc.CreateProduct(context.Background(), 3, "", "", 10, 1); err != domainErrors.ErrInvalidProduct {
		t.Fatalf("expected ErrInvalidProduct for empty name, got %v", err)
	}
	if _, err := uc.CreateProduct(context.Background(), 3, "widget", "", 0, 1); err != domainErrors.ErrInvalidProduct {
		t.Fatalf("expected ErrInvalidProduct for zero price, got %v", err)
	}
	if _, err := uc.CreateProduct(context.Background(), 3, "widget", "", 10, -1); err != domainErrors.ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity for negative stock, got %v", err)
	}
}

func TestCatalogUseCaseUpdateProductOwnership(t *testing.T) {
	products := &testhelpers.ProductRepositoryStub{GetByIDFn: func(context.Context, int64) (*model.WholesalerProduct, error) {
		return &model.WholesalerProduct{ID: 5, WholesalerID: 3, Name: "widget", Price: 10}, nil
	}}
	uc := newCatalogUseCase(products, &testhelpers.CatalogCacheStub{})

	if _, err := uc.UpdateProduct(context.Background(), 7, model.RoleWholesaler, 5, "widget", "", 11); err != domainErrors.ErrForbidden {
		t.Fatalf("expected ErrForbidden for other wholesaler, got %v", err)
	}

	product, err := uc.UpdateProduct(context.Background(), 3, model.RoleWholesaler, 5, "gadget", "brass", 11)
	if err != nil {
		t.Fatalf("owner update returned error: %v", err)
	}
	if product.Name != "gadget" || product.Price != 11 {
		t.Fatalf("unexpected update result: %+v", product)
	}

	if _, err := uc.UpdateProduct(context.Background(), 99, model.RoleAdmin, 5, "gadget", "", 11); err != nil {
		t.Fatalf("admin update returned error: %v", err)
	}
}

func TestCatalogUseCaseSetStock(t *testing.T) {
	var gotQuantity int
	products := &testhelpers.ProductRepositoryStub{
		GetByIDFn: func(context.Context, int64) (*model.WholesalerProduct, error) {
			return &model.WholesalerProduct{ID: 5, WholesalerID: 3}, nil
		},
		SetStockFn: func(ctx context.Context, productID int64, quantity int) error {
			gotQuantity = quantity
			return nil
		},
	}
	listings := &testhelpers.CatalogCacheStub{}
	uc := newCatalogUseCase(products, listings)

	if err := uc.SetStock(context.Background(), 3, model.RoleWholesaler, 5, -1); err != domainErrors.ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := uc.SetStock(context.Background(), 3, model.RoleWholesaler, 5, 25); err != nil {
		t.Fatalf("set stock returned error: %v", err)
	}
	if gotQuantity != 25 {
		t.Fatalf("expected quantity 25, got %d", gotQuantity)
	}
	if len(listings.Invalidated) == 0 {
		t.Fatalf("expected listing invalidation after stock change")
	}
}

func TestCatalogUseCaseListAllCaches(t *testing.T) {
	loads := 0
	products := &testhelpers.ProductRepositoryStub{ListAllFn: func(context.Context) ([]model.WholesalerProduct, error) {
		loads++
		return []model.WholesalerProduct{{ID: 1, Name: "widget"}}, nil
	}}
	listings := &testhelpers.CatalogCacheStub{}
	uc := newCatalogUseCase(products, listings)

	for i := 0; i < 3; i++ {
		result, err := uc.ListAll(context.Background())
		if err != nil {
			t.Fatalf("list returned error: %v", err)
		}
		if len(result) != 1 {
			t.Fatalf("expected 1 product, got %d", len(result))
		}
	}
	if loads != 1 {
		t.Fatalf("expected single repository load, got %d", loads)
	}
}

func TestCatalogUseCaseListSurvivesCacheErrors(t *testing.T) {
	products := &testhelpers.ProductRepositoryStub{ListByWholesalerFn: func(context.Context, int64) ([]model.WholesalerProduct, error) {
		return []model.WholesalerProduct{{ID: 1, WholesalerID: 3}}, nil
	}}
	listings := &testhelpers.CatalogCacheStub{
		GetFn: func(context.Context, string) ([]model.WholesalerProduct, bool, error) {
			return nil, false, errors.New("redis down")
		},
		SetFn: func(context.Context, string, []model.WholesalerProduct, time.Duration) error {
			return errors.New("redis down")
		},
	}
	uc := newCatalogUseCase(products, listings)

	result, err := uc.ListByWholesaler(context.Background(), 3)
	if err != nil {
		t.Fatalf("expected cache errors to be swallowed, got %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 product, got %d", len(result))
	}
}

func TestCatalogUseCaseGetProductNotFound(t *testing.T) {
	uc := newCatalogUseCase(&testhelpers.ProductRepositoryStub{}, &testhelpers.CatalogCacheStub{})
	if _, err := uc.GetProduct(context.Background(), 5); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
