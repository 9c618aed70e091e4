package usecase

import (
	"context"
	"testing"

	domainErrors "github.com/merchline/merchline/internal/domain/errors"
	"github.com/merchline/merchline/internal/domain/model"
	testhelpers "github.com/merchline/merchline/internal/test"
)

func TestCartUseCaseViewGroupsByWholesaler(t *testing.T) {
	carts := &testhelpers.CartRepositoryStub{ItemsFn: func(context.Context, int64) ([]model.CartItem, error) {
		return []model.CartItem{
			{ProductID: 1, WholesalerID: 2, Quantity: 2, UnitPrice: 5},
			{ProductID: 9, WholesalerID: 4, Quantity: 1, UnitPrice: 7},
			{ProductID: 3, WholesalerID: 2, Quantity: 1, UnitPrice: 3},
		}, nil
	}}
	uc := NewCartUseCase(carts, &testhelpers.ProductRepositoryStub{})

	groups, err := uc.View(context.Background(), 1)
	if err != nil {
		t.Fatalf("view returned error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].WholesalerID != 2 || groups[0].Subtotal != 13 {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	if groups[1].WholesalerID != 4 || groups[1].Subtotal != 7 {
		t.Fatalf("unexpected second group: %+v", groups[1])
	}
}

func TestCartUseCaseAddItemCapturesPrice(t *testing.T) {
	var gotPrice float64
	products := &testhelpers.ProductRepositoryStub{GetByIDFn: func(context.Context, int64) (*model.WholesalerProduct, error) {
		return &model.WholesalerProduct{ID: 5, WholesalerID: 2, Price: 9.5}, nil
	}}
	carts := &testhelpers.CartRepositoryStub{AddItemFn: func(ctx context.Context, cartID, productID int64, quantity int, unitPrice float64) error {
		gotPrice = unitPrice
		return nil
	}}
	uc := NewCartUseCase(carts, products)

	if err := uc.AddItem(context.Background(), 1, 5, 3); err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if gotPrice != 9.5 {
		t.Fatalf("expected captured price 9.5, got %v", gotPrice)
	}
}

func TestCartUseCaseAddItemFailures(t *testing.T) {
	uc := NewCartUseCase(&testhelpers.CartRepositoryStub{}, &testhelpers.ProductRepositoryStub{})

	if err := uc.AddItem(context.Background(), 1, 5, 0); err != domainErrors.ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := uc.AddItem(context.Background(), 1, 5, 2); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown product, got %v", err)
	}
}

func TestCartUseCaseUpdateQuantity(t *testing.T) {
	var gotQuantity int
	carts := &testhelpers.CartRepositoryStub{UpdateQuantityFn: func(ctx context.Context, cartID, productID int64, quantity int) error {
		gotQuantity = quantity
		return nil
	}}
	uc := NewCartUseCase(carts, &testhelpers.ProductRepositoryStub{})

	if err := uc.UpdateQuantity(context.Background(), 1, 5, -1); err != domainErrors.ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := uc.UpdateQuantity(context.Background(), 1, 5, 4); err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if gotQuantity != 4 {
		t.Fatalf("expected quantity 4, got %d", gotQuantity)
	}
}

func TestCartUseCaseRemoveItem(t *testing.T) {
	var removed int64
	carts := &testhelpers.CartRepositoryStub{RemoveItemFn: func(ctx context.Context, cartID, productID int64) error {
		removed = productID
		return nil
	}}
	uc := NewCartUseCase(carts, &testhelpers.ProductRepositoryStub{})

	if err := uc.RemoveItem(context.Background(), 1, 5); err != nil {
		t.Fatalf("remove returned error: %v", err)
	}
	if removed != 5 {
		t.Fatalf("expected product 5 removed, got %d", removed)
	}
}
