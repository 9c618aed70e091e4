package usecase

import (
	"context"
	"testing"

	domainErrors "github.com/merchline/merchline/internal/domain/errors"
	"github.com/merchline/merchline/internal/domain/model"
	testhelpers "github.com/merchline/merchline/internal/test"
)

func TestInventoryUseCaseList(t *testing.T) {
	inventory := &testhelpers.InventoryRepositoryStub{ListByRetailerFn: func(context.Context, int64) ([]model.RetailerProduct, error) {
		return []model.RetailerProduct{{ID: 1, RetailerID: 4, StockQuantity: 7}}, nil
	}}
	uc := NewInventoryUseCase(inventory)

	lines, err := uc.List(context.Background(), 4)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(lines) != 1 || lines[0].StockQuantity != 7 {
		t.Fatalf("unexpected lines: %+v", lines)
	}
}

func TestInventoryUseCaseUpdateLine(t *testing.T) {
	var gotStock int
	var gotPrice float64
	inventory := &testhelpers.InventoryRepositoryStub{UpdateLineFn: func(ctx context.Context, retailerID, lineID int64, stock int, resalePrice float64) error {
		gotStock = stock
		gotPrice = resalePrice
		return nil
	}}
	uc := NewInventoryUseCase(inventory)

	if err := uc.UpdateLine(context.Background(), 4, 1, -1, 10); err != domainErrors.ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := uc.UpdateLine(context.Background(), 4, 1, 5, 0); err != domainErrors.ErrInvalidAmount {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if err := uc.UpdateLine(context.Background(), 4, 1, 5, 19.99); err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if gotStock != 5 || gotPrice != 19.99 {
		t.Fatalf("unexpected update: stock %d price %v", gotStock, gotPrice)
	}
}
