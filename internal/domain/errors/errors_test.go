package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/merchline/merchline/internal/domain/model"
)

func TestInsufficientStockErrorMessage(t *testing.T) {
	err := InsufficientStockError{Shortages: []StockShortage{
		{ProductID: 1, ProductName: "widget", Required: 5, Available: 2},
		{ProductID: 2, ProductName: "gadget", Required: 1, Available: 0},
	}}
	msg := err.Error()
	if !strings.Contains(msg, "widget: required 5, available 2") {
		t.Fatalf("expected widget shortage in message, got %q", msg)
	}
	if !strings.Contains(msg, "gadget: required 1, available 0") {
		t.Fatalf("expected gadget shortage in message, got %q", msg)
	}
}

func TestInsufficientStockErrorAs(t *testing.T) {
	var wrapped error = InsufficientStockError{Shortages: []StockShortage{{ProductName: "widget", Required: 2, Available: 1}}}
	var stockErr InsufficientStockError
	if !errors.As(wrapped, &stockErr) {
		t.Fatal("expected errors.As to match InsufficientStockError")
	}
	if len(stockErr.Shortages) != 1 {
		t.Fatalf("expected 1 shortage, got %d", len(stockErr.Shortages))
	}
}

func TestInvalidTransitionErrorMessage(t *testing.T) {
	err := InvalidTransitionError{From: model.OrderStatusShipped, To: model.OrderStatusPending}
	if !strings.Contains(err.Error(), "SHIPPED -> PENDING") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
