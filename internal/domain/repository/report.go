package repository

import (
	"context"

	"github.com/merchline/merchline/internal/domain/model"
)

// ReportRepository provides read-only aggregates. Implementations must not
// mutate state; reconciliation belongs to the background worker.
type ReportRepository interface {
	WholesalerSales(ctx context.Context, wholesalerID int64) (*model.SalesReport, error)
	RetailerSpending(ctx context.Context, retailerID int64) (*model.SpendingReport, error)
	CollectionSummary(ctx context.Context, wholesalerID int64) (*model.CollectionReport, error)
}
