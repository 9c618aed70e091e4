package usecase

import (
	"context"

	domainErrors "github.com/merchline/merchline/internal/domain/errors"
	"github.com/merchline/merchline/internal/domain/model"
	"github.com/merchline/merchline/internal/domain/repository"
)

// ReportUseCase exposes read-only aggregates. Each report is scoped to the
// requesting account unless the actor is an admin.
type ReportUseCase struct {
	reports repository.ReportRepository
}

// NewReportUseCase constructs ReportUseCase.
func NewReportUseCase(reports repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reports: reports}
}

// WholesalerSales summarizes a wholesaler's order volume and revenue.
func (u *ReportUseCase) WholesalerSales(ctx context.Context, actorID int64, role model.Role, wholesalerID int64) (*model.SalesReport, error) {
	if err := requireSelfOrAdmin(actorID, role, model.RoleWholesaler, wholesalerID); err != nil {
		return nil, err
	}
	return u.reports.WholesalerSales(ctx, wholesalerID)
}

// RetailerSpending summarizes a retailer's purchasing and outstanding debt.
func (u *ReportUseCase) RetailerSpending(ctx context.Context, actorID int64, role model.Role, retailerID int64) (*model.SpendingReport, error) {
	if err := requireSelfOrAdmin(actorID, role, model.RoleRetailer, retailerID); err != nil {
		return nil, err
	}
	return u.reports.RetailerSpending(ctx, retailerID)
}

// CollectionSummary compares what a wholesaler is owed against what has been
// collected.
func (u *ReportUseCase) CollectionSummary(ctx context.Context, actorID int64, role model.Role, wholesalerID int64) (*model.CollectionReport, error) {
	if err := requireSelfOrAdmin(actorID, role, model.RoleWholesaler, wholesalerID); err != nil {
		return nil, err
	}
	return u.reports.CollectionSummary(ctx, wholesalerID)
}

func requireSelfOrAdmin(actorID int64, role, requiredRole model.Role, subjectID int64) error {
	if role == model.RoleAdmin {
		return nil
	}
	if role != requiredRole || actorID != subjectID {
		return domainErrors.ErrForbidden
	}
	return nil
}
