package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merchline/merchline/internal/server/http/dto"
)

// ReportHandler serves read-only aggregates.
type ReportHandler struct {
	facade ReportFacade
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(facade ReportFacade) *ReportHandler {
	return &ReportHandler{facade: facade}
}

// Sales handles GET /api/wholesaler/reports/sales.
func (h *ReportHandler) Sales(c *gin.Context) {
	subjectID, ok := SubjectID(c, "wholesaler_id")
	if !ok {
		return
	}
	report, err := h.facade.SalesReport(c.Request.Context(), CurrentUserID(c), CurrentRole(c), subjectID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSalesReportResponse(*report))
}

// Spending handles GET /api/retailer/reports/spending.
func (h *ReportHandler) Spending(c *gin.Context) {
	subjectID, ok := SubjectID(c, "retailer_id")
	if !ok {
		return
	}
	report, err := h.facade.SpendingReport(c.Request.Context(), CurrentUserID(c), CurrentRole(c), subjectID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSpendingReportResponse(*report))
}

// Collection handles GET /api/wholesaler/reports/collection.
func (h *ReportHandler) Collection(c *gin.Context) {
	subjectID, ok := SubjectID(c, "wholesaler_id")
	if !ok {
		return
	}
	report, err := h.facade.CollectionReport(c.Request.Context(), CurrentUserID(c), CurrentRole(c), subjectID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCollectionReportResponse(*report))
}
