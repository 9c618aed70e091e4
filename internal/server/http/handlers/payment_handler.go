package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merchline/merchline/internal/domain/model"
	"github.com/merchline/merchline/internal/server/http/dto"
)

// PaymentHandler manages settlement endpoints.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Record handles POST /api/transactions/:id/payments.
func (h *PaymentHandler) Record(c *gin.Context) {
	transactionID, ok := IDParam(c, "id")
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	payment, err := h.facade.RecordPayment(
		c.Request.Context(), CurrentUserID(c), CurrentRole(c),
		transactionID, req.Amount, model.PaymentMethod(req.Method), req.ReferenceNumber, req.Notes,
	)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(*payment))
}

// List handles GET /api/transactions/:id/payments.
func (h *PaymentHandler) List(c *gin.Context) {
	transactionID, ok := IDParam(c, "id")
	if !ok {
		return
	}
	payments, err := h.facade.Payments(c.Request.Context(), CurrentUserID(c), CurrentRole(c), transactionID)
	if err != nil {
		RespondError(c, err)
		return
	}

	response := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		response = append(response, dto.ToPaymentResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/transactions/:id.
func (h *PaymentHandler) Get(c *gin.Context) {
	transactionID, ok := IDParam(c, "id")
	if !ok {
		return
	}
	trans, err := h.facade.Transaction(c.Request.Context(), CurrentUserID(c), CurrentRole(c), transactionID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(*trans))
}

// GetByOrder handles GET /api/orders/:id/transaction.
func (h *PaymentHandler) GetByOrder(c *gin.Context) {
	orderID, ok := IDParam(c, "id")
	if !ok {
		return
	}
	trans, err := h.facade.TransactionByOrder(c.Request.Context(), CurrentUserID(c), CurrentRole(c), orderID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(*trans))
}
