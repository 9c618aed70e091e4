package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merchline/merchline/internal/domain/model"
	"github.com/merchline/merchline/internal/server/http/dto"
	"github.com/merchline/merchline/internal/usecase"
)

// OrderHandler manages checkout and the order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/retailer/checkout.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.WholesalerID <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	order, trans, err := h.facade.Checkout(c.Request.Context(), CurrentUserID(c), req.WholesalerID, req.Notes)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		Order:       dto.ToOrderResponse(*order),
		Transaction: dto.ToTransactionResponse(*trans),
	})
}

// CreatePartner handles POST /api/retailer/orders/partner.
func (h *OrderHandler) CreatePartner(c *gin.Context) {
	var req dto.PartnerOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	lines := make([]usecase.PartnerOrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, usecase.PartnerOrderLine{
			Name:      item.Name,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	order, trans, err := h.facade.CreatePartnerOrder(c.Request.Context(), CurrentUserID(c), req.PartnerName, lines, req.Notes)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		Order:       dto.ToOrderResponse(*order),
		Transaction: dto.ToTransactionResponse(*trans),
	})
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := IDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.facade.Order(c.Request.Context(), CurrentUserID(c), CurrentRole(c), orderID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// ListOutgoing handles GET /api/retailer/orders.
func (h *OrderHandler) ListOutgoing(c *gin.Context) {
	subjectID, ok := SubjectID(c, "retailer_id")
	if !ok {
		return
	}
	orders, err := h.facade.RetailerOrders(c.Request.Context(), subjectID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// ListIncoming handles GET /api/wholesaler/orders.
func (h *OrderHandler) ListIncoming(c *gin.Context) {
	subjectID, ok := SubjectID(c, "wholesaler_id")
	if !ok {
		return
	}
	orders, err := h.facade.WholesalerOrders(c.Request.Context(), subjectID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Process handles POST /api/wholesaler/orders/:id/process.
func (h *OrderHandler) Process(c *gin.Context) {
	h.transition(c, h.facade.ProcessOrder)
}

// Ship handles POST /api/wholesaler/orders/:id/ship.
func (h *OrderHandler) Ship(c *gin.Context) {
	h.transition(c, h.facade.ShipOrder)
}

// Deliver handles POST /api/retailer/orders/:id/deliver.
func (h *OrderHandler) Deliver(c *gin.Context) {
	h.transition(c, h.facade.DeliverOrder)
}

// Complete handles POST /api/retailer/orders/:id/complete.
func (h *OrderHandler) Complete(c *gin.Context) {
	h.transition(c, h.facade.CompleteOrder)
}

// Cancel handles POST /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.facade.CancelOrder)
}

func (h *OrderHandler) transition(c *gin.Context, fn func(ctx context.Context, actorID int64, role model.Role, orderID int64) error) {
	orderID, ok := IDParam(c, "id")
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), CurrentUserID(c), CurrentRole(c), orderID); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.ToOrderResponse(o))
	}
	return response
}
