package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merchline/merchline/internal/server/http/dto"
)

// CartHandler manages the retailer's staging cart endpoints.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// View handles GET /api/retailer/cart.
func (h *CartHandler) View(c *gin.Context) {
	groups, err := h.facade.CartView(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}

	response := make([]dto.CartGroupResponse, 0, len(groups))
	for _, g := range groups {
		response = append(response, dto.ToCartGroupResponse(g))
	}
	c.JSON(http.StatusOK, response)
}

// Add handles POST /api/retailer/cart/items.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.AddToCart(c.Request.Context(), CurrentUserID(c), req.ProductID, req.Quantity); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// UpdateQuantity handles PUT /api/retailer/cart/items/:id.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID, ok := IDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateCartItem(c.Request.Context(), CurrentUserID(c), productID, req.Quantity); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Remove handles DELETE /api/retailer/cart/items/:id.
func (h *CartHandler) Remove(c *gin.Context) {
	productID, ok := IDParam(c, "id")
	if !ok {
		return
	}
	if err := h.facade.RemoveCartItem(c.Request.Context(), CurrentUserID(c), productID); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
