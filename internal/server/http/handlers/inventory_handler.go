package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merchline/merchline/internal/server/http/dto"
)

// InventoryHandler manages the retailer's derived stock ledger endpoints.
type InventoryHandler struct {
	facade InventoryFacade
}

// NewInventoryHandler constructs InventoryHandler.
func NewInventoryHandler(facade InventoryFacade) *InventoryHandler {
	return &InventoryHandler{facade: facade}
}

// List handles GET /api/retailer/inventory.
func (h *InventoryHandler) List(c *gin.Context) {
	lines, err := h.facade.Inventory(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}

	response := make([]dto.InventoryLineResponse, 0, len(lines))
	for _, line := range lines {
		response = append(response, dto.ToInventoryLineResponse(line))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateLine handles PUT /api/retailer/inventory/:id.
func (h *InventoryHandler) UpdateLine(c *gin.Context) {
	lineID, ok := IDParam(c, "id")
	if !ok {
		return
	}
	var req dto.InventoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateInventoryLine(c.Request.Context(), CurrentUserID(c), lineID, req.Stock, req.ResalePrice); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
