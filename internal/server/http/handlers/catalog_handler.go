package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merchline/merchline/internal/domain/model"
	"github.com/merchline/merchline/internal/server/http/dto"
)

// CatalogHandler manages wholesaler catalog endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Create handles POST /api/wholesaler/products.
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), CurrentUserID(c), req.Name, req.Description, req.Price, req.Stock)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(*product))
}

// Update handles PUT /api/wholesaler/products/:id.
func (h *CatalogHandler) Update(c *gin.Context) {
	productID, ok := IDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), CurrentUserID(c), CurrentRole(c), productID, req.Name, req.Description, req.Price)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// SetStock handles PUT /api/wholesaler/products/:id/stock.
func (h *CatalogHandler) SetStock(c *gin.Context) {
	productID, ok := IDParam(c, "id")
	if !ok {
		return
	}
	var req dto.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetProductStock(c.Request.Context(), CurrentUserID(c), CurrentRole(c), productID, req.Quantity); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// ListOwn handles GET /api/wholesaler/products.
func (h *CatalogHandler) ListOwn(c *gin.Context) {
	subjectID, ok := SubjectID(c, "wholesaler_id")
	if !ok {
		return
	}
	products, err := h.facade.WholesalerCatalog(c.Request.Context(), subjectID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

// Browse handles GET /api/catalog.
func (h *CatalogHandler) Browse(c *gin.Context) {
	products, err := h.facade.Catalog(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

// BrowseWholesaler handles GET /api/catalog/wholesalers/:id.
func (h *CatalogHandler) BrowseWholesaler(c *gin.Context) {
	wholesalerID, ok := IDParam(c, "id")
	if !ok {
		return
	}
	products, err := h.facade.WholesalerCatalog(c.Request.Context(), wholesalerID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

// Get handles GET /api/catalog/products/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	productID, ok := IDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.facade.Product(c.Request.Context(), productID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

func toProductResponses(products []model.WholesalerProduct) []dto.ProductResponse {
	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.ToProductResponse(p))
	}
	return response
}
