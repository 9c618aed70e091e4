package dto

import (
	"time"

	"github.com/merchline/merchline/internal/domain/model"
)

// ProductRequest describes a catalog entry create/update payload.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// StockRequest sets an absolute stock level.
type StockRequest struct {
	Quantity int `json:"quantity"`
}

// ProductResponse represents one catalog entry.
type ProductResponse struct {
	ID           int64     `json:"id"`
	WholesalerID int64     `json:"wholesaler_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToProductResponse maps a catalog entry to its wire form.
func ToProductResponse(p model.WholesalerProduct) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		WholesalerID: p.WholesalerID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Stock:        p.StockQuantity,
		UpdatedAt:    p.UpdatedAt,
	}
}
