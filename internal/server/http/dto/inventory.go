package dto

import (
	"time"

	"github.com/merchline/merchline/internal/domain/model"
)

// InventoryUpdateRequest edits stock and resale price of one owned line.
type InventoryUpdateRequest struct {
	Stock       int     `json:"stock"`
	ResalePrice float64 `json:"resale_price"`
}

// InventoryLineResponse is one retailer inventory line. SourceProductID is
// set for catalog-sourced lines, PartnerSKU for partner-sourced ones.
type InventoryLineResponse struct {
	ID              int64     `json:"id"`
	SourceProductID *int64    `json:"source_product_id,omitempty"`
	PartnerSKU      string    `json:"partner_sku,omitempty"`
	Name            string    `json:"name"`
	UnitCost        float64   `json:"unit_cost"`
	ResalePrice     float64   `json:"resale_price"`
	Stock           int       `json:"stock"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToInventoryLineResponse maps an inventory line to its wire form.
func ToInventoryLineResponse(p model.RetailerProduct) InventoryLineResponse {
	return InventoryLineResponse{
		ID:              p.ID,
		SourceProductID: p.SourceProductID,
		PartnerSKU:      p.PartnerSKU,
		Name:            p.Name,
		UnitCost:        p.UnitCost,
		ResalePrice:     p.ResalePrice,
		Stock:           p.StockQuantity,
		UpdatedAt:       p.UpdatedAt,
	}
}
