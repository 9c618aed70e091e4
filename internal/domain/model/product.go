package model

import "time"

// WholesalerProduct is a catalog offering listed by a wholesaler.
type WholesalerProduct struct {
	ID            int64
	WholesalerID  int64
	Name          string
	Description   string
	Price         float64
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RetailerProduct is a retailer-side inventory line, derived from delivered
// orders. SourceProductID points at the originating catalog offering;
// partner-sourced lines carry PartnerSKU instead.
type RetailerProduct struct {
	ID              int64
	RetailerID      int64
	SourceProductID *int64
	PartnerSKU      string
	Name            string
	UnitCost        float64
	ResalePrice     float64
	StockQuantity   int
	UpdatedAt       time.Time
}
