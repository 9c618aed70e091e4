package dto

import (
	"time"

	"github.com/merchline/merchline/internal/domain/model"
)

// CheckoutRequest converts the cart lines of one wholesaler into an order.
type CheckoutRequest struct {
	WholesalerID int64  `json:"wholesaler_id"`
	Notes        string `json:"notes"`
}

// PartnerOrderItem is one requested line of a partnership order.
type PartnerOrderItem struct {
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// PartnerOrderRequest records a direct order with an external partner.
type PartnerOrderRequest struct {
	PartnerName string             `json:"partner_name"`
	Notes       string             `json:"notes"`
	Items       []PartnerOrderItem `json:"items"`
}

// OrderItemResponse is one order line. Exactly one of product_id and
// partner_sku is set.
type OrderItemResponse struct {
	ProductID  *int64  `json:"product_id,omitempty"`
	PartnerSKU string  `json:"partner_sku,omitempty"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	Subtotal   float64 `json:"subtotal"`
}

// OrderResponse represents an order with its lines.
type OrderResponse struct {
	ID           int64               `json:"id"`
	RetailerID   int64               `json:"retailer_id"`
	WholesalerID *int64              `json:"wholesaler_id,omitempty"`
	PartnerName  string              `json:"partner_name,omitempty"`
	Status       string              `json:"status"`
	TotalAmount  float64             `json:"total_amount"`
	Notes        string              `json:"notes,omitempty"`
	Items        []OrderItemResponse `json:"items,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// CheckoutResponse bundles the created order with its settlement record.
type CheckoutResponse struct {
	Order       OrderResponse       `json:"order"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToOrderResponse maps an order to its wire form.
func ToOrderResponse(o model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		line := OrderItemResponse{
			Name:      item.Ref.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
		if item.Ref.Kind == model.ItemRefCatalog {
			id := item.Ref.ProductID
			line.ProductID = &id
		} else {
			line.PartnerSKU = item.Ref.PartnerSKU
		}
		items = append(items, line)
	}
	return OrderResponse{
		ID:           o.ID,
		RetailerID:   o.RetailerID,
		WholesalerID: o.WholesalerID,
		PartnerName:  o.PartnerName,
		Status:       string(o.Status),
		TotalAmount:  o.TotalAmount,
		Notes:        o.Notes,
		Items:        items,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
