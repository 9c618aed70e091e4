package dto

import "github.com/merchline/merchline/internal/domain/model"

// CartAddRequest stages a catalog product.
type CartAddRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartQuantityRequest replaces the staged quantity of a line.
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartItemResponse is one staged line.
type CartItemResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// CartGroupResponse is the cart slice addressed to one wholesaler.
type CartGroupResponse struct {
	WholesalerID int64              `json:"wholesaler_id"`
	Subtotal     float64            `json:"subtotal"`
	Items        []CartItemResponse `json:"items"`
}

// ToCartGroupResponse maps a wholesaler group to its wire form.
func ToCartGroupResponse(g model.CartGroup) CartGroupResponse {
	items := make([]CartItemResponse, 0, len(g.Items))
	for _, item := range g.Items {
		items = append(items, CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		})
	}
	return CartGroupResponse{WholesalerID: g.WholesalerID, Subtotal: g.Subtotal, Items: items}
}
