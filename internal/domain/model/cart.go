package model

import (
	"sort"
	"time"
)

// Cart is the retailer's staging area, created lazily on first add.
type Cart struct {
	ID         int64
	RetailerID int64
	CreatedAt  time.Time
}

// CartItem is a staged purchase line. UnitPrice is captured at add time and
// does not follow later catalog price changes. WholesalerID and ProductName
// are denormalized from the catalog when items are loaded.
type CartItem struct {
	ID           int64
	CartID       int64
	ProductID    int64
	WholesalerID int64
	ProductName  string
	Quantity     int
	UnitPrice    float64
}

// Subtotal returns the line total at the captured price.
func (i CartItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// CartGroup collects the cart lines addressed to one wholesaler.
type CartGroup struct {
	WholesalerID int64
	Items        []CartItem
	Subtotal     float64
}

// GroupCartByWholesaler partitions cart lines per wholesaler, ordered by
// wholesaler id for stable output.
func GroupCartByWholesaler(items []CartItem) []CartGroup {
	byWholesaler := make(map[int64][]CartItem)
	for _, item := range items {
		byWholesaler[item.WholesalerID] = append(byWholesaler[item.WholesalerID], item)
	}

	ids := make([]int64, 0, len(byWholesaler))
	for id := range byWholesaler {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	groups := make([]CartGroup, 0, len(ids))
	for _, id := range ids {
		group := CartGroup{WholesalerID: id, Items: byWholesaler[id]}
		for _, item := range group.Items {
			group.Subtotal += item.Subtotal()
		}
		groups = append(groups, group)
	}
	return groups
}
