package model

import (
	"errors"
	"time"
)

// OrderStatus describes the commercial lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// transitions is the forward edge set of the order lifecycle graph.
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {OrderStatusCompleted},
}

// CanTransition reports whether moving from one status to another follows the
// lifecycle graph. Completed and Cancelled are terminal.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions leave the status.
func (s OrderStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

// ItemRefKind tags the origin of an order line.
type ItemRefKind string

const (
	ItemRefCatalog ItemRefKind = "catalog"
	ItemRefPartner ItemRefKind = "partner"
)

var errInvalidItemRef = errors.New("invalid item reference")

// ItemRef identifies what an order line was bought as: a live catalog
// offering or a partner product tracked only by SKU and name. Constructors
// keep the two shapes mutually exclusive.
type ItemRef struct {
	Kind       ItemRefKind
	ProductID  int64
	PartnerSKU string
	Name       string
}

// CatalogRef builds a reference to a catalog offering.
func CatalogRef(productID int64, name string) ItemRef {
	return ItemRef{Kind: ItemRefCatalog, ProductID: productID, Name: name}
}

// PartnerRef builds a reference to a non-platform partner product.
func PartnerRef(sku, name string) ItemRef {
	return ItemRef{Kind: ItemRefPartner, PartnerSKU: sku, Name: name}
}

// Validate checks the tagged reference is internally consistent.
func (r ItemRef) Validate() error {
	switch r.Kind {
	case ItemRefCatalog:
		if r.ProductID <= 0 || r.PartnerSKU != "" {
			return errInvalidItemRef
		}
	case ItemRefPartner:
		if r.PartnerSKU == "" || r.ProductID != 0 {
			return errInvalidItemRef
		}
	default:
		return errInvalidItemRef
	}
	if r.Name == "" {
		return errInvalidItemRef
	}
	return nil
}

// OrderItem is one immutable order line, priced at order time.
type OrderItem struct {
	ID        int64
	OrderID   int64
	Ref       ItemRef
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}

// Order is a commercial request from a retailer to a wholesaler or, when
// WholesalerID is nil, to an external partner named on the order.
type Order struct {
	ID           int64
	RetailerID   int64
	WholesalerID *int64
	PartnerName  string
	Status       OrderStatus
	TotalAmount  float64
	Notes        string
	Items        []OrderItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ItemsTotal sums line subtotals; equals TotalAmount at creation.
func (o *Order) ItemsTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Subtotal
	}
	return total
}
