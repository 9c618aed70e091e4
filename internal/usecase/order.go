package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/merchline/merchline/internal/cache"
	"github.com/merchline/merchline/internal/config"
	domainErrors "github.com/merchline/merchline/internal/domain/errors"
	"github.com/merchline/merchline/internal/domain/model"
	"github.com/merchline/merchline/internal/domain/repository"
)

// PartnerOrderLine is one requested line of a partnership order. SKU is
// optional; a stable key is derived from the partner and item names when it
// is empty so repeated deliveries merge into the same inventory line.
type PartnerOrderLine struct {
	Name      string
	SKU       string
	Quantity  int
	UnitPrice float64
}

// OrderUseCase encapsulates checkout and the order lifecycle. Ownership and
// role checks happen here; the atomicity of each transition lives in the
// repository.
type OrderUseCase struct {
	orders       repository.OrderRepository
	carts        repository.CartRepository
	listings     cache.CatalogCache
	resaleMarkup float64
	newReference func() string
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, carts repository.CartRepository, listings cache.CatalogCache, cfg *config.Config) *OrderUseCase {
	return &OrderUseCase{
		orders:       orders,
		carts:        carts,
		listings:     listings,
		resaleMarkup: cfg.ResaleMarkup,
		newReference: uuid.NewString,
	}
}

// Checkout converts the retailer's staged lines for one wholesaler into a
// Pending order with its companion transaction. Lines addressed to other
// wholesalers stay in the cart.
func (u *OrderUseCase) Checkout(ctx context.Context, retailerID, wholesalerID int64, notes string) (*model.Order, *model.Transaction, error) {
	cart, err := u.carts.GetOrCreate(ctx, retailerID)
	if err != nil {
		return nil, nil, err
	}
	items, err := u.carts.Items(ctx, cart.ID)
	if err != nil {
		return nil, nil, err
	}

	var (
		orderItems []model.OrderItem
		total      float64
	)
	for _, item := range items {
		if item.WholesalerID != wholesalerID {
			continue
		}
		subtotal := item.Subtotal()
		orderItems = append(orderItems, model.OrderItem{
			Ref:       model.CatalogRef(item.ProductID, item.ProductName),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  subtotal,
		})
		total += subtotal
	}
	if len(orderItems) == 0 {
		return nil, nil, domainErrors.ErrEmptyCart
	}

	order := &model.Order{
		RetailerID:   retailerID,
		WholesalerID: &wholesalerID,
		TotalAmount:  total,
		Notes:        notes,
		Items:        orderItems,
	}
	return u.orders.Checkout(ctx, order, cart.ID, u.newReference())
}

// CreatePartnerOrder records a direct order with an external partner outside
// the catalog. Lines are free-form and stock is never touched.
func (u *OrderUseCase) CreatePartnerOrder(ctx context.Context, retailerID int64, partnerName string, lines []PartnerOrderLine, notes string) (*model.Order, *model.Transaction, error) {
	partnerName = strings.TrimSpace(partnerName)
	if partnerName == "" || len(lines) == 0 {
		return nil, nil, domainErrors.ErrInvalidPartner
	}

	var (
		orderItems []model.OrderItem
		total      float64
	)
	for _, line := range lines {
		name := strings.TrimSpace(line.Name)
		if name == "" {
			return nil, nil, domainErrors.ErrInvalidPartner
		}
		if !ValidQuantity(line.Quantity) {
			return nil, nil, domainErrors.ErrInvalidQuantity
		}
		if !ValidAmount(line.UnitPrice) {
			return nil, nil, domainErrors.ErrInvalidAmount
		}
		sku := strings.TrimSpace(line.SKU)
		if sku == "" {
			sku = partnerName + ":" + name
		}
		subtotal := float64(line.Quantity) * line.UnitPrice
		orderItems = append(orderItems, model.OrderItem{
			Ref:       model.PartnerRef(sku, name),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  subtotal,
		})
		total += subtotal
	}

	order := &model.Order{
		RetailerID:  retailerID,
		PartnerName: partnerName,
		TotalAmount: total,
		Notes:       notes,
		Items:       orderItems,
	}
	return u.orders.CreatePartner(ctx, order, u.newReference())
}

// Get fetches an order with its items, visible to either party or an admin.
func (u *OrderUseCase) Get(ctx context.Context, actorID int64, role model.Role, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !canView(order, actorID, role) {
		return nil, domainErrors.ErrForbidden
	}
	return order, nil
}

// ListByRetailer returns the retailer's orders, newest first.
func (u *OrderUseCase) ListByRetailer(ctx context.Context, retailerID int64) ([]model.Order, error) {
	return u.orders.ListByRetailer(ctx, retailerID)
}

// ListByWholesaler returns incoming orders for a wholesaler, newest first.
func (u *OrderUseCase) ListByWholesaler(ctx context.Context, wholesalerID int64) ([]model.Order, error) {
	return u.orders.ListByWholesaler(ctx, wholesalerID)
}

// Process accepts a Pending order after verifying stock covers every line.
func (u *OrderUseCase) Process(ctx context.Context, actorID int64, role model.Role, orderID int64) error {
	if err := u.requireSupplier(ctx, actorID, role, orderID); err != nil {
		return err
	}
	return u.orders.Process(ctx, orderID)
}

// Ship moves a Processing order to Shipped, decrementing catalog stock. The
// listing cache is invalidated afterwards since browsed stock changed.
func (u *OrderUseCase) Ship(ctx context.Context, actorID int64, role model.Role, orderID int64) error {
	order, err := u.supplierOrder(ctx, actorID, role, orderID)
	if err != nil {
		return err
	}
	if err := u.orders.Ship(ctx, orderID); err != nil {
		return err
	}

	keys := []string{cache.AllListingsKey}
	if order.WholesalerID != nil {
		keys = append(keys, cache.WholesalerListingKey(*order.WholesalerID))
	}
	_ = u.listings.Invalidate(ctx, keys...)
	return nil
}

// Deliver confirms receipt, merging the lines into the retailer's inventory.
func (u *OrderUseCase) Deliver(ctx context.Context, actorID int64, role model.Role, orderID int64) error {
	if err := u.requireBuyer(ctx, actorID, role, orderID); err != nil {
		return err
	}
	return u.orders.Deliver(ctx, orderID, u.resaleMarkup)
}

// Complete closes a Delivered order and re-derives the settlement status.
func (u *OrderUseCase) Complete(ctx context.Context, actorID int64, role model.Role, orderID int64) error {
	if err := u.requireBuyer(ctx, actorID, role, orderID); err != nil {
		return err
	}
	return u.orders.Complete(ctx, orderID)
}

// Cancel aborts an order from Pending or Processing. Either party may
// cancel; the companion transaction is forced to Refunded.
func (u *OrderUseCase) Cancel(ctx context.Context, actorID int64, role model.Role, orderID int64) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !canView(order, actorID, role) {
		return domainErrors.ErrForbidden
	}
	return u.orders.Cancel(ctx, orderID)
}

func (u *OrderUseCase) supplierOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if role != model.RoleAdmin {
		if role != model.RoleWholesaler || order.WholesalerID == nil || *order.WholesalerID != actorID {
			return nil, domainErrors.ErrForbidden
		}
	}
	return order, nil
}

func (u *OrderUseCase) requireSupplier(ctx context.Context, actorID int64, role model.Role, orderID int64) error {
	_, err := u.supplierOrder(ctx, actorID, role, orderID)
	return err
}

func (u *OrderUseCase) requireBuyer(ctx context.Context, actorID int64, role model.Role, orderID int64) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if role != model.RoleAdmin && (role != model.RoleRetailer || order.RetailerID != actorID) {
		return domainErrors.ErrForbidden
	}
	return nil
}

func canView(order *model.Order, actorID int64, role model.Role) bool {
	switch role {
	case model.RoleAdmin:
		return true
	case model.RoleRetailer:
		return order.RetailerID == actorID
	case model.RoleWholesaler:
		return order.WholesalerID != nil && *order.WholesalerID == actorID
	default:
		return false
	}
}
