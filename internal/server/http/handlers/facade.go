package handlers

import (
	"context"

	"github.com/merchline/merchline/internal/domain/model"
	"github.com/merchline/merchline/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string, role model.Role) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, model.Role, error)
}

// CatalogFacade encapsulates catalog operations exposed via HTTP.
type CatalogFacade interface {
	CreateProduct(ctx context.Context, wholesalerID int64, name, description string, price float64, stock int) (*model.WholesalerProduct, error)
	UpdateProduct(ctx context.Context, actorID int64, role model.Role, productID int64, name, description string, price float64) (*model.WholesalerProduct, error)
	SetProductStock(ctx context.Context, actorID int64, role model.Role, productID int64, quantity int) error
	Catalog(ctx context.Context) ([]model.WholesalerProduct, error)
	WholesalerCatalog(ctx context.Context, wholesalerID int64) ([]model.WholesalerProduct, error)
	Product(ctx context.Context, productID int64) (*model.WholesalerProduct, error)
}

// InventoryFacade exposes the retailer's derived stock ledger.
type InventoryFacade interface {
	Inventory(ctx context.Context, retailerID int64) ([]model.RetailerProduct, error)
	UpdateInventoryLine(ctx context.Context, retailerID, lineID int64, stock int, resalePrice float64) error
}

// CartFacade encapsulates cart staging operations.
type CartFacade interface {
	CartView(ctx context.Context, retailerID int64) ([]model.CartGroup, error)
	AddToCart(ctx context.Context, retailerID, productID int64, quantity int) error
	UpdateCartItem(ctx context.Context, retailerID, productID int64, quantity int) error
	RemoveCartItem(ctx context.Context, retailerID, productID int64) error
}

// OrderFacade encapsulates checkout and order lifecycle operations.
type OrderFacade interface {
	Checkout(ctx context.Context, retailerID, wholesalerID int64, notes string) (*model.Order, *model.Transaction, error)
	CreatePartnerOrder(ctx context.Context, retailerID int64, partnerName string, lines []usecase.PartnerOrderLine, notes string) (*model.Order, *model.Transaction, error)
	Order(ctx context.Context, actorID int64, role model.Role, orderID int64) (*model.Order, error)
	RetailerOrders(ctx context.Context, retailerID int64) ([]model.Order, error)
	WholesalerOrders(ctx context.Context, wholesalerID int64) ([]model.Order, error)
	ProcessOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) error
	ShipOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) error
	DeliverOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) error
	CompleteOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) error
	CancelOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) error
}

// PaymentFacade encapsulates settlement operations.
type PaymentFacade interface {
	RecordPayment(ctx context.Context, actorID int64, role model.Role, transactionID int64, amount float64, method model.PaymentMethod, referenceNumber, notes string) (*model.Payment, error)
	Transaction(ctx context.Context, actorID int64, role model.Role, transactionID int64) (*model.Transaction, error)
	TransactionByOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) (*model.Transaction, error)
	Payments(ctx context.Context, actorID int64, role model.Role, transactionID int64) ([]model.Payment, error)
}

// ReportFacade exposes read-only aggregates.
type ReportFacade interface {
	SalesReport(ctx context.Context, actorID int64, role model.Role, wholesalerID int64) (*model.SalesReport, error)
	SpendingReport(ctx context.Context, actorID int64, role model.Role, retailerID int64) (*model.SpendingReport, error)
	CollectionReport(ctx context.Context, actorID int64, role model.Role, wholesalerID int64) (*model.CollectionReport, error)
}

// CommerceFacade aggregates the full set of operations used across handlers.
type CommerceFacade interface {
	AuthFacade
	CatalogFacade
	InventoryFacade
	CartFacade
	OrderFacade
	PaymentFacade
	ReportFacade
}
