package app

import (
	"context"

	"github.com/merchline/merchline/internal/domain/model"
	"github.com/merchline/merchline/internal/usecase"
)

// CommerceFacade is the single entry point the transport and worker layers
// talk to. It delegates to the use cases without adding behaviour.
type CommerceFacade struct {
	auth      *usecase.AuthUseCase
	catalog   *usecase.CatalogUseCase
	inventory *usecase.InventoryUseCase
	carts     *usecase.CartUseCase
	orders    *usecase.OrderUseCase
	payments  *usecase.PaymentUseCase
	reports   *usecase.ReportUseCase
}

// NewCommerceFacade constructs CommerceFacade.
func NewCommerceFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	inventory *usecase.InventoryUseCase,
	carts *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	payments *usecase.PaymentUseCase,
	reports *usecase.ReportUseCase,
) *CommerceFacade {
	return &CommerceFacade{
		auth:      auth,
		catalog:   catalog,
		inventory: inventory,
		carts:     carts,
		orders:    orders,
		payments:  payments,
		reports:   reports,
	}
}

func (f *CommerceFacade) Register(ctx context.Context, login, password string, role model.Role) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password, role)
	return token, err
}

func (f *CommerceFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *CommerceFacade) ParseToken(token string) (int64, model.Role, error) {
	return f.auth.ParseToken(token)
}

func (f *CommerceFacade) CreateProduct(ctx context.Context, wholesalerID int64, name, description string, price float64, stock int) (*model.WholesalerProduct, error) {
	return f.catalog.CreateProduct(ctx, wholesalerID, name, description, price, stock)
}

func (f *CommerceFacade) UpdateProduct(ctx context.Context, actorID int64, role model.Role, productID int64, name, description string, price float64) (*model.WholesalerProduct, error) {
	return f.catalog.UpdateProduct(ctx, actorID, role, productID, name, description, price)
}

func (f *CommerceFacade) SetProductStock(ctx context.Context, actorID int64, role model.Role, productID int64, quantity int) error {
	return f.catalog.SetStock(ctx, actorID, role, productID, quantity)
}

func (f *CommerceFacade) Catalog(ctx context.Context) ([]model.WholesalerProduct, error) {
	return f.catalog.ListAll(ctx)
}

func (f *CommerceFacade) WholesalerCatalog(ctx context.Context, wholesalerID int64) ([]model.WholesalerProduct, error) {
	return f.catalog.ListByWholesaler(ctx, wholesalerID)
}

func (f *CommerceFacade) Product(ctx context.Context, productID int64) (*model.WholesalerProduct, error) {
	return f.catalog.GetProduct(ctx, productID)
}

func (f *CommerceFacade) Inventory(ctx context.Context, retailerID int64) ([]model.RetailerProduct, error) {
	return f.inventory.List(ctx, retailerID)
}

func (f *CommerceFacade) UpdateInventoryLine(ctx context.Context, retailerID, lineID int64, stock int, resalePrice float64) error {
	return f.inventory.UpdateLine(ctx, retailerID, lineID, stock, resalePrice)
}

func (f *CommerceFacade) CartView(ctx context.Context, retailerID int64) ([]model.CartGroup, error) {
	return f.carts.View(ctx, retailerID)
}

func (f *CommerceFacade) AddToCart(ctx context.Context, retailerID, productID int64, quantity int) error {
	return f.carts.AddItem(ctx, retailerID, productID, quantity)
}

func (f *CommerceFacade) UpdateCartItem(ctx context.Context, retailerID, productID int64, quantity int) error {
	return f.carts.UpdateQuantity(ctx, retailerID, productID, quantity)
}

func (f *CommerceFacade) RemoveCartItem(ctx context.Context, retailerID, productID int64) error {
	return f.carts.RemoveItem(ctx, retailerID, productID)
}

func (f *CommerceFacade) Checkout(ctx context.Context, retailerID, wholesalerID int64, notes string) (*model.Order, *model.Transaction, error) {
	return f.orders.Checkout(ctx, retailerID, wholesalerID, notes)
}

func (f *CommerceFacade) CreatePartnerOrder(ctx context.Context, retailerID int64, partnerName string, lines []usecase.PartnerOrderLine, notes string) (*model.Order, *model.Transaction, error) {
	return f.orders.CreatePartnerOrder(ctx, retailerID, partnerName, lines, notes)
}

func (f *CommerceFacade) Order(ctx context.Context, actorID int64, role model.Role, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, actorID, role, orderID)
}

func (f *CommerceFacade) RetailerOrders(ctx context.Context, retailerID int64) ([]model.Order, error) {
	return f.orders.ListByRetailer(ctx, retailerID)
}

func (f *CommerceFacade) WholesalerOrders(ctx context.Context, wholesalerID int64) ([]model.Order, error) {
	return f.orders.ListByWholesaler(ctx, wholesalerID)
}

func (f *CommerceFacade) ProcessOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) error {
	return f.orders.Process(ctx, actorID, role, orderID)
}

func (f *CommerceFacade) ShipOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) error {
	return f.orders.Ship(ctx, actorID, role, orderID)
}

func (f *CommerceFacade) DeliverOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) error {
	return f.orders.Deliver(ctx, actorID, role, orderID)
}

func (f *CommerceFacade) CompleteOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) error {
	return f.orders.Complete(ctx, actorID, role, orderID)
}

func (f *CommerceFacade) CancelOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) error {
	return f.orders.Cancel(ctx, actorID, role, orderID)
}

func (f *CommerceFacade) RecordPayment(ctx context.Context, actorID int64, role model.Role, transactionID int64, amount float64, method model.PaymentMethod, referenceNumber, notes string) (*model.Payment, error) {
	return f.payments.RecordPayment(ctx, actorID, role, transactionID, amount, method, referenceNumber, notes)
}

func (f *CommerceFacade) Transaction(ctx context.Context, actorID int64, role model.Role, transactionID int64) (*model.Transaction, error) {
	return f.payments.GetTransaction(ctx, actorID, role, transactionID)
}

func (f *CommerceFacade) TransactionByOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) (*model.Transaction, error) {
	return f.payments.GetTransactionByOrder(ctx, actorID, role, orderID)
}

func (f *CommerceFacade) Payments(ctx context.Context, actorID int64, role model.Role, transactionID int64) ([]model.Payment, error) {
	return f.payments.ListPayments(ctx, actorID, role, transactionID)
}

func (f *CommerceFacade) DriftedTransactions(ctx context.Context, limit int) ([]model.Transaction, error) {
	return f.payments.SelectDriftedBatch(ctx, limit)
}

func (f *CommerceFacade) ReconcileTransaction(ctx context.Context, transactionID int64) error {
	return f.payments.Reconcile(ctx, transactionID)
}

func (f *CommerceFacade) SalesReport(ctx context.Context, actorID int64, role model.Role, wholesalerID int64) (*model.SalesReport, error) {
	return f.reports.WholesalerSales(ctx, actorID, role, wholesalerID)
}

func (f *CommerceFacade) SpendingReport(ctx context.Context, actorID int64, role model.Role, retailerID int64) (*model.SpendingReport, error) {
	return f.reports.RetailerSpending(ctx, actorID, role, retailerID)
}

func (f *CommerceFacade) CollectionReport(ctx context.Context, actorID int64, role model.Role, wholesalerID int64) (*model.CollectionReport, error) {
	return f.reports.CollectionSummary(ctx, actorID, role, wholesalerID)
}
