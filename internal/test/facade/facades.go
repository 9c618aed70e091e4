package facade

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/merchline/merchline/internal/domain/model"
	"github.com/merchline/merchline/internal/usecase"
)

// SettlementFacadeStub mimics worker interactions with the settlement facade.
type SettlementFacadeStub struct {
	Batches        [][]model.Transaction
	DriftedFn      func(context.Context, int) ([]model.Transaction, error)
	ReconcileFn    func(context.Context, int64) error
	Reconciled     []int64
	mu             sync.Mutex
	driftCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *SettlementFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *SettlementFacadeStub) Unlock() { s.mu.Unlock() }

// DriftedTransactions returns batches from the configured queue.
func (s *SettlementFacadeStub) DriftedTransactions(ctx context.Context, limit int) ([]model.Transaction, error) {
	if s.DriftedFn != nil {
		return s.DriftedFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.driftCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// ReconcileTransaction records rewrite requests.
func (s *SettlementFacadeStub) ReconcileTransaction(ctx context.Context, transactionID int64) error {
	if s.ReconcileFn != nil {
		if err := s.ReconcileFn(ctx, transactionID); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Reconciled = append(s.Reconciled, transactionID)
	return nil
}

// CommerceFacadeStub provides controllable behaviour for every HTTP endpoint.
type CommerceFacadeStub struct {
	RegisterFn     func(context.Context, string, string, model.Role) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseTokenFn   func(string) (int64, model.Role, error)

	CreateProductFn     func(context.Context, int64, string, string, float64, int) (*model.WholesalerProduct, error)
	UpdateProductFn     func(context.Context, int64, model.Role, int64, string, string, float64) (*model.WholesalerProduct, error)
	SetProductStockFn   func(context.Context, int64, model.Role, int64, int) error
	CatalogFn           func(context.Context) ([]model.WholesalerProduct, error)
	WholesalerCatalogFn func(context.Context, int64) ([]model.WholesalerProduct, error)
	ProductFn           func(context.Context, int64) (*model.WholesalerProduct, error)

	InventoryFn           func(context.Context, int64) ([]model.RetailerProduct, error)
	UpdateInventoryLineFn func(context.Context, int64, int64, int, float64) error

	CartViewFn       func(context.Context, int64) ([]model.CartGroup, error)
	AddToCartFn      func(context.Context, int64, int64, int) error
	UpdateCartItemFn func(context.Context, int64, int64, int) error
	RemoveCartItemFn func(context.Context, int64, int64) error

	CheckoutFn           func(context.Context, int64, int64, string) (*model.Order, *model.Transaction, error)
	CreatePartnerOrderFn func(context.Context, int64, string, []usecase.PartnerOrderLine, string) (*model.Order, *model.Transaction, error)
	OrderFn              func(context.Context, int64, model.Role, int64) (*model.Order, error)
	RetailerOrdersFn     func(context.Context, int64) ([]model.Order, error)
	WholesalerOrdersFn   func(context.Context, int64) ([]model.Order, error)
	TransitionFn         func(context.Context, int64, model.Role, int64) error

	RecordPaymentFn      func(context.Context, int64, model.Role, int64, float64, model.PaymentMethod, string, string) (*model.Payment, error)
	TransactionFn        func(context.Context, int64, model.Role, int64) (*model.Transaction, error)
	TransactionByOrderFn func(context.Context, int64, model.Role, int64) (*model.Transaction, error)
	PaymentsFn           func(context.Context, int64, model.Role, int64) ([]model.Payment, error)

	SalesReportFn      func(context.Context, int64, model.Role, int64) (*model.SalesReport, error)
	SpendingReportFn   func(context.Context, int64, model.Role, int64) (*model.SpendingReport, error)
	CollectionReportFn func(context.Context, int64, model.Role, int64) (*model.CollectionReport, error)
}

// Register delegates to the provided function or issues a default token.
func (s *CommerceFacadeStub) Register(ctx context.Context, login, password string, role model.Role) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password, role)
	}
	return "token", nil
}

// Authenticate returns the configured response or a default token.
func (s *CommerceFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken yields the configured identity or a default retailer.
func (s *CommerceFacadeStub) ParseToken(token string) (int64, model.Role, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, model.RoleRetailer, nil
}

func (s *CommerceFacadeStub) CreateProduct(ctx context.Context, wholesalerID int64, name, description string, price float64, stock int) (*model.WholesalerProduct, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, wholesalerID, name, description, price, stock)
	}
	return &model.WholesalerProduct{ID: 1, WholesalerID: wholesalerID, Name: name, Description: description, Price: price, StockQuantity: stock}, nil
}

func (s *CommerceFacadeStub) UpdateProduct(ctx context.Context, actorID int64, role model.Role, productID int64, name, description string, price float64) (*model.WholesalerProduct, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, actorID, role, productID, name, description, price)
	}
	return &model.WholesalerProduct{ID: productID, WholesalerID: actorID, Name: name, Description: description, Price: price}, nil
}

func (s *CommerceFacadeStub) SetProductStock(ctx context.Context, actorID int64, role model.Role, productID int64, quantity int) error {
	if s.SetProductStockFn != nil {
		return s.SetProductStockFn(ctx, actorID, role, productID, quantity)
	}
	return nil
}

func (s *CommerceFacadeStub) Catalog(ctx context.Context) ([]model.WholesalerProduct, error) {
	if s.CatalogFn != nil {
		return s.CatalogFn(ctx)
	}
	return []model.WholesalerProduct{{ID: 1, Name: "widget", Price: 10}}, nil
}

func (s *CommerceFacadeStub) WholesalerCatalog(ctx context.Context, wholesalerID int64) ([]model.WholesalerProduct, error) {
	if s.WholesalerCatalogFn != nil {
		return s.WholesalerCatalogFn(ctx, wholesalerID)
	}
	return []model.WholesalerProduct{{ID: 1, WholesalerID: wholesalerID, Name: "widget", Price: 10}}, nil
}

func (s *CommerceFacadeStub) Product(ctx context.Context, productID int64) (*model.WholesalerProduct, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, productID)
	}
	return &model.WholesalerProduct{ID: productID, Name: "widget", Price: 10}, nil
}

func (s *CommerceFacadeStub) Inventory(ctx context.Context, retailerID int64) ([]model.RetailerProduct, error) {
	if s.InventoryFn != nil {
		return s.InventoryFn(ctx, retailerID)
	}
	return []model.RetailerProduct{{ID: 1, RetailerID: retailerID, Name: "widget", StockQuantity: 3}}, nil
}

func (s *CommerceFacadeStub) UpdateInventoryLine(ctx context.Context, retailerID, lineID int64, stock int, resalePrice float64) error {
	if s.UpdateInventoryLineFn != nil {
		return s.UpdateInventoryLineFn(ctx, retailerID, lineID, stock, resalePrice)
	}
	return nil
}

func (s *CommerceFacadeStub) CartView(ctx context.Context, retailerID int64) ([]model.CartGroup, error) {
	if s.CartViewFn != nil {
		return s.CartViewFn(ctx, retailerID)
	}
	return []model.CartGroup{{WholesalerID: 2, Items: []model.CartItem{{ProductID: 1, Quantity: 2, UnitPrice: 5}}, Subtotal: 10}}, nil
}

func (s *CommerceFacadeStub) AddToCart(ctx context.Context, retailerID, productID int64, quantity int) error {
	if s.AddToCartFn != nil {
		return s.AddToCartFn(ctx, retailerID, productID, quantity)
	}
	return nil
}

func (s *CommerceFacadeStub) UpdateCartItem(ctx context.Context, retailerID, productID int64, quantity int) error {
	if s.UpdateCartItemFn != nil {
		return s.UpdateCartItemFn(ctx, retailerID, productID, quantity)
	}
	return nil
}

func (s *CommerceFacadeStub) RemoveCartItem(ctx context.Context, retailerID, productID int64) error {
	if s.RemoveCartItemFn != nil {
		return s.RemoveCartItemFn(ctx, retailerID, productID)
	}
	return nil
}

func (s *CommerceFacadeStub) Checkout(ctx context.Context, retailerID, wholesalerID int64, notes string) (*model.Order, *model.Transaction, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, retailerID, wholesalerID, notes)
	}
	order := &model.Order{ID: 1, RetailerID: retailerID, WholesalerID: &wholesalerID, Status: model.OrderStatusPending, TotalAmount: 10}
	txn := &model.Transaction{ID: 1, OrderID: 1, RetailerID: retailerID, Amount: 10, Status: model.TransactionStatusPending}
	return order, txn, nil
}

func (s *CommerceFacadeStub) CreatePartnerOrder(ctx context.Context, retailerID int64, partnerName string, lines []usecase.PartnerOrderLine, notes string) (*model.Order, *model.Transaction, error) {
	if s.CreatePartnerOrderFn != nil {
		return s.CreatePartnerOrderFn(ctx, retailerID, partnerName, lines, notes)
	}
	order := &model.Order{ID: 1, RetailerID: retailerID, PartnerName: partnerName, Status: model.OrderStatusPending}
	txn := &model.Transaction{ID: 1, OrderID: 1, RetailerID: retailerID, Status: model.TransactionStatusPending}
	return order, txn, nil
}

func (s *CommerceFacadeStub) Order(ctx context.Context, actorID int64, role model.Role, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, actorID, role, orderID)
	}
	return &model.Order{ID: orderID, RetailerID: actorID, Status: model.OrderStatusPending}, nil
}

func (s *CommerceFacadeStub) RetailerOrders(ctx context.Context, retailerID int64) ([]model.Order, error) {
	if s.RetailerOrdersFn != nil {
		return s.RetailerOrdersFn(ctx, retailerID)
	}
	return []model.Order{{ID: 1, RetailerID: retailerID, Status: model.OrderStatusPending}}, nil
}

func (s *CommerceFacadeStub) WholesalerOrders(ctx context.Context, wholesalerID int64) ([]model.Order, error) {
	if s.WholesalerOrdersFn != nil {
		return s.WholesalerOrdersFn(ctx, wholesalerID)
	}
	return []model.Order{{ID: 1, WholesalerID: &wholesalerID, Status: model.OrderStatusPending}}, nil
}

func (s *CommerceFacadeStub) ProcessOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) error {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, actorID, role, orderID)
	}
	return nil
}

func (s *CommerceFacadeStub) ShipOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) error {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, actorID, role, orderID)
	}
	return nil
}

func (s *CommerceFacadeStub) DeliverOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) error {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, actorID, role, orderID)
	}
	return nil
}

func (s *CommerceFacadeStub) CompleteOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) error {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, actorID, role, orderID)
	}
	return nil
}

func (s *CommerceFacadeStub) CancelOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) error {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, actorID, role, orderID)
	}
	return nil
}

func (s *CommerceFacadeStub) RecordPayment(ctx context.Context, actorID int64, role model.Role, transactionID int64, amount float64, method model.PaymentMethod, referenceNumber, notes string) (*model.Payment, error) {
	if s.RecordPaymentFn != nil {
		return s.RecordPaymentFn(ctx, actorID, role, transactionID, amount, method, referenceNumber, notes)
	}
	return &model.Payment{ID: 1, TransactionID: transactionID, Amount: amount, Method: method, ReferenceNumber: referenceNumber, PaidAt: time.Unix(0, 0)}, nil
}

func (s *CommerceFacadeStub) Transaction(ctx context.Context, actorID int64, role model.Role, transactionID int64) (*model.Transaction, error) {
	if s.TransactionFn != nil {
		return s.TransactionFn(ctx, actorID, role, transactionID)
	}
	return &model.Transaction{ID: transactionID, RetailerID: actorID, Amount: 10, Status: model.TransactionStatusPending}, nil
}

func (s *CommerceFacadeStub) TransactionByOrder(ctx context.Context, actorID int64, role model.Role, orderID int64) (*model.Transaction, error) {
	if s.TransactionByOrderFn != nil {
		return s.TransactionByOrderFn(ctx, actorID, role, orderID)
	}
	return &model.Transaction{ID: 1, OrderID: orderID, RetailerID: actorID, Amount: 10, Status: model.TransactionStatusPending}, nil
}

func (s *CommerceFacadeStub) Payments(ctx context.Context, actorID int64, role model.Role, transactionID int64) ([]model.Payment, error) {
	if s.PaymentsFn != nil {
		return s.PaymentsFn(ctx, actorID, role, transactionID)
	}
	return []model.Payment{{ID: 1, TransactionID: transactionID, Amount: 5, Method: model.PaymentMethodCash, PaidAt: time.Unix(0, 0)}}, nil
}

func (s *CommerceFacadeStub) SalesReport(ctx context.Context, actorID int64, role model.Role, wholesalerID int64) (*model.SalesReport, error) {
	if s.SalesReportFn != nil {
		return s.SalesReportFn(ctx, actorID, role, wholesalerID)
	}
	return &model.SalesReport{OrderCount: 1, Revenue: 10}, nil
}

func (s *CommerceFacadeStub) SpendingReport(ctx context.Context, actorID int64, role model.Role, retailerID int64) (*model.SpendingReport, error) {
	if s.SpendingReportFn != nil {
		return s.SpendingReportFn(ctx, actorID, role, retailerID)
	}
	return &model.SpendingReport{OrderCount: 1, TotalSpent: 10, Outstanding: 5}, nil
}

func (s *CommerceFacadeStub) CollectionReport(ctx context.Context, actorID int64, role model.Role, wholesalerID int64) (*model.CollectionReport, error) {
	if s.CollectionReportFn != nil {
		return s.CollectionReportFn(ctx, actorID, role, wholesalerID)
	}
	return &model.CollectionReport{TotalOwed: 10, TotalCollected: 5, CollectionRate: 50}, nil
}
