package test

import (
	"context"

	domainErrors "github.com/merchline/merchline/internal/domain/errors"
	"github.com/merchline/merchline/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash, Role: role}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub allows tests to customize catalog behaviour.
type ProductRepositoryStub struct {
	CreateFn           func(context.Context, *model.WholesalerProduct) (*model.WholesalerProduct, error)
	UpdateFn           func(context.Context, *model.WholesalerProduct) error
	SetStockFn         func(context.Context, int64, int) error
	GetByIDFn          func(context.Context, int64) (*model.WholesalerProduct, error)
	ListByWholesalerFn func(context.Context, int64) ([]model.WholesalerProduct, error)
	ListAllFn          func(context.Context) ([]model.WholesalerProduct, error)
}

func (s *ProductRepositoryStub) Create(ctx context.Context, p *model.WholesalerProduct) (*model.WholesalerProduct, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, p)
	}
	created := *p
	created.ID = 1
	return &created, nil
}

func (s *ProductRepositoryStub) Update(ctx context.Context, p *model.WholesalerProduct) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, p)
	}
	return nil
}

func (s *ProductRepositoryStub) SetStock(ctx context.Context, productID int64, quantity int) error {
	if s.SetStockFn != nil {
		return s.SetStockFn(ctx, productID, quantity)
	}
	return nil
}

func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.WholesalerProduct, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) ListByWholesaler(ctx context.Context, wholesalerID int64) ([]model.WholesalerProduct, error) {
	if s.ListByWholesalerFn != nil {
		return s.ListByWholesalerFn(ctx, wholesalerID)
	}
	return nil, nil
}

func (s *ProductRepositoryStub) ListAll(ctx context.Context) ([]model.WholesalerProduct, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return nil, nil
}

// InventoryRepositoryStub allows tests to customize retailer ledger behaviour.
type InventoryRepositoryStub struct {
	ListByRetailerFn func(context.Context, int64) ([]model.RetailerProduct, error)
	UpdateLineFn     func(context.Context, int64, int64, int, float64) error
}

func (s *InventoryRepositoryStub) ListByRetailer(ctx context.Context, retailerID int64) ([]model.RetailerProduct, error) {
	if s.ListByRetailerFn != nil {
		return s.ListByRetailerFn(ctx, retailerID)
	}
	return nil, nil
}

func (s *InventoryRepositoryStub) UpdateLine(ctx context.Context, retailerID, lineID int64, stock int, resalePrice float64) error {
	if s.UpdateLineFn != nil {
		return s.UpdateLineFn(ctx, retailerID, lineID, stock, resalePrice)
	}
	return nil
}

// CartRepositoryStub allows tests to customize cart behaviour.
type CartRepositoryStub struct {
	GetOrCreateFn    func(context.Context, int64) (*model.Cart, error)
	ItemsFn          func(context.Context, int64) ([]model.CartItem, error)
	AddItemFn        func(context.Context, int64, int64, int, float64) error
	UpdateQuantityFn func(context.Context, int64, int64, int) error
	RemoveItemFn     func(context.Context, int64, int64) error
}

func (s *CartRepositoryStub) GetOrCreate(ctx context.Context, retailerID int64) (*model.Cart, error) {
	if s.GetOrCreateFn != nil {
		return s.GetOrCreateFn(ctx, retailerID)
	}
	return &model.Cart{ID: 1, RetailerID: retailerID}, nil
}

func (s *CartRepositoryStub) Items(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, cartID)
	}
	return nil, nil
}

func (s *CartRepositoryStub) AddItem(ctx context.Context, cartID, productID int64, quantity int, unitPrice float64) error {
	if s.AddItemFn != nil {
		return s.AddItemFn(ctx, cartID, productID, quantity, unitPrice)
	}
	return nil
}

func (s *CartRepositoryStub) UpdateQuantity(ctx context.Context, cartID, productID int64, quantity int) error {
	if s.UpdateQuantityFn != nil {
		return s.UpdateQuantityFn(ctx, cartID, productID, quantity)
	}
	return nil
}

func (s *CartRepositoryStub) RemoveItem(ctx context.Context, cartID, productID int64) error {
	if s.RemoveItemFn != nil {
		return s.RemoveItemFn(ctx, cartID, productID)
	}
	return nil
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	CheckoutFn         func(context.Context, *model.Order, int64, string) (*model.Order, *model.Transaction, error)
	CreatePartnerFn    func(context.Context, *model.Order, string) (*model.Order, *model.Transaction, error)
	GetByIDFn          func(context.Context, int64) (*model.Order, error)
	ListByRetailerFn   func(context.Context, int64) ([]model.Order, error)
	ListByWholesalerFn func(context.Context, int64) ([]model.Order, error)
	ProcessFn          func(context.Context, int64) error
	ShipFn             func(context.Context, int64) error
	DeliverFn          func(context.Context, int64, float64) error
	CompleteFn         func(context.Context, int64) error
	CancelFn           func(context.Context, int64) error
}

func (s *OrderRepositoryStub) Checkout(ctx context.Context, order *model.Order, cartID int64, referenceCode string) (*model.Order, *model.Transaction, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, order, cartID, referenceCode)
	}
	created := *order
	created.ID = 1
	created.Status = model.OrderStatusPending
	return &created, &model.Transaction{ID: 1, OrderID: 1, Amount: order.TotalAmount, Status: model.TransactionStatusPending, ReferenceCode: referenceCode}, nil
}

func (s *OrderRepositoryStub) CreatePartner(ctx context.Context, order *model.Order, referenceCode string) (*model.Order, *model.Transaction, error) {
	if s.CreatePartnerFn != nil {
		return s.CreatePartnerFn(ctx, order, referenceCode)
	}
	created := *order
	created.ID = 1
	created.Status = model.OrderStatusPending
	return &created, &model.Transaction{ID: 1, OrderID: 1, Amount: order.TotalAmount, Status: model.TransactionStatusPending, ReferenceCode: referenceCode}, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListByRetailer(ctx context.Context, retailerID int64) ([]model.Order, error) {
	if s.ListByRetailerFn != nil {
		return s.ListByRetailerFn(ctx, retailerID)
	}
	return nil, nil
}

func (s *OrderRepositoryStub) ListByWholesaler(ctx context.Context, wholesalerID int64) ([]model.Order, error) {
	if s.ListByWholesalerFn != nil {
		return s.ListByWholesalerFn(ctx, wholesalerID)
	}
	return nil, nil
}

func (s *OrderRepositoryStub) Process(ctx context.Context, orderID int64) error {
	if s.ProcessFn != nil {
		return s.ProcessFn(ctx, orderID)
	}
	return nil
}

func (s *OrderRepositoryStub) Ship(ctx context.Context, orderID int64) error {
	if s.ShipFn != nil {
		return s.ShipFn(ctx, orderID)
	}
	return nil
}

func (s *OrderRepositoryStub) Deliver(ctx context.Context, orderID int64, resaleMarkup float64) error {
	if s.DeliverFn != nil {
		return s.DeliverFn(ctx, orderID, resaleMarkup)
	}
	return nil
}

func (s *OrderRepositoryStub) Complete(ctx context.Context, orderID int64) error {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, orderID)
	}
	return nil
}

func (s *OrderRepositoryStub) Cancel(ctx context.Context, orderID int64) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID)
	}
	return nil
}

// TransactionRepositoryStub allows tests to customize settlement behaviour.
type TransactionRepositoryStub struct {
	GetByIDFn            func(context.Context, int64) (*model.Transaction, error)
	GetByOrderIDFn       func(context.Context, int64) (*model.Transaction, error)
	RecordPaymentFn      func(context.Context, int64, *model.Payment) (*model.Payment, error)
	ListPaymentsFn       func(context.Context, int64) ([]model.Payment, error)
	SelectDriftedBatchFn func(context.Context, int) ([]model.Transaction, error)
	ReconcileFn          func(context.Context, int64) error
}

func (s *TransactionRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Transaction, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *TransactionRepositoryStub) GetByOrderID(ctx context.Context, orderID int64) (*model.Transaction, error) {
	if s.GetByOrderIDFn != nil {
		return s.GetByOrderIDFn(ctx, orderID)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *TransactionRepositoryStub) RecordPayment(ctx context.Context, transactionID int64, payment *model.Payment) (*model.Payment, error) {
	if s.RecordPaymentFn != nil {
		return s.RecordPaymentFn(ctx, transactionID, payment)
	}
	recorded := *payment
	recorded.ID = 1
	recorded.TransactionID = transactionID
	return &recorded, nil
}

func (s *TransactionRepositoryStub) ListPayments(ctx context.Context, transactionID int64) ([]model.Payment, error) {
	if s.ListPaymentsFn != nil {
		return s.ListPaymentsFn(ctx, transactionID)
	}
	return nil, nil
}

func (s *TransactionRepositoryStub) SelectDriftedBatch(ctx context.Context, limit int) ([]model.Transaction, error) {
	if s.SelectDriftedBatchFn != nil {
		return s.SelectDriftedBatchFn(ctx, limit)
	}
	return nil, nil
}

func (s *TransactionRepositoryStub) Reconcile(ctx context.Context, transactionID int64) error {
	if s.ReconcileFn != nil {
		return s.ReconcileFn(ctx, transactionID)
	}
	return nil
}

// ReportRepositoryStub allows tests to customize report aggregates.
type ReportRepositoryStub struct {
	WholesalerSalesFn   func(context.Context, int64) (*model.SalesReport, error)
	RetailerSpendingFn  func(context.Context, int64) (*model.SpendingReport, error)
	CollectionSummaryFn func(context.Context, int64) (*model.CollectionReport, error)
}

func (s *ReportRepositoryStub) WholesalerSales(ctx context.Context, wholesalerID int64) (*model.SalesReport, error) {
	if s.WholesalerSalesFn != nil {
		return s.WholesalerSalesFn(ctx, wholesalerID)
	}
	return &model.SalesReport{}, nil
}

func (s *ReportRepositoryStub) RetailerSpending(ctx context.Context, retailerID int64) (*model.SpendingReport, error) {
	if s.RetailerSpendingFn != nil {
		return s.RetailerSpendingFn(ctx, retailerID)
	}
	return &model.SpendingReport{}, nil
}

func (s *ReportRepositoryStub) CollectionSummary(ctx context.Context, wholesalerID int64) (*model.CollectionReport, error) {
	if s.CollectionSummaryFn != nil {
		return s.CollectionSummaryFn(ctx, wholesalerID)
	}
	return &model.CollectionReport{}, nil
}
