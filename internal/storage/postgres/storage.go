package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/merchline/merchline/internal/domain/errors"
	"github.com/merchline/merchline/internal/domain/model"
	"github.com/merchline/merchline/internal/domain/repository"
)

// pgxPool abstracts the pgx pool so storage tests can substitute a mock.
type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type inventoryRepository struct {
	storage *Storage
}

type cartRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type transactionRepository struct {
	storage *Storage
}

type reportRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Inventory() repository.InventoryRepository {
	return &inventoryRepository{storage: s}
}

func (s *Storage) Carts() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Transactions() repository.TransactionRepository {
	return &transactionRepository{storage: s}
}

func (s *Storage) Reports() repository.ReportRepository {
	return &reportRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS wholesaler_products (
            id SERIAL PRIMARY KEY,
            wholesaler_id BIGINT NOT NULL REFERENCES users(id),
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL,
            stock_quantity INTEGER NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS retailer_products (
            id SERIAL PRIMARY KEY,
            retailer_id BIGINT NOT NULL REFERENCES users(id),
            source_product_id BIGINT REFERENCES wholesaler_products(id),
            partner_sku TEXT,
            name TEXT NOT NULL,
            unit_cost DOUBLE PRECISION NOT NULL,
            resale_price DOUBLE PRECISION NOT NULL,
            stock_quantity INTEGER NOT NULL DEFAULT 0,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS carts (
            id SERIAL PRIMARY KEY,
            retailer_id BIGINT UNIQUE NOT NULL REFERENCES users(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS cart_items (
            id SERIAL PRIMARY KEY,
            cart_id BIGINT NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
            product_id BIGINT NOT NULL REFERENCES wholesaler_products(id),
            quantity INTEGER NOT NULL,
            unit_price DOUBLE PRECISION NOT NULL,
            UNIQUE (cart_id, product_id)
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            retailer_id BIGINT NOT NULL REFERENCES users(id),
            wholesaler_id BIGINT REFERENCES users(id),
            partner_name TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL,
            total_amount DOUBLE PRECISION NOT NULL,
            notes TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            product_id BIGINT REFERENCES wholesaler_products(id),
            partner_sku TEXT,
            product_name TEXT NOT NULL,
            quantity INTEGER NOT NULL,
            unit_price DOUBLE PRECISION NOT NULL,
            subtotal DOUBLE PRECISION NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS transactions (
            id SERIAL PRIMARY KEY,
            order_id BIGINT UNIQUE NOT NULL REFERENCES orders(id),
            retailer_id BIGINT NOT NULL REFERENCES users(id),
            wholesaler_id BIGINT REFERENCES users(id),
            partner_name TEXT NOT NULL DEFAULT '',
            amount DOUBLE PRECISION NOT NULL,
            amount_paid DOUBLE PRECISION NOT NULL DEFAULT 0,
            status TEXT NOT NULL,
            payment_method TEXT NOT NULL DEFAULT '',
            reference_code TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS payments (
            id SERIAL PRIMARY KEY,
            transaction_id BIGINT NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
            amount DOUBLE PRECISION NOT NULL,
            method TEXT NOT NULL,
            reference_number TEXT NOT NULL DEFAULT '',
            notes TEXT NOT NULL DEFAULT '',
            paid_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_retailer_products_source
            ON retailer_products(retailer_id, source_product_id) WHERE source_product_id IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_retailer_products_partner
            ON retailer_products(retailer_id, partner_sku) WHERE partner_sku IS NOT NULL`,
		`CREATE INDEX IF NOT EXISTS idx_orders_retailer ON orders(retailer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_wholesaler ON orders(wholesaler_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_transaction ON payments(transaction_id, paid_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash, role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, product *model.WholesalerProduct) (*model.WholesalerProduct, error) {
	const query = `INSERT INTO wholesaler_products (wholesaler_id, name, description, price, stock_quantity)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at, updated_at`
	created := *product
	err := r.storage.pool.QueryRow(ctx, query,
		product.WholesalerID, product.Name, product.Description, product.Price, product.StockQuantity,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.WholesalerProduct) error {
	const query = `UPDATE wholesaler_products
                   SET name=$2, description=$3, price=$4, updated_at=NOW()
                   WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, product.ID, product.Name, product.Description, product.Price)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) SetStock(ctx context.Context, productID int64, quantity int) error {
	const query = `UPDATE wholesaler_products SET stock_quantity=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, productID, quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

const productColumns = `id, wholesaler_id, name, description, price, stock_quantity, created_at, updated_at`

func scanProduct(row pgx.Row) (*model.WholesalerProduct, error) {
	var p model.WholesalerProduct
	err := row.Scan(&p.ID, &p.WholesalerID, &p.Name, &p.Description, &p.Price, &p.StockQuantity, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.WholesalerProduct, error) {
	query := `SELECT ` + productColumns + ` FROM wholesaler_products WHERE id=$1`
	product, err := scanProduct(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) listProducts(ctx context.Context, query string, args ...any) ([]model.WholesalerProduct, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.WholesalerProduct
	for rows.Next() {
		var p model.WholesalerProduct
		if err := rows.Scan(&p.ID, &p.WholesalerID, &p.Name, &p.Description, &p.Price, &p.StockQuantity, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) ListByWholesaler(ctx context.Context, wholesalerID int64) ([]model.WholesalerProduct, error) {
	query := `SELECT ` + productColumns + ` FROM wholesaler_products WHERE wholesaler_id=$1 ORDER BY name`
	return r.listProducts(ctx, query, wholesalerID)
}

func (r *productRepository) ListAll(ctx context.Context) ([]model.WholesalerProduct, error) {
	query := `SELECT ` + productColumns + ` FROM wholesaler_products ORDER BY wholesaler_id, name`
	return r.listProducts(ctx, query)
}

// --- InventoryRepository implementation ---

func (r *inventoryRepository) ListByRetailer(ctx context.Context, retailerID int64) ([]model.RetailerProduct, error) {
	const query = `SELECT id, retailer_id, source_product_id, partner_sku, name, unit_cost, resale_price, stock_quantity, updated_at
                   FROM retailer_products WHERE retailer_id=$1 ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query, retailerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.RetailerProduct
	for rows.Next() {
		var p model.RetailerProduct
		var partnerSKU *string
		if err := rows.Scan(&p.ID, &p.RetailerID, &p.SourceProductID, &partnerSKU, &p.Name, &p.UnitCost, &p.ResalePrice, &p.StockQuantity, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if partnerSKU != nil {
			p.PartnerSKU = *partnerSKU
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *inventoryRepository) UpdateLine(ctx context.Context, retailerID, lineID int64, stock int, resalePrice float64) error {
	const query = `UPDATE retailer_products SET stock_quantity=$3, resale_price=$4, updated_at=NOW()
                   WHERE id=$2 AND retailer_id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, retailerID, lineID, stock, resalePrice)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- CartRepository implementation ---

func (r *cartRepository) GetOrCreate(ctx context.Context, retailerID int64) (*model.Cart, error) {
	const query = `INSERT INTO carts (retailer_id) VALUES ($1)
                   ON CONFLICT (retailer_id) DO UPDATE SET retailer_id = EXCLUDED.retailer_id
                   RETURNING id, created_at`
	cart := model.Cart{RetailerID: retailerID}
	if err := r.storage.pool.QueryRow(ctx, query, retailerID).Scan(&cart.ID, &cart.CreatedAt); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Items(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	const query = `SELECT ci.id, ci.cart_id, ci.product_id, p.wholesaler_id, p.name, ci.quantity, ci.unit_price
                   FROM cart_items ci
                   JOIN wholesaler_products p ON p.id = ci.product_id
                   WHERE ci.cart_id=$1
                   ORDER BY ci.id`
	rows, err := r.storage.pool.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartItem
	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.WholesalerID, &item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cartRepository) AddItem(ctx context.Context, cartID, productID int64, quantity int, unitPrice float64) error {
	// The captured unit price is kept from the first add; only quantity merges.
	const query = `INSERT INTO cart_items (cart_id, product_id, quantity, unit_price)
                   VALUES ($1, $2, $3, $4)
                   ON CONFLICT (cart_id, product_id) DO UPDATE
                   SET quantity = cart_items.quantity + EXCLUDED.quantity`
	_, err := r.storage.pool.Exec(ctx, query, cartID, productID, quantity, unitPrice)
	return err
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, cartID, productID int64, quantity int) error {
	const query = `UPDATE cart_items SET quantity=$3 WHERE cart_id=$1 AND product_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, cartID, productID, quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, cartID, productID int64) error {
	const query = `DELETE FROM cart_items WHERE cart_id=$1 AND product_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, cartID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

func itemRefColumns(ref model.ItemRef) (productID *int64, partnerSKU *string) {
	if ref.Kind == model.ItemRefCatalog {
		id := ref.ProductID
		return &id, nil
	}
	sku := ref.PartnerSKU
	return nil, &sku
}

func itemRefFromColumns(productID *int64, partnerSKU *string, name string) model.ItemRef {
	if productID != nil {
		return model.CatalogRef(*productID, name)
	}
	var sku string
	if partnerSKU != nil {
		sku = *partnerSKU
	}
	return model.PartnerRef(sku, name)
}

func (r *orderRepository) createOrderTx(ctx context.Context, tx pgx.Tx, order *model.Order, referenceCode string) (*model.Order, *model.Transaction, error) {
	const insertOrder = `INSERT INTO orders (retailer_id, wholesaler_id, partner_name, status, total_amount, notes)
                         VALUES ($1, $2, $3, $4, $5, $6)
                         RETURNING id, created_at, updated_at`
	created := *order
	created.Status = model.OrderStatusPending
	err := tx.QueryRow(ctx, insertOrder,
		order.RetailerID, order.WholesalerID, order.PartnerName, model.OrderStatusPending, order.TotalAmount, order.Notes,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, nil, err
	}

	const insertItem = `INSERT INTO order_items (order_id, product_id, partner_sku, product_name, quantity, unit_price, subtotal)
                        VALUES ($1, $2, $3, $4, $5, $6, $7)
                        RETURNING id`
	created.Items = make([]model.OrderItem, len(order.Items))
	for i, item := range order.Items {
		productID, partnerSKU := itemRefColumns(item.Ref)
		stored := item
		stored.OrderID = created.ID
		if err := tx.QueryRow(ctx, insertItem,
			created.ID, productID, partnerSKU, item.Ref.Name, item.Quantity, item.UnitPrice, item.Subtotal,
		).Scan(&stored.ID); err != nil {
			return nil, nil, err
		}
		created.Items[i] = stored
	}

	const insertTransaction = `INSERT INTO transactions (order_id, retailer_id, wholesaler_id, partner_name, amount, amount_paid, status, reference_code)
                               VALUES ($1, $2, $3, $4, $5, 0, $6, $7)
                               RETURNING id, created_at, updated_at`
	trans := model.Transaction{
		OrderID:       created.ID,
		RetailerID:    created.RetailerID,
		WholesalerID:  created.WholesalerID,
		PartnerName:   created.PartnerName,
		Amount:        created.TotalAmount,
		Status:        model.TransactionStatusPending,
		ReferenceCode: referenceCode,
	}
	err = tx.QueryRow(ctx, insertTransaction,
		created.ID, created.RetailerID, created.WholesalerID, created.PartnerName,
		created.TotalAmount, model.TransactionStatusPending, referenceCode,
	).Scan(&trans.ID, &trans.CreatedAt, &trans.UpdatedAt)
	if err != nil {
		return nil, nil, err
	}

	return &created, &trans, nil
}

func (r *orderRepository) Checkout(ctx context.Context, order *model.Order, cartID int64, referenceCode string) (*model.Order, *model.Transaction, error) {
	var (
		created *model.Order
		trans   *model.Transaction
	)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		created, trans, err = r.createOrderTx(ctx, tx, order, referenceCode)
		if err != nil {
			return err
		}

		productIDs := make([]int64, 0, len(order.Items))
		for _, item := range order.Items {
			if item.Ref.Kind == model.ItemRefCatalog {
				productIDs = append(productIDs, item.Ref.ProductID)
			}
		}
		const deleteConsumed = `DELETE FROM cart_items WHERE cart_id=$1 AND product_id = ANY($2)`
		if _, err := tx.Exec(ctx, deleteConsumed, cartID, productIDs); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return created, trans, nil
}

func (r *orderRepository) CreatePartner(ctx context.Context, order *model.Order, referenceCode string) (*model.Order, *model.Transaction, error) {
	var (
		created *model.Order
		trans   *model.Transaction
	)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		created, trans, err = r.createOrderTx(ctx, tx, order, referenceCode)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return created, trans, nil
}

const orderColumns = `id, retailer_id, wholesaler_id, partner_name, status, total_amount, notes, created_at, updated_at`

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.RetailerID, &o.WholesalerID, &o.PartnerName, &o.Status, &o.TotalAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	const itemsQuery = `SELECT id, order_id, product_id, partner_sku, product_name, quantity, unit_price, subtotal
                        FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item       model.OrderItem
			productID  *int64
			partnerSKU *string
			name       string
		)
		if err := rows.Scan(&item.ID, &item.OrderID, &productID, &partnerSKU, &name, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, err
		}
		item.Ref = itemRefFromColumns(productID, partnerSKU, name)
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) listOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.RetailerID, &o.WholesalerID, &o.PartnerName, &o.Status, &o.TotalAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListByRetailer(ctx context.Context, retailerID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE retailer_id=$1 ORDER BY created_at DESC`
	return r.listOrders(ctx, query, retailerID)
}

func (r *orderRepository) ListByWholesaler(ctx context.Context, wholesalerID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE wholesaler_id=$1 ORDER BY created_at DESC`
	return r.listOrders(ctx, query, wholesalerID)
}

// lockOrderStatus reads and locks the order row, verifying the requested
// transition against the lifecycle graph.
func lockOrderStatus(ctx context.Context, tx pgx.Tx, orderID int64, to model.OrderStatus) (model.OrderStatus, int64, error) {
	const query = `SELECT status, retailer_id FROM orders WHERE id=$1 FOR UPDATE`
	var (
		status     model.OrderStatus
		retailerID int64
	)
	if err := tx.QueryRow(ctx, query, orderID).Scan(&status, &retailerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", 0, domainErrors.ErrNotFound
		}
		return "", 0, err
	}
	if !model.CanTransition(status, to) {
		return "", 0, domainErrors.InvalidTransitionError{From: status, To: to}
	}
	return status, retailerID, nil
}

type orderLine struct {
	productID *int64
	name      string
	quantity  int
	available int
}

// lockOrderLines loads order lines joined to their catalog stock, locking
// product rows. Partner lines carry no stock and are skipped by the join.
func lockOrderLines(ctx context.Context, tx pgx.Tx, orderID int64) ([]orderLine, error) {
	const query = `SELECT oi.product_id, oi.product_name, oi.quantity, p.stock_quantity
                   FROM order_items oi
                   JOIN wholesaler_products p ON p.id = oi.product_id
                   WHERE oi.order_id=$1
                   ORDER BY oi.id
                   FOR UPDATE OF p`
	rows, err := tx.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []orderLine
	for rows.Next() {
		var line orderLine
		if err := rows.Scan(&line.productID, &line.name, &line.quantity, &line.available); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func stockShortages(lines []orderLine) []domainErrors.StockShortage {
	var shortages []domainErrors.StockShortage
	for _, line := range lines {
		if line.available < line.quantity {
			var productID int64
			if line.productID != nil {
				productID = *line.productID
			}
			shortages = append(shortages, domainErrors.StockShortage{
				ProductID:   productID,
				ProductName: line.name,
				Required:    line.quantity,
				Available:   line.available,
			})
		}
	}
	return shortages
}

func setOrderStatus(ctx context.Context, tx pgx.Tx, orderID int64, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$2, updated_at=NOW() WHERE id=$1`
	_, err := tx.Exec(ctx, query, orderID, status)
	return err
}

func (r *orderRepository) Process(ctx context.Context, orderID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, _, err := lockOrderStatus(ctx, tx, orderID, model.OrderStatusProcessing); err != nil {
			return err
		}
		lines, err := lockOrderLines(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if shortages := stockShortages(lines); len(shortages) > 0 {
			return domainErrors.InsufficientStockError{Shortages: shortages}
		}
		return setOrderStatus(ctx, tx, orderID, model.OrderStatusProcessing)
	})
}

func (r *orderRepository) Ship(ctx context.Context, orderID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, _, err := lockOrderStatus(ctx, tx, orderID, model.OrderStatusShipped); err != nil {
			return err
		}
		lines, err := lockOrderLines(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if shortages := stockShortages(lines); len(shortages) > 0 {
			return domainErrors.InsufficientStockError{Shortages: shortages}
		}

		// The guard in the WHERE clause keeps the decrement safe even if the
		// row lock above were ever relaxed; a miss aborts the whole shipment.
		const decrement = `UPDATE wholesaler_products
                           SET stock_quantity = stock_quantity - $2, updated_at=NOW()
                           WHERE id=$1 AND stock_quantity >= $2`
		for _, line := range lines {
			tag, err := tx.Exec(ctx, decrement, *line.productID, line.quantity)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.InsufficientStockError{Shortages: []domainErrors.StockShortage{{
					ProductID:   *line.productID,
					ProductName: line.name,
					Required:    line.quantity,
					Available:   line.available,
				}}}
			}
		}
		return setOrderStatus(ctx, tx, orderID, model.OrderStatusShipped)
	})
}

func (r *orderRepository) Deliver(ctx context.Context, orderID int64, resaleMarkup float64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		_, retailerID, err := lockOrderStatus(ctx, tx, orderID, model.OrderStatusDelivered)
		if err != nil {
			return err
		}

		const itemsQuery = `SELECT product_id, partner_sku, product_name, quantity, unit_price
                            FROM order_items WHERE order_id=$1 ORDER BY id`
		rows, err := tx.Query(ctx, itemsQuery, orderID)
		if err != nil {
			return err
		}

		type deliveredLine struct {
			productID  *int64
			partnerSKU *string
			name       string
			quantity   int
			unitPrice  float64
		}
		var lines []deliveredLine
		for rows.Next() {
			var line deliveredLine
			if err := rows.Scan(&line.productID, &line.partnerSKU, &line.name, &line.quantity, &line.unitPrice); err != nil {
				rows.Close()
				return err
			}
			lines = append(lines, line)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		// Existing lines keep their retailer-edited resale price; the markup
		// only seeds the suggestion for new lines.
		const mergeCatalog = `INSERT INTO retailer_products (retailer_id, source_product_id, name, unit_cost, resale_price, stock_quantity)
                              VALUES ($1, $2, $3, $4, $5, $6)
                              ON CONFLICT (retailer_id, source_product_id) WHERE source_product_id IS NOT NULL
                              DO UPDATE SET stock_quantity = retailer_products.stock_quantity + EXCLUDED.stock_quantity,
                                            unit_cost = EXCLUDED.unit_cost,
                                            updated_at = NOW()`
		const mergePartner = `INSERT INTO retailer_products (retailer_id, partner_sku, name, unit_cost, resale_price, stock_quantity)
                              VALUES ($1, $2, $3, $4, $5, $6)
                              ON CONFLICT (retailer_id, partner_sku) WHERE partner_sku IS NOT NULL
                              DO UPDATE SET stock_quantity = retailer_products.stock_quantity + EXCLUDED.stock_quantity,
                                            unit_cost = EXCLUDED.unit_cost,
                                            updated_at = NOW()`
		for _, line := range lines {
			resale := line.unitPrice * (1 + resaleMarkup)
			if line.productID != nil {
				if _, err := tx.Exec(ctx, mergeCatalog, retailerID, *line.productID, line.name, line.unitPrice, resale, line.quantity); err != nil {
					return err
				}
				continue
			}
			if _, err := tx.Exec(ctx, mergePartner, retailerID, line.partnerSKU, line.name, line.unitPrice, resale, line.quantity); err != nil {
				return err
			}
		}
		return setOrderStatus(ctx, tx, orderID, model.OrderStatusDelivered)
	})
}

func (r *orderRepository) Complete(ctx context.Context, orderID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, _, err := lockOrderStatus(ctx, tx, orderID, model.OrderStatusCompleted); err != nil {
			return err
		}
		if err := setOrderStatus(ctx, tx, orderID, model.OrderStatusCompleted); err != nil {
			return err
		}

		const lockTransaction = `SELECT id, amount, amount_paid, status FROM transactions WHERE order_id=$1 FOR UPDATE`
		var (
			transactionID int64
			amount        float64
			amountPaid    float64
			status        model.TransactionStatus
		)
		err := tx.QueryRow(ctx, lockTransaction, orderID).Scan(&transactionID, &amount, &amountPaid, &status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return err
		}
		if status.Sticky() {
			return nil
		}

		const updateStatus = `UPDATE transactions SET status=$2, updated_at=NOW() WHERE id=$1`
		_, err = tx.Exec(ctx, updateStatus, transactionID, model.DeriveTransactionStatus(amount, amountPaid))
		return err
	})
}

func (r *orderRepository) Cancel(ctx context.Context, orderID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		// Stock is only decremented at Ship, and Shipped orders cannot be
		// cancelled, so there is never anything to restore here.
		if _, _, err := lockOrderStatus(ctx, tx, orderID, model.OrderStatusCancelled); err != nil {
			return err
		}
		if err := setOrderStatus(ctx, tx, orderID, model.OrderStatusCancelled); err != nil {
			return err
		}

		const refund = `UPDATE transactions SET status=$2, updated_at=NOW() WHERE order_id=$1`
		_, err := tx.Exec(ctx, refund, orderID, model.TransactionStatusRefunded)
		return err
	})
}

// --- TransactionRepository implementation ---

const transactionColumns = `id, order_id, retailer_id, wholesaler_id, partner_name, amount, amount_paid, status, payment_method, reference_code, created_at, updated_at`

func scanTransaction(row pgx.Row) (*model.Transaction, error) {
	var t model.Transaction
	err := row.Scan(&t.ID, &t.OrderID, &t.RetailerID, &t.WholesalerID, &t.PartnerName,
		&t.Amount, &t.AmountPaid, &t.Status, &t.PaymentMethod, &t.ReferenceCode, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id int64) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id=$1`
	trans, err := scanTransaction(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return trans, nil
}

func (r *transactionRepository) GetByOrderID(ctx context.Context, orderID int64) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE order_id=$1`
	trans, err := scanTransaction(r.storage.pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return trans, nil
}

func (r *transactionRepository) RecordPayment(ctx context.Context, transactionID int64, payment *model.Payment) (*model.Payment, error) {
	recorded := *payment
	recorded.TransactionID = transactionID

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockQuery = `SELECT t.amount, t.amount_paid, t.status, o.status
                           FROM transactions t
                           JOIN orders o ON o.id = t.order_id
                           WHERE t.id=$1
                           FOR UPDATE OF t`
		var (
			amount      float64
			amountPaid  float64
			status      model.TransactionStatus
			orderStatus model.OrderStatus
		)
		err := tx.QueryRow(ctx, lockQuery, transactionID).Scan(&amount, &amountPaid, &status, &orderStatus)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if orderStatus == model.OrderStatusCancelled || status == model.TransactionStatusRefunded {
			return domainErrors.ErrOrderCancelled
		}
		if payment.Amount > amount-amountPaid {
			return domainErrors.ErrExceedsBalance
		}

		const insertPayment = `INSERT INTO payments (transaction_id, amount, method, reference_number, notes)
                               VALUES ($1, $2, $3, $4, $5)
                               RETURNING id, paid_at`
		if err := tx.QueryRow(ctx, insertPayment,
			transactionID, payment.Amount, payment.Method, payment.ReferenceNumber, payment.Notes,
		).Scan(&recorded.ID, &recorded.PaidAt); err != nil {
			return err
		}

		newPaid := amountPaid + payment.Amount
		const updateTransaction = `UPDATE transactions SET amount_paid=$2, status=$3, updated_at=NOW() WHERE id=$1`
		_, err = tx.Exec(ctx, updateTransaction, transactionID, newPaid, model.DeriveTransactionStatus(amount, newPaid))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &recorded, nil
}

func (r *transactionRepository) ListPayments(ctx context.Context, transactionID int64) ([]model.Payment, error) {
	const query = `SELECT id, transaction_id, amount, method, reference_number, notes, paid_at
                   FROM payments WHERE transaction_id=$1 ORDER BY paid_at, id`
	rows, err := r.storage.pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.TransactionID, &p.Amount, &p.Method, &p.ReferenceNumber, &p.Notes, &p.PaidAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *transactionRepository) SelectDriftedBatch(ctx context.Context, limit int) ([]model.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
              FROM transactions t
              WHERE t.amount_paid <> COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.transaction_id = t.id), 0)
              ORDER BY t.updated_at
              LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.OrderID, &t.RetailerID, &t.WholesalerID, &t.PartnerName,
			&t.Amount, &t.AmountPaid, &t.Status, &t.PaymentMethod, &t.ReferenceCode, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *transactionRepository) Reconcile(ctx context.Context, transactionID int64) error {
	// One statement: amount_paid is rewritten from the payment sum and the
	// status re-derived, except for sticky Refunded/Failed.
	const query = `UPDATE transactions t
                   SET amount_paid = pay.total,
                       status = CASE
                           WHEN t.status IN ('REFUNDED', 'FAILED') THEN t.status
                           WHEN pay.total >= t.amount AND t.amount > 0 THEN 'COMPLETED'
                           WHEN pay.total > 0 THEN 'PARTIALLY_PAID'
                           ELSE 'PENDING'
                       END,
                       updated_at = NOW()
                   FROM (SELECT COALESCE(SUM(amount), 0) AS total FROM payments WHERE transaction_id=$1) pay
                   WHERE t.id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, transactionID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ReportRepository implementation ---

func (r *reportRepository) WholesalerSales(ctx context.Context, wholesalerID int64) (*model.SalesReport, error) {
	report := &model.SalesReport{}

	const totals = `SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
                    FROM orders WHERE wholesaler_id=$1 AND status <> 'CANCELLED'`
	if err := r.storage.pool.QueryRow(ctx, totals, wholesalerID).Scan(&report.OrderCount, &report.Revenue); err != nil {
		return nil, err
	}

	const byStatus = `SELECT status, COUNT(*) FROM orders WHERE wholesaler_id=$1 GROUP BY status ORDER BY status`
	rows, err := r.storage.pool.Query(ctx, byStatus, wholesalerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var bucket model.StatusCount
		if err := rows.Scan(&bucket.Status, &bucket.Count); err != nil {
			return nil, err
		}
		report.ByStatus = append(report.ByStatus, bucket)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return report, nil
}

func (r *reportRepository) RetailerSpending(ctx context.Context, retailerID int64) (*model.SpendingReport, error) {
	report := &model.SpendingReport{}

	const totals = `SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
                    FROM orders WHERE retailer_id=$1 AND status <> 'CANCELLED'`
	if err := r.storage.pool.QueryRow(ctx, totals, retailerID).Scan(&report.OrderCount, &report.TotalSpent); err != nil {
		return nil, err
	}

	const outstanding = `SELECT COALESCE(SUM(amount - amount_paid), 0)
                         FROM transactions WHERE retailer_id=$1 AND status NOT IN ('REFUNDED', 'FAILED')`
	if err := r.storage.pool.QueryRow(ctx, outstanding, retailerID).Scan(&report.Outstanding); err != nil {
		return nil, err
	}
	return report, nil
}

func (r *reportRepository) CollectionSummary(ctx context.Context, wholesalerID int64) (*model.CollectionReport, error) {
	report := &model.CollectionReport{}

	const query = `SELECT COALESCE(SUM(amount), 0), COALESCE(SUM(amount_paid), 0)
                   FROM transactions WHERE wholesaler_id=$1 AND status NOT IN ('REFUNDED', 'FAILED')`
	if err := r.storage.pool.QueryRow(ctx, query, wholesalerID).Scan(&report.TotalOwed, &report.TotalCollected); err != nil {
		return nil, err
	}
	if report.TotalOwed > 0 {
		report.CollectionRate = report.TotalCollected / report.TotalOwed * 100
	}
	return report, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
