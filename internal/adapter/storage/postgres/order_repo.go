package postgres

import (
	"context"
	"errors"
	"fmt"

	"storefront-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, order_number, user_id, shop_id, subtotal, shipping, tax, total, status, payment_status,
	payment_method, crypto_currency, notes, tracking_number, paid_at, shipped_at, delivered_at, created_at, updated_at`

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	pool Pool
}

func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create inserts the order row. Items are inserted separately in the same transaction.
func (r *OrderRepo) Create(ctx context.Context, tx pgx.Tx, o *domain.Order) error {
	query := `INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := on(r.pool, tx).Exec(ctx, query,
		o.ID, o.OrderNumber, o.UserID, o.ShopID,
		o.Subtotal, o.Shipping, o.Tax, o.Total,
		string(o.Status), string(o.PaymentStatus), o.PaymentMethod, o.CryptoCurrency,
		o.Notes, o.TrackingNumber, o.PaidAt, o.ShippedAt, o.DeliveredAt,
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItems inserts every line of an order. The first failure aborts and is returned;
// the caller's transaction rollback discards the rows written before it.
func (r *OrderRepo) CreateItems(ctx context.Context, tx pgx.Tx, items []domain.OrderItem) error {
	query := `INSERT INTO order_items (id, order_id, product_id, name, quantity, price, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	q := on(r.pool, tx)
	for i := range items {
		it := &items[i]
		if _, err := q.Exec(ctx, query, it.ID, it.OrderID, it.ProductID, it.Name, it.Quantity, it.Price, it.Image); err != nil {
			return fmt.Errorf("insert order item %d: %w", i, err)
		}
	}
	return nil
}

// GetByID fetches an order with its items.
func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil || o == nil {
		return o, err
	}
	if o.Items, err = r.items(ctx, o.ID); err != nil {
		return nil, err
	}
	return o, nil
}

// GetByIDForUpdate locks the order row. This MUST be called within a transaction.
func (r *OrderRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Order, error) {
	return scanOrder(tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id))
}

// ListByUser returns the buyer's orders newest first, without items.
func (r *OrderRepo) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]domain.Order, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	offset := (page - 1) * pageSize
	rows, err := r.pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate order rows: %w", err)
	}
	return out, total, nil
}

// UpdatePaymentStatus writes the new payment state only if payment_status still equals from.
func (r *OrderRepo) UpdatePaymentStatus(ctx context.Context, tx pgx.Tx, o *domain.Order, from domain.PaymentStatus) error {
	query := `UPDATE orders SET payment_status = $1, status = $2, paid_at = $3, updated_at = $4
		WHERE id = $5 AND payment_status = $6`

	tag, err := on(r.pool, tx).Exec(ctx, query,
		string(o.PaymentStatus), string(o.Status), o.PaidAt, o.UpdatedAt, o.ID, string(from))
	if err != nil {
		return fmt.Errorf("update order payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStaleOrder
	}
	return nil
}

// UpdateStatus persists a fulfilment transition.
func (r *OrderRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, o *domain.Order) error {
	query := `UPDATE orders SET status = $1, tracking_number = $2, shipped_at = $3, delivered_at = $4, updated_at = $5
		WHERE id = $6`

	tag, err := on(r.pool, tx).Exec(ctx, query,
		string(o.Status), o.TrackingNumber, o.ShippedAt, o.DeliveredAt, o.UpdatedAt, o.ID)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order not found: %s", o.ID)
	}
	return nil
}

func (r *OrderRepo) items(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, order_id, product_id, name, quantity, price, image FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.Quantity, &it.Price, &it.Image); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}
	return items, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	o := &domain.Order{}
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.ShopID,
		&o.Subtotal, &o.Shipping, &o.Tax, &o.Total,
		&o.Status, &o.PaymentStatus, &o.PaymentMethod, &o.CryptoCurrency,
		&o.Notes, &o.TrackingNumber, &o.PaidAt, &o.ShippedAt, &o.DeliveredAt,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	return o, nil
}
