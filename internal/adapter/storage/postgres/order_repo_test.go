package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder() *domain.Order {
	now := time.Now().UTC().Truncate(time.Microsecond)
	totals := domain.ComputeTotals([]domain.LineItem{{Quantity: 2, Price: decimal.RequireFromString("10")}})
	return &domain.Order{
		ID:            uuid.New(),
		OrderNumber:   domain.NewOrderNumber(now),
		UserID:        uuid.New(),
		Subtotal:      totals.Subtotal,
		Shipping:      totals.Shipping,
		Tax:           totals.Tax,
		Total:         totals.Total,
		Status:        domain.OrderStatusPendingPayment,
		PaymentStatus: domain.PaymentStatusPending,
		PaymentMethod: "crypto",
		Notes:         "{}",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func orderCols() []string {
	return []string{"id", "order_number", "user_id", "shop_id", "subtotal", "shipping", "tax", "total",
		"status", "payment_status", "payment_method", "crypto_currency", "notes", "tracking_number",
		"paid_at", "shipped_at", "delivered_at", "created_at", "updated_at"}
}

func orderRow(o *domain.Order) *pgxmock.Rows {
	return pgxmock.NewRows(orderCols()).AddRow(
		o.ID, o.OrderNumber, o.UserID, o.ShopID, o.Subtotal, o.Shipping, o.Tax, o.Total,
		o.Status, o.PaymentStatus, o.PaymentMethod, o.CryptoCurrency, o.Notes, o.TrackingNumber,
		o.PaidAt, o.ShippedAt, o.DeliveredAt, o.CreatedAt, o.UpdatedAt,
	)
}

func TestOrderRepo_CreateWithItems(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	o := newTestOrder()
	item := domain.OrderItem{ID: uuid.New(), OrderID: o.ID, ProductID: uuid.New(), Name: "Mug", Quantity: 2, Price: decimal.RequireFromString("10")}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(o.ID, o.OrderNumber, o.UserID, o.ShopID, o.Subtotal, o.Shipping, o.Tax, o.Total,
			"PENDING_PAYMENT", "PENDING", "crypto", o.CryptoCurrency, "{}", o.TrackingNumber,
			o.PaidAt, o.ShippedAt, o.DeliveredAt, o.CreatedAt, o.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(item.ID, o.ID, item.ProductID, "Mug", 2, item.Price, item.Image).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tx, o))
	require.NoError(t, repo.CreateItems(context.Background(), tx, []domain.OrderItem{item}))
	require.NoError(t, tx.Commit(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_CreateItems_StopsAtFirstFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	orderID := uuid.New()
	items := []domain.OrderItem{
		{ID: uuid.New(), OrderID: orderID, ProductID: uuid.New(), Name: "A", Quantity: 1, Price: decimal.RequireFromString("1")},
		{ID: uuid.New(), OrderID: orderID, ProductID: uuid.New(), Name: "B", Quantity: 1, Price: decimal.RequireFromString("2")},
		{ID: uuid.New(), OrderID: orderID, ProductID: uuid.New(), Name: "C", Quantity: 1, Price: decimal.RequireFromString("3")},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(items[0].ID, orderID, items[0].ProductID, "A", 1, items[0].Price, items[0].Image).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(items[1].ID, orderID, items[1].ProductID, "B", 1, items[1].Price, items[1].Image).
		WillReturnError(errors.New("foreign key violation"))
	mock.ExpectRollback()

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.CreateItems(context.Background(), tx, items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert order item 1")
	require.NoError(t, tx.Rollback(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_GetByID_LoadsItems(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	o := newTestOrder()
	img := "https://cdn/img.png"

	mock.ExpectQuery("SELECT .+ FROM orders WHERE id").
		WithArgs(o.ID).
		WillReturnRows(orderRow(o))
	mock.ExpectQuery("SELECT .+ FROM order_items WHERE order_id").
		WithArgs(o.ID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "product_id", "name", "quantity", "price", "image"}).
			AddRow(uuid.New(), o.ID, uuid.New(), "Mug", 2, decimal.RequireFromString("10"), &img))

	got, err := repo.GetByID(context.Background(), o.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, o.OrderNumber, got.OrderNumber)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("22")))
	require.Len(t, got.Items, 1)
	assert.Equal(t, img, *got.Items[0].Image)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	id := uuid.New()
	mock.ExpectQuery("SELECT .+ FROM orders WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(orderCols()))

	got, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestOrderRepo_UpdatePaymentStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	o := newTestOrder()
	paidAt := time.Now().UTC()
	o.PaymentStatus = domain.PaymentStatusCompleted
	o.Status = domain.OrderStatusPaid
	o.PaidAt = &paidAt

	mock.ExpectExec("UPDATE orders SET payment_status .+ WHERE id = .+ AND payment_status").
		WithArgs("COMPLETED", "PAID", o.PaidAt, o.UpdatedAt, o.ID, "PENDING").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdatePaymentStatus(context.Background(), nil, o, domain.PaymentStatusPending))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_UpdatePaymentStatus_Stale(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	o := newTestOrder()
	o.PaymentStatus = domain.PaymentStatusCompleted

	mock.ExpectExec("UPDATE orders SET payment_status").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), o.ID, "CONFIRMING").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdatePaymentStatus(context.Background(), nil, o, domain.PaymentStatusConfirming)
	assert.ErrorIs(t, err, domain.ErrStaleOrder)
}

func TestOrderRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	o := newTestOrder()
	shipped := time.Now().UTC()
	o.Status = domain.OrderStatusShipped
	o.ShippedAt = &shipped
	o.TrackingNumber = strPtr("1Z999")

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("SHIPPED", o.TrackingNumber, o.ShippedAt, o.DeliveredAt, o.UpdatedAt, o.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), nil, o))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	o := newTestOrder()

	mock.ExpectQuery("SELECT COUNT.+ FROM orders WHERE user_id").
		WithArgs(o.UserID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT .+ FROM orders WHERE user_id = .+ LIMIT").
		WithArgs(o.UserID, 10, 0).
		WillReturnRows(orderRow(o))

	orders, total, err := repo.ListByUser(context.Background(), o.UserID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, orders, 1)
	assert.Equal(t, o.ID, orders[0].ID)
}
