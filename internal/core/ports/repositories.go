package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"

	"storefront-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountRepository reads users and shops.
type AccountRepository interface {
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetShop(ctx context.Context, id uuid.UUID) (*domain.Shop, error)
	GetShopByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Shop, error)
	ListStaffIDs(ctx context.Context) ([]uuid.UUID, error)
}

// BalanceRepository is the only writer of user and shop balances.
// Debit is a single conditional decrement: it fails with domain.ErrInsufficientBalance
// (and changes nothing) when the balance is lower than amount at the moment of the write.
// A nil tx executes outside any transaction.
type BalanceRepository interface {
	GetBalance(ctx context.Context, scope domain.AccountScope) (decimal.Decimal, error)
	Debit(ctx context.Context, tx pgx.Tx, scope domain.AccountScope, amount decimal.Decimal) (decimal.Decimal, error)
	Credit(ctx context.Context, tx pgx.Tx, scope domain.AccountScope, amount decimal.Decimal) (decimal.Decimal, error)
}

// RequestListParams holds filter + pagination for request listings.
// Scope nil lists every owner (staff view).
type RequestListParams struct {
	Scope    *domain.AccountScope
	OwnerID  *uuid.UUID
	Status   *domain.RequestStatus
	Page     int
	PageSize int
}

// DepositRepository persists deposit requests.
// MarkReviewed only updates rows still PENDING and returns domain.ErrAlreadyReviewed otherwise.
type DepositRepository interface {
	Create(ctx context.Context, req *domain.DepositRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DepositRequest, error)
	MarkReviewed(ctx context.Context, id uuid.UUID, review domain.Review) (*domain.DepositRequest, error)
	List(ctx context.Context, params RequestListParams) ([]domain.DepositRequest, int64, error)
}

// WithdrawalRepository persists withdrawal requests.
type WithdrawalRepository interface {
	Create(ctx context.Context, req *domain.WithdrawalRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WithdrawalRequest, error)
	MarkReviewed(ctx context.Context, tx pgx.Tx, id uuid.UUID, review domain.Review) (*domain.WithdrawalRequest, error)
	List(ctx context.Context, params RequestListParams) ([]domain.WithdrawalRequest, int64, error)
}

// OrderRepository persists orders and their items.
type OrderRepository interface {
	Create(ctx context.Context, tx pgx.Tx, order *domain.Order) error
	CreateItems(ctx context.Context, tx pgx.Tx, items []domain.OrderItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]domain.Order, int64, error)
	// UpdatePaymentStatus compare-and-sets payment_status from `from` and returns domain.ErrStaleOrder
	// when another writer got there first. order carries the new status/paid_at values.
	UpdatePaymentStatus(ctx context.Context, tx pgx.Tx, order *domain.Order, from domain.PaymentStatus) error
	UpdateStatus(ctx context.Context, tx pgx.Tx, order *domain.Order) error
}

// CheckoutKeyRepository is the durable half of checkout idempotency. Reserve runs
// inside the checkout transaction and returns domain.ErrDuplicateCheckout when the
// key is already bound, so two concurrent retries cannot both commit an order.
type CheckoutKeyRepository interface {
	Reserve(ctx context.Context, tx pgx.Tx, key *domain.CheckoutKey) error
	Get(ctx context.Context, key string) (*domain.CheckoutKey, error)
}

// ProductRepository reads catalog products and clones them between shops.
type ProductRepository interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error)
	Clone(ctx context.Context, src *domain.Product, shopID uuid.UUID, slug, sku string) (*domain.Product, error)
}

// NotificationRepository persists delivered notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
