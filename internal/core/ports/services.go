package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"storefront-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Actor is the verified session context: who is calling and with what authority.
type Actor struct {
	UserID uuid.UUID
	Role   domain.Role
}

// IsStaff reports whether the actor holds review authority.
func (a Actor) IsStaff() bool { return a.Role.IsStaff() }

// TokenService handles JWT session tokens.
type TokenService interface {
	Generate(userID uuid.UUID, role domain.Role) (string, time.Time, error)
	Validate(tokenString string) (*Actor, error)
}

// IdempotencyCache is the Redis-layer replay cache for checkout.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// EventQueue carries post-commit side effects (notifications, catalog cloning) to the dispatcher.
type EventQueue interface {
	Enqueue(ctx context.Context, evt domain.Event) error
	// Dequeue blocks up to timeout and returns nil, nil when nothing arrived.
	Dequeue(ctx context.Context, timeout time.Duration) (*domain.Event, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// --- Service Ports (Business Logic) ---

// BalanceView is the balance of one resolved scope.
type BalanceView struct {
	Scope   domain.AccountScope
	Balance decimal.Decimal
}

// LedgerService resolves balance scopes and exposes balances.
type LedgerService interface {
	// ResolveScope returns User(caller) for a nil shopID, or Shop(shopID) when the caller owns it.
	ResolveScope(ctx context.Context, callerID uuid.UUID, shopID *uuid.UUID) (domain.AccountScope, error)
	Balance(ctx context.Context, callerID uuid.UUID, shopID *uuid.UUID) (*BalanceView, error)
}

// SubmitDepositInput holds validated input for a deposit claim.
type SubmitDepositInput struct {
	UserID   uuid.UUID
	ShopID   *uuid.UUID
	Currency string
	Network  *string
	Amount   decimal.Decimal
	ProofURL *string
}

// SubmitWithdrawalInput holds validated input for a withdrawal request.
type SubmitWithdrawalInput struct {
	UserID   uuid.UUID
	ShopID   *uuid.UUID
	Currency string
	Network  *string
	Address  string
	Amount   decimal.Decimal
	ProofURL *string
}

// ReviewInput moves a request out of PENDING.
type ReviewInput struct {
	Reviewer  Actor
	RequestID uuid.UUID
	Status    domain.RequestStatus
}

// DepositService runs the deposit request workflow.
type DepositService interface {
	Submit(ctx context.Context, in SubmitDepositInput) (*domain.DepositRequest, error)
	Review(ctx context.Context, in ReviewInput) (*domain.DepositRequest, error)
	ListMine(ctx context.Context, callerID uuid.UUID, shopID *uuid.UUID) ([]domain.DepositRequest, error)
	List(ctx context.Context, actor Actor, params RequestListParams) ([]domain.DepositRequest, int64, error)
}

// WithdrawalService runs the withdrawal request workflow.
type WithdrawalService interface {
	Submit(ctx context.Context, in SubmitWithdrawalInput) (*domain.WithdrawalRequest, error)
	Review(ctx context.Context, in ReviewInput) (*domain.WithdrawalRequest, error)
	ListMine(ctx context.Context, callerID uuid.UUID, shopID *uuid.UUID) ([]domain.WithdrawalRequest, error)
	List(ctx context.Context, actor Actor, params RequestListParams) ([]domain.WithdrawalRequest, int64, error)
}

// PlaceOrderInput holds validated checkout input.
type PlaceOrderInput struct {
	UserID             uuid.UUID
	Items              []domain.LineItem
	PaymentMethod      string
	CryptoCurrency     *string
	PayWithShopBalance bool
	AddToStore         bool
	ShippingAddress    *domain.ShippingAddress
	IdempotencyKey     string
}

// UpdateOrderStatusInput is a fulfilment transition requested by staff or the seller.
type UpdateOrderStatusInput struct {
	OrderID        uuid.UUID
	Status         domain.OrderStatus
	TrackingNumber *string
}

// OrderService runs checkout and order transitions.
type OrderService interface {
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, actor Actor, id uuid.UUID) (*domain.Order, error)
	ListMine(ctx context.Context, actor Actor, page, pageSize int) ([]domain.Order, int64, error)
	UpdatePaymentStatus(ctx context.Context, actor Actor, id uuid.UUID, status domain.PaymentStatus) (*domain.Order, error)
	UpdateStatus(ctx context.Context, actor Actor, in UpdateOrderStatusInput) (*domain.Order, error)
}

// NotificationService is the fire-and-forget notification sink. Producer methods never fail
// the caller; errors are logged.
type NotificationService interface {
	NotifyUser(ctx context.Context, userID uuid.UUID, notice domain.Notice)
	NotifyStaff(ctx context.Context, notice domain.Notice)
	ScheduleCatalogClone(ctx context.Context, task domain.CloneTask)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
}

// CatalogService copies platform products into a buyer's shop.
type CatalogService interface {
	CloneIntoBuyerShop(ctx context.Context, task domain.CloneTask) (int, error)
}

// AuditService records audit entries asynchronously.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
