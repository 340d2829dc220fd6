package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"storefront-ledger/internal/adapter/storage/memory"
	"storefront-ledger/internal/core/domain"
	"storefront-ledger/internal/core/ports"
	"storefront-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryEnv wires every service against the in-memory driver.
type memoryEnv struct {
	store       *memory.Store
	queue       *memory.EventQueue
	accounts    *memory.AccountRepo
	balances    ports.BalanceRepository
	orderRepo   ports.OrderRepository
	idempCache  ports.IdempotencyCache
	ledger      *LedgerServiceImpl
	deposits    *DepositServiceImpl
	withdrawals *WithdrawalServiceImpl
	orders      *OrderServiceImpl
	notifier    *NotificationServiceImpl
	dispatcher  *EventDispatcher
}

type envOption func(*memoryEnv)

func withOrderRepo(wrap func(ports.OrderRepository) ports.OrderRepository) envOption {
	return func(e *memoryEnv) { e.orderRepo = wrap(e.orderRepo) }
}

func withIdempotencyCache(wrap func(ports.IdempotencyCache) ports.IdempotencyCache) envOption {
	return func(e *memoryEnv) { e.idempCache = wrap(e.idempCache) }
}

func newMemoryEnv(t *testing.T, opts ...envOption) *memoryEnv {
	t.Helper()
	log := newTestLogger()
	store := memory.NewStore()
	e := &memoryEnv{
		store:      store,
		queue:      memory.NewEventQueue(1024),
		accounts:   memory.NewAccountRepo(store),
		balances:   memory.NewBalanceRepo(store),
		orderRepo:  memory.NewOrderRepo(store),
		idempCache: memory.NewIdempotencyCache(),
	}
	for _, opt := range opts {
		opt(e)
	}

	transactor := memory.NewTransactor(store)
	notifications := memory.NewNotificationRepo(store)
	products := memory.NewProductRepo(store)

	e.notifier = NewNotificationService(e.queue, notifications, log)
	e.ledger = NewLedgerService(e.accounts, e.balances, log)
	e.deposits = NewDepositService(memory.NewDepositRepo(store), e.ledger, e.notifier, log)
	e.withdrawals = NewWithdrawalService(memory.NewWithdrawalRepo(store), e.balances, e.ledger, transactor, e.notifier, log)
	e.orders = NewOrderService(e.orderRepo, memory.NewCheckoutKeyRepo(store), products, e.accounts, e.balances, transactor,
		e.idempCache, e.notifier, time.Hour, log)
	e.dispatcher = NewEventDispatcher(e.queue, notifications, e.accounts,
		NewCatalogService(e.accounts, products, log),
		DispatcherConfig{Concurrency: 2, BlockTimeout: 10 * time.Millisecond, MaxAttempts: 3}, log)
	return e
}

func (e *memoryEnv) balance(t *testing.T, scope domain.AccountScope) decimal.Decimal {
	t.Helper()
	bal, err := e.balances.GetBalance(context.Background(), scope)
	require.NoError(t, err)
	return bal
}

func (e *memoryEnv) seedUser(t *testing.T, balance string) *domain.User {
	t.Helper()
	return e.store.AddUser(domain.User{Email: uuid.NewString() + "@example.com", Balance: dec(balance)})
}

// drain runs every queued event through the dispatcher synchronously.
func (e *memoryEnv) drain(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	for e.queue.Len() > 0 {
		evt, err := e.queue.Dequeue(ctx, time.Millisecond)
		require.NoError(t, err)
		require.NotNil(t, evt)
		require.NoError(t, e.dispatcher.Handle(ctx, *evt))
	}
}

// failingItems writes the first line through the real repository, then fails on the second.
type failingItems struct{ ports.OrderRepository }

func (f failingItems) CreateItems(ctx context.Context, tx pgx.Tx, items []domain.OrderItem) error {
	if err := f.OrderRepository.CreateItems(ctx, tx, items[:1]); err != nil {
		return err
	}
	return errors.New("insert order item 1: connection reset")
}

// rendezvousCache holds every lookup until all expected callers have missed the cache.
type rendezvousCache struct {
	ports.IdempotencyCache
	arrived *sync.WaitGroup
}

func (c rendezvousCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.arrived.Done()
	c.arrived.Wait()
	return nil, nil
}

// drainingBalances empties the payer right before the debit runs, as a concurrent spender would.
type drainingBalances struct {
	ports.BalanceRepository
	store *memory.Store
}

func (d drainingBalances) Debit(ctx context.Context, tx pgx.Tx, scope domain.AccountScope, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := d.store.SetBalance(scope, decimal.Zero); err != nil {
		return decimal.Zero, err
	}
	return d.BalanceRepository.Debit(ctx, tx, scope, amount)
}

func TestWorkflow_OrderTotals(t *testing.T) {
	e := newMemoryEnv(t)
	buyer := e.seedUser(t, "100")
	a := e.store.AddProduct(domain.Product{Name: "A"})
	b := e.store.AddProduct(domain.Product{Name: "B"})

	order, err := e.orders.PlaceOrder(context.Background(), ports.PlaceOrderInput{
		UserID: buyer.ID,
		Items: []domain.LineItem{
			{ProductID: a.ID, Quantity: 2, Price: dec("10")},
			{ProductID: b.ID, Quantity: 1, Price: dec("5")},
		},
		PaymentMethod: "balance",
	})
	require.NoError(t, err)
	assert.True(t, order.Total.Equal(dec("27.5")), "total %s", order.Total)
	assert.True(t, e.balance(t, domain.UserScope(buyer.ID)).Equal(dec("72.5")))
}

func TestWorkflow_OrderIsAtomic(t *testing.T) {
	e := newMemoryEnv(t, withOrderRepo(func(r ports.OrderRepository) ports.OrderRepository {
		return failingItems{r}
	}))
	ctx := context.Background()
	buyer := e.seedUser(t, "100")
	a := e.store.AddProduct(domain.Product{Name: "A"})
	b := e.store.AddProduct(domain.Product{Name: "B"})

	_, err := e.orders.PlaceOrder(ctx, ports.PlaceOrderInput{
		UserID: buyer.ID,
		Items: []domain.LineItem{
			{ProductID: a.ID, Quantity: 1, Price: dec("10")},
			{ProductID: b.ID, Quantity: 1, Price: dec("5")},
		},
		PaymentMethod:  "balance",
		IdempotencyKey: "cart-9",
	})
	assertAppError(t, err, "SYS_001", "")
	assert.Zero(t, e.store.OrderCount())
	assert.True(t, e.balance(t, domain.UserScope(buyer.ID)).Equal(dec("100")))
	assert.Zero(t, e.queue.Len(), "no notification for a rolled back order")

	key, err := memory.NewCheckoutKeyRepo(e.store).Get(ctx, domain.CheckoutIdempotencyKey(buyer.ID, "cart-9"))
	require.NoError(t, err)
	assert.Nil(t, key, "a failed checkout releases its idempotency key")
}

func TestWorkflow_DebitAfterPersistRollsBackOrder(t *testing.T) {
	e := newMemoryEnv(t, func(e *memoryEnv) {
		e.balances = drainingBalances{BalanceRepository: e.balances, store: e.store}
	})
	buyer := e.seedUser(t, "50")
	p := e.store.AddProduct(domain.Product{Name: "A"})

	_, err := e.orders.PlaceOrder(context.Background(), ports.PlaceOrderInput{
		UserID:        buyer.ID,
		Items:         []domain.LineItem{{ProductID: p.ID, Quantity: 1, Price: dec("10")}},
		PaymentMethod: "balance",
	})
	assertAppError(t, err, "FUND_001", "User balance too low")
	assert.Zero(t, e.store.OrderCount())
	assert.True(t, e.balance(t, domain.UserScope(buyer.ID)).IsZero(), "only the concurrent spend is visible")
}

func TestWorkflow_WithdrawalApprovedOnce(t *testing.T) {
	e := newMemoryEnv(t)
	ctx := context.Background()
	user := e.seedUser(t, "100")

	w, err := e.withdrawals.Submit(ctx, ports.SubmitWithdrawalInput{
		UserID: user.ID, Currency: "USDT", Address: "addr", Amount: dec("60"),
	})
	require.NoError(t, err)

	review := ports.ReviewInput{Reviewer: staffActor, RequestID: w.ID, Status: domain.RequestStatusApproved}
	_, err = e.withdrawals.Review(ctx, review)
	require.NoError(t, err)

	_, err = e.withdrawals.Review(ctx, review)
	assert.ErrorIs(t, err, apperror.ErrAlreadyReviewed())

	review.Status = domain.RequestStatusRejected
	_, err = e.withdrawals.Review(ctx, review)
	assert.ErrorIs(t, err, apperror.ErrAlreadyReviewed())

	assert.True(t, e.balance(t, domain.UserScope(user.ID)).Equal(dec("40")))
}

func TestWorkflow_ConcurrentApprovalsNeverOverdraw(t *testing.T) {
	e := newMemoryEnv(t)
	ctx := context.Background()
	user := e.seedUser(t, "100")

	const n = 10
	ids := make([]uuid.UUID, n)
	for i := range ids {
		w, err := e.withdrawals.Submit(ctx, ports.SubmitWithdrawalInput{
			UserID: user.ID, Currency: "USDT", Address: "addr", Amount: dec("30"),
		})
		require.NoError(t, err)
		ids[i] = w.ID
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		approved int
		tooLow   int
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := e.withdrawals.Review(ctx, ports.ReviewInput{Reviewer: staffActor, RequestID: id, Status: domain.RequestStatusApproved})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				approved++
			case errors.Is(err, apperror.ErrUserBalanceTooLow()):
				tooLow++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 3, approved)
	assert.Equal(t, n-3, tooLow)
	assert.True(t, e.balance(t, domain.UserScope(user.ID)).Equal(dec("10")))

	pending, err := e.withdrawals.ListMine(ctx, user.ID, nil)
	require.NoError(t, err)
	stillPending := 0
	for _, w := range pending {
		if w.IsPending() {
			stillPending++
		}
	}
	assert.Equal(t, n-3, stillPending, "failed approvals leave the request pending")
}

func TestWorkflow_ShopScopeIsolation(t *testing.T) {
	e := newMemoryEnv(t)
	ctx := context.Background()
	owner := e.seedUser(t, "5")
	shop := e.store.AddShop(domain.Shop{OwnerID: owner.ID, Name: "Owner shop", Balance: dec("80")})

	w, err := e.withdrawals.Submit(ctx, ports.SubmitWithdrawalInput{
		UserID: owner.ID, ShopID: &shop.ID, Currency: "USDT", Address: "addr", Amount: dec("50"),
	})
	require.NoError(t, err)
	_, err = e.withdrawals.Review(ctx, ports.ReviewInput{Reviewer: staffActor, RequestID: w.ID, Status: domain.RequestStatusApproved})
	require.NoError(t, err)

	assert.True(t, e.balance(t, domain.ShopScope(shop.ID)).Equal(dec("30")))
	assert.True(t, e.balance(t, domain.UserScope(owner.ID)).Equal(dec("5")))

	userRows, err := e.withdrawals.ListMine(ctx, owner.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, userRows, "shop rows stay out of the personal listing")

	shopRows, err := e.withdrawals.ListMine(ctx, owner.ID, &shop.ID)
	require.NoError(t, err)
	assert.Len(t, shopRows, 1)
}

func TestWorkflow_ForeignShopIsForbidden(t *testing.T) {
	e := newMemoryEnv(t)
	ctx := context.Background()
	owner := e.seedUser(t, "0")
	intruder := e.seedUser(t, "0")
	shop := e.store.AddShop(domain.Shop{OwnerID: owner.ID, Balance: dec("80")})

	_, err := e.deposits.Submit(ctx, ports.SubmitDepositInput{UserID: intruder.ID, ShopID: &shop.ID, Currency: "BTC", Amount: dec("1")})
	assert.ErrorIs(t, err, apperror.ErrForbidden())

	_, err = e.withdrawals.Submit(ctx, ports.SubmitWithdrawalInput{UserID: intruder.ID, ShopID: &shop.ID, Currency: "BTC", Address: "a", Amount: dec("1")})
	assert.ErrorIs(t, err, apperror.ErrForbidden())

	_, err = e.ledger.Balance(ctx, intruder.ID, &shop.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden())
}

func TestWorkflow_DepositApprovalDoesNotCredit(t *testing.T) {
	e := newMemoryEnv(t)
	ctx := context.Background()
	user := e.seedUser(t, "10")

	d, err := e.deposits.Submit(ctx, ports.SubmitDepositInput{UserID: user.ID, Currency: "BTC", Amount: dec("500")})
	require.NoError(t, err)
	reviewed, err := e.deposits.Review(ctx, ports.ReviewInput{Reviewer: staffActor, RequestID: d.ID, Status: domain.RequestStatusApproved})
	require.NoError(t, err)

	assert.Equal(t, domain.RequestStatusApproved, reviewed.Status)
	assert.True(t, e.balance(t, domain.UserScope(user.ID)).Equal(dec("10")))
}

func TestWorkflow_ShopCreditedOnceOnCompletion(t *testing.T) {
	e := newMemoryEnv(t)
	ctx := context.Background()
	buyer := e.seedUser(t, "0")
	seller := e.seedUser(t, "0")
	shop := e.store.AddShop(domain.Shop{OwnerID: seller.ID, Name: "Seller"})
	p := e.store.AddProduct(domain.Product{Name: "Lamp", ShopID: &shop.ID})

	order, err := e.orders.PlaceOrder(ctx, ports.PlaceOrderInput{
		UserID:        buyer.ID,
		Items:         []domain.LineItem{{ProductID: p.ID, Quantity: 1, Price: dec("100")}},
		PaymentMethod: "crypto",
	})
	require.NoError(t, err)
	require.NotNil(t, order.ShopID)
	assert.True(t, e.balance(t, domain.ShopScope(shop.ID)).IsZero())

	_, err = e.orders.UpdatePaymentStatus(ctx, staffActor, order.ID, domain.PaymentStatusCompleted)
	require.NoError(t, err)
	assert.True(t, e.balance(t, domain.ShopScope(shop.ID)).Equal(dec("110")))

	again, err := e.orders.UpdatePaymentStatus(ctx, staffActor, order.ID, domain.PaymentStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, again.Status)
	assert.True(t, e.balance(t, domain.ShopScope(shop.ID)).Equal(dec("110")))
}

func TestWorkflow_NotificationsAndCatalogClone(t *testing.T) {
	e := newMemoryEnv(t)
	ctx := context.Background()
	staff := e.store.AddUser(domain.User{Email: "ops@example.com", Role: domain.RoleAdmin})
	buyer := e.seedUser(t, "100")
	buyerShop := e.store.AddShop(domain.Shop{OwnerID: buyer.ID, Name: "Buyer shop"})
	seller := e.seedUser(t, "0")
	sellerShop := e.store.AddShop(domain.Shop{OwnerID: seller.ID, Name: "Seller shop"})

	template := e.store.AddProduct(domain.Product{
		Name: "Café Mug", SKU: "MUG", Price: dec("8"),
		Images: []domain.ProductImage{{URL: "mug.png", IsPrimary: true}},
	})
	listed := e.store.AddProduct(domain.Product{Name: "Lamp", SKU: "LAMP", ShopID: &sellerShop.ID})

	_, err := e.orders.PlaceOrder(ctx, ports.PlaceOrderInput{
		UserID: buyer.ID,
		Items: []domain.LineItem{
			{ProductID: template.ID, Quantity: 1, Price: dec("8")},
			{ProductID: listed.ID, Quantity: 1, Price: dec("2")},
		},
		PaymentMethod: "balance",
		AddToStore:    true,
	})
	require.NoError(t, err)

	_, err = e.deposits.Submit(ctx, ports.SubmitDepositInput{UserID: buyer.ID, Currency: "BTC", Amount: dec("1")})
	require.NoError(t, err)

	e.drain(t)

	buyerNotes, err := e.notifier.List(ctx, buyer.ID, 0)
	require.NoError(t, err)
	assert.Len(t, buyerNotes, 2)

	sellerNotes, err := e.notifier.List(ctx, seller.ID, 0)
	require.NoError(t, err)
	require.Len(t, sellerNotes, 1)
	assert.Equal(t, "New order", sellerNotes[0].Title)

	staffNotes, err := e.notifier.List(ctx, staff.ID, 0)
	require.NoError(t, err)
	assert.Len(t, staffNotes, 1)

	var clones []domain.Product
	for _, p := range e.store.Products() {
		if p.ShopID != nil && *p.ShopID == buyerShop.ID {
			clones = append(clones, p)
		}
	}
	require.Len(t, clones, 1, "only the platform product is cloned")
	assert.Equal(t, "Café Mug", clones[0].Name)
	assert.Regexp(t, `^cafe-mug-[0-9a-f]{8}$`, clones[0].Slug)
	assert.Regexp(t, `^MUG-[0-9a-f]{8}$`, clones[0].SKU)
	assert.Len(t, clones[0].Images, 1)
}

func TestWorkflow_IdempotentCheckout(t *testing.T) {
	e := newMemoryEnv(t)
	ctx := context.Background()
	buyer := e.seedUser(t, "100")
	p := e.store.AddProduct(domain.Product{Name: "A"})

	in := ports.PlaceOrderInput{
		UserID:         buyer.ID,
		Items:          []domain.LineItem{{ProductID: p.ID, Quantity: 1, Price: dec("10")}},
		PaymentMethod:  "balance",
		IdempotencyKey: "cart-42",
	}
	first, err := e.orders.PlaceOrder(ctx, in)
	require.NoError(t, err)
	second, err := e.orders.PlaceOrder(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, e.store.OrderCount())
	assert.True(t, e.balance(t, domain.UserScope(buyer.ID)).Equal(dec("89")))
}

func TestWorkflow_ConcurrentCheckoutsWithSameKeyPlaceOneOrder(t *testing.T) {
	var arrived sync.WaitGroup
	arrived.Add(2)
	e := newMemoryEnv(t, withIdempotencyCache(func(c ports.IdempotencyCache) ports.IdempotencyCache {
		return rendezvousCache{IdempotencyCache: c, arrived: &arrived}
	}))
	ctx := context.Background()
	buyer := e.seedUser(t, "1000")
	p := e.store.AddProduct(domain.Product{Name: "A"})

	in := ports.PlaceOrderInput{
		UserID:         buyer.ID,
		Items:          []domain.LineItem{{ProductID: p.ID, Quantity: 1, Price: dec("10")}},
		PaymentMethod:  "balance",
		IdempotencyKey: "cart-42",
	}

	var wg sync.WaitGroup
	results := make([]*domain.Order, 2)
	errs := make([]error, 2)
	for i := range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = e.orders.PlaceOrder(ctx, in)
		}()
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, results[0].ID, results[1].ID)
	assert.Equal(t, 1, e.store.OrderCount())
	assert.True(t, e.balance(t, domain.UserScope(buyer.ID)).Equal(dec("989")), "buyer debited once")
}
