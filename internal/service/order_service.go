package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-ledger/internal/core/domain"
	"storefront-ledger/internal/core/ports"
	"storefront-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	defaultOrderPageSize = 20
	maxOrderPageSize     = 100
)

// OrderServiceImpl implements ports.OrderService.
type OrderServiceImpl struct {
	orders         ports.OrderRepository
	checkoutKeys   ports.CheckoutKeyRepository
	products       ports.ProductRepository
	accounts       ports.AccountRepository
	balances       ports.BalanceRepository
	transactor     ports.DBTransactor
	idempCache     ports.IdempotencyCache
	notifier       ports.NotificationService
	idempotencyTTL time.Duration
	log            zerolog.Logger
}

func NewOrderService(
	orders ports.OrderRepository,
	checkoutKeys ports.CheckoutKeyRepository,
	products ports.ProductRepository,
	accounts ports.AccountRepository,
	balances ports.BalanceRepository,
	transactor ports.DBTransactor,
	idempCache ports.IdempotencyCache,
	notifier ports.NotificationService,
	idempotencyTTL time.Duration,
	log zerolog.Logger,
) *OrderServiceImpl {
	return &OrderServiceImpl{
		orders:         orders,
		checkoutKeys:   checkoutKeys,
		products:       products,
		accounts:       accounts,
		balances:       balances,
		transactor:     transactor,
		idempCache:     idempCache,
		notifier:       notifier,
		idempotencyTTL: idempotencyTTL,
		log:            log,
	}
}

// PlaceOrder validates the cart, then persists the order, its items and the balance
// debit (for balance payments) in a single transaction. The debit is a conditional
// decrement, so a balance drained between the pre-check and the write aborts the
// whole order.
//
// With an Idempotency-Key the cache is only a fast path. The key is also reserved
// in checkout_keys inside the same transaction, so a retry racing the first attempt
// loses on the unique key, rolls back and replays the winner's order.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, in ports.PlaceOrderInput) (*domain.Order, error) {
	if in.UserID == uuid.Nil {
		return nil, apperror.ErrUnauthenticated()
	}
	if len(in.Items) == 0 {
		return nil, apperror.ErrEmptyCart()
	}
	for i, it := range in.Items {
		if it.ProductID == uuid.Nil {
			return nil, apperror.Validation(fmt.Sprintf("items[%d]: productId is required", i))
		}
		if it.Quantity <= 0 {
			return nil, apperror.Validation(fmt.Sprintf("items[%d]: quantity must be greater than zero", i))
		}
		if it.Price.IsNegative() {
			return nil, apperror.Validation(fmt.Sprintf("items[%d]: price must not be negative", i))
		}
	}
	method := strings.ToLower(strings.TrimSpace(in.PaymentMethod))
	if method == "" {
		return nil, apperror.Validation("paymentMethod is required")
	}
	payByBalance := method == domain.PaymentMethodBalance

	var idempKey string
	if in.IdempotencyKey != "" {
		idempKey = domain.CheckoutIdempotencyKey(in.UserID, in.IdempotencyKey)
		cached, err := s.idempCache.Get(ctx, idempKey)
		if err != nil {
			s.log.Warn().Err(err).Str("key", idempKey).Msg("idempotency cache lookup failed, placing order")
		}
		if cached != nil {
			return s.unmarshalCachedOrder(cached)
		}
		replayed, err := s.replayCheckout(ctx, idempKey)
		if err != nil || replayed != nil {
			return replayed, err
		}
	}

	totals := domain.ComputeTotals(in.Items)

	var payer domain.AccountScope
	if payByBalance {
		scope, err := s.payerScope(ctx, in)
		if err != nil {
			return nil, err
		}
		balance, err := s.balances.GetBalance(ctx, scope)
		if err != nil {
			if errors.Is(err, domain.ErrScopeNotFound) {
				return nil, apperror.ErrNotFound("account")
			}
			return nil, apperror.ErrDatabaseError(fmt.Errorf("get balance: %w", err))
		}
		if balance.LessThan(totals.Total) {
			return nil, balanceTooLow(scope)
		}
		payer = scope
	}

	catalog, err := s.loadProducts(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:             uuid.New(),
		OrderNumber:    domain.NewOrderNumber(now),
		UserID:         in.UserID,
		ShopID:         singleShop(in.Items, catalog),
		Subtotal:       totals.Subtotal,
		Shipping:       totals.Shipping,
		Tax:            totals.Tax,
		Total:          totals.Total,
		Status:         domain.OrderStatusPendingPayment,
		PaymentStatus:  domain.PaymentStatusPending,
		PaymentMethod:  method,
		CryptoCurrency: in.CryptoCurrency,
		Notes: domain.OrderNotes{
			ShippingAddress: in.ShippingAddress,
			Payment: domain.PaymentNote{
				Method:             method,
				CryptoCurrency:     in.CryptoCurrency,
				PayWithShopBalance: in.PayWithShopBalance,
			},
		}.Encode(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if payByBalance {
		order.Status = domain.OrderStatusPaid
		order.PaymentStatus = domain.PaymentStatusCompleted
		order.PaidAt = &now
	}

	items := make([]domain.OrderItem, len(in.Items))
	for i, it := range in.Items {
		p := catalog[it.ProductID]
		items[i] = domain.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: it.ProductID,
			Name:      p.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Image:     p.PrimaryImage(),
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.orders.Create(ctx, dbTx, order); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create order: %w", err))
	}
	if idempKey != "" {
		err := s.checkoutKeys.Reserve(ctx, dbTx, &domain.CheckoutKey{
			Key:       idempKey,
			UserID:    in.UserID,
			OrderID:   order.ID,
			CreatedAt: now,
		})
		if errors.Is(err, domain.ErrDuplicateCheckout) {
			_ = dbTx.Rollback(ctx)
			s.log.Info().Str("key", idempKey).Msg("concurrent checkout with same idempotency key, replaying")
			replayed, err := s.replayCheckout(ctx, idempKey)
			if err != nil {
				return nil, err
			}
			if replayed == nil {
				return nil, apperror.ErrCheckoutInProgress()
			}
			return replayed, nil
		}
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("reserve checkout key: %w", err))
		}
	}
	if err := s.orders.CreateItems(ctx, dbTx, items); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create order items: %w", err))
	}
	if payByBalance && totals.Total.IsPositive() {
		if _, err := s.balances.Debit(ctx, dbTx, payer, totals.Total); err != nil {
			s.log.Warn().Err(err).
				Str("order_id", order.ID.String()).
				Str("scope", payer.String()).
				Msg("checkout debit failed")
			return nil, debitError(payer, err)
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}
	order.Items = items

	if idempKey != "" {
		s.cacheCheckout(ctx, idempKey, order)
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Str("user_id", in.UserID.String()).
		Str("total", order.Total.String()).
		Str("payment_method", method).
		Msg("order placed")

	s.afterPlaceOrder(ctx, in, order, catalog, payByBalance)

	return order, nil
}

// payerScope picks the balance a checkout is paid from.
func (s *OrderServiceImpl) payerScope(ctx context.Context, in ports.PlaceOrderInput) (domain.AccountScope, error) {
	if !in.PayWithShopBalance {
		return domain.UserScope(in.UserID), nil
	}
	shop, err := s.accounts.GetShopByOwner(ctx, in.UserID)
	if err != nil {
		return domain.AccountScope{}, apperror.ErrDatabaseError(fmt.Errorf("get buyer shop: %w", err))
	}
	if shop == nil {
		return domain.AccountScope{}, apperror.ErrNotFound("shop")
	}
	return domain.ShopScope(shop.ID), nil
}

func (s *OrderServiceImpl) loadProducts(ctx context.Context, items []domain.LineItem) (map[uuid.UUID]domain.Product, error) {
	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]bool, len(items))
	for _, it := range items {
		if !seen[it.ProductID] {
			seen[it.ProductID] = true
			ids = append(ids, it.ProductID)
		}
	}
	products, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load products: %w", err))
	}
	catalog := make(map[uuid.UUID]domain.Product, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}
	for _, id := range ids {
		if _, ok := catalog[id]; !ok {
			return nil, apperror.Validation(fmt.Sprintf("product %s not found", id))
		}
	}
	return catalog, nil
}

// singleShop returns the seller shop when every line belongs to the same shop.
// Platform products and mixed carts leave the order without a shop.
func singleShop(items []domain.LineItem, catalog map[uuid.UUID]domain.Product) *uuid.UUID {
	var shopID *uuid.UUID
	for _, it := range items {
		p := catalog[it.ProductID]
		if p.ShopID == nil {
			return nil
		}
		if shopID != nil && *shopID != *p.ShopID {
			return nil
		}
		id := *p.ShopID
		shopID = &id
	}
	return shopID
}

// afterPlaceOrder emits the post-commit side effects of a checkout.
func (s *OrderServiceImpl) afterPlaceOrder(ctx context.Context, in ports.PlaceOrderInput, order *domain.Order, catalog map[uuid.UUID]domain.Product, payByBalance bool) {
	link := "/orders/" + order.ID.String()
	s.notifier.NotifyUser(ctx, in.UserID, domain.Notice{
		Title:   "Order placed",
		Message: fmt.Sprintf("Your order %s for %s has been placed.", order.OrderNumber, order.Total),
		Type:    domain.NotificationOrder,
		Link:    link,
	})

	notified := map[uuid.UUID]bool{in.UserID: true}
	for _, p := range catalog {
		if p.ShopID == nil {
			continue
		}
		shop, err := s.accounts.GetShop(ctx, *p.ShopID)
		if err != nil || shop == nil {
			s.log.Warn().Err(err).Str("shop_id", p.ShopID.String()).Msg("could not resolve seller for order notice")
			continue
		}
		if notified[shop.OwnerID] {
			continue
		}
		notified[shop.OwnerID] = true
		s.notifier.NotifyUser(ctx, shop.OwnerID, domain.Notice{
			Title:   "New order",
			Message: fmt.Sprintf("Order %s includes products from %s.", order.OrderNumber, shop.Name),
			Type:    domain.NotificationOrder,
			Link:    link,
		})
	}

	if !in.AddToStore || !payByBalance {
		return
	}
	var platform []uuid.UUID
	for _, it := range in.Items {
		if catalog[it.ProductID].IsPlatform() {
			platform = append(platform, it.ProductID)
		}
	}
	if len(platform) > 0 {
		s.notifier.ScheduleCatalogClone(ctx, domain.CloneTask{
			BuyerID:    in.UserID,
			OrderID:    order.ID,
			ProductIDs: platform,
		})
	}
}

// replayCheckout returns the order a committed checkout key points at, or nil when
// the key is unused. The cache is refilled on the way out.
func (s *OrderServiceImpl) replayCheckout(ctx context.Context, idempKey string) (*domain.Order, error) {
	key, err := s.checkoutKeys.Get(ctx, idempKey)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get checkout key: %w", err))
	}
	if key == nil {
		return nil, nil
	}
	order, err := s.orders.GetByID(ctx, key.OrderID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get replayed order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	s.cacheCheckout(ctx, idempKey, order)
	return order, nil
}

// cacheCheckout is best effort; checkout_keys stays authoritative.
func (s *OrderServiceImpl) cacheCheckout(ctx context.Context, idempKey string, order *domain.Order) {
	respJSON, err := json.Marshal(order)
	if err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to marshal order for idempotency cache")
		return
	}
	if err := s.idempCache.Set(ctx, idempKey, respJSON, s.idempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache checkout response")
	}
}

func (s *OrderServiceImpl) unmarshalCachedOrder(data []byte) (*domain.Order, error) {
	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached order: %w", err))
	}
	return &order, nil
}

// GetOrder returns an order to its buyer, to staff, or to the owner of its shop.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, actor ports.Actor, id uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	if err := s.authorizeOrder(ctx, actor, order, true); err != nil {
		return nil, err
	}
	return order, nil
}

// authorizeOrder allows staff and the seller; the buyer only when allowBuyer is set.
func (s *OrderServiceImpl) authorizeOrder(ctx context.Context, actor ports.Actor, order *domain.Order, allowBuyer bool) error {
	if actor.IsStaff() || (allowBuyer && order.UserID == actor.UserID) {
		return nil
	}
	if order.ShopID != nil {
		shop, err := s.accounts.GetShop(ctx, *order.ShopID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("get order shop: %w", err))
		}
		if shop != nil && shop.OwnerID == actor.UserID {
			return nil
		}
	}
	return apperror.ErrForbidden()
}

func (s *OrderServiceImpl) ListMine(ctx context.Context, actor ports.Actor, page, pageSize int) ([]domain.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultOrderPageSize
	}
	if pageSize > maxOrderPageSize {
		pageSize = maxOrderPageSize
	}
	orders, total, err := s.orders.ListByUser(ctx, actor.UserID, page, pageSize)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(fmt.Errorf("list orders: %w", err))
	}
	return orders, total, nil
}

// UpdatePaymentStatus records a settlement outcome. The first transition into
// COMPLETED credits the seller shop with the order total in the same transaction
// as the compare-and-set on payment_status, so a repeated or concurrent update can
// never credit twice.
func (s *OrderServiceImpl) UpdatePaymentStatus(ctx context.Context, actor ports.Actor, id uuid.UUID, status domain.PaymentStatus) (*domain.Order, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown payment status %q", status))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	order, err := s.orders.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}

	prev := order.PaymentStatus
	if prev == status {
		return order, nil
	}

	now := time.Now().UTC()
	order.PaymentStatus = status
	order.UpdatedAt = now
	if status == domain.PaymentStatusCompleted {
		if order.PaidAt == nil {
			order.PaidAt = &now
		}
		if order.Status == domain.OrderStatusPendingPayment {
			order.Status = domain.OrderStatusPaid
		}
	}

	if err := s.orders.UpdatePaymentStatus(ctx, dbTx, order, prev); err != nil {
		if errors.Is(err, domain.ErrStaleOrder) {
			return nil, apperror.ErrStaleOrder()
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update payment status: %w", err))
	}

	credited := decimal.Zero
	if status == domain.PaymentStatusCompleted && order.ShopID != nil && order.Total.IsPositive() {
		scope := domain.ShopScope(*order.ShopID)
		if _, err := s.balances.Credit(ctx, dbTx, scope, order.Total); err != nil {
			if errors.Is(err, domain.ErrScopeNotFound) {
				return nil, apperror.ErrNotFound("shop")
			}
			return nil, apperror.ErrDatabaseError(fmt.Errorf("credit %s: %w", scope, err))
		}
		credited = order.Total
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("from", string(prev)).
		Str("to", string(status)).
		Str("credited", credited.String()).
		Msg("order payment status updated")

	s.notifier.NotifyUser(ctx, order.UserID, domain.Notice{
		Title:   "Payment " + strings.ToLower(string(status)),
		Message: fmt.Sprintf("Payment for order %s is now %s.", order.OrderNumber, status),
		Type:    domain.NotificationOrder,
		Link:    "/orders/" + order.ID.String(),
	})

	return order, nil
}

// UpdateStatus moves an order along its fulfilment graph.
func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, actor ports.Actor, in ports.UpdateOrderStatusInput) (*domain.Order, error) {
	if !in.Status.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown order status %q", in.Status))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	order, err := s.orders.GetByIDForUpdate(ctx, dbTx, in.OrderID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	if err := s.authorizeOrder(ctx, actor, order, false); err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(in.Status) {
		return nil, apperror.ErrInvalidTransition(string(order.Status), string(in.Status))
	}

	prev := order.Status
	now := time.Now().UTC()
	order.Status = in.Status
	order.UpdatedAt = now
	switch in.Status {
	case domain.OrderStatusShipped:
		order.ShippedAt = &now
		if in.TrackingNumber != nil {
			order.TrackingNumber = in.TrackingNumber
		}
	case domain.OrderStatusDelivered:
		order.DeliveredAt = &now
	}

	if err := s.orders.UpdateStatus(ctx, dbTx, order); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update order status: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("from", string(prev)).
		Str("to", string(in.Status)).
		Str("actor_id", actor.UserID.String()).
		Msg("order status updated")

	message := fmt.Sprintf("Order %s is now %s.", order.OrderNumber, in.Status)
	if in.Status == domain.OrderStatusShipped && order.TrackingNumber != nil {
		message = fmt.Sprintf("Order %s has shipped. Tracking number: %s.", order.OrderNumber, *order.TrackingNumber)
	}
	s.notifier.NotifyUser(ctx, order.UserID, domain.Notice{
		Title:   "Order " + strings.ToLower(string(in.Status)),
		Message: message,
		Type:    domain.NotificationOrder,
		Link:    "/orders/" + order.ID.String(),
	})

	return order, nil
}
