package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"storefront-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func copyOrder(o *domain.Order) *domain.Order {
	cp := *o
	cp.Items = append([]domain.OrderItem(nil), o.Items...)
	return &cp
}

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	store *Store
}

func NewOrderRepo(s *Store) *OrderRepo {
	return &OrderRepo{store: s}
}

func (r *OrderRepo) Create(ctx context.Context, tx pgx.Tx, o *domain.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.orders[o.ID]; exists {
		return fmt.Errorf("insert order: duplicate id %s", o.ID)
	}
	for _, existing := range r.store.orders {
		if existing.OrderNumber == o.OrderNumber {
			return fmt.Errorf("insert order: duplicate order number %s", o.OrderNumber)
		}
	}
	stored := copyOrder(o)
	stored.Items = nil
	r.store.orders[o.ID] = stored
	r.store.record(tx, func() { delete(r.store.orders, o.ID) })
	return nil
}

// CreateItems appends lines to their order; the order must exist.
func (r *OrderRepo) CreateItems(ctx context.Context, tx pgx.Tx, items []domain.OrderItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, it := range items {
		o, ok := r.store.orders[it.OrderID]
		if !ok {
			return fmt.Errorf("insert order item %d: order %s not found", i, it.OrderID)
		}
		o.Items = append(o.Items, it)
		orderID := it.OrderID
		r.store.record(tx, func() {
			if o, ok := r.store.orders[orderID]; ok && len(o.Items) > 0 {
				o.Items = o.Items[:len(o.Items)-1]
			}
		})
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	o, ok := r.store.orders[id]
	if !ok {
		return nil, nil
	}
	return copyOrder(o), nil
}

func (r *OrderRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Order, error) {
	return r.GetByID(ctx, id)
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]domain.Order, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := []domain.Order{}
	for _, o := range r.store.orders {
		if o.UserID == userID {
			cp := copyOrder(o)
			cp.Items = nil
			out = append(out, *cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return paginate(out, page, pageSize), int64(len(out)), nil
}

func (r *OrderRepo) UpdatePaymentStatus(ctx context.Context, tx pgx.Tx, o *domain.Order, from domain.PaymentStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored, ok := r.store.orders[o.ID]
	if !ok || stored.PaymentStatus != from {
		return domain.ErrStaleOrder
	}
	prev := *stored
	stored.PaymentStatus = o.PaymentStatus
	stored.Status = o.Status
	stored.PaidAt = o.PaidAt
	stored.UpdatedAt = o.UpdatedAt
	r.store.record(tx, func() { restoreOrder(r.store, prev) })
	return nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, o *domain.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored, ok := r.store.orders[o.ID]
	if !ok {
		return fmt.Errorf("order not found: %s", o.ID)
	}
	prev := *stored
	stored.Status = o.Status
	stored.TrackingNumber = o.TrackingNumber
	stored.ShippedAt = o.ShippedAt
	stored.DeliveredAt = o.DeliveredAt
	stored.UpdatedAt = o.UpdatedAt
	r.store.record(tx, func() { restoreOrder(r.store, prev) })
	return nil
}

// CheckoutKeyRepo implements ports.CheckoutKeyRepository.
type CheckoutKeyRepo struct {
	store *Store
}

func NewCheckoutKeyRepo(s *Store) *CheckoutKeyRepo {
	return &CheckoutKeyRepo{store: s}
}

func (r *CheckoutKeyRepo) Reserve(ctx context.Context, tx pgx.Tx, key *domain.CheckoutKey) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, taken := r.store.checkoutKeys[key.Key]; taken {
		return domain.ErrDuplicateCheckout
	}
	if _, ok := r.store.orders[key.OrderID]; !ok {
		return fmt.Errorf("reserve checkout key: order %s not found", key.OrderID)
	}
	r.store.checkoutKeys[key.Key] = *key
	k := key.Key
	r.store.record(tx, func() { delete(r.store.checkoutKeys, k) })
	return nil
}

func (r *CheckoutKeyRepo) Get(ctx context.Context, key string) (*domain.CheckoutKey, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	k, ok := r.store.checkoutKeys[key]
	if !ok {
		return nil, nil
	}
	return &k, nil
}

func restoreOrder(s *Store, prev domain.Order) {
	if o, ok := s.orders[prev.ID]; ok {
		items := o.Items
		*o = prev
		o.Items = items
	}
}

// ProductRepo implements ports.ProductRepository.
type ProductRepo struct {
	store *Store
}

func NewProductRepo(s *Store) *ProductRepo {
	return &ProductRepo{store: s}
}

func (r *ProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []domain.Product
	for _, id := range ids {
		if p, ok := r.store.products[id]; ok {
			out = append(out, *copyProduct(p))
		}
	}
	return out, nil
}

func (r *ProductRepo) Clone(ctx context.Context, src *domain.Product, shopID uuid.UUID, slug, sku string) (*domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.products {
		if p.Slug == slug {
			return nil, fmt.Errorf("insert cloned product: duplicate slug %s", slug)
		}
	}
	clone := &domain.Product{
		ID:          uuid.New(),
		ShopID:      &shopID,
		Name:        src.Name,
		Slug:        slug,
		SKU:         sku,
		Description: src.Description,
		Price:       src.Price,
		Stock:       src.Stock,
		CreatedAt:   time.Now().UTC(),
	}
	for _, img := range src.Images {
		clone.Images = append(clone.Images, domain.ProductImage{
			ID:        uuid.New(),
			ProductID: clone.ID,
			URL:       img.URL,
			IsPrimary: img.IsPrimary,
			SortOrder: img.SortOrder,
		})
	}
	r.store.products[clone.ID] = copyProduct(clone)
	return clone, nil
}
