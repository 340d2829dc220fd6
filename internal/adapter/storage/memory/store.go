// Package memory is a process-local storage driver used for development and tests.
// It implements the same ports as the postgres adapter, including transactional
// rollback of ledger writes.
//
// There is no isolation between transactions. A Tx applies each write to the shared
// tables as soon as the repository call returns, so concurrent readers observe it
// before Commit, and Rollback reverts it afterwards. Read-committed visibility only
// holds on the postgres driver.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"storefront-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

var errSQLUnsupported = errors.New("memory: raw SQL is not supported")

// Store holds every table of the ledger behind one mutex.
type Store struct {
	mu            sync.Mutex
	users         map[uuid.UUID]*domain.User
	shops         map[uuid.UUID]*domain.Shop
	deposits      map[uuid.UUID]*domain.DepositRequest
	withdrawals   map[uuid.UUID]*domain.WithdrawalRequest
	orders        map[uuid.UUID]*domain.Order
	products      map[uuid.UUID]*domain.Product
	checkoutKeys  map[string]domain.CheckoutKey
	notifications []domain.Notification
	audits        []domain.AuditLog
}

func NewStore() *Store {
	return &Store{
		users:        make(map[uuid.UUID]*domain.User),
		shops:        make(map[uuid.UUID]*domain.Shop),
		deposits:     make(map[uuid.UUID]*domain.DepositRequest),
		withdrawals:  make(map[uuid.UUID]*domain.WithdrawalRequest),
		orders:       make(map[uuid.UUID]*domain.Order),
		products:     make(map[uuid.UUID]*domain.Product),
		checkoutKeys: make(map[string]domain.CheckoutKey),
	}
}

// AddUser seeds a user. Zero ID and CreatedAt are filled in.
func (s *Store) AddUser(u domain.User) *domain.User {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = &u
	cp := u
	return &cp
}

// AddShop seeds a shop owned by an existing user.
func (s *Store) AddShop(sh domain.Shop) *domain.Shop {
	if sh.ID == uuid.Nil {
		sh.ID = uuid.New()
	}
	if sh.CreatedAt.IsZero() {
		sh.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shops[sh.ID] = &sh
	cp := sh
	return &cp
}

// AddProduct seeds a catalog product.
func (s *Store) AddProduct(p domain.Product) *domain.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	for i := range p.Images {
		p.Images[i].ProductID = p.ID
		if p.Images[i].ID == uuid.Nil {
			p.Images[i].ID = uuid.New()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = copyProduct(&p)
	return copyProduct(&p)
}

// SetBalance overwrites the balance of a scope. Intended for seeding.
func (s *Store) SetBalance(scope domain.AccountScope, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bal, err := s.balanceRef(scope)
	if err != nil {
		return err
	}
	*bal = amount
	return nil
}

// Products returns a snapshot of the catalog.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *copyProduct(p))
	}
	return out
}

// OrderCount reports how many orders are stored.
func (s *Store) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func (s *Store) balanceRef(scope domain.AccountScope) (*decimal.Decimal, error) {
	switch scope.Kind {
	case domain.ScopeUser:
		if u, ok := s.users[scope.ID]; ok {
			return &u.Balance, nil
		}
	case domain.ScopeShop:
		if sh, ok := s.shops[scope.ID]; ok {
			return &sh.Balance, nil
		}
	}
	return nil, domain.ErrScopeNotFound
}

// record registers an undo step on tx. It must be called with s.mu held.
func (s *Store) record(tx pgx.Tx, undo func()) {
	if t, ok := tx.(*Tx); ok && t != nil {
		t.undo = append(t.undo, undo)
	}
}

func copyProduct(p *domain.Product) *domain.Product {
	cp := *p
	cp.Images = append([]domain.ProductImage(nil), p.Images...)
	return &cp
}

// Transactor implements ports.DBTransactor.
type Transactor struct {
	store *Store
}

func NewTransactor(s *Store) *Transactor {
	return &Transactor{store: s}
}

func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &Tx{store: t.store}, nil
}

// Tx is a pgx.Tx whose repository writes are applied immediately and undone on Rollback.
type Tx struct {
	store  *Store
	undo   []func()
	closed bool
}

func (t *Tx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *Tx) Commit(ctx context.Context) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.closed = true
	t.undo = nil
	return nil
}

// Rollback reverts the transaction's writes in reverse order.
func (t *Tx) Rollback(ctx context.Context) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.closed = true
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
	return nil
}

func (t *Tx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, errSQLUnsupported
}
func (t *Tx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *Tx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *Tx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, errSQLUnsupported
}
func (t *Tx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), errSQLUnsupported
}
func (t *Tx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errSQLUnsupported
}
func (t *Tx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *Tx) Conn() *pgx.Conn                                            { return nil }

// HealthCheck implements ports.HealthChecker for the memory driver.
type HealthCheck struct{}

func NewHealthCheck() *HealthCheck { return &HealthCheck{} }

func (h *HealthCheck) Ping(ctx context.Context) error { return nil }

func (h *HealthCheck) Name() string { return "memory" }
