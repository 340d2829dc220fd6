package memory

import (
	"context"
	"fmt"
	"sort"

	"storefront-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	store *Store
}

func NewAccountRepo(s *Store) *AccountRepo {
	return &AccountRepo{store: s}
}

func (r *AccountRepo) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *AccountRepo) GetShop(ctx context.Context, id uuid.UUID) (*domain.Shop, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	sh, ok := r.store.shops[id]
	if !ok {
		return nil, nil
	}
	cp := *sh
	return &cp, nil
}

// GetShopByOwner returns the oldest shop of the owner.
func (r *AccountRepo) GetShopByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Shop, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var found *domain.Shop
	for _, sh := range r.store.shops {
		if sh.OwnerID != ownerID {
			continue
		}
		if found == nil || sh.CreatedAt.Before(found.CreatedAt) {
			found = sh
		}
	}
	if found == nil {
		return nil, nil
	}
	cp := *found
	return &cp, nil
}

func (r *AccountRepo) ListStaffIDs(ctx context.Context) ([]uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var staff []*domain.User
	for _, u := range r.store.users {
		if u.Role.IsStaff() {
			staff = append(staff, u)
		}
	}
	sort.Slice(staff, func(i, j int) bool { return staff[i].CreatedAt.Before(staff[j].CreatedAt) })
	ids := make([]uuid.UUID, len(staff))
	for i, u := range staff {
		ids[i] = u.ID
	}
	return ids, nil
}

// BalanceRepo implements ports.BalanceRepository.
type BalanceRepo struct {
	store *Store
}

func NewBalanceRepo(s *Store) *BalanceRepo {
	return &BalanceRepo{store: s}
}

func (r *BalanceRepo) GetBalance(ctx context.Context, scope domain.AccountScope) (decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	bal, err := r.store.balanceRef(scope)
	if err != nil {
		return decimal.Zero, err
	}
	return *bal, nil
}

// Debit checks and decrements under the store lock, so it is atomic with respect to every other write.
func (r *BalanceRepo) Debit(ctx context.Context, tx pgx.Tx, scope domain.AccountScope, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("debit amount must be positive, got %s", amount)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	bal, err := r.store.balanceRef(scope)
	if err != nil {
		return decimal.Zero, err
	}
	if bal.LessThan(amount) {
		return decimal.Zero, domain.ErrInsufficientBalance
	}
	*bal = bal.Sub(amount)
	r.store.record(tx, func() {
		if ref, err := r.store.balanceRef(scope); err == nil {
			*ref = ref.Add(amount)
		}
	})
	return *bal, nil
}

func (r *BalanceRepo) Credit(ctx context.Context, tx pgx.Tx, scope domain.AccountScope, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("credit amount must be positive, got %s", amount)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	bal, err := r.store.balanceRef(scope)
	if err != nil {
		return decimal.Zero, err
	}
	*bal = bal.Add(amount)
	r.store.record(tx, func() {
		if ref, err := r.store.balanceRef(scope); err == nil {
			*ref = ref.Sub(amount)
		}
	})
	return *bal, nil
}
