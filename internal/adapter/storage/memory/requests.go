package memory

import (
	"context"
	"sort"
	"time"

	"storefront-ledger/internal/core/domain"
	"storefront-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// matchesRequest mirrors the SQL filter: a user scope only matches rows without a shop.
func matchesRequest(params ports.RequestListParams, userID uuid.UUID, shopID *uuid.UUID, status domain.RequestStatus) bool {
	if params.Scope != nil {
		if params.Scope.IsShop() {
			if shopID == nil || *shopID != params.Scope.ID {
				return false
			}
		} else if userID != params.Scope.ID || shopID != nil {
			return false
		}
	}
	if params.OwnerID != nil && userID != *params.OwnerID {
		return false
	}
	if params.Status != nil && status != *params.Status {
		return false
	}
	return true
}

func paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func applyReview(status *domain.RequestStatus, reviewedAt **time.Time, reviewedBy **uuid.UUID, review domain.Review) {
	at := review.ReviewedAt
	by := review.ReviewerID
	*status = review.Status
	*reviewedAt = &at
	*reviewedBy = &by
}

// DepositRepo implements ports.DepositRepository.
type DepositRepo struct {
	store *Store
}

func NewDepositRepo(s *Store) *DepositRepo {
	return &DepositRepo{store: s}
}

func (r *DepositRepo) Create(ctx context.Context, d *domain.DepositRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *d
	r.store.deposits[d.ID] = &cp
	return nil
}

func (r *DepositRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DepositRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	d, ok := r.store.deposits[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *DepositRepo) MarkReviewed(ctx context.Context, id uuid.UUID, review domain.Review) (*domain.DepositRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	d, ok := r.store.deposits[id]
	if !ok {
		return nil, nil
	}
	if !d.IsPending() {
		return nil, domain.ErrAlreadyReviewed
	}
	applyReview(&d.Status, &d.ReviewedAt, &d.ReviewedBy, review)
	cp := *d
	return &cp, nil
}

func (r *DepositRepo) List(ctx context.Context, params ports.RequestListParams) ([]domain.DepositRequest, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := []domain.DepositRequest{}
	for _, d := range r.store.deposits {
		if matchesRequest(params, d.UserID, d.ShopID, d.Status) {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return paginate(out, params.Page, params.PageSize), int64(len(out)), nil
}

// WithdrawalRepo implements ports.WithdrawalRepository.
type WithdrawalRepo struct {
	store *Store
}

func NewWithdrawalRepo(s *Store) *WithdrawalRepo {
	return &WithdrawalRepo{store: s}
}

func (r *WithdrawalRepo) Create(ctx context.Context, w *domain.WithdrawalRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *w
	r.store.withdrawals[w.ID] = &cp
	return nil
}

func (r *WithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	w, ok := r.store.withdrawals[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

// GetByIDForUpdate reads the row. The memory driver has no row locks; the
// compare-and-set in MarkReviewed plus rollback keeps concurrent reviews exclusive.
func (r *WithdrawalRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	return r.GetByID(ctx, id)
}

func (r *WithdrawalRepo) MarkReviewed(ctx context.Context, tx pgx.Tx, id uuid.UUID, review domain.Review) (*domain.WithdrawalRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	w, ok := r.store.withdrawals[id]
	if !ok {
		return nil, nil
	}
	if !w.IsPending() {
		return nil, domain.ErrAlreadyReviewed
	}
	prev := *w
	applyReview(&w.Status, &w.ReviewedAt, &w.ReviewedBy, review)
	r.store.record(tx, func() { *r.store.withdrawals[id] = prev })
	cp := *w
	return &cp, nil
}

func (r *WithdrawalRepo) List(ctx context.Context, params ports.RequestListParams) ([]domain.WithdrawalRequest, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := []domain.WithdrawalRequest{}
	for _, w := range r.store.withdrawals {
		if matchesRequest(params, w.UserID, w.ShopID, w.Status) {
			out = append(out, *w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return paginate(out, params.Page, params.PageSize), int64(len(out)), nil
}
