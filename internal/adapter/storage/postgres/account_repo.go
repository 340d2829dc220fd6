package postgres

import (
	"context"
	"errors"
	"fmt"

	"storefront-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

func (r *AccountRepo) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT id, email, name, role, balance, created_at FROM users WHERE id = $1`

	u := &domain.User{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.Balance, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *AccountRepo) GetShop(ctx context.Context, id uuid.UUID) (*domain.Shop, error) {
	query := `SELECT id, owner_id, name, slug, balance, created_at FROM shops WHERE id = $1`
	return r.scanShop(r.pool.QueryRow(ctx, query, id))
}

// GetShopByOwner returns the oldest shop of the owner.
func (r *AccountRepo) GetShopByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Shop, error) {
	query := `SELECT id, owner_id, name, slug, balance, created_at FROM shops
		WHERE owner_id = $1 ORDER BY created_at ASC LIMIT 1`
	return r.scanShop(r.pool.QueryRow(ctx, query, ownerID))
}

// ListStaffIDs returns every ADMIN and MANAGER user id.
func (r *AccountRepo) ListStaffIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM users WHERE role IN ('ADMIN', 'MANAGER') ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan staff id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate staff rows: %w", err)
	}
	return ids, nil
}

func (r *AccountRepo) scanShop(row pgx.Row) (*domain.Shop, error) {
	s := &domain.Shop{}
	err := row.Scan(&s.ID, &s.OwnerID, &s.Name, &s.Slug, &s.Balance, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan shop: %w", err)
	}
	return s, nil
}
