package postgres

import (
	"context"
	"errors"
	"fmt"

	"storefront-ledger/internal/core/domain"
	"storefront-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const depositColumns = `id, user_id, shop_id, currency, network, amount, proof_url, status, created_at, reviewed_at, reviewed_by`

// DepositRepo implements ports.DepositRepository.
type DepositRepo struct {
	pool Pool
}

func NewDepositRepo(pool Pool) *DepositRepo {
	return &DepositRepo{pool: pool}
}

func (r *DepositRepo) Create(ctx context.Context, d *domain.DepositRequest) error {
	query := `INSERT INTO deposit_requests (id, user_id, shop_id, currency, network, amount, proof_url, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		d.ID, d.UserID, d.ShopID, d.Currency, d.Network,
		d.Amount, d.ProofURL, string(d.Status), d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert deposit request: %w", err)
	}
	return nil
}

func (r *DepositRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DepositRequest, error) {
	query := `SELECT ` + depositColumns + ` FROM deposit_requests WHERE id = $1`
	return scanDeposit(r.pool.QueryRow(ctx, query, id))
}

// MarkReviewed moves a PENDING deposit to its review outcome. A request that is
// no longer PENDING yields domain.ErrAlreadyReviewed; a missing one yields nil, nil.
func (r *DepositRepo) MarkReviewed(ctx context.Context, id uuid.UUID, review domain.Review) (*domain.DepositRequest, error) {
	query := `UPDATE deposit_requests SET status = $1, reviewed_at = $2, reviewed_by = $3
		WHERE id = $4 AND status = 'PENDING'
		RETURNING ` + depositColumns

	d, err := scanDeposit(r.pool.QueryRow(ctx, query, string(review.Status), review.ReviewedAt, review.ReviewerID, id))
	if err != nil {
		return nil, fmt.Errorf("review deposit request: %w", err)
	}
	if d != nil {
		return d, nil
	}

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	return nil, domain.ErrAlreadyReviewed
}

func (r *DepositRepo) List(ctx context.Context, params ports.RequestListParams) ([]domain.DepositRequest, int64, error) {
	where, args, argIdx := requestFilter(params)

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM deposit_requests "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count deposit requests: %w", err)
	}

	page, args := pageClause(params, argIdx, args)
	rows, err := r.pool.Query(ctx,
		"SELECT "+depositColumns+" FROM deposit_requests "+where+" ORDER BY created_at DESC"+page, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list deposit requests: %w", err)
	}
	defer rows.Close()

	out := []domain.DepositRequest{}
	for rows.Next() {
		d, err := scanDeposit(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate deposit rows: %w", err)
	}
	return out, total, nil
}

func scanDeposit(row pgx.Row) (*domain.DepositRequest, error) {
	d := &domain.DepositRequest{}
	err := row.Scan(
		&d.ID, &d.UserID, &d.ShopID, &d.Currency, &d.Network, &d.Amount,
		&d.ProofURL, &d.Status, &d.CreatedAt, &d.ReviewedAt, &d.ReviewedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan deposit request: %w", err)
	}
	return d, nil
}
