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

const withdrawalColumns = `id, user_id, shop_id, currency, network, address, amount, proof_url, status, created_at, reviewed_at, reviewed_by`

// WithdrawalRepo implements ports.WithdrawalRepository.
type WithdrawalRepo struct {
	pool Pool
}

func NewWithdrawalRepo(pool Pool) *WithdrawalRepo {
	return &WithdrawalRepo{pool: pool}
}

func (r *WithdrawalRepo) Create(ctx context.Context, w *domain.WithdrawalRequest) error {
	query := `INSERT INTO withdrawal_requests (id, user_id, shop_id, currency, network, address, amount, proof_url, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.UserID, w.ShopID, w.Currency, w.Network, w.Address,
		w.Amount, w.ProofURL, string(w.Status), w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert withdrawal request: %w", err)
	}
	return nil
}

func (r *WithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1`
	return scanWithdrawal(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate locks the request row until the transaction ends.
// This MUST be called within a transaction.
func (r *WithdrawalRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1 FOR UPDATE`
	return scanWithdrawal(tx.QueryRow(ctx, query, id))
}

// MarkReviewed moves a PENDING withdrawal to its review outcome inside tx.
func (r *WithdrawalRepo) MarkReviewed(ctx context.Context, tx pgx.Tx, id uuid.UUID, review domain.Review) (*domain.WithdrawalRequest, error) {
	query := `UPDATE withdrawal_requests SET status = $1, reviewed_at = $2, reviewed_by = $3
		WHERE id = $4 AND status = 'PENDING'
		RETURNING ` + withdrawalColumns

	q := on(r.pool, tx)
	w, err := scanWithdrawal(q.QueryRow(ctx, query, string(review.Status), review.ReviewedAt, review.ReviewerID, id))
	if err != nil {
		return nil, fmt.Errorf("review withdrawal request: %w", err)
	}
	if w != nil {
		return w, nil
	}

	existing, err := scanWithdrawal(q.QueryRow(ctx, `SELECT `+withdrawalColumns+` FROM withdrawal_requests WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	return nil, domain.ErrAlreadyReviewed
}

func (r *WithdrawalRepo) List(ctx context.Context, params ports.RequestListParams) ([]domain.WithdrawalRequest, int64, error) {
	where, args, argIdx := requestFilter(params)

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM withdrawal_requests "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count withdrawal requests: %w", err)
	}

	page, args := pageClause(params, argIdx, args)
	rows, err := r.pool.Query(ctx,
		"SELECT "+withdrawalColumns+" FROM withdrawal_requests "+where+" ORDER BY created_at DESC"+page, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list withdrawal requests: %w", err)
	}
	defer rows.Close()

	out := []domain.WithdrawalRequest{}
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate withdrawal rows: %w", err)
	}
	return out, total, nil
}

func scanWithdrawal(row pgx.Row) (*domain.WithdrawalRequest, error) {
	w := &domain.WithdrawalRequest{}
	err := row.Scan(
		&w.ID, &w.UserID, &w.ShopID, &w.Currency, &w.Network, &w.Address, &w.Amount,
		&w.ProofURL, &w.Status, &w.CreatedAt, &w.ReviewedAt, &w.ReviewedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan withdrawal request: %w", err)
	}
	return w, nil
}
