package postgres

import (
	"context"
	"errors"
	"fmt"

	"storefront-ledger/internal/core/domain"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// CheckoutKeyRepo implements ports.CheckoutKeyRepository over checkout_keys.
type CheckoutKeyRepo struct {
	pool Pool
}

func NewCheckoutKeyRepo(pool Pool) *CheckoutKeyRepo {
	return &CheckoutKeyRepo{pool: pool}
}

// Reserve binds key to its order inside tx. The primary key on checkout_keys
// serializes concurrent retries: the loser gets domain.ErrDuplicateCheckout
// once the winner commits.
func (r *CheckoutKeyRepo) Reserve(ctx context.Context, tx pgx.Tx, key *domain.CheckoutKey) error {
	_, err := on(r.pool, tx).Exec(ctx,
		`INSERT INTO checkout_keys (key, user_id, order_id, created_at) VALUES ($1, $2, $3, $4)`,
		key.Key, key.UserID, key.OrderID, key.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateCheckout
		}
		return fmt.Errorf("reserve checkout key: %w", err)
	}
	return nil
}

// Get returns nil, nil when the key was never committed.
func (r *CheckoutKeyRepo) Get(ctx context.Context, key string) (*domain.CheckoutKey, error) {
	var k domain.CheckoutKey
	err := r.pool.QueryRow(ctx,
		`SELECT key, user_id, order_id, created_at FROM checkout_keys WHERE key = $1`, key,
	).Scan(&k.Key, &k.UserID, &k.OrderID, &k.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get checkout key: %w", err)
	}
	return &k, nil
}
