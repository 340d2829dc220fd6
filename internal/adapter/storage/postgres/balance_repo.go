package postgres

import (
	"context"
	"errors"
	"fmt"

	"storefront-ledger/internal/core/domain"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// BalanceRepo implements ports.BalanceRepository over the balance columns of users and shops.
type BalanceRepo struct {
	pool Pool
}

func NewBalanceRepo(pool Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool}
}

func balanceTable(scope domain.AccountScope) (string, error) {
	switch scope.Kind {
	case domain.ScopeUser:
		return "users", nil
	case domain.ScopeShop:
		return "shops", nil
	}
	return "", fmt.Errorf("unknown scope kind %q", scope.Kind)
}

// GetBalance reads the current balance of the scope.
func (r *BalanceRepo) GetBalance(ctx context.Context, scope domain.AccountScope) (decimal.Decimal, error) {
	table, err := balanceTable(scope)
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err = r.pool.QueryRow(ctx, "SELECT balance FROM "+table+" WHERE id = $1", scope.ID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrScopeNotFound
		}
		return decimal.Zero, fmt.Errorf("get %s balance: %w", scope.Kind, err)
	}
	return balance, nil
}

// Debit decrements the balance in one conditional statement. The row is only
// touched when it still holds at least amount, so concurrent debits can never
// drive it below zero.
func (r *BalanceRepo) Debit(ctx context.Context, tx pgx.Tx, scope domain.AccountScope, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("debit amount must be positive, got %s", amount)
	}
	table, err := balanceTable(scope)
	if err != nil {
		return decimal.Zero, err
	}

	q := on(r.pool, tx)
	query := "UPDATE " + table + " SET balance = balance - $1 WHERE id = $2 AND balance >= $1 RETURNING balance"

	var balance decimal.Decimal
	err = q.QueryRow(ctx, query, amount, scope.ID).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if isCheckViolation(err) {
		return decimal.Zero, domain.ErrInsufficientBalance
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, fmt.Errorf("debit %s balance: %w", scope.Kind, err)
	}

	var exists bool
	if err := q.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM "+table+" WHERE id = $1)", scope.ID).Scan(&exists); err != nil {
		return decimal.Zero, fmt.Errorf("check %s exists: %w", scope.Kind, err)
	}
	if !exists {
		return decimal.Zero, domain.ErrScopeNotFound
	}
	return decimal.Zero, domain.ErrInsufficientBalance
}

// Credit increments the balance.
func (r *BalanceRepo) Credit(ctx context.Context, tx pgx.Tx, scope domain.AccountScope, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("credit amount must be positive, got %s", amount)
	}
	table, err := balanceTable(scope)
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	query := "UPDATE " + table + " SET balance = balance + $1 WHERE id = $2 RETURNING balance"
	err = on(r.pool, tx).QueryRow(ctx, query, amount, scope.ID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrScopeNotFound
		}
		return decimal.Zero, fmt.Errorf("credit %s balance: %w", scope.Kind, err)
	}
	return balance, nil
}

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation
}
