package postgres

import (
	"context"
	"testing"
	"time"

	"storefront-ledger/internal/core/domain"
	"storefront-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestWithdrawal(shopID *uuid.UUID) *domain.WithdrawalRequest {
	return &domain.WithdrawalRequest{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ShopID:    shopID,
		Currency:  "USDT",
		Network:   strPtr("TRC20"),
		Address:   "TXyz",
		Amount:    decimal.RequireFromString("25"),
		Status:    domain.RequestStatusPending,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func withdrawalCols() []string {
	return []string{"id", "user_id", "shop_id", "currency", "network", "address", "amount",
		"proof_url", "status", "created_at", "reviewed_at", "reviewed_by"}
}

func withdrawalRow(w *domain.WithdrawalRequest) *pgxmock.Rows {
	return pgxmock.NewRows(withdrawalCols()).AddRow(
		w.ID, w.UserID, w.ShopID, w.Currency, w.Network, w.Address, w.Amount,
		w.ProofURL, w.Status, w.CreatedAt, w.ReviewedAt, w.ReviewedBy,
	)
}

func depositCols() []string {
	return []string{"id", "user_id", "shop_id", "currency", "network", "amount",
		"proof_url", "status", "created_at", "reviewed_at", "reviewed_by"}
}

func TestDepositRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDepositRepo(mock)
	d := &domain.DepositRequest{
		ID: uuid.New(), UserID: uuid.New(), Currency: "BTC",
		Amount: decimal.RequireFromString("0.5"), Status: domain.RequestStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO deposit_requests").
		WithArgs(d.ID, d.UserID, d.ShopID, d.Currency, d.Network, d.Amount, d.ProofURL, "PENDING", d.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), d))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepositRepo_MarkReviewed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDepositRepo(mock)
	id := uuid.New()
	reviewer := uuid.New()
	now := time.Now().UTC()
	review := domain.Review{Status: domain.RequestStatusApproved, ReviewerID: reviewer, ReviewedAt: now}

	mock.ExpectQuery("UPDATE deposit_requests SET status .+ WHERE id = .+ AND status = 'PENDING'").
		WithArgs("APPROVED", now, reviewer, id).
		WillReturnRows(pgxmock.NewRows(depositCols()).AddRow(
			id, uuid.New(), nil, "BTC", nil, decimal.RequireFromString("1"),
			nil, domain.RequestStatusApproved, now, &now, &reviewer,
		))

	d, err := repo.MarkReviewed(context.Background(), id, review)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, domain.RequestStatusApproved, d.Status)
	require.NotNil(t, d.ReviewedBy)
	assert.Equal(t, reviewer, *d.ReviewedBy)
	assert.Nil(t, d.ShopID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepositRepo_MarkReviewed_AlreadyReviewed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDepositRepo(mock)
	id := uuid.New()
	now := time.Now().UTC()
	review := domain.Review{Status: domain.RequestStatusRejected, ReviewerID: uuid.New(), ReviewedAt: now}

	mock.ExpectQuery("UPDATE deposit_requests").
		WithArgs("REJECTED", now, review.ReviewerID, id).
		WillReturnRows(pgxmock.NewRows(depositCols()))
	mock.ExpectQuery("SELECT .+ FROM deposit_requests WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(depositCols()).AddRow(
			id, uuid.New(), nil, "BTC", nil, decimal.RequireFromString("1"),
			nil, domain.RequestStatusApproved, now, &now, &review.ReviewerID,
		))

	d, err := repo.MarkReviewed(context.Background(), id, review)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, domain.ErrAlreadyReviewed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepositRepo_MarkReviewed_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDepositRepo(mock)
	id := uuid.New()
	review := domain.Review{Status: domain.RequestStatusApproved, ReviewerID: uuid.New(), ReviewedAt: time.Now().UTC()}

	mock.ExpectQuery("UPDATE deposit_requests").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), id).
		WillReturnRows(pgxmock.NewRows(depositCols()))
	mock.ExpectQuery("SELECT .+ FROM deposit_requests WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(depositCols()))

	d, err := repo.MarkReviewed(context.Background(), id, review)
	assert.NoError(t, err)
	assert.Nil(t, d)
}

func TestDepositRepo_List_UserScopeExcludesShopRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDepositRepo(mock)
	userID := uuid.New()
	scope := domain.UserScope(userID)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT COUNT.+ FROM deposit_requests WHERE user_id = \\$1 AND shop_id IS NULL").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT .+ FROM deposit_requests WHERE user_id = \\$1 AND shop_id IS NULL ORDER BY created_at DESC$").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(depositCols()).AddRow(
			uuid.New(), userID, nil, "ETH", nil, decimal.RequireFromString("3"),
			nil, domain.RequestStatusPending, now, nil, nil,
		))

	items, total, err := repo.List(context.Background(), ports.RequestListParams{Scope: &scope})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].ShopID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_List_StaffWithStatusAndPaging(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	status := domain.RequestStatusPending
	shopID := uuid.New()
	w := newTestWithdrawal(&shopID)

	mock.ExpectQuery("SELECT COUNT.+ FROM withdrawal_requests WHERE status = \\$1").
		WithArgs("PENDING").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(21)))
	mock.ExpectQuery("SELECT .+ FROM withdrawal_requests WHERE status = \\$1 ORDER BY created_at DESC LIMIT \\$2 OFFSET \\$3").
		WithArgs("PENDING", 20, 20).
		WillReturnRows(withdrawalRow(w))

	items, total, err := repo.List(context.Background(), ports.RequestListParams{Status: &status, Page: 2, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].ShopID)
	assert.Equal(t, shopID, *items[0].ShopID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	w := newTestWithdrawal(nil)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM withdrawal_requests WHERE id = .+ FOR UPDATE").
		WithArgs(w.ID).
		WillReturnRows(withdrawalRow(w))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	got, err := repo.GetByIDForUpdate(context.Background(), tx, w.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "TXyz", got.Address)
	assert.True(t, got.Amount.Equal(w.Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_MarkReviewed_InTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	w := newTestWithdrawal(nil)
	now := time.Now().UTC()
	reviewer := uuid.New()
	approved := *w
	approved.Status = domain.RequestStatusApproved
	approved.ReviewedAt = &now
	approved.ReviewedBy = &reviewer

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE withdrawal_requests SET status").
		WithArgs("APPROVED", now, reviewer, w.ID).
		WillReturnRows(withdrawalRow(&approved))
	mock.ExpectCommit()

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	got, err := repo.MarkReviewed(context.Background(), tx, w.ID, domain.Review{
		Status: domain.RequestStatusApproved, ReviewerID: reviewer, ReviewedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusApproved, got.Status)
	require.NoError(t, tx.Commit(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_MarkReviewed_AlreadyReviewed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	w := newTestWithdrawal(nil)
	w.Status = domain.RequestStatusRejected

	mock.ExpectQuery("UPDATE withdrawal_requests SET status").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), w.ID).
		WillReturnRows(pgxmock.NewRows(withdrawalCols()))
	mock.ExpectQuery("SELECT .+ FROM withdrawal_requests WHERE id").
		WithArgs(w.ID).
		WillReturnRows(withdrawalRow(w))

	_, err = repo.MarkReviewed(context.Background(), nil, w.ID, domain.Review{
		Status: domain.RequestStatusApproved, ReviewerID: uuid.New(), ReviewedAt: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyReviewed)
}
