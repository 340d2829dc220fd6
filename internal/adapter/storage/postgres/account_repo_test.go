package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepo_GetUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM users WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "role", "balance", "created_at"}).
			AddRow(id, "ann@example.com", "Ann", domain.RoleManager, decimal.RequireFromString("12.5"), now))

	u, err := repo.GetUser(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, domain.RoleManager, u.Role)
	assert.True(t, u.Role.IsStaff())
	assert.Equal(t, "12.5", u.Balance.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_GetUser_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	id := uuid.New()
	mock.ExpectQuery("SELECT .+ FROM users WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "role", "balance", "created_at"}))

	u, err := repo.GetUser(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestAccountRepo_GetShopByOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	owner := uuid.New()
	shopID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM shops WHERE owner_id = .+ ORDER BY created_at ASC LIMIT 1").
		WithArgs(owner).
		WillReturnRows(pgxmock.NewRows([]string{"id", "owner_id", "name", "slug", "balance", "created_at"}).
			AddRow(shopID, owner, "Corner Shop", "corner-shop", decimal.Zero, time.Now().UTC()))

	s, err := repo.GetShopByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, shopID, s.ID)
	assert.Equal(t, "corner-shop", s.Slug)
}

func TestAccountRepo_GetShop_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	id := uuid.New()
	mock.ExpectQuery("SELECT .+ FROM shops WHERE id").
		WithArgs(id).
		WillReturnError(errors.New("timeout"))

	s, err := repo.GetShop(context.Background(), id)
	assert.Nil(t, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan shop")
}

func TestAccountRepo_ListStaffIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a, b := uuid.New(), uuid.New()
	mock.ExpectQuery("SELECT id FROM users WHERE role IN").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(a).AddRow(b))

	ids, err := repo.ListStaffIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
