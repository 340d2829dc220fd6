package service

import (
	"context"
	"errors"
	"testing"

	"storefront-ledger/internal/core/domain"
	"storefront-ledger/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupCatalogService(t *testing.T) (*CatalogServiceImpl, *mocks.MockAccountRepository, *mocks.MockProductRepository) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountRepository(ctrl)
	products := mocks.NewMockProductRepository(ctrl)
	svc := NewCatalogService(accounts, products, newTestLogger())
	svc.suffix = func() string { return "x1y2z3w4" }
	return svc, accounts, products
}

func TestCatalogService_CloneIntoBuyerShop(t *testing.T) {
	svc, accounts, products := setupCatalogService(t)
	ctx := context.Background()
	buyer := uuid.New()
	shopID := uuid.New()
	otherShop := uuid.New()
	platform := domain.Product{ID: uuid.New(), Name: "Desk Lamp", SKU: "LMP-1"}
	broken := domain.Product{ID: uuid.New(), Name: "Broken", SKU: "BRK"}
	listed := domain.Product{ID: uuid.New(), Name: "Listed", SKU: "LST", ShopID: &otherShop}
	task := domain.CloneTask{BuyerID: buyer, ProductIDs: []uuid.UUID{platform.ID, broken.ID, listed.ID}}

	accounts.EXPECT().GetShopByOwner(ctx, buyer).Return(&domain.Shop{ID: shopID, OwnerID: buyer}, nil)
	products.EXPECT().GetByIDs(ctx, task.ProductIDs).Return([]domain.Product{platform, broken, listed}, nil)
	products.EXPECT().Clone(ctx, gomock.Any(), shopID, "desk-lamp-x1y2z3w4", "LMP-1-x1y2z3w4").
		Return(&domain.Product{ID: uuid.New(), ShopID: &shopID}, nil)
	products.EXPECT().Clone(ctx, gomock.Any(), shopID, "broken-x1y2z3w4", "BRK-x1y2z3w4").
		Return(nil, errors.New("duplicate slug"))

	n, err := svc.CloneIntoBuyerShop(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCatalogService_BuyerWithoutShop(t *testing.T) {
	svc, accounts, _ := setupCatalogService(t)
	ctx := context.Background()
	buyer := uuid.New()

	accounts.EXPECT().GetShopByOwner(ctx, buyer).Return(nil, nil)

	n, err := svc.CloneIntoBuyerShop(ctx, domain.CloneTask{BuyerID: buyer, ProductIDs: []uuid.UUID{uuid.New()}})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCatalogService_LookupFailureIsRetryable(t *testing.T) {
	svc, accounts, _ := setupCatalogService(t)
	ctx := context.Background()

	accounts.EXPECT().GetShopByOwner(ctx, gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := svc.CloneIntoBuyerShop(ctx, domain.CloneTask{BuyerID: uuid.New()})
	assert.Error(t, err)
}
