package service

import (
	"context"
	"fmt"
	"strings"

	"storefront-ledger/internal/core/domain"
	"storefront-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/rs/zerolog"
)

// CatalogServiceImpl implements ports.CatalogService.
type CatalogServiceImpl struct {
	accounts ports.AccountRepository
	products ports.ProductRepository
	suffix   func() string
	log      zerolog.Logger
}

func NewCatalogService(accounts ports.AccountRepository, products ports.ProductRepository, log zerolog.Logger) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		accounts: accounts,
		products: products,
		suffix:   randomSuffix,
		log:      log,
	}
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// CloneIntoBuyerShop copies the platform products of task into the buyer's shop and
// returns how many were cloned. Buyers without a shop are skipped without error.
func (s *CatalogServiceImpl) CloneIntoBuyerShop(ctx context.Context, task domain.CloneTask) (int, error) {
	shop, err := s.accounts.GetShopByOwner(ctx, task.BuyerID)
	if err != nil {
		return 0, fmt.Errorf("get buyer shop: %w", err)
	}
	if shop == nil {
		s.log.Debug().Str("buyer_id", task.BuyerID.String()).Msg("buyer has no shop, skipping catalog clone")
		return 0, nil
	}

	products, err := s.products.GetByIDs(ctx, task.ProductIDs)
	if err != nil {
		return 0, fmt.Errorf("load products: %w", err)
	}

	cloned := 0
	for i := range products {
		src := &products[i]
		if !src.IsPlatform() {
			continue
		}
		suffix := s.suffix()
		clone, err := s.products.Clone(ctx, src, shop.ID, slug.Make(src.Name)+"-"+suffix, src.SKU+"-"+suffix)
		if err != nil {
			s.log.Warn().Err(err).
				Str("product_id", src.ID.String()).
				Str("shop_id", shop.ID.String()).
				Msg("failed to clone product")
			continue
		}
		cloned++
		s.log.Info().
			Str("product_id", src.ID.String()).
			Str("clone_id", clone.ID.String()).
			Str("shop_id", shop.ID.String()).
			Msg("product cloned into buyer shop")
	}
	return cloned, nil
}
