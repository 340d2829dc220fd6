package service

import (
	"context"
	"errors"
	"fmt"

	"storefront-ledger/internal/core/domain"
	"storefront-ledger/internal/core/ports"
	"storefront-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	accounts ports.AccountRepository
	balances ports.BalanceRepository
	log      zerolog.Logger
}

func NewLedgerService(accounts ports.AccountRepository, balances ports.BalanceRepository, log zerolog.Logger) *LedgerServiceImpl {
	return &LedgerServiceImpl{accounts: accounts, balances: balances, log: log}
}

// ResolveScope maps the optional shopId of a request to the balance it addresses.
// A shop the caller does not own is Forbidden, whether or not it exists.
func (s *LedgerServiceImpl) ResolveScope(ctx context.Context, callerID uuid.UUID, shopID *uuid.UUID) (domain.AccountScope, error) {
	if shopID == nil {
		return domain.UserScope(callerID), nil
	}
	shop, err := s.accounts.GetShop(ctx, *shopID)
	if err != nil {
		return domain.AccountScope{}, apperror.ErrDatabaseError(fmt.Errorf("get shop: %w", err))
	}
	if shop == nil || shop.OwnerID != callerID {
		s.log.Warn().
			Str("caller_id", callerID.String()).
			Str("shop_id", shopID.String()).
			Msg("caller referenced a shop it does not own")
		return domain.AccountScope{}, apperror.ErrForbidden()
	}
	return domain.ShopScope(shop.ID), nil
}

func (s *LedgerServiceImpl) Balance(ctx context.Context, callerID uuid.UUID, shopID *uuid.UUID) (*ports.BalanceView, error) {
	scope, err := s.ResolveScope(ctx, callerID, shopID)
	if err != nil {
		return nil, err
	}
	balance, err := s.balances.GetBalance(ctx, scope)
	if err != nil {
		if errors.Is(err, domain.ErrScopeNotFound) {
			return nil, apperror.ErrNotFound("account")
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get balance: %w", err))
	}
	return &ports.BalanceView{Scope: scope, Balance: balance}, nil
}

// balanceTooLow names the scope that could not cover a debit.
func balanceTooLow(scope domain.AccountScope) *apperror.AppError {
	if scope.IsShop() {
		return apperror.ErrShopBalanceTooLow()
	}
	return apperror.ErrUserBalanceTooLow()
}

// debitError translates a BalanceRepository.Debit failure.
func debitError(scope domain.AccountScope, err error) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		return balanceTooLow(scope)
	case errors.Is(err, domain.ErrScopeNotFound):
		return apperror.ErrNotFound("account")
	}
	return apperror.ErrDatabaseError(fmt.Errorf("debit %s: %w", scope, err))
}

func requireStaff(actor ports.Actor) error {
	if !actor.IsStaff() {
		return apperror.ErrForbidden()
	}
	return nil
}
