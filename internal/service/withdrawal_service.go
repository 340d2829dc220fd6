package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-ledger/internal/core/domain"
	"storefront-ledger/internal/core/ports"
	"storefront-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WithdrawalServiceImpl implements ports.WithdrawalService.
type WithdrawalServiceImpl struct {
	withdrawals ports.WithdrawalRepository
	balances    ports.BalanceRepository
	ledger      ports.LedgerService
	transactor  ports.DBTransactor
	notifier    ports.NotificationService
	log         zerolog.Logger
}

func NewWithdrawalService(
	withdrawals ports.WithdrawalRepository,
	balances ports.BalanceRepository,
	ledger ports.LedgerService,
	transactor ports.DBTransactor,
	notifier ports.NotificationService,
	log zerolog.Logger,
) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{
		withdrawals: withdrawals,
		balances:    balances,
		ledger:      ledger,
		transactor:  transactor,
		notifier:    notifier,
		log:         log,
	}
}

// Submit records a PENDING withdrawal after checking the scope can currently cover it.
// The balance is checked again, atomically, when the request is approved.
func (s *WithdrawalServiceImpl) Submit(ctx context.Context, in ports.SubmitWithdrawalInput) (*domain.WithdrawalRequest, error) {
	currency := strings.TrimSpace(in.Currency)
	address := strings.TrimSpace(in.Address)
	if currency == "" {
		return nil, apperror.Validation("currency is required")
	}
	if address == "" {
		return nil, apperror.Validation("address is required")
	}
	if !in.Amount.IsPositive() {
		return nil, apperror.Validation("amount must be greater than zero")
	}

	scope, err := s.ledger.ResolveScope(ctx, in.UserID, in.ShopID)
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
	if in.Amount.GreaterThan(balance) {
		return nil, balanceTooLow(scope)
	}

	req := &domain.WithdrawalRequest{
		ID:        uuid.New(),
		UserID:    in.UserID,
		ShopID:    scope.ShopID(),
		Currency:  currency,
		Network:   in.Network,
		Address:   address,
		Amount:    in.Amount,
		ProofURL:  in.ProofURL,
		Status:    domain.RequestStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.withdrawals.Create(ctx, req); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create withdrawal request: %w", err))
	}

	s.log.Info().
		Str("withdrawal_id", req.ID.String()).
		Str("scope", scope.String()).
		Str("amount", req.Amount.String()).
		Msg("withdrawal request submitted")

	s.notifier.NotifyUser(ctx, in.UserID, domain.Notice{
		Title:   "Withdrawal request submitted",
		Message: fmt.Sprintf("Your withdrawal of %s %s is pending review.", req.Amount, req.Currency),
		Type:    domain.NotificationInfo,
		Link:    "/wallet",
	})
	s.notifier.NotifyStaff(ctx, domain.Notice{
		Title:   "New withdrawal request",
		Message: fmt.Sprintf("A withdrawal of %s %s to %s awaits review.", req.Amount, req.Currency, req.Address),
		Type:    domain.NotificationWarning,
		Link:    "/admin/withdrawals",
	})

	return req, nil
}

func (s *WithdrawalServiceImpl) Review(ctx context.Context, in ports.ReviewInput) (*domain.WithdrawalRequest, error) {
	if err := requireStaff(in.Reviewer); err != nil {
		return nil, err
	}
	if !in.Status.IsReviewOutcome() {
		return nil, apperror.Validation("status must be APPROVED or REJECTED")
	}

	review := domain.Review{
		Status:     in.Status,
		ReviewerID: in.Reviewer.UserID,
		ReviewedAt: time.Now().UTC(),
	}

	var (
		req *domain.WithdrawalRequest
		err error
	)
	if in.Status == domain.RequestStatusApproved {
		req, err = s.approve(ctx, in.RequestID, review)
	} else {
		req, err = s.reject(ctx, in.RequestID, review)
	}
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("withdrawal_id", req.ID.String()).
		Str("status", string(req.Status)).
		Str("reviewer_id", in.Reviewer.UserID.String()).
		Msg("withdrawal request reviewed")

	notice := domain.Notice{
		Title:   "Withdrawal approved",
		Message: fmt.Sprintf("Your withdrawal of %s %s has been approved.", req.Amount, req.Currency),
		Type:    domain.NotificationSuccess,
		Link:    "/wallet",
	}
	if req.Status == domain.RequestStatusRejected {
		notice.Title = "Withdrawal rejected"
		notice.Message = fmt.Sprintf("Your withdrawal of %s %s has been rejected.", req.Amount, req.Currency)
		notice.Type = domain.NotificationWarning
	}
	s.notifier.NotifyUser(ctx, req.UserID, notice)

	return req, nil
}

// approve locks the request, debits the owning scope and marks it APPROVED in one
// transaction. Either both the debit and the status change commit or neither does.
func (s *WithdrawalServiceImpl) approve(ctx context.Context, id uuid.UUID, review domain.Review) (*domain.WithdrawalRequest, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	req, err := s.withdrawals.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lock withdrawal request: %w", err))
	}
	if req == nil {
		return nil, apperror.ErrNotFound("withdrawal request")
	}
	if !req.IsPending() {
		return nil, apperror.ErrAlreadyReviewed()
	}

	scope := req.Scope()
	if _, err := s.balances.Debit(ctx, dbTx, scope, req.Amount); err != nil {
		s.log.Warn().Err(err).
			Str("withdrawal_id", id.String()).
			Str("scope", scope.String()).
			Msg("withdrawal approval debit failed")
		return nil, debitError(scope, err)
	}

	updated, err := s.withdrawals.MarkReviewed(ctx, dbTx, id, review)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyReviewed) {
			return nil, apperror.ErrAlreadyReviewed()
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("mark withdrawal approved: %w", err))
	}
	if updated == nil {
		return nil, apperror.ErrNotFound("withdrawal request")
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}
	return updated, nil
}

func (s *WithdrawalServiceImpl) reject(ctx context.Context, id uuid.UUID, review domain.Review) (*domain.WithdrawalRequest, error) {
	req, err := s.withdrawals.MarkReviewed(ctx, nil, id, review)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyReviewed) {
			return nil, apperror.ErrAlreadyReviewed()
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("mark withdrawal rejected: %w", err))
	}
	if req == nil {
		return nil, apperror.ErrNotFound("withdrawal request")
	}
	return req, nil
}

func (s *WithdrawalServiceImpl) ListMine(ctx context.Context, callerID uuid.UUID, shopID *uuid.UUID) ([]domain.WithdrawalRequest, error) {
	scope, err := s.ledger.ResolveScope(ctx, callerID, shopID)
	if err != nil {
		return nil, err
	}
	items, _, err := s.withdrawals.List(ctx, ports.RequestListParams{Scope: &scope})
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list withdrawals: %w", err))
	}
	return items, nil
}

func (s *WithdrawalServiceImpl) List(ctx context.Context, actor ports.Actor, params ports.RequestListParams) ([]domain.WithdrawalRequest, int64, error) {
	if err := requireStaff(actor); err != nil {
		return nil, 0, err
	}
	items, total, err := s.withdrawals.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(fmt.Errorf("list withdrawals: %w", err))
	}
	return items, total, nil
}
