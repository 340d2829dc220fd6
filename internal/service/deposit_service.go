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

// DepositServiceImpl implements ports.DepositService.
// Approval only records the decision; crediting the balance happens out of band.
type DepositServiceImpl struct {
	deposits ports.DepositRepository
	ledger   ports.LedgerService
	notifier ports.NotificationService
	log      zerolog.Logger
}

func NewDepositService(
	deposits ports.DepositRepository,
	ledger ports.LedgerService,
	notifier ports.NotificationService,
	log zerolog.Logger,
) *DepositServiceImpl {
	return &DepositServiceImpl{deposits: deposits, ledger: ledger, notifier: notifier, log: log}
}

func (s *DepositServiceImpl) Submit(ctx context.Context, in ports.SubmitDepositInput) (*domain.DepositRequest, error) {
	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		return nil, apperror.Validation("currency is required")
	}
	if !in.Amount.IsPositive() {
		return nil, apperror.Validation("amount must be greater than zero")
	}

	scope, err := s.ledger.ResolveScope(ctx, in.UserID, in.ShopID)
	if err != nil {
		return nil, err
	}

	req := &domain.DepositRequest{
		ID:        uuid.New(),
		UserID:    in.UserID,
		ShopID:    scope.ShopID(),
		Currency:  currency,
		Network:   in.Network,
		Amount:    in.Amount,
		ProofURL:  in.ProofURL,
		Status:    domain.RequestStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.deposits.Create(ctx, req); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create deposit request: %w", err))
	}

	s.log.Info().
		Str("deposit_id", req.ID.String()).
		Str("scope", scope.String()).
		Str("amount", req.Amount.String()).
		Msg("deposit request submitted")

	s.notifier.NotifyUser(ctx, in.UserID, domain.Notice{
		Title:   "Deposit request submitted",
		Message: fmt.Sprintf("Your deposit of %s %s is pending review.", req.Amount, req.Currency),
		Type:    domain.NotificationInfo,
		Link:    "/wallet",
	})
	s.notifier.NotifyStaff(ctx, domain.Notice{
		Title:   "New deposit request",
		Message: fmt.Sprintf("A deposit of %s %s awaits review.", req.Amount, req.Currency),
		Type:    domain.NotificationInfo,
		Link:    "/admin/deposits",
	})

	return req, nil
}

// Review moves a PENDING deposit to APPROVED or REJECTED exactly once.
func (s *DepositServiceImpl) Review(ctx context.Context, in ports.ReviewInput) (*domain.DepositRequest, error) {
	if err := requireStaff(in.Reviewer); err != nil {
		return nil, err
	}
	if !in.Status.IsReviewOutcome() {
		return nil, apperror.Validation("status must be APPROVED or REJECTED")
	}

	req, err := s.deposits.MarkReviewed(ctx, in.RequestID, domain.Review{
		Status:     in.Status,
		ReviewerID: in.Reviewer.UserID,
		ReviewedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyReviewed) {
			return nil, apperror.ErrAlreadyReviewed()
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("review deposit request: %w", err))
	}
	if req == nil {
		return nil, apperror.ErrNotFound("deposit request")
	}

	s.log.Info().
		Str("deposit_id", req.ID.String()).
		Str("status", string(req.Status)).
		Str("reviewer_id", in.Reviewer.UserID.String()).
		Msg("deposit request reviewed")

	notice := domain.Notice{
		Title:   "Deposit approved",
		Message: fmt.Sprintf("Your deposit of %s %s has been approved.", req.Amount, req.Currency),
		Type:    domain.NotificationSuccess,
		Link:    "/wallet",
	}
	if req.Status == domain.RequestStatusRejected {
		notice.Title = "Deposit rejected"
		notice.Message = fmt.Sprintf("Your deposit of %s %s has been rejected.", req.Amount, req.Currency)
		notice.Type = domain.NotificationWarning
	}
	s.notifier.NotifyUser(ctx, req.UserID, notice)

	return req, nil
}

// ListMine returns the caller's deposits for one scope: personal rows by default, one shop's rows otherwise.
func (s *DepositServiceImpl) ListMine(ctx context.Context, callerID uuid.UUID, shopID *uuid.UUID) ([]domain.DepositRequest, error) {
	scope, err := s.ledger.ResolveScope(ctx, callerID, shopID)
	if err != nil {
		return nil, err
	}
	items, _, err := s.deposits.List(ctx, ports.RequestListParams{Scope: &scope})
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list deposits: %w", err))
	}
	return items, nil
}

// List is the staff view across all owners.
func (s *DepositServiceImpl) List(ctx context.Context, actor ports.Actor, params ports.RequestListParams) ([]domain.DepositRequest, int64, error) {
	if err := requireStaff(actor); err != nil {
		return nil, 0, err
	}
	items, total, err := s.deposits.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(fmt.Errorf("list deposits: %w", err))
	}
	return items, total, nil
}
