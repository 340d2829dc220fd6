package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestStatus is the review state shared by deposit and withdrawal requests.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// IsReviewOutcome reports whether s is a legal target of a review.
func (s RequestStatus) IsReviewOutcome() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// DepositRequest is a claim that funds were sent to the platform externally.
// Approval is a record-keeping transition only; no balance is credited.
type DepositRequest struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"userId"`
	ShopID     *uuid.UUID      `json:"shopId"`
	Currency   string          `json:"currency"`
	Network    *string         `json:"network"`
	Amount     decimal.Decimal `json:"amount"`
	ProofURL   *string         `json:"proofUrl"`
	Status     RequestStatus   `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	ReviewedAt *time.Time      `json:"reviewedAt"`
	ReviewedBy *uuid.UUID      `json:"reviewedBy"`
}

func (d *DepositRequest) Scope() AccountScope { return ScopeFor(d.UserID, d.ShopID) }

func (d *DepositRequest) IsPending() bool { return d.Status == RequestStatusPending }

// WithdrawalRequest asks for funds to leave the owning scope's balance.
type WithdrawalRequest struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"userId"`
	ShopID     *uuid.UUID      `json:"shopId"`
	Currency   string          `json:"currency"`
	Network    *string         `json:"network"`
	Address    string          `json:"address"`
	Amount     decimal.Decimal `json:"amount"`
	ProofURL   *string         `json:"proofUrl"`
	Status     RequestStatus   `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	ReviewedAt *time.Time      `json:"reviewedAt"`
	ReviewedBy *uuid.UUID      `json:"reviewedBy"`
}

func (w *WithdrawalRequest) Scope() AccountScope { return ScopeFor(w.UserID, w.ShopID) }

func (w *WithdrawalRequest) IsPending() bool { return w.Status == RequestStatusPending }

// Review is the reviewer stamp applied when a request leaves PENDING.
type Review struct {
	Status     RequestStatus
	ReviewerID uuid.UUID
	ReviewedAt time.Time
}
