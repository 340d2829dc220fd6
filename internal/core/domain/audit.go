package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionSubmitDeposit      AuditAction = "SUBMIT_DEPOSIT"
	AuditActionReviewDeposit      AuditAction = "REVIEW_DEPOSIT"
	AuditActionSubmitWithdrawal   AuditAction = "SUBMIT_WITHDRAWAL"
	AuditActionReviewWithdrawal   AuditAction = "REVIEW_WITHDRAWAL"
	AuditActionCheckout           AuditAction = "CHECKOUT"
	AuditActionOrderStatus        AuditAction = "ORDER_STATUS"
	AuditActionOrderPaymentStatus AuditAction = "ORDER_PAYMENT_STATUS"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      *uuid.UUID  `json:"actor_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
