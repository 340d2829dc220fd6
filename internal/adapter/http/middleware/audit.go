package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"storefront-ledger/internal/core/domain"
	"storefront-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records successful write operations. It keys on the matched route
// template so /orders/:id/status maps regardless of the concrete id.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		var actorID *uuid.UUID
		if actor, ok := ActorFrom(c); ok {
			actorID = &actor.UserID
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(CtxRequestID),
		})

		resourceID := c.Param("id")
		if resourceID == "" {
			resourceID = c.GetString(CtxResourceID)
		}

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			ActorID:      actorID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

func mapRouteToAction(route, method string) (domain.AuditAction, string) {
	switch {
	case route == "/api/v1/deposits" && method == http.MethodPost:
		return domain.AuditActionSubmitDeposit, "deposit_request"
	case route == "/api/v1/admin/deposits/:id" && method == http.MethodPatch:
		return domain.AuditActionReviewDeposit, "deposit_request"
	case route == "/api/v1/withdrawals" && method == http.MethodPost:
		return domain.AuditActionSubmitWithdrawal, "withdrawal_request"
	case route == "/api/v1/admin/withdrawals/:id" && method == http.MethodPatch:
		return domain.AuditActionReviewWithdrawal, "withdrawal_request"
	case route == "/api/v1/orders" && method == http.MethodPost:
		return domain.AuditActionCheckout, "order"
	case route == "/api/v1/orders/:id/status" && method == http.MethodPatch:
		return domain.AuditActionOrderStatus, "order"
	case route == "/api/v1/admin/orders/:id/payment-status" && method == http.MethodPatch:
		return domain.AuditActionOrderPaymentStatus, "order"
	}
	return "", ""
}
