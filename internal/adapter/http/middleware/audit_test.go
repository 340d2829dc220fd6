package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-ledger/internal/core/domain"
	"storefront-ledger/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuditLog_ReviewSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)

	staffID := uuid.New()
	requestID := uuid.New()
	done := make(chan struct{})
	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry *domain.AuditLog) {
			assert.Equal(t, domain.AuditActionReviewWithdrawal, entry.Action)
			assert.Equal(t, "withdrawal_request", entry.ResourceType)
			assert.Equal(t, requestID.String(), entry.ResourceID)
			if assert.NotNil(t, entry.ActorID) {
				assert.Equal(t, staffID, *entry.ActorID)
			}
			close(done)
		},
	)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(CtxUserID, staffID)
		c.Set(CtxRole, domain.RoleAdmin)
		c.Next()
	}, AuditLog(mockAudit))
	r.PATCH("/api/v1/admin/withdrawals/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/withdrawals/"+requestID.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("audit not called")
	}
}

func TestAuditLog_CreateRecordsNewResourceID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)

	orderID := uuid.New()
	done := make(chan struct{})
	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry *domain.AuditLog) {
			assert.Equal(t, domain.AuditActionCheckout, entry.Action)
			assert.Equal(t, "order", entry.ResourceType)
			assert.Equal(t, orderID.String(), entry.ResourceID)
			close(done)
		},
	)

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.POST("/api/v1/orders", func(c *gin.Context) {
		c.Set(CtxResourceID, orderID.String())
		c.JSON(http.StatusCreated, gin.H{"id": orderID})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/orders", nil))

	assert.Equal(t, http.StatusCreated, w.Code)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("audit not called")
	}
}

func TestAuditLog_SkipsGET(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)
	// No expectations: Log must not be called for reads.

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.GET("/api/v1/wallet/balance", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"balance": 100})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/wallet/balance", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuditLog_SkipsFailedRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.POST("/api/v1/orders", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/orders", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMapRouteToAction(t *testing.T) {
	tests := []struct {
		route    string
		method   string
		action   domain.AuditAction
		resource string
	}{
		{"/api/v1/deposits", "POST", domain.AuditActionSubmitDeposit, "deposit_request"},
		{"/api/v1/admin/deposits/:id", "PATCH", domain.AuditActionReviewDeposit, "deposit_request"},
		{"/api/v1/withdrawals", "POST", domain.AuditActionSubmitWithdrawal, "withdrawal_request"},
		{"/api/v1/admin/withdrawals/:id", "PATCH", domain.AuditActionReviewWithdrawal, "withdrawal_request"},
		{"/api/v1/orders", "POST", domain.AuditActionCheckout, "order"},
		{"/api/v1/orders/:id/status", "PATCH", domain.AuditActionOrderStatus, "order"},
		{"/api/v1/admin/orders/:id/payment-status", "PATCH", domain.AuditActionOrderPaymentStatus, "order"},
		{"/api/v1/deposits", "GET", "", ""},
		{"/unknown", "POST", "", ""},
	}

	for _, tc := range tests {
		action, resource := mapRouteToAction(tc.route, tc.method)
		assert.Equal(t, tc.action, action, "route=%s method=%s", tc.route, tc.method)
		assert.Equal(t, tc.resource, resource, "route=%s method=%s", tc.route, tc.method)
	}
}
