package handler

import (
	"storefront-ledger/internal/adapter/http/middleware"
	"storefront-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc       ports.LedgerService
	DepositSvc      ports.DepositService
	WithdrawalSvc   ports.WithdrawalService
	OrderSvc        ports.OrderService
	NotificationSvc ports.NotificationService
	TokenSvc        ports.TokenService
	RateLimitStore  ports.RateLimitStore // nil = rate limiting disabled
	AuditSvc        ports.AuditService   // nil = audit logging disabled
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// Every API route needs a session; AuditLog runs inside it so the actor is known.
	v1 := r.Group("/api/v1", middleware.JWTAuth(deps.TokenSvc, deps.Logger))
	if deps.AuditSvc != nil {
		v1.Use(middleware.AuditLog(deps.AuditSvc))
	}

	walletHandler := NewWalletHandler(deps.LedgerSvc)
	v1.GET("/wallet/balance", rl(middleware.GroupReads), walletHandler.GetBalance)

	fundsHandler := NewFundsHandler(deps.DepositSvc, deps.WithdrawalSvc)
	v1.POST("/deposits", rl(middleware.GroupFunds), fundsHandler.SubmitDeposit)
	v1.GET("/deposits", rl(middleware.GroupReads), fundsHandler.ListDeposits)
	v1.POST("/withdrawals", rl(middleware.GroupFunds), fundsHandler.SubmitWithdrawal)
	v1.GET("/withdrawals", rl(middleware.GroupReads), fundsHandler.ListWithdrawals)

	orderHandler := NewOrderHandler(deps.OrderSvc)
	orders := v1.Group("/orders")
	{
		orders.POST("", rl(middleware.GroupCheckout), orderHandler.Checkout)
		orders.GET("", rl(middleware.GroupReads), orderHandler.ListMine)
		orders.GET("/:id", rl(middleware.GroupReads), orderHandler.Get)
		orders.PATCH("/:id/status", rl(middleware.GroupReview), orderHandler.UpdateStatus)
	}

	notificationHandler := NewNotificationHandler(deps.NotificationSvc)
	v1.GET("/notifications", rl(middleware.GroupReads), notificationHandler.List)

	adminHandler := NewAdminHandler(deps.DepositSvc, deps.WithdrawalSvc)
	admin := v1.Group("/admin", middleware.RequireStaff())
	{
		admin.GET("/deposits", rl(middleware.GroupReads), adminHandler.ListDeposits)
		admin.PATCH("/deposits/:id", rl(middleware.GroupReview), adminHandler.ReviewDeposit)
		admin.GET("/withdrawals", rl(middleware.GroupReads), adminHandler.ListWithdrawals)
		admin.PATCH("/withdrawals/:id", rl(middleware.GroupReview), adminHandler.ReviewWithdrawal)
		admin.PATCH("/orders/:id/payment-status", rl(middleware.GroupReview), orderHandler.UpdatePaymentStatus)
	}

	return r
}
