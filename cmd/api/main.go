package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront-ledger/config"
	httpHandler "storefront-ledger/internal/adapter/http/handler"
	"storefront-ledger/internal/adapter/storage/memory"
	pgStorage "storefront-ledger/internal/adapter/storage/postgres"
	redisStorage "storefront-ledger/internal/adapter/storage/redis"
	"storefront-ledger/internal/core/ports"
	"storefront-ledger/internal/service"
	"storefront-ledger/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// backend bundles the storage-side ports for one driver.
type backend struct {
	accounts      ports.AccountRepository
	balances      ports.BalanceRepository
	deposits      ports.DepositRepository
	withdrawals   ports.WithdrawalRepository
	orders        ports.OrderRepository
	checkoutKeys  ports.CheckoutKeyRepository
	products      ports.ProductRepository
	notifications ports.NotificationRepository
	audits        ports.AuditRepository
	transactor    ports.DBTransactor
	queue         ports.EventQueue
	idempCache    ports.IdempotencyCache
	rateLimits    ports.RateLimitStore
	checkers      []ports.HealthChecker
	close         func()
}

func main() {
	cfg, err := config.Load(os.Getenv("SFL_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("refusing to start")
	}
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("storage", cfg.Storage.Driver).
		Int("port", cfg.Server.Port).
		Msg("Starting storefront ledger")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var be *backend
	if cfg.Storage.UsesMemory() {
		log.Warn().Msg("memory storage driver selected: state is process-local and lost on exit")
		be = memoryBackend()
	} else {
		be, err = postgresBackend(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialise storage")
		}
	}
	defer be.close()

	// Services
	notifier := service.NewNotificationService(be.queue, be.notifications, log)
	ledger := service.NewLedgerService(be.accounts, be.balances, log)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	depositSvc := service.NewDepositService(be.deposits, ledger, notifier, log)
	withdrawalSvc := service.NewWithdrawalService(be.withdrawals, be.balances, ledger, be.transactor, notifier, log)
	orderSvc := service.NewOrderService(be.orders, be.checkoutKeys, be.products, be.accounts, be.balances, be.transactor,
		be.idempCache, notifier, cfg.Checkout.IdempotencyTTL, log)
	catalogSvc := service.NewCatalogService(be.accounts, be.products, log)
	auditSvc := service.NewAuditService(be.audits, log)

	dispatcher := service.NewEventDispatcher(be.queue, be.notifications, be.accounts, catalogSvc,
		service.DispatcherConfig{
			Concurrency:  cfg.Worker.Concurrency,
			BlockTimeout: cfg.Worker.BlockTimeout,
			MaxAttempts:  cfg.Worker.MaxAttempts,
		}, log)
	dispatcherDone := make(chan struct{})
	go func() {
		defer close(dispatcherDone)
		dispatcher.Run(ctx)
	}()

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LedgerSvc:       ledger,
		DepositSvc:      depositSvc,
		WithdrawalSvc:   withdrawalSvc,
		OrderSvc:        orderSvc,
		NotificationSvc: notifier,
		TokenSvc:        tokenSvc,
		RateLimitStore:  be.rateLimits,
		AuditSvc:        auditSvc,
		HealthCheckers:  be.checkers,
		Logger:          log,
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	select {
	case <-dispatcherDone:
	case <-shutdownCtx.Done():
		log.Warn().Msg("event dispatcher did not stop before the shutdown timeout")
	}

	log.Info().Msg("Server exited")
}

func postgresBackend(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backend, error) {
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	log.Info().Msg("PostgreSQL connected")

	if cfg.Database.AutoMigrate {
		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
		log.Info().Msg("Database schema ensured")
	}

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	log.Info().Msg("Redis connected")

	return &backend{
		accounts:      pgStorage.NewAccountRepo(pool),
		balances:      pgStorage.NewBalanceRepo(pool),
		deposits:      pgStorage.NewDepositRepo(pool),
		withdrawals:   pgStorage.NewWithdrawalRepo(pool),
		orders:        pgStorage.NewOrderRepo(pool),
		checkoutKeys:  pgStorage.NewCheckoutKeyRepo(pool),
		products:      pgStorage.NewProductRepo(pool),
		notifications: pgStorage.NewNotificationRepo(pool),
		audits:        pgStorage.NewAuditRepo(pool),
		transactor:    pgStorage.NewTransactor(pool),
		queue:         redisStorage.NewEventQueue(rdb, redisStorage.DefaultEventQueueKey),
		idempCache:    redisStorage.NewIdempotencyCache(rdb),
		rateLimits:    redisStorage.NewRateLimitStore(rdb),
		checkers:      []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		close: func() {
			_ = rdb.Close()
			pool.Close()
		},
	}, nil
}

func memoryBackend() *backend {
	store := memory.NewStore()
	return &backend{
		accounts:      memory.NewAccountRepo(store),
		balances:      memory.NewBalanceRepo(store),
		deposits:      memory.NewDepositRepo(store),
		withdrawals:   memory.NewWithdrawalRepo(store),
		orders:        memory.NewOrderRepo(store),
		checkoutKeys:  memory.NewCheckoutKeyRepo(store),
		products:      memory.NewProductRepo(store),
		notifications: memory.NewNotificationRepo(store),
		audits:        memory.NewAuditRepo(store),
		transactor:    memory.NewTransactor(store),
		queue:         memory.NewEventQueue(4096),
		idempCache:    memory.NewIdempotencyCache(),
		rateLimits:    memory.NewRateLimitStore(),
		checkers:      []ports.HealthChecker{memory.NewHealthCheck()},
		close:         func() {},
	}
}
