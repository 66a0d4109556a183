package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	appaudit "github.com/jewelerp/backend/internal/application/audit"
	appcatalog "github.com/jewelerp/backend/internal/application/catalog"
	appfinance "github.com/jewelerp/backend/internal/application/finance"
	appidentity "github.com/jewelerp/backend/internal/application/identity"
	appinventory "github.com/jewelerp/backend/internal/application/inventory"
	apppartner "github.com/jewelerp/backend/internal/application/partner"
	apptrade "github.com/jewelerp/backend/internal/application/trade"
	"github.com/jewelerp/backend/internal/infrastructure/auth"
	"github.com/jewelerp/backend/internal/infrastructure/cache"
	"github.com/jewelerp/backend/internal/infrastructure/config"
	"github.com/jewelerp/backend/internal/infrastructure/logger"
	"github.com/jewelerp/backend/internal/infrastructure/persistence"
	"github.com/jewelerp/backend/internal/interfaces/http/handler"
	"github.com/jewelerp/backend/internal/interfaces/http/router"
)

// version is stamped at build time via -ldflags "-X main.version=..."
var version = "dev"

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version))

	gormLevel := gormlogger.Warn
	if cfg.Log.Level == "debug" {
		gormLevel = gormlogger.Info
	}
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, logger.NewGormLogger(log, gormLevel))
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("closing database", zap.Error(err))
		}
	}()

	var rateCache appcatalog.RateCache
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			// The rate cache is an optimization; run uncached rather than fail.
			log.Warn("redis unreachable, rate cache disabled", zap.Error(err))
			_ = redisClient.Close()
			redisClient = nil
		} else {
			rateCache = cache.NewRedisRateCache(redisClient, 0)
			log.Info("rate cache enabled",
				zap.String("addr", fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)))
		}
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	// Repositories.
	shopRepo := persistence.NewGormShopRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	rateRepo := persistence.NewGormRateMasterRepository(db.DB)
	stockRepo := persistence.NewGormStockItemRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	salesOrderRepo := persistence.NewGormSalesOrderRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)
	emiRepo := persistence.NewGormEmiPaymentRepository(db.DB)
	auditRepo := persistence.NewGormAuditLogRepository(db.DB)

	tradeScope := persistence.NewGormTradeTransactionScope(db.DB)
	financeScope := persistence.NewGormFinanceTransactionScope(db.DB)

	// Services.
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := appidentity.NewAuthService(userRepo, shopRepo, jwtService, log)
	shopService := appidentity.NewShopService(shopRepo, userRepo, log)
	userService := appidentity.NewUserService(userRepo)
	rateService := appcatalog.NewRateService(rateRepo, rateCache)
	productService := appcatalog.NewProductService(productRepo, rateService)
	stockService := appinventory.NewStockService(stockRepo)
	customerService := apppartner.NewCustomerService(customerRepo)
	supplierService := apppartner.NewSupplierService(supplierRepo)
	purchaseOrderService := apptrade.NewPurchaseOrderService(purchaseOrderRepo, tradeScope)
	salesOrderService := apptrade.NewSalesOrderService(salesOrderRepo, productRepo, rateRepo, tradeScope)
	emiService := appfinance.NewEmiService(emiRepo, financeScope)
	transactionService := appfinance.NewTransactionService(transactionRepo, stockRepo)
	auditService := appaudit.NewAuditService(auditRepo)

	engine := router.New(cfg, log, jwtService, shopRepo, router.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Shop:          handler.NewShopHandler(shopService),
		User:          handler.NewUserHandler(userService),
		Product:       handler.NewProductHandler(productService),
		Rate:          handler.NewRateHandler(rateService),
		Stock:         handler.NewStockHandler(stockService),
		Customer:      handler.NewCustomerHandler(customerService),
		Supplier:      handler.NewSupplierHandler(supplierService),
		PurchaseOrder: handler.NewPurchaseOrderHandler(purchaseOrderService),
		SalesOrder:    handler.NewSalesOrderHandler(salesOrderService),
		Emi:           handler.NewEmiHandler(emiService),
		Finance:       handler.NewFinanceHandler(transactionService),
		Audit:         handler.NewAuditHandler(auditService),
		System:        handler.NewSystemHandler(db, version),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
