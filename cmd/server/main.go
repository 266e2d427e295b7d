package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/fuelpos/backend/internal/application/catalog"
	financeapp "github.com/fuelpos/backend/internal/application/finance"
	identityapp "github.com/fuelpos/backend/internal/application/identity"
	ledgerapp "github.com/fuelpos/backend/internal/application/ledger"
	partyapp "github.com/fuelpos/backend/internal/application/party"
	reportapp "github.com/fuelpos/backend/internal/application/report"
	tankapp "github.com/fuelpos/backend/internal/application/tank"
	tradeapp "github.com/fuelpos/backend/internal/application/trade"
	"github.com/fuelpos/backend/internal/infrastructure/auth"
	"github.com/fuelpos/backend/internal/infrastructure/cache"
	"github.com/fuelpos/backend/internal/infrastructure/config"
	"github.com/fuelpos/backend/internal/infrastructure/logger"
	"github.com/fuelpos/backend/internal/infrastructure/persistence"
	"github.com/fuelpos/backend/internal/interfaces/http/handler"
	"github.com/fuelpos/backend/internal/interfaces/http/middleware"
	"github.com/fuelpos/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting fuel station backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with GORM logging routed through zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	// Repositories
	partyRepo := persistence.NewGormPartyRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	purchaseReturnRepo := persistence.NewGormPurchaseReturnRepository(db.DB)
	customerPaymentRepo := persistence.NewGormCustomerPaymentRepository(db.DB)
	supplierPaymentRepo := persistence.NewGormSupplierPaymentRepository(db.DB)
	cashAdvanceRepo := persistence.NewGormCashAdvanceRepository(db.DB)
	capitalEntryRepo := persistence.NewGormCapitalEntryRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	tankReadingRepo := persistence.NewGormTankReadingRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Application services. The ledger service doubles as the balance
	// calculator for the party service.
	ledgerService := ledgerapp.NewService(
		partyRepo,
		saleRepo,
		purchaseRepo,
		purchaseReturnRepo,
		customerPaymentRepo,
		supplierPaymentRepo,
		cashAdvanceRepo,
		capitalEntryRepo,
		expenseRepo,
		log,
	)
	partyService := partyapp.NewService(partyRepo, ledgerService, log)
	productService := catalogapp.NewProductService(productRepo, log)
	saleService := tradeapp.NewSaleService(saleRepo, partyRepo, productRepo, log)
	purchaseService := tradeapp.NewPurchaseService(purchaseRepo, purchaseReturnRepo, partyRepo, productRepo, log)
	paymentService := financeapp.NewPaymentService(customerPaymentRepo, supplierPaymentRepo, cashAdvanceRepo, partyRepo, log)
	capitalService := financeapp.NewCapitalService(capitalEntryRepo, partyRepo, log)
	expenseService := financeapp.NewExpenseService(expenseRepo, partyRepo, log)
	tankService := tankapp.NewService(tankReadingRepo, saleRepo, productRepo, log)

	reportCache := cache.NewReportCache(cfg.Redis, log)
	reportService := reportapp.NewService(saleRepo, purchaseRepo, expenseRepo, productRepo, reportCache, log)

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)

	// HTTP layer
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
	}))

	engine.GET("/health", healthHandler(db))

	router.Setup(engine, jwtService, router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Party:    handler.NewPartyHandler(partyService),
		Product:  handler.NewProductHandler(productService),
		Sale:     handler.NewSaleHandler(saleService),
		Purchase: handler.NewPurchaseHandler(purchaseService),
		Finance:  handler.NewFinanceHandler(paymentService, capitalService, expenseService),
		Ledger:   handler.NewLedgerHandler(ledgerService),
		Report:   handler.NewReportHandler(reportService),
		Tank:     handler.NewTankHandler(tankService),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
