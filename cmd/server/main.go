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

	"go.uber.org/zap"

	appbilling "github.com/nivas/backend/internal/application/billing"
	appcommunity "github.com/nivas/backend/internal/application/community"
	appidentity "github.com/nivas/backend/internal/application/identity"
	"github.com/nivas/backend/internal/infrastructure/auth"
	"github.com/nivas/backend/internal/infrastructure/config"
	"github.com/nivas/backend/internal/infrastructure/email"
	"github.com/nivas/backend/internal/infrastructure/logger"
	"github.com/nivas/backend/internal/infrastructure/payment"
	"github.com/nivas/backend/internal/infrastructure/persistence"
	"github.com/nivas/backend/internal/interfaces/http/handler"
	"github.com/nivas/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

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

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database,
		logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level)))
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = db.Close() }()

	// Redis-backed blacklist when configured; in-memory keeps single-node
	// deployments working without one
	var blacklist auth.TokenBlacklist
	if redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis); err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
	}

	jwtService := auth.NewJWTService(cfg.JWT)
	gateway := payment.NewRazorpayGateway(cfg.Payment, log)
	notifier := email.NewFromConfig(cfg.Email, log)

	// Repositories
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	societyRepo := persistence.NewGormSocietyRepository(db.DB)
	billRepo := persistence.NewGormBillRepository(db.DB)
	visitorRepo := persistence.NewGormVisitorRepository(db.DB)
	complaintRepo := persistence.NewGormComplaintRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	noticeRepo := persistence.NewGormNoticeRepository(db.DB)
	vehicleRepo := persistence.NewGormVehicleRepository(db.DB)
	contactRepo := persistence.NewGormEmergencyContactRepository(db.DB)

	// Application services
	authService := appidentity.NewAuthService(accountRepo, jwtService, blacklist, log)
	societyService := appidentity.NewSocietyService(societyRepo, accountRepo, blacklist, jwtService, log)
	residentService := appidentity.NewResidentService(accountRepo, log)
	billingService := appbilling.NewBillingService(billRepo, accountRepo, log)
	paymentService := appbilling.NewPaymentService(billRepo, gateway, log)
	visitorService := appcommunity.NewVisitorService(visitorRepo, log)
	complaintService := appcommunity.NewComplaintService(complaintRepo, accountRepo, notifier, log)
	expenseService := appcommunity.NewExpenseService(expenseRepo, accountRepo, notifier, log)
	noticeService := appcommunity.NewNoticeService(noticeRepo, accountRepo, notifier, log)
	vehicleService := appcommunity.NewVehicleService(vehicleRepo, log)
	sosService := appcommunity.NewSOSService(contactRepo, societyRepo, accountRepo, log)

	engine := router.New(router.Dependencies{
		Config:     cfg,
		Logger:     log,
		JWTService: jwtService,
		Blacklist:  blacklist,
		Handlers: router.Handlers{
			System:    handler.NewSystemHandler(db.DB, version),
			Auth:      handler.NewAuthHandler(authService),
			Society:   handler.NewSocietyHandler(societyService),
			Resident:  handler.NewResidentHandler(residentService),
			Bill:      handler.NewBillHandler(billingService),
			Payment:   handler.NewPaymentHandler(paymentService),
			Visitor:   handler.NewVisitorHandler(visitorService),
			Complaint: handler.NewComplaintHandler(complaintService),
			Expense:   handler.NewExpenseHandler(expenseService),
			Notice:    handler.NewNoticeHandler(noticeService),
			Vehicle:   handler.NewVehicleHandler(vehicleService),
			SOS:       handler.NewSOSHandler(sosService),
		},
	})

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-quit:
		log.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
