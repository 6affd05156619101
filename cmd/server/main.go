package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"merchant-payments/internal/config"
	"merchant-payments/internal/database"
	"merchant-payments/internal/handlers"
	"merchant-payments/internal/middleware"
	"merchant-payments/internal/repositories"
	"merchant-payments/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	txnRepo := repositories.NewTransactionRepository(db)
	detailRepo := repositories.NewTransactionDetailRepository(db)
	merchantRepo := repositories.NewMerchantRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	txnService := services.NewTransactionService(txnRepo, detailRepo, cfg.Query, metrics)
	merchantService := services.NewMerchantService(merchantRepo, cfg.Query, metrics)

	// Handlers
	txnHandler := handlers.NewTransactionHandler(txnService)
	merchantHandler := handlers.NewMerchantHandler(merchantService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.CORS(cfg.Server.CORSAllowOrigins))
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.GET("/merchant-transaction/:merchantId/transactions", txnHandler.ListTransactions)
	api.POST("/merchant-transaction/:merchantId/transactions", txnHandler.CreateTransaction)

	api.POST("/merchants", merchantHandler.CreateMerchant)
	api.GET("/merchants", merchantHandler.ListMerchants)
	api.GET("/merchants/:merchantId", merchantHandler.GetMerchant)
	api.PUT("/merchants/:merchantId", merchantHandler.UpdateMerchant)
	api.DELETE("/merchants/:merchantId", merchantHandler.DeactivateMerchant)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := ":" + cfg.Server.Port
		slog.Info("Starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	slog.Info("Shutdown complete")
}
