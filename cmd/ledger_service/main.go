package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/paymentbank/pb_backend/internal/core/services"
	"github.com/paymentbank/pb_backend/internal/handlers"
	"github.com/paymentbank/pb_backend/internal/middleware"
	"github.com/paymentbank/pb_backend/internal/repositories/memory"
	"github.com/paymentbank/pb_backend/internal/validation"
	"github.com/paymentbank/pb_backend/pkg/config"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("service", "ledger"))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	validation.RegisterDecimalType()

	transactionRepo := memory.NewTransactionRepositoryWithFixtures()
	transactionService := services.NewTransactionService(transactionRepo)

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterLedgerServiceRoutes(r, transactionService)

	logger.Info("Ledger service starting", slog.String("port", cfg.LedgerServicePort))
	if err := r.Run(":" + cfg.LedgerServicePort); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
