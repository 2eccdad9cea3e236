package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/paymentbank/pb_backend/internal/clients/ledger"
	"github.com/paymentbank/pb_backend/internal/core/services"
	"github.com/paymentbank/pb_backend/internal/handlers"
	"github.com/paymentbank/pb_backend/internal/middleware"
	"github.com/paymentbank/pb_backend/internal/repositories/memory"
	"github.com/paymentbank/pb_backend/internal/validation"
	"github.com/paymentbank/pb_backend/pkg/config"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("service", "account"))
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

	// In-memory stores: state lives for the lifetime of the process.
	accountRepo := memory.NewAccountRepositoryWithFixtures()
	ledgerClient := ledger.NewClient(cfg.LedgerBaseURL, cfg.LedgerTimeout, cfg.LedgerFetchRetries)

	enrichmentService := services.NewEnrichmentService(accountRepo, ledgerClient, cfg.EnrichmentMaxConcurrency)
	openingService := services.NewAccountOpeningService(accountRepo, ledgerClient)

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterAccountServiceRoutes(r, enrichmentService, openingService)

	logger.Info("Account service starting",
		slog.String("port", cfg.AccountServicePort),
		slog.String("ledger_base_url", cfg.LedgerBaseURL),
	)
	if err := r.Run(":" + cfg.AccountServicePort); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
