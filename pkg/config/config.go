package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration for both services.
type Config struct {
	AccountServicePort string
	LedgerServicePort  string
	IsProduction       bool

	// Ledger client settings
	LedgerBaseURL      string
	LedgerTimeout      time.Duration
	LedgerFetchRetries int

	// Enrichment fan-out cap
	EnrichmentMaxConcurrency int

	// Rate limit in ulule/limiter formatted form, e.g. "100-M"
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("ACCOUNT_SERVICE_PORT", "8080")
	viper.SetDefault("LEDGER_SERVICE_PORT", "8081")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LEDGER_BASE_URL", "http://localhost:8081")
	viper.SetDefault("LEDGER_TIMEOUT", "5s")
	viper.SetDefault("LEDGER_FETCH_RETRIES", 2)
	viper.SetDefault("ENRICHMENT_MAX_CONCURRENCY", 8)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.AccountServicePort = viper.GetString("ACCOUNT_SERVICE_PORT")
	cfg.LedgerServicePort = viper.GetString("LEDGER_SERVICE_PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.LedgerBaseURL = viper.GetString("LEDGER_BASE_URL")

	ledgerTimeoutStr := viper.GetString("LEDGER_TIMEOUT")
	ledgerTimeout, err := time.ParseDuration(ledgerTimeoutStr)
	if err != nil {
		ledgerTimeout = 5 * time.Second
		log.Printf("Warning: Invalid value for LEDGER_TIMEOUT ('%s'). Defaulting to %s.\n", ledgerTimeoutStr, ledgerTimeout)
	}
	cfg.LedgerTimeout = ledgerTimeout

	cfg.LedgerFetchRetries = viper.GetInt("LEDGER_FETCH_RETRIES")
	if cfg.LedgerFetchRetries < 0 {
		log.Printf("Warning: LEDGER_FETCH_RETRIES is negative (%d). Defaulting to 0.\n", cfg.LedgerFetchRetries)
		cfg.LedgerFetchRetries = 0
	}

	cfg.EnrichmentMaxConcurrency = viper.GetInt("ENRICHMENT_MAX_CONCURRENCY")
	if cfg.EnrichmentMaxConcurrency < 1 {
		log.Printf("Warning: ENRICHMENT_MAX_CONCURRENCY must be at least 1 (got %d). Defaulting to 8.\n", cfg.EnrichmentMaxConcurrency)
		cfg.EnrichmentMaxConcurrency = 8
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
