package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"

	"github.com/tbanku/tbanku-api/services"
)

const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config is read from the environment (optionally populated from .env).
type Config struct {
	Port           string
	Mode           string
	FrontendURL    string
	AllowedOrigins []string

	DataDir       string
	StorageDriver string
	DatabaseURL   string
	EncryptionKey string
	IDStrategy    string

	RateLimit int
	Currency  string
}

// Load reads and validates the configuration.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Mode:          os.Getenv("GIN_MODE"),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3000"),
		DataDir:       getEnv("DATA_DIR", "public/data"),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", DriverFile)),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		EncryptionKey: os.Getenv("DATA_ENCRYPTION_KEY"),
		IDStrategy:    strings.ToLower(getEnv("ID_STRATEGY", services.StrategyLegacy)),
		Currency:      strings.ToUpper(getEnv("CURRENCY", "USD")),
	}

	cfg.AllowedOrigins = []string{cfg.FrontendURL}
	for _, origin := range strings.Split(os.Getenv("EXTRA_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	limit, err := strconv.Atoi(getEnv("RATE_LIMIT", "100"))
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT must be an integer: %w", err)
	}
	cfg.RateLimit = limit

	switch cfg.StorageDriver {
	case DriverFile, DriverMemory:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required for the postgres driver")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	switch cfg.IDStrategy {
	case services.StrategyLegacy, services.StrategySequential, services.StrategyTimestamp, services.StrategyUUID:
	default:
		return nil, fmt.Errorf("unknown ID_STRATEGY %q", cfg.IDStrategy)
	}

	if money.GetCurrency(cfg.Currency) == nil {
		return nil, fmt.Errorf("unknown CURRENCY %q", cfg.Currency)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
