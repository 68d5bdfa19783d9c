package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go-inventory-catalog/pkg/database"
)

// Config holds everything the server and the reconcile command read from the environment.
type Config struct {
	AppName string
	Port    string

	DBDriver    string
	DatabaseURL string
	DBLogLevel  string

	// Reconcile enables legacy category renames and baseline reconciliation on start.
	Reconcile bool

	CORSOrigins string
}

const (
	defaultAppName   = "Catalog Inventory v1.0"
	defaultPort      = "3001"
	defaultSQLiteDSN = "inventory.db"
)

// Load reads the process environment. Call godotenv.Load first to pick up a .env file.
func Load() (Config, error) {
	cfg := Config{
		AppName:     getenv("APP_NAME", defaultAppName),
		Port:        getenv("PORT", defaultPort),
		DBDriver:    strings.ToLower(getenv("DB_DRIVER", database.DriverSQLite)),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBLogLevel:  getenv("DB_LOG_LEVEL", "warn"),
		CORSOrigins: getenv("CORS_ORIGINS", "*"),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("PORT must be number: %w", err)
	}

	switch cfg.DBDriver {
	case database.DriverSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = defaultSQLiteDSN
		}
	case database.DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required for postgres")
		}
	default:
		return Config{}, fmt.Errorf("DB_DRIVER %q is not supported (sqlite, postgres)", cfg.DBDriver)
	}

	if _, err := database.ParseLogLevel(cfg.DBLogLevel); err != nil {
		return Config{}, err
	}

	reconcile, err := getbool("SEED_RECONCILE", true)
	if err != nil {
		return Config{}, err
	}
	cfg.Reconcile = reconcile

	return cfg, nil
}

// DatabaseOptions converts the config into pkg/database options.
func (c Config) DatabaseOptions() database.Options {
	return database.Options{
		Driver:   c.DBDriver,
		DSN:      c.DatabaseURL,
		LogLevel: c.DBLogLevel,
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
