package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go-inventario/pkg/database"
)

// Config holds all runtime configuration, loaded from environment variables
// (optionally seeded from a .env file by the caller).
type Config struct {
	AppName     string
	Port        string
	LogLevel    string
	CORSOrigins []string

	Database  DatabaseConfig
	Auth      AuthConfig
	Inventory InventoryConfig
}

type DatabaseConfig struct {
	Driver      string
	DSN         string
	AutoMigrate bool
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	IdleTimeout   time.Duration // 0 disables the inactivity check
	AdminEmail    string
	AdminPassword string
}

type InventoryConfig struct {
	AllowNegativeStock bool
	WarehouseLocation  string
	CurrencySymbol     string
	RecentAdjustments  int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	driver := strings.ToLower(getEnv("DB_DRIVER", "sqlite"))

	cfg := &Config{
		AppName:     getEnv("APP_NAME", "Inventario v1.0"),
		Port:        getEnv("PORT", "3000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: getEnvAsSlice("CORS_ORIGINS", []string{"*"}),
		Database: DatabaseConfig{
			Driver:      driver,
			DSN:         databaseDSN(driver),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", "change-me-in-production"),
			TokenTTL:      getEnvAsDuration("JWT_TTL", 24*time.Hour),
			IdleTimeout:   getEnvAsDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
			AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
			AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		Inventory: InventoryConfig{
			AllowNegativeStock: getEnvAsBool("ALLOW_NEGATIVE_STOCK", true),
			WarehouseLocation:  getEnv("WAREHOUSE_LOCATION", "Almacén Principal"),
			CurrencySymbol:     getEnv("CURRENCY_SYMBOL", "€"),
			RecentAdjustments:  getEnvAsInt("RECENT_ADJUSTMENTS", 100),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Database.Driver {
	case database.DriverSQLite, database.DriverPostgres:
	default:
		return fmt.Errorf("invalid DB_DRIVER: %s (must be sqlite or postgres)", c.Database.Driver)
	}

	if c.Database.DSN == "" {
		return fmt.Errorf("database DSN is empty")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if c.Auth.IdleTimeout < 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must not be negative")
	}

	if c.Inventory.RecentAdjustments <= 0 {
		return fmt.Errorf("RECENT_ADJUSTMENTS must be positive")
	}

	return nil
}

func databaseDSN(driver string) string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	if driver == "postgres" {
		return database.PostgresDSN(
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getEnv("DB_NAME", "inventario"),
			getEnv("DB_PORT", "5432"),
		)
	}
	return "inventario.db"
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
