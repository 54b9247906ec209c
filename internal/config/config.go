package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port string
	Env  string

	DB       DatabaseConfig
	Business BusinessConfig
	Discount DiscountConfig
}

// DatabaseConfig contains SQLite connection parameters.
type DatabaseConfig struct {
	Path string
}

// BusinessConfig contains the business identity printed on invoices and
// daily reports.
type BusinessConfig struct {
	Name    string
	Address string
	Phone   string
}

// DiscountConfig contains the preset per-unit discount tiers a cashier may
// select when a valid discount code is presented.
type DiscountConfig struct {
	Tiers []float64
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")

	// Database
	cfg.DB = DatabaseConfig{
		Path: getEnv("DB_PATH", "pos.db"),
	}

	// Business identity
	cfg.Business = BusinessConfig{
		Name:    getEnv("BUSINESS_NAME", "Cuidado Capilar RD"),
		Address: getEnv("BUSINESS_ADDRESS", "C.8 con esquina 29 #59, Pueblo Nuevo, Los Alcarrizos, Santo Domingo Oeste"),
		Phone:   getEnv("BUSINESS_PHONE", "(829) 719-3863"),
	}

	// Discount tiers
	tiers, err := parseTiers(getEnv("DISCOUNT_TIERS", "50,100"))
	if err != nil {
		return nil, fmt.Errorf("invalid DISCOUNT_TIERS: %w", err)
	}
	cfg.Discount = DiscountConfig{Tiers: tiers}

	if cfg.DB.Path == "" {
		return nil, errors.New("database configuration incomplete: ensure DB_PATH is set")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parseTiers parses a comma-separated list of positive discount amounts.
func parseTiers(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	tiers := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("tier must be positive, got %v", v)
		}
		tiers = append(tiers, v)
	}
	if len(tiers) == 0 {
		return nil, errors.New("at least one tier is required")
	}
	return tiers, nil
}
