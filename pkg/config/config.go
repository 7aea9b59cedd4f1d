package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// External REST-over-JSON store. When empty the local SQLite store is
	// used instead.
	StoreURL string

	// Local store fallback.
	SQLitePath string

	// Default retention percentage seeded into new movement drafts, raw
	// text as shown in the form.
	DefaultRetentionPercent string

	// Rate limit in ulule/limiter notation, e.g. "120-M".
	RateLimit string

	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORE_URL", "")
	viper.SetDefault("SQLITE_PATH", "data/ledger.db")
	viper.SetDefault("DEFAULT_RETENTION_PERCENT", "4.80")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.StoreURL = strings.TrimRight(viper.GetString("STORE_URL"), "/")
	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	cfg.DefaultRetentionPercent = viper.GetString("DEFAULT_RETENTION_PERCENT")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.AllowedOrigins = strings.Split(viper.GetString("ALLOWED_ORIGINS"), ",")

	if cfg.StoreURL == "" {
		log.Println("Warning: STORE_URL not set. Falling back to the local SQLite store.")
	}

	return cfg, nil
}
