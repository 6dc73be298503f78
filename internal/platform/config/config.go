package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	MigrationsPath string
	// PostingStrict controls whether the business transaction and its
	// journal are committed in one database transaction (true) or the
	// original record-then-post behavior is kept, where a posting failure
	// leaves the transaction recorded and is only reported (false).
	PostingStrict bool
	// SeedOnStart runs the idempotent chart-of-accounts seed at startup.
	SeedOnStart bool
	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("POSTING_STRICT", true)
	viper.SetDefault("SEED_ON_START", true)
	viper.SetDefault("RATE_LIMIT", "300-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.PostingStrict = viper.GetBool("POSTING_STRICT")
	cfg.SeedOnStart = viper.GetBool("SEED_ON_START")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
