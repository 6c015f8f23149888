// Package config loads application configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string

	// LocalDataDir roots the device-local store (offline queue, drafts,
	// reference cache, PIN vault).
	LocalDataDir string

	// Connectivity probe settings.
	ProbeURL      string
	ProbeInterval time.Duration

	// Rate limiting, e.g. "60-M" for 60 requests per minute per IP.
	RateLimit string

	// CORS allowed origins.
	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("LOCAL_DATA_DIR", "./data")
	viper.SetDefault("PROBE_URL", "http://localhost:8080/health")
	viper.SetDefault("PROBE_INTERVAL", "30s")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173"})

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.LocalDataDir = viper.GetString("LOCAL_DATA_DIR")
	cfg.ProbeURL = viper.GetString("PROBE_URL")

	probeIntervalStr := viper.GetString("PROBE_INTERVAL")
	probeInterval, err := time.ParseDuration(probeIntervalStr)
	if err != nil {
		probeInterval = 30 * time.Second
		if probeIntervalStr != "" {
			log.Printf("Warning: Invalid value for PROBE_INTERVAL ('%s'). Defaulting to %s.\n", probeIntervalStr, probeInterval)
		}
	}
	cfg.ProbeInterval = probeInterval

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.AllowedOrigins = viper.GetStringSlice("ALLOWED_ORIGINS")

	return cfg, nil
}
