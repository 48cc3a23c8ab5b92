package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Database    DatabaseConfig
	Fastrac     FastracConfig
	Checkout    CheckoutConfig
	LogLevel    string
}

// FastracConfig holds the logistics provider endpoint and its static credentials.
// Credentials are deliberately not validated here: their absence is a per-request
// configuration error (HTTP 500) so the server can boot without them.
type FastracConfig struct {
	BaseURL   string
	AccessKey string
	SecretKey string
}

// CheckoutConfig tunes the checkout orchestrator.
type CheckoutConfig struct {
	SubmitDelay time.Duration // delay before the order-creation call fires
	SessionTTL  time.Duration // idle sessions older than this are pruned
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CHECKOUT_SUBMIT_DELAY", "3s")
	viper.SetDefault("CHECKOUT_SESSION_TTL", "30m")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	submitDelay, err := time.ParseDuration(getEnvOrViper("CHECKOUT_SUBMIT_DELAY", "3s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHECKOUT_SUBMIT_DELAY: %w", err)
	}
	sessionTTL, err := time.ParseDuration(getEnvOrViper("CHECKOUT_SESSION_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHECKOUT_SESSION_TTL: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "storefront"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		Fastrac: FastracConfig{
			BaseURL:   strings.TrimSpace(getEnvOrViper("FASTRAC_URL", "")),
			AccessKey: strings.TrimSpace(getEnvOrViper("FASTRAC_ACCESS_KEY", "")),
			SecretKey: strings.TrimSpace(getEnvOrViper("FASTRAC_SECRET_KEY", "")),
		},
		Checkout: CheckoutConfig{
			SubmitDelay: submitDelay,
			SessionTTL:  sessionTTL,
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	if cfg.Fastrac.BaseURL == "" {
		return nil, fmt.Errorf("FASTRAC_URL is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
