package internal

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	// SMTP Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string

	// Recipient for staff quote notifications
	StaffEmail string

	// Public website URL (used in customer emails)
	SiteURL string

	// Graceful shutdown
	ShutdownTimeout time.Duration

	// Metrics endpoint authentication
	// If both are empty, the /metrics endpoint will be unprotected (not recommended)
	MetricsUsername string
	MetricsPassword string
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		// SMTP defaults for Mailhog (development)
		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnvInt("SMTP_PORT", 1025),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "no-reply@quickmove.ch"),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "QuickMove Quote System"),

		StaffEmail: getEnv("STAFF_EMAIL", ""),

		SiteURL: getEnv("SITE_URL", "https://www.quickmove.ch"),

		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		// Metrics authentication
		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),
	}

	// Required: quote notifications go to a fixed staff recipient
	if cfg.StaffEmail == "" {
		return nil, fmt.Errorf("STAFF_EMAIL is required")
	}

	// Production must not fall back to the Mailhog defaults
	if cfg.Env != "development" && os.Getenv("SMTP_HOST") == "" {
		return nil, fmt.Errorf("SMTP_HOST is required when ENV is %q", cfg.Env)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
