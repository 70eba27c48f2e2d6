package config

import (
	"os"
	"strconv"
	"time"

	"bookflow/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Booking  BookingConfig
	Database DatabaseConfig
	Template TemplateConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// BookingConfig holds Booking Service client settings
type BookingConfig struct {
	APIURL          string
	Token           string
	Timeout         time.Duration
	ExtendedPayload bool
	CompanyCode     string
}

// DatabaseConfig holds report store settings. URL is optional; when empty
// batch reports are returned to the caller but not persisted.
type DatabaseConfig struct {
	URL string
}

// TemplateConfig holds order template generation settings
type TemplateConfig struct {
	Version string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Booking: BookingConfig{
			APIURL:          getEnvOrDefault("BOOKING_API_URL", ""),
			Token:           getEnvOrDefault("BOOKING_API_TOKEN", ""),
			Timeout:         getEnvDurationOrDefault("SUBMIT_TIMEOUT", 30*time.Second),
			ExtendedPayload: getEnvBoolOrDefault("EXTENDED_PAYLOAD", false),
			CompanyCode:     getEnvOrDefault("COMPANY_CODE", ""),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Template: TemplateConfig{
			Version: getEnvOrDefault("TEMPLATE_VERSION", "v2"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Booking.Timeout <= 0 {
		return errors.ConfigInvalid("SUBMIT_TIMEOUT must be positive")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
