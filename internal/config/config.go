package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration, read from the environment.
type Config struct {
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LowStockThreshold int
	LowStockInterval  time.Duration

	LogLevel string
}

// Load reads configuration from environment variables. DATABASE_URL is
// required; everything else has a development default.
func Load() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	cfg := &Config{
		DatabaseURL:       databaseURL,
		RedisAddr:         envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           envOrDefaultInt("REDIS_DB", 0),
		LowStockThreshold: envOrDefaultInt("LOW_STOCK_THRESHOLD", 10),
		LowStockInterval:  envOrDefaultDuration("LOW_STOCK_INTERVAL", 30*time.Minute),
		LogLevel:          envOrDefault("LOG_LEVEL", "info"),
	}
	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func envOrDefaultDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
