package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	RedisAddr       string
	DBConnString    string
	CatalogBaseURL  string
	OrderDelay      time.Duration
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		RedisAddr:       envOrDefault("REDIS_ADDR", ""),
		DBConnString:    envOrDefault("DB_DSN", ""),
		CatalogBaseURL:  envOrDefault("CATALOG_BASE_URL", ""),
		OrderDelay:      envDuration("ORDER_DELAY_SECONDS", time.Second),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
