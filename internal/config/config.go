package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string

	// Persistence. When DatabaseURL is set the remote Postgres backend is
	// used; otherwise content lives in an embedded SQLite file under DataDir.
	DatabaseURL string
	TablePrefix string
	DataDir     string

	// Admin console authentication
	AdminPassword string
	JWTSecret     string
	TokenTTL      time.Duration

	// Chat relay
	ChatTimeout time.Duration
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		TablePrefix: getTablePrefix(env),
		DataDir:     getEnv("DATA_DIR", "data"),

		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenTTL:      getDuration("TOKEN_TTL_HOURS", 24) * time.Hour,

		ChatTimeout: getDuration("CHAT_TIMEOUT_SECONDS", 60) * time.Second,
	}
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue int64) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(defaultValue)
}
