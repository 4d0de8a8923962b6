package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	GinMode string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	// SessionTTL is counted from the last session write. With
	// SessionSliding enabled every authorized request renews it.
	SessionTTL     time.Duration
	SessionSliding bool

	// AdminEmail, when set, names an account promoted to admin at startup.
	AdminEmail string
}

func Load() Config {
	// local development convenience; missing file is fine
	_ = godotenv.Load()

	return Config{
		AppPort: getEnv("APP_PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SessionTTL:     getEnvAsDuration("SESSION_TTL", time.Hour),
		SessionSliding: getEnvAsBool("SESSION_SLIDING", false),

		AdminEmail: os.Getenv("ADMIN_EMAIL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getEnvAsBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
