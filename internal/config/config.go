// Package config holds process configuration, logging and response helpers.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures runtime configuration read from the environment.
type Config struct {
	HTTPAddress       string
	DataDir           string
	LogLevel          string
	LogFormat         string
	JWTSecret         string
	SessionTTL        time.Duration
	AdminUsername     string
	AdminPasswordHash string
	AdminPassword     string // dev only, hashed at startup when no hash is set
	CookieDomain      string
	CookieSecure      bool
}

// Load reads environment variables into Config, applying defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:       getEnv("HTTP_ADDRESS", ":8080"),
		DataDir:           getEnv("DATA_DIR", "data"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", "json")),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		SessionTTL:        getDurationEnv("SESSION_TTL", 12*time.Hour),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		CookieDomain:      getEnv("COOKIE_DOMAIN", ""),
		CookieSecure:      getBoolEnv("COOKIE_SECURE", true),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
