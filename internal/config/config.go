// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds everything the server needs to start.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// DBPath is the SQLite database file path.
	DBPath string

	// JWTSecret signs session tokens. Required when AccessKeyHash is set.
	JWTSecret string

	// TokenTTL is how long issued session tokens remain valid.
	TokenTTL time.Duration

	// AccessKeyHash is the bcrypt hash of the shared access key. Empty
	// means the API runs without authentication (local mode).
	AccessKeyHash string

	// AllowOrigins lists the CORS origins allowed to call the API.
	AllowOrigins []string
}

// AuthEnabled reports whether the access-key gate is configured.
func (c *Config) AuthEnabled() bool {
	return c.AccessKeyHash != ""
}

// Load reads configuration from environment variables, applying defaults
// for everything optional.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("ADDR", ":8080"),
		DBPath:        getEnv("DB_PATH", "./data/tripsplit.db"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AccessKeyHash: os.Getenv("ACCESS_KEY_HASH"),
		AllowOrigins:  strings.Split(getEnv("CORS_ALLOW_ORIGINS", "*"), ","),
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = ttl

	if cfg.AccessKeyHash != "" && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required when ACCESS_KEY_HASH is set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
