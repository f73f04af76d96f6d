// Package config loads server settings from the environment, with an
// optional .env overlay for development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/gamestorehq/gamestore/internal/services/auth"
)

// Config holds runtime settings for the game store server
type Config struct {
	// Port is the HTTP listen port
	Port int
	// Secret is the password-hashing secret (SECRET_KEY)
	Secret string
	// SessionTTL is the lifetime of issued sessions
	SessionTTL time.Duration
	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string
	// RedisURL is the Redis connection URL (required for redis storage)
	RedisURL string
	// ReaperInterval is how often expired sessions are swept
	ReaperInterval time.Duration
}

// Load builds a Config from the environment. A .env file in the working
// directory is applied first if present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           8080,
		Secret:         auth.DevSecret,
		SessionTTL:     7 * 24 * time.Hour,
		StorageType:    "memory",
		ReaperInterval: time.Hour,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		cfg.Secret = v
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL %q: %w", v, err)
		}
		cfg.SessionTTL = ttl
	}
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		cfg.StorageType = v
	}
	cfg.RedisURL = os.Getenv("REDIS_URL")

	return cfg, nil
}

// UsingDevSecret reports whether the insecure development secret is in
// use; startup must flag this, never accept it silently
func (c *Config) UsingDevSecret() bool {
	return c.Secret == auth.DevSecret
}
