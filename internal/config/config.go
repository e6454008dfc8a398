package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Port          string
	Env           string
	SessionSecret string

	// AdminSecret gates the self-service admin elevation endpoint.
	AdminSecret string

	// AdminPassword is used when seeding the default admin account.
	AdminPassword string

	BroadcastInterval time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:              os.Getenv("PORT"),
		Env:               getEnv("APP_ENV", "development"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		AdminSecret:       os.Getenv("ADMIN_SECRET"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		BroadcastInterval: 5 * time.Second,
	}

	if v := os.Getenv("BROADCAST_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BROADCAST_INTERVAL: %w", err)
		}
		cfg.BroadcastInterval = d
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.AdminSecret == "" {
		return nil, fmt.Errorf("ADMIN_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
