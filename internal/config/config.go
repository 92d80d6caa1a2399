package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAddr          = ":8080"
	defaultDSN           = "zagrane.db"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultJWTAccessTTL  = "1h"
	defaultCookieName    = "access_token"
	defaultCookieSecure  = "false"
	defaultPriceDocsPath = "config/price_tables.json"
)

// RuntimeConfig is everything cmd/api needs from the environment.
type RuntimeConfig struct {
	Addr          string
	DatabaseDSN   string
	JWTSecret     string
	JWTAccessTTL  time.Duration
	CookieName    string
	CookieSecure  bool
	PriceDocsPath string
}

func Load() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}

	cfg.Addr = strings.TrimSpace(getEnv("ADDR", defaultAddr))
	cfg.DatabaseDSN = strings.TrimSpace(getEnv("DATABASE_URL", defaultDSN))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.CookieName = strings.TrimSpace(getEnv("AUTH_COOKIE_NAME", defaultCookieName))
	cfg.PriceDocsPath = strings.TrimSpace(getEnv("PRICE_DOCS_PATH", defaultPriceDocsPath))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.CookieSecure, err = strconv.ParseBool(getEnv("AUTH_COOKIE_SECURE", defaultCookieSecure))
	if err != nil {
		return nil, fmt.Errorf("AUTH_COOKIE_SECURE: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive", key)
	}
	return d, nil
}
