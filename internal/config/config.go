package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr          = ":8080"
	defaultSessionTTL    = "24h"
	defaultSessionSecret = "change-me-session-secret"
)

type Config struct {
	Addr string

	SupabaseURL string
	SupabaseKey string

	AdminAccessCode     string
	AdminAccessCodeHash string

	SessionSecret   string
	AdminSessionTTL time.Duration
}

// Load reads configuration from the environment. Supabase credentials are
// deliberately not validated here: their absence is a fatal error at store
// client construction, not at config load.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:                getEnv("ADDR", defaultAddr),
		SupabaseURL:         strings.TrimSpace(os.Getenv("SUPABASE_URL")),
		SupabaseKey:         strings.TrimSpace(os.Getenv("SUPABASE_ANON_KEY")),
		AdminAccessCode:     strings.TrimSpace(os.Getenv("ADMIN_ACCESS_CODE")),
		AdminAccessCodeHash: strings.TrimSpace(os.Getenv("ADMIN_ACCESS_CODE_HASH")),
		SessionSecret:       getEnv("SESSION_SECRET", defaultSessionSecret),
	}

	var err error
	cfg.AdminSessionTTL, err = parseDurationEnv("ADMIN_SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.AdminAccessCode == "" && cfg.AdminAccessCodeHash == "" {
		return fmt.Errorf("ADMIN_ACCESS_CODE or ADMIN_ACCESS_CODE_HASH must be set")
	}
	if cfg.AdminSessionTTL <= 0 {
		return fmt.Errorf("ADMIN_SESSION_TTL must be > 0")
	}
	if strings.TrimSpace(cfg.SessionSecret) == "" {
		return fmt.Errorf("SESSION_SECRET must not be empty")
	}
	return nil
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
