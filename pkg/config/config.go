package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jellos/pykakuro/pkg/constants"
)

// Config holds environment-derived settings for the HTTP server.
type Config struct {
	Port string
	// CacheFile is the path used to persist the combination table (see
	// internal/kakuro/cache.go). Empty disables persistence.
	CacheFile string
	// SolveTimeout bounds solves made through the HTTP API.
	SolveTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// for anything unset.
func Load() (*Config, error) {
	timeout := 5 * time.Second
	if raw := os.Getenv("SOLVE_TIMEOUT_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms <= 0 {
			return nil, fmt.Errorf("invalid SOLVE_TIMEOUT_MS %q: must be a positive integer", raw)
		}
		timeout = time.Duration(ms) * time.Millisecond
	}

	return &Config{
		Port:         getEnv("PORT", constants.DefaultPort),
		CacheFile:    getEnv("COMBO_CACHE_FILE", constants.DefaultCacheFile),
		SolveTimeout: timeout,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
