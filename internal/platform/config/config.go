// Package config builds runtime configuration from the environment so main
// stays lean.
package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr string

	// VerifyBaseURL is the public base used to build QR check-in payloads,
	// e.g. https://app.example.com. The payload is <base>/v/<token>.
	VerifyBaseURL string

	// TrustedStorageHost is the only host previously issued badge copies may
	// be redirected to. Empty disables the short-circuit entirely.
	TrustedStorageHost string

	// AssetFetchTimeout bounds each external image fetch during rendering.
	AssetFetchTimeout time.Duration

	// RedisURL configures the issued-copy store. Empty means in-memory.
	RedisURL string

	// PostgresDSN configures the registry store. Empty means in-memory.
	PostgresDSN string
}

// RedisConfig tunes the go-redis client pool.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("LANYARD_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	base := os.Getenv("LANYARD_VERIFY_BASE_URL")
	if base == "" {
		base = "https://localhost:8080"
	}

	return Server{
		Addr:               addr,
		VerifyBaseURL:      base,
		TrustedStorageHost: os.Getenv("LANYARD_TRUSTED_STORAGE_HOST"),
		AssetFetchTimeout:  durationFromEnv("LANYARD_ASSET_FETCH_TIMEOUT", 5*time.Second),
		RedisURL:           os.Getenv("LANYARD_REDIS_URL"),
		PostgresDSN:        os.Getenv("LANYARD_POSTGRES_DSN"),
	}
}

// Redis derives a RedisConfig with pool defaults from the server config.
func (s Server) Redis() RedisConfig {
	return RedisConfig{
		URL:          s.RedisURL,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
