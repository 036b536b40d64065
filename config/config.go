package config

import (
	"log/slog"
	"strings"
)

// AppConfig is the root configuration of the fieldops binaries. It composes
// the per-concern sections defined alongside it.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library:
//   - gateway.go: remote API connection and paging (FINERACT_*)
//   - database.go: local store and parameter cache (STORE_*, CACHE_*)
//   - observability.go: StatsD metrics (STATSD_*)
//   - tracking.go: path tracking sessions (TRACKING_*)
type AppConfig struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Gateway       GatewayConfig       `envPrefix:"FINERACT_"`
	Store         StoreConfig         `envPrefix:"STORE_"`
	Cache         CacheConfig         `envPrefix:"CACHE_"`
	Observability ObservabilityConfig `envPrefix:"STATSD_"`
	Tracking      TrackingConfig      `envPrefix:"TRACKING_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// Call it after parsing.
func (c *AppConfig) Sanitize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = "info"
	}

	c.Gateway.Sanitize()
	c.Store.Sanitize()
	c.Cache.Sanitize()
	c.Observability.Sanitize()
	c.Tracking.Sanitize()
}

// SlogLevel converts LogLevel to a slog.Level.
func (c *AppConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
