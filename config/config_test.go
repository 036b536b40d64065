package config

import (
	"log/slog"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func parseEnv(t *testing.T, vars map[string]string) AppConfig {
	t.Helper()
	var cfg AppConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	cfg.Sanitize()
	return cfg
}

func TestAppConfigDefaults(t *testing.T) {
	cfg := parseEnv(t, map[string]string{})

	if cfg.Gateway.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", cfg.Gateway.PageSize, DefaultPageSize)
	}
	if cfg.Gateway.AuthMode != AuthModeBasic {
		t.Errorf("AuthMode = %q, want basic", cfg.Gateway.AuthMode)
	}
	if cfg.Gateway.Tenant != "default" {
		t.Errorf("Tenant = %q, want default", cfg.Gateway.Tenant)
	}
	if cfg.Store.Driver != StoreDriverSQLite || cfg.Store.Path != "fieldops.db" {
		t.Errorf("Store = %+v, want sqlite fieldops.db", cfg.Store)
	}
	if !cfg.Store.RunMigrationsOnStart {
		t.Error("RunMigrationsOnStart should default to true")
	}
	if cfg.Cache.Enabled || cfg.Cache.TTL != 15*time.Minute {
		t.Errorf("Cache = %+v, want disabled with 15m TTL", cfg.Cache)
	}
	if cfg.Observability.IsEnabled() {
		t.Error("metrics should be disabled by default")
	}
	if cfg.Tracking.SampleInterval != 30*time.Second {
		t.Errorf("SampleInterval = %v, want 30s", cfg.Tracking.SampleInterval)
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("SlogLevel = %v, want info", cfg.SlogLevel())
	}
}

func TestAppConfigFromEnv(t *testing.T) {
	cfg := parseEnv(t, map[string]string{
		"LOG_LEVEL":                "DEBUG",
		"FINERACT_BASE_URL":        "https://fineract.local/api/v1/",
		"FINERACT_TENANT":          "kenya",
		"FINERACT_AUTH_MODE":       "oauth2",
		"FINERACT_TOKEN_URL":       "https://auth.local/token",
		"FINERACT_PAGE_SIZE":       "25",
		"STORE_DRIVER":             "pgx",
		"STORE_HOST":               "db",
		"CACHE_ENABLED":            "true",
		"CACHE_ADDR":               "redis:6379",
		"CACHE_TTL":                "1m",
		"STATSD_ENABLED":           "true",
		"STATSD_ADDRESS":           "statsd:8125",
		"TRACKING_USER_ID":         "7",
		"TRACKING_REPLAY_FILE":     " trail.jsonl ",
		"TRACKING_SAMPLE_INTERVAL": "5s",
	})

	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel = %v, want debug", cfg.SlogLevel())
	}
	if cfg.Gateway.BaseURL != "https://fineract.local/api/v1" {
		t.Errorf("BaseURL = %q, trailing slash should be trimmed", cfg.Gateway.BaseURL)
	}
	if cfg.Gateway.Tenant != "kenya" || cfg.Gateway.AuthMode != AuthModeOAuth2 || cfg.Gateway.PageSize != 25 {
		t.Errorf("Gateway = %+v", cfg.Gateway)
	}
	if cfg.Store.Driver != StoreDriverPostgres {
		t.Errorf("Driver = %q, want postgres", cfg.Store.Driver)
	}
	if got, want := cfg.Store.PostgresDSN(), "postgres://fieldops:fieldops@db:5432/fieldops?sslmode=disable"; got != want {
		t.Errorf("PostgresDSN = %q, want %q", got, want)
	}
	if !cfg.Cache.Enabled || cfg.Cache.TTL != time.Minute {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if !cfg.Observability.IsEnabled() {
		t.Error("metrics should be enabled")
	}
	if cfg.Tracking.UserID != 7 || cfg.Tracking.ReplayFile != "trail.jsonl" || cfg.Tracking.SampleInterval != 5*time.Second {
		t.Errorf("Tracking = %+v", cfg.Tracking)
	}
}

func TestGatewayConfigSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   GatewayConfig
		want GatewayConfig
	}{
		{
			name: "oauth2 without token url falls back to basic",
			in:   GatewayConfig{AuthMode: AuthModeOAuth2, PageSize: 10, Timeout: time.Second, Tenant: "t"},
			want: GatewayConfig{AuthMode: AuthModeBasic, PageSize: 10, Timeout: time.Second, Tenant: "t"},
		},
		{
			name: "invalid values clamp to defaults",
			in:   GatewayConfig{AuthMode: "digest", PageSize: -1, Timeout: -time.Second},
			want: GatewayConfig{AuthMode: AuthModeBasic, PageSize: DefaultPageSize, Timeout: 30 * time.Second, Tenant: "default"},
		},
		{
			name: "oversized page",
			in:   GatewayConfig{AuthMode: AuthModeBasic, PageSize: 5000, Timeout: time.Second, Tenant: "t"},
			want: GatewayConfig{AuthMode: AuthModeBasic, PageSize: DefaultPageSize, Timeout: time.Second, Tenant: "t"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Sanitize()
			if got != tt.want {
				t.Fatalf("Sanitize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCacheConfigSanitize(t *testing.T) {
	c := CacheConfig{Enabled: true, UseSentinel: true, TTL: -1}
	c.Sanitize()
	if c.UseSentinel {
		t.Error("sentinel without nodes should be disabled")
	}
	if c.Enabled {
		t.Error("cache without address should be disabled")
	}
	if c.TTL != 15*time.Minute {
		t.Errorf("TTL = %v, want 15m", c.TTL)
	}
}

func TestLogLevelSanitize(t *testing.T) {
	cfg := AppConfig{LogLevel: "verbose"}
	cfg.Sanitize()
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	cfg.LogLevel = " Warn "
	cfg.Sanitize()
	if cfg.SlogLevel() != slog.LevelWarn {
		t.Errorf("SlogLevel = %v, want warn", cfg.SlogLevel())
	}
}
