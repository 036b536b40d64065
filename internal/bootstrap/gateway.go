package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/openmf/fieldops/config"
	"github.com/openmf/fieldops/internal/adapters/fineract"
	"github.com/openmf/fieldops/internal/observability/statsd"
)

// NewMetrics builds the StatsD sink. A disabled config yields a client that
// drops every metric.
func NewMetrics(cfg config.ObservabilityConfig, logger *slog.Logger) (*statsd.Client, error) {
	client, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.IsEnabled(),
		Address: cfg.Address,
		Prefix:  cfg.Prefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build metrics client: %w", err)
	}
	if logger != nil && client.Enabled() {
		logger.Info("metrics enabled", "address", cfg.Address, "prefix", cfg.Prefix)
	}
	return client, nil
}

// NewAuthenticator picks the authentication scheme configured for the
// gateway.
//
//nolint:ireturn // the scheme is chosen at runtime.
func NewAuthenticator(cfg config.GatewayConfig, hc *http.Client) fineract.Authenticator {
	if cfg.AuthMode == config.AuthModeOAuth2 {
		return fineract.NewOAuth2Authenticator(fineract.OAuth2Config{
			TokenURL:     cfg.TokenURL,
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Username:     cfg.Username,
			Password:     cfg.Password,
			HTTPClient:   hc,
		})
	}
	return fineract.NewBasicAuthenticator(fineract.BasicAuthConfig{
		BaseURL:    cfg.BaseURL,
		Tenant:     cfg.Tenant,
		Username:   cfg.Username,
		Password:   cfg.Password,
		HTTPClient: hc,
	})
}

// NewGateway builds the authenticated remote API client.
func NewGateway(cfg config.GatewayConfig, metrics statsd.Sink, logger *slog.Logger) (*fineract.Client, error) {
	hc, err := fineract.NewHTTPClient(cfg.Timeout, cfg.InsecureSkipVerify)
	if err != nil {
		return nil, fmt.Errorf("build http client: %w", err)
	}
	client, err := fineract.NewClient(fineract.Config{
		BaseURL:    cfg.BaseURL,
		Tenant:     cfg.Tenant,
		Auth:       NewAuthenticator(cfg, hc),
		HTTPClient: hc,
		Metrics:    metrics,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build gateway: %w", err)
	}
	if logger != nil {
		logger.Info("gateway configured", "base_url", cfg.BaseURL, "tenant", cfg.Tenant, "auth", string(cfg.AuthMode))
	}
	return client, nil
}
