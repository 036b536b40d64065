package config

import (
	"strings"
	"time"
)

// AuthMode selects how the gateway authenticates against the remote API.
type AuthMode string

const (
	// AuthModeBasic authenticates with /authentication and sends a basic auth key.
	AuthModeBasic AuthMode = "basic"
	// AuthModeOAuth2 uses the resource owner password grant against TokenURL.
	AuthModeOAuth2 AuthMode = "oauth2"
)

// DefaultPageSize is the number of entities requested per list page.
const DefaultPageSize = 100

// GatewayConfig configures the remote financial API client.
type GatewayConfig struct {
	BaseURL  string        `env:"BASE_URL"  envDefault:"https://demo.mifos.io/fineract-provider/api/v1"`
	Tenant   string        `env:"TENANT"    envDefault:"default"`
	AuthMode AuthMode      `env:"AUTH_MODE" envDefault:"basic"`
	Username string        `env:"USERNAME"  envDefault:"mifos"`
	Password string        `env:"PASSWORD"  envDefault:"password"`
	Timeout  time.Duration `env:"TIMEOUT"   envDefault:"30s"`
	PageSize int           `env:"PAGE_SIZE" envDefault:"100"`

	// OAuth2 settings, used when AuthMode is oauth2.
	TokenURL     string `env:"TOKEN_URL"`
	ClientID     string `env:"CLIENT_ID"     envDefault:"community-app"`
	ClientSecret string `env:"CLIENT_SECRET"`

	// InsecureSkipVerify disables TLS verification for self-signed demo servers.
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
}

// Sanitize normalises the gateway configuration.
func (c *GatewayConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Tenant = strings.TrimSpace(c.Tenant); c.Tenant == "" {
		c.Tenant = "default"
	}
	switch AuthMode(strings.ToLower(string(c.AuthMode))) {
	case AuthModeOAuth2:
		c.AuthMode = AuthModeOAuth2
	default:
		c.AuthMode = AuthModeBasic
	}
	if c.AuthMode == AuthModeOAuth2 && strings.TrimSpace(c.TokenURL) == "" {
		c.AuthMode = AuthModeBasic
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.PageSize <= 0 || c.PageSize > 1000 {
		c.PageSize = DefaultPageSize
	}
}
