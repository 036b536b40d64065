package config

import "strings"

// ObservabilityConfig controls emission of metrics to a StatsD agent.
type ObservabilityConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Address string `env:"ADDRESS" envDefault:"127.0.0.1:8125"`
	Prefix  string `env:"PREFIX"  envDefault:"fieldops"`
}

// Sanitize disables metrics when no address is configured.
func (c *ObservabilityConfig) Sanitize() {
	c.Address = strings.TrimSpace(c.Address)
	c.Prefix = strings.Trim(strings.TrimSpace(c.Prefix), ".")
	if c.Address == "" {
		c.Enabled = false
	}
}

// IsEnabled returns true when metrics emission is active after sanitisation.
func (c *ObservabilityConfig) IsEnabled() bool {
	return c.Enabled && c.Address != ""
}
