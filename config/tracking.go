package config

import (
	"strings"
	"time"
)

// TrackingConfig configures path tracking sessions.
type TrackingConfig struct {
	// UserID is the remote user whose locations are listed and recorded.
	UserID int64 `env:"USER_ID" envDefault:"1"`
	// SampleInterval is how often the location source is polled.
	SampleInterval time.Duration `env:"SAMPLE_INTERVAL" envDefault:"30s"`
	// ReplayFile feeds recorded coordinates (JSON lines) instead of a live source.
	ReplayFile string `env:"REPLAY_FILE"`
}

// Sanitize clamps the sample interval to at least one second.
func (c *TrackingConfig) Sanitize() {
	if c.SampleInterval < time.Second {
		c.SampleInterval = 30 * time.Second
	}
	if c.UserID < 0 {
		c.UserID = 0
	}
	c.ReplayFile = strings.TrimSpace(c.ReplayFile)
}
