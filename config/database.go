package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// StoreDriver selects the local store dialect.
type StoreDriver string

const (
	// StoreDriverSQLite keeps the store in a single file on the device.
	StoreDriverSQLite StoreDriver = "sqlite"
	// StoreDriverPostgres keeps the store in a shared branch database.
	StoreDriverPostgres StoreDriver = "postgres"
)

// StoreConfig contains local store configuration.
type StoreConfig struct {
	Driver StoreDriver `env:"DRIVER" envDefault:"sqlite"`
	Path   string      `env:"PATH"   envDefault:"fieldops.db"`

	// Postgres settings, used when Driver is postgres.
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"fieldops"`
	Password string `env:"PASSWORD" envDefault:"fieldops"`
	Name     string `env:"NAME"     envDefault:"fieldops"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"`

	// RunMigrationsOnStart applies pending migrations when the store opens.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// Sanitize normalises the store configuration.
func (c *StoreConfig) Sanitize() {
	switch StoreDriver(strings.ToLower(strings.TrimSpace(string(c.Driver)))) {
	case StoreDriverPostgres, "pgx", "postgresql":
		c.Driver = StoreDriverPostgres
	default:
		c.Driver = StoreDriverSQLite
	}
	if c.Path = strings.TrimSpace(c.Path); c.Path == "" {
		c.Path = "fieldops.db"
	}
	if c.Port <= 0 {
		c.Port = 5432
	}
	if c.SSLMode == "" {
		c.SSLMode = "disable"
	}
}

// PostgresDSN renders a pgx connection URL.
func (c *StoreConfig) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// CacheConfig contains report parameter cache configuration (Redis-based).
// When disabled an in-process cache is used.
type CacheConfig struct {
	Enabled  bool          `env:"ENABLED"  envDefault:"false"`
	Addr     string        `env:"ADDR"     envDefault:"localhost:6379"`
	Password string        `env:"PASSWORD" envDefault:""`
	DB       int           `env:"DB"       envDefault:"0"`
	TTL      time.Duration `env:"TTL"      envDefault:"15m"`

	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	SentinelNodes      []string `env:"SENTINEL_NODES"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
}

// Sanitize normalises the cache configuration.
func (c *CacheConfig) Sanitize() {
	c.Addr = strings.TrimSpace(c.Addr)
	if c.TTL <= 0 {
		c.TTL = 15 * time.Minute
	}
	if c.DB < 0 {
		c.DB = 0
	}
	if c.UseSentinel && len(c.SentinelNodes) == 0 {
		c.UseSentinel = false
	}
	if c.Addr == "" && !c.UseSentinel {
		c.Enabled = false
	}
}
