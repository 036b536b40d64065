package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openmf/fieldops/config"
	"github.com/openmf/fieldops/internal/core"
	"github.com/openmf/fieldops/internal/data"
	"github.com/openmf/fieldops/internal/data/database"
	"github.com/openmf/fieldops/internal/migrate"
)

// cacheKeyPrefix namespaces fieldops keys in a shared Redis.
const cacheKeyPrefix = "fieldops:"

// ConnectStore opens the local store and, when configured, applies pending
// migrations.
func ConnectStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (*sql.DB, error) {
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrationsOnStart {
		if migErr := RunMigrations(ctx, db, cfg.Driver, logger); migErr != nil {
			if closeErr := db.Close(); closeErr != nil {
				migErr = errors.Join(migErr, fmt.Errorf("close store: %w", closeErr))
			}
			return nil, migErr
		}
	}

	if logger != nil {
		attrs := []any{"driver", string(cfg.Driver)}
		if cfg.Driver == config.StoreDriverSQLite {
			attrs = append(attrs, "path", cfg.Path)
		} else {
			attrs = append(attrs, "host", cfg.Host, "port", cfg.Port, "database", cfg.Name)
		}
		logger.Info("store connected", attrs...)
	}
	return db, nil
}

// RunMigrations runs store migrations.
func RunMigrations(ctx context.Context, db *sql.DB, driver config.StoreDriver, logger *slog.Logger) error {
	if err := migrate.Run(ctx, db, driver); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if logger != nil {
		logger.InfoContext(ctx, "store migrations completed")
	}

	return nil
}

// ConnectRedis establishes a connection to Redis.
//
//nolint:ireturn // returning redis.UniversalClient lets us pick single or sentinel clients at runtime.
func ConnectRedis(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	client, addrDesc, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if pingErr := client.Ping(pingCtx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if logger != nil {
		logger.Info("redis connected", "addr", addrDesc)
	}
	return client, nil
}

//nolint:ireturn // returning redis.UniversalClient keeps client selection flexible.
func newRedisClient(cfg config.CacheConfig) (redis.UniversalClient, string, error) {
	if cfg.UseSentinel {
		nodes := normalizeAddrs(cfg.SentinelNodes)
		if len(nodes) == 0 {
			return nil, "", errors.New("redis sentinel configuration requires at least one sentinel node")
		}
		client := redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:    cfg.SentinelMasterName,
			SentinelAddrs: nodes,
			Password:      cfg.Password,
			DB:            cfg.DB,
		})
		return client, "sentinel:" + cfg.SentinelMasterName, nil
	}

	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, "", errors.New("redis configuration requires an address")
	}
	if isRedisURL(addr) {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, "", fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opt), opt.Addr, nil
	}
	return redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Password, DB: cfg.DB}), addr, nil
}

func normalizeAddrs(raw []string) []string {
	result := make([]string, 0, len(raw))
	for _, addr := range raw {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func isRedisURL(value string) bool {
	return strings.HasPrefix(value, "redis://") || strings.HasPrefix(value, "rediss://")
}

// NewCacheRepository returns the Redis cache when it is enabled and
// reachable, and an in-process cache otherwise. The returned func releases
// the Redis client.
//
//nolint:ireturn // callers only need the port.
func NewCacheRepository(
	ctx context.Context,
	cfg config.CacheConfig,
	logger *slog.Logger,
) (core.CacheRepository, func() error) {
	noop := func() error { return nil }
	if !cfg.Enabled {
		return data.NewMemoryCacheRepo(nil), noop
	}
	client, err := ConnectRedis(ctx, cfg, logger)
	if err != nil {
		if logger != nil {
			logger.Warn("redis unavailable, using in-process parameter cache", "error", err)
		}
		return data.NewMemoryCacheRepo(nil), noop
	}
	return data.NewRedisCacheRepo(client, cacheKeyPrefix), client.Close
}
