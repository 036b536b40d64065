// Package core defines the ports of the field operations client and the
// small amount of business logic that sits directly on them.
package core

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/openmf/fieldops/internal/domain/model"
)

// CacheRepository is a byte-oriented key/value cache with expiry.
// Redis and in-memory implementations live in the data layer.
type CacheRepository interface {
	// Set stores value under key. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get returns nil, nil when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete reports whether the key existed.
	Delete(ctx context.Context, key string) (bool, error)
	Health(ctx context.Context) error
}

// ParameterCacheConfig holds configuration for report parameter caching.
type ParameterCacheConfig struct {
	TTL time.Duration
}

// DefaultParameterCacheConfig returns the default caching configuration.
func DefaultParameterCacheConfig() ParameterCacheConfig {
	return ParameterCacheConfig{TTL: 15 * time.Minute}
}

// ParameterCacheServiceOptions bundles dependencies for NewParameterCacheService.
type ParameterCacheServiceOptions struct {
	Reports ReportGateway // required
	Cache   CacheRepository
	Config  ParameterCacheConfig
	Logger  *slog.Logger
}

// ParameterCacheService is a ReportGateway that serves parameter lists and
// parameter option lists from a cache. Report runs always go to the gateway.
// Cache failures degrade to a direct gateway call.
type ParameterCacheService struct {
	ReportGateway

	cache  CacheRepository
	ttl    time.Duration
	logger *slog.Logger
}

// NewParameterCacheService creates a new ParameterCacheService. A nil cache
// disables caching.
func NewParameterCacheService(opts ParameterCacheServiceOptions) *ParameterCacheService {
	if opts.Reports == nil {
		panic("ParameterCacheService requires a ReportGateway")
	}
	ttl := opts.Config.TTL
	if ttl <= 0 {
		ttl = DefaultParameterCacheConfig().TTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ParameterCacheService{
		ReportGateway: opts.Reports,
		cache:         opts.Cache,
		ttl:           ttl,
		logger:        logger.With("component", "parameter_cache"),
	}
}

// FullParameterList returns the cached parameter list of a report.
func (s *ParameterCacheService) FullParameterList(
	ctx context.Context,
	name string,
) (*model.FullParameterListResponse, error) {
	return s.cached(ctx, parameterListKey(name), func(ctx context.Context) (*model.FullParameterListResponse, error) {
		return s.ReportGateway.FullParameterList(ctx, name)
	})
}

// ParameterDetails returns the cached option list of a parameter.
func (s *ParameterCacheService) ParameterDetails(
	ctx context.Context,
	parameter string,
	params map[string]string,
) (*model.FullParameterListResponse, error) {
	return s.cached(ctx, parameterDetailsKey(parameter, params), func(ctx context.Context) (*model.FullParameterListResponse, error) {
		return s.ReportGateway.ParameterDetails(ctx, parameter, params)
	})
}

// Invalidate drops the cached parameter list of a report.
func (s *ParameterCacheService) Invalidate(ctx context.Context, name string) error {
	if s.cache == nil {
		return nil
	}
	_, err := s.cache.Delete(ctx, parameterListKey(name))
	return err
}

func (s *ParameterCacheService) cached(
	ctx context.Context,
	key string,
	fetch func(context.Context) (*model.FullParameterListResponse, error),
) (*model.FullParameterListResponse, error) {
	if s.cache == nil {
		return fetch(ctx)
	}

	if raw, err := s.cache.Get(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	} else if len(raw) > 0 {
		var resp model.FullParameterListResponse
		if err := json.Unmarshal(raw, &resp); err == nil {
			return &resp, nil
		}
		s.logger.WarnContext(ctx, "discarding undecodable cache entry", "key", key)
	}

	resp, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return resp, nil
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		s.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
	return resp, nil
}

func parameterListKey(name string) string {
	return "report:params:" + strings.Trim(name, "'")
}

func parameterDetailsKey(parameter string, params map[string]string) string {
	var b strings.Builder
	b.WriteString("report:param:")
	b.WriteString(parameter)
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(':')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}
