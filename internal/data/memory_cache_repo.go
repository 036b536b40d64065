package data

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/openmf/fieldops/internal/core"
)

var _ core.CacheRepository = (*MemoryCacheRepo)(nil)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryCacheRepo implements core.CacheRepository in process memory. It is
// used when Redis is not configured. Expired entries are dropped lazily.
type MemoryCacheRepo struct {
	mu           sync.Mutex
	entries      map[string]memoryEntry
	timeProvider TimeProvider
}

// NewMemoryCacheRepo creates an empty cache. A nil tp uses the system clock.
func NewMemoryCacheRepo(tp TimeProvider) *MemoryCacheRepo {
	if tp == nil {
		tp = RealTimeProvider{}
	}
	return &MemoryCacheRepo{entries: map[string]memoryEntry{}, timeProvider: tp}
}

// Set implements core.CacheRepository.
func (r *MemoryCacheRepo) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	e := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = r.timeProvider.Now().Add(ttl)
	}
	r.mu.Lock()
	r.entries[key] = e
	r.mu.Unlock()
	return nil
}

// Get implements core.CacheRepository.
func (r *MemoryCacheRepo) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[key]
	if !ok {
		return nil, nil
	}
	if e.expired(r.timeProvider.Now()) {
		delete(r.entries, key)
		return nil, nil
	}
	return append([]byte(nil), e.value...), nil
}

// Delete implements core.CacheRepository.
func (r *MemoryCacheRepo) Delete(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("key cannot be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[key]
	delete(r.entries, key)
	return ok && !e.expired(r.timeProvider.Now()), nil
}

// Health implements core.CacheRepository.
func (r *MemoryCacheRepo) Health(context.Context) error { return nil }
