package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmf/fieldops/internal/testutil"
)

func TestMemoryCacheRepo(t *testing.T) {
	t.Parallel()
	clock := NewFixedTimeProvider(testutil.TestTime())
	repo := NewMemoryCacheRepo(clock)
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "k1", []byte("v1"), time.Minute))
		got, err := repo.Get(ctx, "k1")
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), got)
	})

	t.Run("missing key", func(t *testing.T) {
		got, err := repo.Get(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty key", func(t *testing.T) {
		require.Error(t, repo.Set(ctx, "", nil, 0))
		_, err := repo.Get(ctx, "")
		require.Error(t, err)
	})

	t.Run("stored value is copied", func(t *testing.T) {
		v := []byte("abc")
		require.NoError(t, repo.Set(ctx, "k2", v, 0))
		v[0] = 'x'
		got, err := repo.Get(ctx, "k2")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(got))
	})
}

func TestMemoryCacheRepo_Expiry(t *testing.T) {
	t.Parallel()
	clock := NewFixedTimeProvider(testutil.TestTime())
	repo := NewMemoryCacheRepo(clock)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "short", []byte("1"), time.Minute))
	require.NoError(t, repo.Set(ctx, "forever", []byte("2"), 0))

	clock.AddTime(time.Minute)

	got, err := repo.Get(ctx, "short")
	require.NoError(t, err)
	assert.Nil(t, got, "expires at ttl")

	got, err = repo.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)
}

func TestMemoryCacheRepo_Delete(t *testing.T) {
	t.Parallel()
	clock := NewFixedTimeProvider(testutil.TestTime())
	repo := NewMemoryCacheRepo(clock)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Second))
	deleted, err := repo.Delete(ctx, "k")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "k")
	require.NoError(t, err)
	assert.False(t, deleted)

	require.NoError(t, repo.Set(ctx, "old", []byte("v"), time.Second))
	clock.AddTime(2 * time.Second)
	deleted, err = repo.Delete(ctx, "old")
	require.NoError(t, err)
	assert.False(t, deleted, "expired keys do not count as deleted")

	assert.NoError(t, repo.Health(ctx))
}
