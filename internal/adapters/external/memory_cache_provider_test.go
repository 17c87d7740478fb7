package external

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathermap.app/internal/ports"
	"weathermap.app/pkg/errors"
)

func TestMemoryCacheProvider_SetGet(t *testing.T) {
	cache := NewMemoryCacheProvider()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))

	value, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)

	_, err = cache.Get(ctx, "missing")
	assert.True(t, errors.IsNotFoundError(err))

	stats := cache.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 0.5, stats.HitRatio)
}

func TestMemoryCacheProvider_ExpiredEntriesAreDropped(t *testing.T) {
	cache := NewMemoryCacheProvider()
	now := time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))

	exists, err := cache.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)

	now = now.Add(2 * time.Minute)

	exists, err = cache.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, 1, cache.Len())

	_, err = cache.Get(ctx, "k")
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCacheProvider_DeleteAndClear(t *testing.T) {
	cache := NewMemoryCacheProvider()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, cache.Set(ctx, "b", []byte("2"), time.Minute))

	require.NoError(t, cache.Delete(ctx, "a"))
	assert.Equal(t, 1, cache.Len())

	require.NoError(t, cache.Clear(ctx))
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCacheProvider_Validation(t *testing.T) {
	cache := NewMemoryCacheProvider()
	ctx := context.Background()

	assert.True(t, errors.IsValidationError(cache.Set(ctx, "", []byte("v"), time.Minute)))
	assert.True(t, errors.IsValidationError(cache.Set(ctx, "k", nil, time.Minute)))
	assert.True(t, errors.IsValidationError(cache.Set(ctx, "k", []byte("v"), -time.Second)))

	_, err := cache.Get(ctx, "")
	assert.True(t, errors.IsValidationError(err))
}

func TestMemoryCacheProvider_Concurrent(t *testing.T) {
	cache := NewMemoryCacheProvider()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%5))
			_ = cache.Set(ctx, key, []byte{byte(i)}, time.Minute)
			_, _ = cache.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, cache.Len())
	assert.Equal(t, int64(20), cache.GetStats().TotalOps)
}

func TestCacheProvidersSatisfyPorts(t *testing.T) {
	var _ ports.CacheProvider = (*MemoryCacheProvider)(nil)
	var _ ports.CacheMetrics = (*MemoryCacheProvider)(nil)
	var _ ports.CacheProvider = (*RedisCacheProvider)(nil)
	var _ ports.CacheMetrics = (*RedisCacheProvider)(nil)
}
