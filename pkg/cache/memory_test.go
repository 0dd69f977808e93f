package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	var out []string
	found, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "k", []string{"a", "b"}, time.Minute))
	found, err = c.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, out)

	require.NoError(t, c.Delete(ctx, "k"))
	found, _ = c.Get(ctx, "k", &out)
	assert.False(t, found)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "k", 1, 20*time.Millisecond))
	require.NoError(t, c.Set(ctx, "forever", 2, 0))
	time.Sleep(40 * time.Millisecond)

	var v int
	found, _ := c.Get(ctx, "k", &v)
	assert.False(t, found)

	found, _ = c.Get(ctx, "forever", &v)
	assert.True(t, found)
	assert.Equal(t, 2, v)
}

// Key hết hạn phải bị dọn dù không ai đọc lại
func TestMemoryCacheEvictsExpiredWithoutRead(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache(10 * time.Millisecond)

	require.NoError(t, c.Set(ctx, "stale", "x", 20*time.Millisecond))
	require.NoError(t, c.Set(ctx, "kept", "y", time.Hour))
	require.Equal(t, 2, c.Len())

	assert.Eventually(t, func() bool { return c.Len() == 1 }, time.Second, 10*time.Millisecond)

	var v string
	found, _ := c.Get(ctx, "kept", &v)
	assert.True(t, found)
}

func TestMemoryCacheDeletePattern(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	for _, k := range []string{"product:1", "product:2", "products:all", "news:1"} {
		require.NoError(t, c.Set(ctx, k, 1, 0))
	}

	require.NoError(t, c.DeletePattern(ctx, "product*"))
	assert.Equal(t, 1, c.Len())

	var v int
	found, _ := c.Get(ctx, "news:1", &v)
	assert.True(t, found)
}
