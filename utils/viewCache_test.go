package utils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *ViewCache {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return NewViewCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestViewCache_SetAndGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	key := GenerateQueryHash("applications", map[string]string{"search": "sana"})

	require.NoError(t, cache.Set(ctx, key, `{"success":true}`))

	payload, ok := cache.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, `{"success":true}`, payload)
}

func TestViewCache_Miss(t *testing.T) {
	cache := newTestCache(t)

	payload, ok := cache.Get(context.Background(), "applications:missing")

	assert.False(t, ok)
	assert.Empty(t, payload)
}

func TestViewCache_InvalidateByResourceType(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	applicationsKey := GenerateQueryHash("applications", map[string]string{"search": "sana"})
	buyersKey := GenerateQueryHash("buyers", map[string]string{"search": "ahmed"})
	require.NoError(t, cache.Set(ctx, applicationsKey, "a"))
	require.NoError(t, cache.Set(ctx, buyersKey, "b"))

	require.NoError(t, cache.InvalidateCache(ctx, "applications"))

	_, ok := cache.Get(ctx, applicationsKey)
	assert.False(t, ok)
	_, ok = cache.Get(ctx, buyersKey)
	assert.True(t, ok)
}

func TestViewCache_NilClientIsNoOp(t *testing.T) {
	cache := NewViewCache(nil)
	ctx := context.Background()

	assert.NoError(t, cache.Set(ctx, "applications:key", "payload"))
	_, ok := cache.Get(ctx, "applications:key")
	assert.False(t, ok)
	assert.NoError(t, cache.InvalidateCache(ctx, "applications"))
}
