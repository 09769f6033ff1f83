package cache_test

import (
	"context"
	"testing"

	"github.com/aditya/news-blog-platform/internal/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return cache.NewWithClient(client), mr
}

func TestCache_PutGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	type entry struct {
		Title string `json:"title"`
	}

	var got []entry
	assert.False(t, c.Get(ctx, cache.KeyAllPosts, &got), "empty cache must miss")

	want := []entry{{Title: "first"}, {Title: "second"}}
	c.Put(ctx, cache.KeyAllPosts, want)

	require.True(t, c.Get(ctx, cache.KeyAllPosts, &got))
	assert.Equal(t, want, got)
}

func TestCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	for _, key := range cache.PostKeys {
		c.Put(ctx, key, []string{"cached"})
	}

	c.Invalidate(ctx, cache.PostKeys...)

	var got []string
	for _, key := range cache.PostKeys {
		assert.False(t, c.Get(ctx, key, &got), "key %s should be gone", key)
	}

	// Invalidating absent keys is a no-op
	c.Invalidate(ctx, cache.PostKeys...)
}

func TestCache_CorruptEntryIsDropped(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	mr.Set("blogcache:"+cache.KeyAllPosts, "{not json")

	var got []string
	assert.False(t, c.Get(ctx, cache.KeyAllPosts, &got))

	// The corrupt value was deleted so the next write repopulates cleanly
	c.Put(ctx, cache.KeyAllPosts, []string{"fresh"})
	require.True(t, c.Get(ctx, cache.KeyAllPosts, &got))
	assert.Equal(t, []string{"fresh"}, got)
}

func TestCache_Disabled(t *testing.T) {
	c := cache.New("")
	ctx := context.Background()

	assert.False(t, c.Enabled())

	// All operations degrade to no-ops
	c.Put(ctx, cache.KeyAllPosts, []string{"ignored"})

	var got []string
	assert.False(t, c.Get(ctx, cache.KeyAllPosts, &got))

	c.Invalidate(ctx, cache.PostKeys...)
	assert.NoError(t, c.Close())
}

func TestCache_EntriesHaveNoTTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Put(ctx, cache.KeyLatestPosts, []string{"persistent"})

	ttl := mr.TTL("blogcache:" + cache.KeyLatestPosts)
	assert.Zero(t, ttl, "entries are invalidated explicitly, never expired")
}
