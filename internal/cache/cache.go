package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const keyPrefix = "blogcache"

// Aggregate keys for the hot post listings. Every post mutation invalidates
// all three before the write is acknowledged; entries carry no TTL.
const (
	KeyAllPosts      = "posts:all"
	KeyFeaturedPosts = "posts:featured"
	KeyLatestPosts   = "posts:latest"
)

// PostKeys is the invalidation set for post mutations.
var PostKeys = []string{KeyAllPosts, KeyFeaturedPosts, KeyLatestPosts}

// Cache is a best-effort read-through front for expensive list queries.
// A nil client (no Redis configured) or an unreachable server degrades to
// always-miss; no cache failure is ever surfaced to callers.
type Cache struct {
	client *redis.Client
}

// New connects to Redis at redisURL. An empty URL disables caching silently.
// A connection failure is logged and also disables caching rather than
// failing startup.
func New(redisURL string) *Cache {
	if redisURL == "" {
		log.Info("redis not configured, cache disabled")
		return &Cache{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Errorf("ERROR [cache.New] invalid redis URL: %v", err)
		return &Cache{}
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Errorf("ERROR [cache.New] redis unreachable, cache disabled: %v", err)
		client.Close()
		return &Cache{}
	}

	log.Infof("redis connected: %s", opts.Addr)
	return &Cache{client: client}
}

// NewWithClient wraps an existing client. Used by tests.
func NewWithClient(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Enabled reports whether a Redis connection is available.
func (c *Cache) Enabled() bool {
	return c.client != nil
}

// Get unmarshals the cached value for key into dest and reports a hit.
// Misses, disabled cache and Redis errors all report false.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c.client == nil {
		return false
	}

	data, err := c.client.Get(ctx, namespaced(key)).Result()
	if err == redis.Nil {
		return false
	} else if err != nil {
		log.Errorf("ERROR [cache.Get] redis get %s failed: %v", key, err)
		return false
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		// Corrupt entry, drop it so the next read repopulates
		c.client.Del(ctx, namespaced(key))
		log.Errorf("ERROR [cache.Get] unmarshal %s failed: %v", key, err)
		return false
	}
	return true
}

// Put stores value under key without a TTL. Failures are logged only.
func (c *Cache) Put(ctx context.Context, key string, value interface{}) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		log.Errorf("ERROR [cache.Put] marshal %s failed: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, namespaced(key), data, 0).Err(); err != nil {
		log.Errorf("ERROR [cache.Put] redis set %s failed: %v", key, err)
	}
}

// Invalidate deletes the given keys. Deleting an absent key is a no-op and
// failures are logged only.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c.client == nil || len(keys) == 0 {
		return
	}

	full := make([]string, len(keys))
	for i, key := range keys {
		full[i] = namespaced(key)
	}

	if err := c.client.Del(ctx, full...).Err(); err != nil {
		log.Errorf("ERROR [cache.Invalidate] redis del failed: %v", err)
	}
}

// Close releases the Redis connection if one exists.
func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func namespaced(key string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, key)
}
