package cache

import (
	"context"
	"time"

	"github.com/orderdesk/orderdesk/internal/config"
	goCache "github.com/patrickmn/go-cache"
)

// DefaultCleanupInterval is how often expired items are removed from the cache
const DefaultCleanupInterval = 10 * time.Minute

// InMemoryCache implements the Cache interface using github.com/patrickmn/go-cache.
// A disabled cache degrades to a read-through miss on every call.
type InMemoryCache struct {
	cache      *goCache.Cache
	enabled    bool
	defaultTTL time.Duration
}

// NewInMemoryCache creates a new InMemoryCache instance from the configuration
func NewInMemoryCache(cfg *config.Configuration) Cache {
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	return &InMemoryCache{
		cache:      goCache.New(ttl, DefaultCleanupInterval),
		enabled:    cfg.Cache.Enabled,
		defaultTTL: ttl,
	}
}

// Get retrieves a value from the cache
func (c *InMemoryCache) Get(_ context.Context, key string) (interface{}, bool) {
	if !c.enabled {
		return nil, false
	}
	return c.cache.Get(key)
}

// Set adds a value to the cache with the specified expiration
func (c *InMemoryCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) {
	if !c.enabled {
		return
	}
	if expiration == 0 {
		expiration = c.defaultTTL
	}
	c.cache.Set(key, value, expiration)
}

// Delete removes a key from the cache
func (c *InMemoryCache) Delete(_ context.Context, key string) {
	c.cache.Delete(key)
}

// Flush removes all items from the cache
func (c *InMemoryCache) Flush(_ context.Context) {
	c.cache.Flush()
}
