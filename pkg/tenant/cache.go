package tenant

import (
	"context"
	"time"

	"github.com/greyhound/greyhound/pkg/cache"
)

// Cache stores registry lookups keyed by slug.
type Cache interface {
	// Get retrieves a tenant from cache by slug.
	Get(ctx context.Context, slug string) (*Tenant, bool)

	// Set stores a tenant for ttl.
	Set(ctx context.Context, slug string, t *Tenant, ttl time.Duration) error

	// Delete removes a tenant from cache.
	Delete(ctx context.Context, slug string) error
}

// DefaultCacheSize is the default maximum number of tenants kept in memory.
const DefaultCacheSize = 1000

type inMemoryCache struct {
	lru *cache.LRU[string, *Tenant]
}

// NewInMemoryCache returns a process-local cache holding at most size tenants.
// A non-positive size falls back to DefaultCacheSize.
func NewInMemoryCache(size int) Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &inMemoryCache{lru: cache.NewLRU[string, *Tenant](size)}
}

func (c *inMemoryCache) Get(_ context.Context, slug string) (*Tenant, bool) {
	return c.lru.Get(slug)
}

func (c *inMemoryCache) Set(_ context.Context, slug string, t *Tenant, ttl time.Duration) error {
	c.lru.Put(slug, t, ttl)
	return nil
}

func (c *inMemoryCache) Delete(_ context.Context, slug string) error {
	c.lru.Remove(slug)
	return nil
}

// NoOpCache disables caching, useful for testing or when caching is unwanted.
type NoOpCache struct{}

func (NoOpCache) Get(context.Context, string) (*Tenant, bool) { return nil, false }

func (NoOpCache) Set(context.Context, string, *Tenant, time.Duration) error { return nil }

func (NoOpCache) Delete(context.Context, string) error { return nil }
