package registry

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/greyhound/greyhound/pkg/logger"
	"github.com/greyhound/greyhound/pkg/tenant"
)

// DefaultKeyPrefix namespaces cached tenants in a shared Redis.
const DefaultKeyPrefix = "tenant:"

// redisClient is the part of redis.Cmdable the cache needs.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisCache shares tenant lookups between replicas. It implements tenant.Cache.
type RedisCache struct {
	client redisClient
	prefix string
	log    *slog.Logger
}

var _ tenant.Cache = (*RedisCache)(nil)

// RedisCacheOption configures a RedisCache.
type RedisCacheOption func(*RedisCache)

// WithKeyPrefix replaces DefaultKeyPrefix.
func WithKeyPrefix(prefix string) RedisCacheOption {
	return func(c *RedisCache) { c.prefix = prefix }
}

// WithCacheLogger sets the logger for read failures. Nil is ignored.
func WithCacheLogger(l *slog.Logger) RedisCacheOption {
	return func(c *RedisCache) {
		if l != nil {
			c.log = l
		}
	}
}

// NewRedisCache returns a cache over client that logs nothing by default.
func NewRedisCache(client redisClient, opts ...RedisCacheOption) *RedisCache {
	c := &RedisCache{
		client: client,
		prefix: DefaultKeyPrefix,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get treats any Redis failure as a miss so lookups fall through to the registry.
func (c *RedisCache) Get(ctx context.Context, slug string) (*tenant.Tenant, bool) {
	raw, err := c.client.Get(ctx, c.prefix+slug).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WarnContext(ctx, "tenant cache read failed", logger.Tenant(slug), logger.Error(err))
		}
		return nil, false
	}

	var t tenant.Tenant
	if err := json.Unmarshal(raw, &t); err != nil {
		c.log.WarnContext(ctx, "tenant cache entry is corrupt", logger.Tenant(slug), logger.Error(err))
		return nil, false
	}
	return &t, true
}

// Set stores t as JSON under slug for ttl.
func (c *RedisCache) Set(ctx context.Context, slug string, t *tenant.Tenant, ttl time.Duration) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return errors.Join(ErrCacheEncode, err)
	}
	return c.client.Set(ctx, c.prefix+slug, raw, ttl).Err()
}

// Delete evicts slug. Deleting a missing key is not an error.
func (c *RedisCache) Delete(ctx context.Context, slug string) error {
	return c.client.Del(ctx, c.prefix+slug).Err()
}
