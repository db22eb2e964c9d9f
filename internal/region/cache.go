package region

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultCacheTTL bounds how stale a cached benchmark may get; the sync job
// refreshes the underlying table daily.
const DefaultCacheTTL = 6 * time.Hour

// CachedProvider wraps another Provider with a Redis cache. Cache failures
// are logged and degrade to the underlying provider, never to the caller.
type CachedProvider struct {
	next   Provider
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedProvider creates a cache decorator around next.
func NewCachedProvider(next Provider, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedProvider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedProvider{next: next, client: client, ttl: ttl, logger: logger}
}

func cacheKey(loc Location) string {
	return fmt.Sprintf("region:%s:%s:%s", loc.City, loc.District, loc.Neighborhood)
}

// Lookup implements Provider.
func (c *CachedProvider) Lookup(ctx context.Context, loc Location) (Benchmark, error) {
	loc = loc.Normalized()
	key := cacheKey(loc)

	if cached, err := c.client.Get(ctx, key).Result(); err == nil {
		var bench Benchmark
		if err := json.Unmarshal([]byte(cached), &bench); err == nil {
			return bench, nil
		}
		// Unreadable entry; fall through and overwrite it.
	} else if err != redis.Nil {
		c.logger.Warn("benchmark cache read failed",
			zap.String("op", "region.CachedProvider.Lookup"),
			zap.String("key", key),
			zap.Error(err),
		)
	}

	bench, err := c.next.Lookup(ctx, loc)
	if err != nil {
		return Benchmark{}, err
	}

	if payload, err := json.Marshal(bench); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("benchmark cache write failed",
				zap.String("op", "region.CachedProvider.Lookup"),
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}
	return bench, nil
}
