package distance

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fahrwerk/pricing/internal/domain"
	"github.com/fahrwerk/pricing/internal/observability"
)

const cacheKeyPrefix = "distance:"

// RedisCache decorates another estimator with a Redis lookup so repeated
// quotes for the same route skip the underlying provider. Cache failures are
// logged and ignored; the wrapped estimator always has the final word.
type RedisCache struct {
	client *redis.Client
	next   domain.DistanceEstimator
	ttl    time.Duration
}

// NewRedisCache creates a caching decorator around next.
func NewRedisCache(client *redis.Client, next domain.DistanceEstimator, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		next:   next,
		ttl:    ttl,
	}
}

// EstimateDistance serves from cache when possible, otherwise delegates and
// stores the result.
func (c *RedisCache) EstimateDistance(ctx context.Context, from, to string) (domain.DistanceEstimate, error) {
	logger := observability.FromContext(ctx)
	key := cacheKey(from, to)

	km, err := c.client.Get(ctx, key).Float64()
	switch {
	case err == nil:
		return domain.DistanceEstimate{Km: km, Source: domain.SourceCache}, nil
	case err != redis.Nil:
		logger.Warn("distance cache get failed, continuing without cache",
			observability.String("key", key),
			observability.Error(err))
	}

	estimate, err := c.next.EstimateDistance(ctx, from, to)
	if err != nil {
		return domain.DistanceEstimate{}, err
	}

	// Random guesses are not worth pinning for an hour.
	if estimate.Source != domain.SourceRandom {
		if setErr := c.client.Set(ctx, key, estimate.Km, c.ttl).Err(); setErr != nil {
			logger.Warn("distance cache set failed",
				observability.String("key", key),
				observability.Error(setErr))
		}
	}

	return estimate, nil
}

func cacheKey(from, to string) string {
	return fmt.Sprintf("%s%s", cacheKeyPrefix, RouteKey(from, to))
}
