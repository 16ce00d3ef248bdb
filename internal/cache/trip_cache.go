package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/trip-board/internal/domain"
)

const keyPrefix = "trips:open:"

// TripCache caches open-trip listings keyed per bhawan. Misses and cache
// failures are not errors; callers fall through to the database.
type TripCache interface {
	Get(ctx context.Context, bhawan *string) ([]domain.Trip, bool)
	Set(ctx context.Context, bhawan *string, trips []domain.Trip)
	Invalidate(ctx context.Context)
}

type redisTripCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisTripCache builds a Redis-backed cache with the given entry TTL.
func NewRedisTripCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) TripCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &redisTripCache{client: client, ttl: ttl, logger: logger}
}

func cacheKey(bhawan *string) string {
	if bhawan == nil {
		return keyPrefix + "all"
	}
	return keyPrefix + "bhawan:" + *bhawan
}

func (c *redisTripCache) Get(ctx context.Context, bhawan *string) ([]domain.Trip, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, cacheKey(bhawan)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("trip cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var trips []domain.Trip
	if err := json.Unmarshal(raw, &trips); err != nil {
		c.logger.Debug("trip cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return trips, true
}

func (c *redisTripCache) Set(ctx context.Context, bhawan *string, trips []domain.Trip) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(trips)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(bhawan), raw, c.ttl).Err(); err != nil {
		c.logger.Debug("trip cache write failed", zap.Error(err))
	}
}

// Invalidate drops every cached listing. Creates and closes change what any
// bhawan may see, so the whole namespace goes.
func (c *redisTripCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	keys := make([]string, 0, 8)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Debug("trip cache scan failed", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("trip cache invalidation failed", zap.Error(err))
	}
}

type noopTripCache struct{}

// NewNoopTripCache returns a cache that never hits, for wiring without Redis.
func NewNoopTripCache() TripCache {
	return noopTripCache{}
}

func (noopTripCache) Get(context.Context, *string) ([]domain.Trip, bool) { return nil, false }
func (noopTripCache) Set(context.Context, *string, []domain.Trip)       {}
func (noopTripCache) Invalidate(context.Context)                        {}
