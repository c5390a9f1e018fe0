package cache

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"cxtrack/internal/application/entitlement/dto"
	"cxtrack/internal/shared/logger"
)

const (
	entitlementTTL       = 10 * time.Minute
	entitlementTTLJitter = 5 * time.Minute // TTL range: 10-15 min (anti-stampede)
)

// RedisEntitlementCache stores resolved module lists in Redis. Keys already
// encode tier, industry, trial start, and the UTC day, so entries never need
// explicit invalidation; TTL bounds staleness from organization edits that
// do not change the key.
type RedisEntitlementCache struct {
	client *redis.Client
	logger logger.Interface
}

// NewRedisEntitlementCache creates a new Redis-based entitlement result cache
func NewRedisEntitlementCache(client *redis.Client, logger logger.Interface) *RedisEntitlementCache {
	return &RedisEntitlementCache{
		client: client,
		logger: logger,
	}
}

// Get retrieves a cached resolution result. Errors degrade to a cache miss;
// resolution correctness never depends on Redis being up.
func (c *RedisEntitlementCache) Get(ctx context.Context, key string) (*dto.ModulesResponse, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warnw("entitlement cache read failed", "error", err, "key", key)
		}
		return nil, false
	}

	var resp dto.ModulesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		c.logger.Warnw("entitlement cache entry corrupt", "error", err, "key", key)
		return nil, false
	}

	return &resp, true
}

// Set stores a resolution result with a jittered TTL.
func (c *RedisEntitlementCache) Set(ctx context.Context, key string, resp *dto.ModulesResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		c.logger.Errorw("failed to marshal entitlement cache entry", "error", err, "key", key)
		return
	}

	ttl := entitlementTTL + rand.N(entitlementTTLJitter)
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.Warnw("entitlement cache write failed", "error", err, "key", key)
	}
}
