package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jewelerp/backend/internal/domain/catalog"
)

const defaultRateTTL = 10 * time.Minute

// RedisRateCache caches the active metal rate per shop, metal and purity.
// Entries are written with a TTL so a missed invalidation self-heals.
type RedisRateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRateCache creates a rate cache backed by the given Redis client
func NewRedisRateCache(client *redis.Client, ttl time.Duration) *RedisRateCache {
	if ttl <= 0 {
		ttl = defaultRateTTL
	}
	return &RedisRateCache{client: client, ttl: ttl}
}

func rateKey(shopID uuid.UUID, metal catalog.MetalType, purity string) string {
	return fmt.Sprintf("rate:%s:%s:%s", shopID, metal, purity)
}

// Get returns the cached active rate or nil on a miss
func (c *RedisRateCache) Get(ctx context.Context, shopID uuid.UUID, metal catalog.MetalType, purity string) (*catalog.RateMaster, error) {
	data, err := c.client.Get(ctx, rateKey(shopID, metal, purity)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var rate catalog.RateMaster
	if err := json.Unmarshal(data, &rate); err != nil {
		// Corrupt entry; drop it and treat as a miss.
		_ = c.client.Del(ctx, rateKey(shopID, metal, purity)).Err()
		return nil, nil
	}
	return &rate, nil
}

// Set stores the active rate
func (c *RedisRateCache) Set(ctx context.Context, rate *catalog.RateMaster) error {
	data, err := json.Marshal(rate)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, rateKey(rate.ShopID, rate.MetalType, rate.Purity), data, c.ttl).Err()
}

// Invalidate drops the cached rate for a metal and purity
func (c *RedisRateCache) Invalidate(ctx context.Context, shopID uuid.UUID, metal catalog.MetalType, purity string) error {
	return c.client.Del(ctx, rateKey(shopID, metal, purity)).Err()
}
