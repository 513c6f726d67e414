package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const viewCacheTTL = 5 * time.Minute

// ViewCache caches rendered view payloads in Redis, keyed by query hash.
// A nil client disables caching entirely; every method becomes a no-op.
type ViewCache struct {
	rdb *redis.Client
}

func NewViewCache(rdb *redis.Client) *ViewCache {
	return &ViewCache{rdb: rdb}
}

// Get returns the cached payload for key, or "" on a miss.
func (vc *ViewCache) Get(ctx context.Context, key string) (string, bool) {
	if vc == nil || vc.rdb == nil {
		return "", false
	}
	payload, err := vc.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return payload, true
}

// Set stores a rendered payload under key with the cache TTL.
func (vc *ViewCache) Set(ctx context.Context, key, payload string) error {
	if vc == nil || vc.rdb == nil {
		return nil
	}
	return vc.rdb.Set(ctx, key, payload, viewCacheTTL).Err()
}

// InvalidateCache removes all cached keys for the given resource type.
// SCAN is used instead of KEYS for better behaviour on busy instances.
func (vc *ViewCache) InvalidateCache(ctx context.Context, resourceType string) error {
	if vc == nil || vc.rdb == nil {
		return nil
	}
	pattern := fmt.Sprintf("%s:*", resourceType)
	iter := vc.rdb.Scan(ctx, 0, pattern, 0).Iterator()

	for iter.Next(ctx) {
		if err := vc.rdb.Del(ctx, iter.Val()).Err(); err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("error during SCAN iteration: %w", err)
	}

	return nil
}
