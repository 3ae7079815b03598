package caches

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dealer-analytics/internal/models"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "dealer-analytics:summary:"

type redisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSummaryCache shares summaries between replicas. Capacity is left to the
// server's maxmemory policy; every entry carries ttl.
func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) SummaryCache {
	return &redisSummaryCache{client: client, ttl: ttl}
}

func (c *redisSummaryCache) Get(ctx context.Context, key string) (*models.Summary, error) {
	val, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			recordLookup(driverRedis, false)
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cached summary: %w", err)
	}

	var summary models.Summary
	if err := json.Unmarshal(val, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached summary: %w", err)
	}
	recordLookup(driverRedis, true)
	return &summary, nil
}

func (c *redisSummaryCache) Set(ctx context.Context, key string, summary *models.Summary) error {
	jsonValue, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	return c.client.Set(ctx, redisKeyPrefix+key, jsonValue, c.ttl).Err()
}
