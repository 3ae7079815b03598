package caches

import (
	"context"
	"time"

	"dealer-analytics/internal/models"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type lruSummaryCache struct {
	lru *expirable.LRU[string, *models.Summary]
}

// NewLRUSummaryCache keeps at most capacity summaries in process, evicting the least
// recently used first. Entries older than ttl are never returned.
func NewLRUSummaryCache(capacity int, ttl time.Duration) SummaryCache {
	return &lruSummaryCache{lru: expirable.NewLRU[string, *models.Summary](capacity, nil, ttl)}
}

func (c *lruSummaryCache) Get(_ context.Context, key string) (*models.Summary, error) {
	summary, ok := c.lru.Get(key)
	recordLookup(driverMemory, ok)
	if !ok {
		return nil, ErrCacheMiss
	}
	return summary, nil
}

func (c *lruSummaryCache) Set(_ context.Context, key string, summary *models.Summary) error {
	c.lru.Add(key, summary)
	return nil
}
