package caches

import (
	"context"
	"errors"

	"dealer-analytics/internal/models"
)

var ErrCacheMiss = errors.New("cache miss")

// SummaryCache holds computed summaries keyed by models.SummaryRange.CacheKey.
// Entries expire after the driver's TTL. Cached summaries must not be mutated.
//
//go:generate mockgen -source=summary_cache.go -destination=./mocks/summary_cache_mock.go -package=mocks
type SummaryCache interface {
	// Get returns ErrCacheMiss when the key is absent or expired.
	Get(ctx context.Context, key string) (*models.Summary, error)
	Set(ctx context.Context, key string, summary *models.Summary) error
}
