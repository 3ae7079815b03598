package sources

import (
	"context"
	"fmt"
	"time"

	"dealer-analytics/internal/models"
	"dealer-analytics/internal/stores"
)

type storedEventSource struct {
	dayBucketStore stores.DayBucketStore
}

// NewStoredEventSource reads the day buckets filled by the local intake pipeline.
func NewStoredEventSource(dayBucketStore stores.DayBucketStore) EventSource {
	return &storedEventSource{dayBucketStore: dayBucketStore}
}

func (s *storedEventSource) Fetch(ctx context.Context, rangeStart, rangeEnd time.Time) ([]models.Event, error) {
	var result []models.Event
	for _, day := range models.DaysInRange(rangeStart, rangeEnd) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		bucket, err := s.dayBucketStore.Get(ctx, models.DayKey(day))
		if err != nil {
			return nil, fmt.Errorf("day %s: %w", models.DayKey(day), err)
		}
		for _, event := range bucket.Events {
			// the first and last day are only partly inside the range
			if event.Timestamp.Before(rangeStart) || event.Timestamp.After(rangeEnd) {
				continue
			}
			result = append(result, event)
		}
	}

	metricEventsFetched.WithLabelValues(sourceStored).Observe(float64(len(result)))
	return result, nil
}
