package sources

import (
	"context"
	"time"

	"dealer-analytics/internal/models"
)

// EventSource materializes the events whose timestamps fall in [rangeStart, rangeEnd].
//
//go:generate mockgen -source=event_source.go -destination=./mocks/event_source_mock.go -package=mocks
type EventSource interface {
	Fetch(ctx context.Context, rangeStart, rangeEnd time.Time) ([]models.Event, error)
}
