package aggregators

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dealer-analytics/internal/caches"
	"dealer-analytics/internal/models"
	"dealer-analytics/internal/shared/loggers"
	"dealer-analytics/internal/shared/svcerrors"
	"dealer-analytics/internal/sources"
	"dealer-analytics/internal/stores"
)

// MaxRangeSpan bounds explicit ranges.
const MaxRangeSpan = 366 * 24 * time.Hour

// SummaryResult is a summary plus how it was obtained. Stale is set when the event
// source failed and the last good summary for the same selector or explicit range
// was served instead.
type SummaryResult struct {
	Summary *models.Summary
	Stale   bool
}

//go:generate mockgen -source=summary_service.go -destination=./mocks/summary_service_mock.go -package=mocks
type SummaryService interface {
	Summarize(ctx context.Context, summaryRange models.SummaryRange) (*SummaryResult, error)
}

type summaryService struct {
	eventSource   sources.EventSource
	aggregator    EventAggregator
	summaryCache  caches.SummaryCache
	snapshotStore stores.SummarySnapshotStore
	fetchTimeout  time.Duration
}

func NewSummaryService(
	eventSource sources.EventSource,
	aggregator EventAggregator,
	summaryCache caches.SummaryCache,
	snapshotStore stores.SummarySnapshotStore,
	fetchTimeout time.Duration,
) SummaryService {
	return &summaryService{
		eventSource:   eventSource,
		aggregator:    aggregator,
		summaryCache:  summaryCache,
		snapshotStore: snapshotStore,
		fetchTimeout:  fetchTimeout,
	}
}

func (s *summaryService) Summarize(ctx context.Context, summaryRange models.SummaryRange) (*SummaryResult, error) {
	rangeStart, rangeEnd := summaryRange.Start, summaryRange.End
	if svcErr := validateRange(rangeStart, rangeEnd); svcErr != nil {
		metricSummaryTotal.WithLabelValues(outcomeFailed, svcErr.Code).Inc()
		return nil, svcErr
	}

	logger := loggers.Ctx(ctx).With().
		Time(loggers.FieldRangeStart, rangeStart).
		Time(loggers.FieldRangeEnd, rangeEnd).
		Str(loggers.FieldRangeWindow, string(summaryRange.Window)).
		Logger()
	key := summaryRange.CacheKey()

	cached, err := s.summaryCache.Get(ctx, key)
	if err == nil {
		metricSummaryTotal.WithLabelValues(outcomeCached, "").Inc()
		return &SummaryResult{Summary: cached}, nil
	}
	if !errors.Is(err, caches.ErrCacheMiss) {
		logger.Warn().Err(err).Msg("summary cache lookup failed")
	}

	events, err := s.fetch(ctx, rangeStart, rangeEnd)
	if err != nil {
		return s.fallback(ctx, &logger, summaryRange, err)
	}

	summary := s.aggregator.Aggregate(events, rangeStart, rangeEnd)
	metricEventsAggregated.Observe(float64(len(events)))

	if err := s.summaryCache.Set(ctx, key, summary); err != nil {
		logger.Warn().Err(err).Msg("failed to cache summary")
	}
	if err := s.snapshotStore.Put(ctx, summaryRange, summary); err != nil {
		logger.Warn().Err(err).Msg("failed to persist summary snapshot")
	}

	logger.Debug().Int(loggers.FieldEventCount, len(events)).Msg("summary computed")
	metricSummaryTotal.WithLabelValues(outcomeComputed, "").Inc()
	return &SummaryResult{Summary: summary}, nil
}

func (s *summaryService) fetch(ctx context.Context, rangeStart, rangeEnd time.Time) ([]models.Event, error) {
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}
	return s.eventSource.Fetch(ctx, rangeStart, rangeEnd)
}

// fallback serves the last good summary of the range when fetching failed. For a
// selector that is the latest computation of that selector, whatever its bounds.
func (s *summaryService) fallback(ctx context.Context, logger *loggers.Logger, summaryRange models.SummaryRange, fetchErr error) (*SummaryResult, error) {
	snapshot, err := s.snapshotStore.Get(ctx, summaryRange)
	if err == nil {
		logger.Warn().Err(fetchErr).Msg("event source failed, serving last good summary")
		metricSummaryTotal.WithLabelValues(outcomeStale, codeEventSourceUnavailable).Inc()
		return &SummaryResult{Summary: snapshot, Stale: true}, nil
	}
	if !errors.Is(err, stores.ErrSummarySnapshotNotFound) {
		logger.Error().Err(err).Msg("failed to read summary snapshot")
	}

	svcErr := errEventSourceUnavailable(fetchErr)
	metricSummaryTotal.WithLabelValues(outcomeFailed, svcErr.Code).Inc()
	return nil, svcErr
}

func validateRange(rangeStart, rangeEnd time.Time) *svcerrors.ServiceError {
	if rangeStart.IsZero() || rangeEnd.IsZero() {
		return errInvalidRange("range start and end are required")
	}
	if rangeStart.After(rangeEnd) {
		return errInvalidRange("range start must not be after range end")
	}
	if rangeEnd.Sub(rangeStart) > MaxRangeSpan {
		return errInvalidRange(fmt.Sprintf("range must not exceed %d days", int(MaxRangeSpan.Hours()/24)))
	}
	return nil
}
