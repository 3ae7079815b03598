package aggregators

import (
	"dealer-analytics/internal/shared/metrics"
)

// Outcomes of a Summarize call.
const (
	outcomeCached   = "cached"
	outcomeComputed = "computed"
	outcomeStale    = "stale"
	outcomeFailed   = "failed"
)

var (
	// metricDayBucketCreatedTotal counts day buckets created by their first rollup, by intake source.
	// Later batches for the same day update the bucket and do not increment it.
	metricDayBucketCreatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRollup,
			Name:      "day_bucket_created_total",
		},
		[]string{"source"},
	)

	// metricBatchReplaySkippedTotal counts partitions ignored because their batch was already rolled in.
	metricBatchReplaySkippedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRollup,
			Name:      "batch_replay_skipped_total",
		},
		[]string{"source"},
	)

	metricSummaryTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "summary_total",
		},
		[]string{"outcome", metrics.FieldErrorCode},
	)

	metricEventsAggregated = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "events_aggregated",
			Buckets:   metrics.ExponentialBuckets(10, 4, 8),
		},
	)
)
