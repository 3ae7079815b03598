package sources

import (
	"dealer-analytics/internal/shared/metrics"
)

const (
	sourceProvider = "provider"
	sourceStored   = "stored"
)

var (
	// metricProviderPagesFetchedTotal counts provider pages by HTTP status ("error" when no response arrived).
	metricProviderPagesFetchedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "provider_pages_fetched_total",
		},
		[]string{"status"},
	)

	metricEventsFetched = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "events_fetched",
			Buckets:   metrics.ExponentialBuckets(10, 4, 8),
		},
		[]string{"source"},
	)
)
