package caches

import (
	"dealer-analytics/internal/shared/metrics"
)

const (
	driverMemory = "memory"
	driverRedis  = "redis"
)

var (
	metricCacheLookupTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCache,
			Name:      "lookup_total",
		},
		[]string{"driver", "result"},
	)
)

func recordLookup(driver string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	metricCacheLookupTotal.WithLabelValues(driver, result).Inc()
}
