package streams

import (
	"dealer-analytics/internal/shared/metrics"
)

var (
	streamDayPartition              = "day_partition"
	metricDayPartitionProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "day_partition_published_total",
		},
		[]string{"stream_id"},
	)

	metricDayPartitionConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "day_partition_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
