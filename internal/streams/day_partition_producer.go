package streams

import (
	"context"

	"dealer-analytics/internal/events"
)

// DayPartitionProducer publishes the per-day slices of an intake batch.
//
// The partition key is the UTC day itself. Every slice targeting a given day bucket
// therefore goes to the same queue partition, and since the consumer runs a single
// worker per partition, rollups of one bucket never run concurrently. Different
// days spread over the other partitions and roll up in parallel.
//
//go:generate mockgen -source=day_partition_producer.go -destination=./mocks/day_partition_producer_mock.go -package=mocks
type DayPartitionProducer interface {
	Produce(ctx context.Context, partitions []events.DayPartitionEvent) error
}

type dayPartitionProducer struct {
	queue *PartitionedQueue[events.DayPartitionEvent]
}

func NewDayPartitionProducer(queue *PartitionedQueue[events.DayPartitionEvent]) DayPartitionProducer {
	return &dayPartitionProducer{queue: queue}
}

func (producer *dayPartitionProducer) Produce(ctx context.Context, partitions []events.DayPartitionEvent) error {
	for _, partition := range partitions {
		if err := producer.queue.Publish(ctx, partition.Day, partition); err != nil {
			return err
		}
		metricDayPartitionProducedTotal.WithLabelValues(streamDayPartition).Inc()
	}
	return nil
}
