package streams

import (
	"context"
	"testing"

	"dealer-analytics/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayPartitionProducer_Produce_RoutesByDay(t *testing.T) {
	t.Parallel()

	queue := newPartitionedQueue[events.DayPartitionEvent](8, 10)
	producer := NewDayPartitionProducer(queue)

	partitions := []events.DayPartitionEvent{
		{BatchID: "b1", Day: "2025-12-27"},
		{BatchID: "b1", Day: "2025-12-28"},
	}
	require.NoError(t, producer.Produce(context.Background(), partitions))

	for _, p := range partitions {
		ch := queue.partitions[partitionIndex(p.Day, 8)]
		found := false
		for len(ch) > 0 {
			if got := <-ch; got.Day == p.Day {
				found = true
				assert.Equal(t, "b1", got.BatchID)
			}
		}
		assert.True(t, found, "partition for %s", p.Day)
	}
}

func TestDayPartitionProducer_Produce_CanceledContext(t *testing.T) {
	t.Parallel()

	queue := newPartitionedQueue[events.DayPartitionEvent](1, 0)
	producer := NewDayPartitionProducer(queue)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := producer.Produce(ctx, []events.DayPartitionEvent{{Day: "2025-12-28"}})
	assert.ErrorIs(t, err, context.Canceled)
}
