package streams

import (
	"context"
	"sync"
	"testing"
	"time"

	"dealer-analytics/internal/aggregators/mocks"
	"dealer-analytics/internal/events"
	"dealer-analytics/internal/shared/loggers"
	"dealer-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDayPartitionConsumer_RollsUpPublishedPartitions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockRollup := mocks.NewMockRollupService(ctrl)

	queue := newPartitionedQueue[events.DayPartitionEvent](4, 10)
	consumer := NewDayPartitionConsumer(queue, mockRollup, loggers.Nop())

	var mu sync.Mutex
	seen := map[string][]string{}
	var wg sync.WaitGroup
	wg.Add(3)
	mockRollup.EXPECT().Rollup(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(_ context.Context, p *events.DayPartitionEvent) *svcerrors.ServiceError {
			defer wg.Done()
			mu.Lock()
			seen[p.Day] = append(seen[p.Day], p.BatchID)
			mu.Unlock()
			return nil
		})

	consumer.Start(context.Background())
	defer consumer.Stop()

	producer := NewDayPartitionProducer(queue)
	require.NoError(t, producer.Produce(context.Background(), []events.DayPartitionEvent{
		{BatchID: "b1", Day: "2025-12-28"},
		{BatchID: "b2", Day: "2025-12-28"},
		{BatchID: "b2", Day: "2025-12-29"},
	}))

	waitOrFail(t, &wg)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"b1", "b2"}, seen["2025-12-28"], "same day is consumed in publish order")
	assert.Equal(t, []string{"b2"}, seen["2025-12-29"])
}

func TestDayPartitionConsumer_SurvivesErrorsAndPanics(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockRollup := mocks.NewMockRollupService(ctrl)

	queue := newPartitionedQueue[events.DayPartitionEvent](1, 10)
	consumer := NewDayPartitionConsumer(queue, mockRollup, loggers.Nop())

	var wg sync.WaitGroup
	wg.Add(3)
	gomock.InOrder(
		mockRollup.EXPECT().Rollup(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, *events.DayPartitionEvent) *svcerrors.ServiceError {
				defer wg.Done()
				panic("boom")
			}),
		mockRollup.EXPECT().Rollup(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, *events.DayPartitionEvent) *svcerrors.ServiceError {
				defer wg.Done()
				return svcerrors.NewInternalError("AGG_9001", assert.AnError)
			}),
		mockRollup.EXPECT().Rollup(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, *events.DayPartitionEvent) *svcerrors.ServiceError {
				defer wg.Done()
				return nil
			}),
	)

	consumer.Start(context.Background())
	defer consumer.Stop()

	ctx := context.Background()
	for _, batchID := range []string{"b1", "b2", "b3"} {
		require.NoError(t, queue.Publish(ctx, "2025-12-28", events.DayPartitionEvent{BatchID: batchID, Day: "2025-12-28"}))
	}

	waitOrFail(t, &wg)
}

func TestDayPartitionConsumer_StopsOnClosedQueue(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	queue := newPartitionedQueue[events.DayPartitionEvent](2, 1)
	consumer := NewDayPartitionConsumer(queue, mocks.NewMockRollupService(ctrl), loggers.Nop())

	consumer.Start(context.Background())
	queue.Close()

	done := make(chan struct{})
	go func() {
		consumer.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}
}

func waitOrFail(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for rollups")
	}
}
