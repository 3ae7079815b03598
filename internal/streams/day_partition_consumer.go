package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"

	"dealer-analytics/internal/aggregators"
	"dealer-analytics/internal/events"
	"dealer-analytics/internal/shared/loggers"
	"dealer-analytics/internal/shared/metrics"
	"dealer-analytics/internal/shared/svcerrors"
	"dealer-analytics/internal/shared/ulid"
)

//go:generate mockgen -source=day_partition_consumer.go -destination=./mocks/day_partition_consumer_mock.go -package=mocks
type DayPartitionConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type dayPartitionConsumer struct {
	queue         *PartitionedQueue[events.DayPartitionEvent]
	rollupService aggregators.RollupService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewDayPartitionConsumer(queue *PartitionedQueue[events.DayPartitionEvent], rollupService aggregators.RollupService, logger loggers.Logger) DayPartitionConsumer {
	return &dayPartitionConsumer{
		queue:         queue,
		rollupService: rollupService,
		stopCh:        make(chan struct{}),
		logger:        logger,
	}
}

// Start spawns one worker per partition, the only writer for the days routed to it.
func (consumer *dayPartitionConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()
			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to exit. Messages still buffered are dropped.
func (consumer *dayPartitionConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *dayPartitionConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.DayPartitionEvent) {
	workerLogger := consumer.logger.With().
		Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).
		Logger()

	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case partition, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, workerLogger, &partition)
		}
	}
}

func (consumer *dayPartitionConsumer) handle(ctx context.Context, workerLogger loggers.Logger, partition *events.DayPartitionEvent) {
	ctx = workerLogger.With().
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricDayPartitionConsumedTotal.WithLabelValues(streamDayPartition, svcErr.Code).Inc()
		}
	}()

	svcError := consumer.rollupService.Rollup(ctx, partition)
	if svcError != nil {
		loggers.Ctx(ctx).Error().
			Err(svcError.Cause).
			Str(loggers.FieldErrorCode, svcError.Code).
			Str(loggers.FieldBatchID, partition.BatchID).
			Str(loggers.FieldDay, partition.Day).
			Msg("day partition rollup failed")
		metricDayPartitionConsumedTotal.WithLabelValues(streamDayPartition, svcError.Code).Inc()
		return
	}
	metricDayPartitionConsumedTotal.WithLabelValues(streamDayPartition, metrics.ValueNoError).Inc()
}
