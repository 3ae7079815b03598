package aggregators

import (
	"context"
	"errors"

	"dealer-analytics/internal/events"
	"dealer-analytics/internal/shared/loggers"
	"dealer-analytics/internal/shared/svcerrors"
	"dealer-analytics/internal/stores"
)

// RollupService merges day partitions into their persisted day bucket.
// Callers must serialize calls for the same day; the partitioned queue does so by
// routing every partition of a day to one worker.
//
//go:generate mockgen -source=rollup_service.go -destination=./mocks/rollup_service_mock.go -package=mocks
type RollupService interface {
	Rollup(ctx context.Context, partition *events.DayPartitionEvent) *svcerrors.ServiceError
}

type rollupService struct {
	dayBucketRolluper DayBucketRolluper
	dayBucketStore    stores.DayBucketStore
}

func NewRollupService(dayBucketRolluper DayBucketRolluper, dayBucketStore stores.DayBucketStore) RollupService {
	return &rollupService{dayBucketRolluper: dayBucketRolluper, dayBucketStore: dayBucketStore}
}

func (s *rollupService) Rollup(ctx context.Context, partition *events.DayPartitionEvent) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldBatchID, partition.BatchID).
		Str(loggers.FieldDay, partition.Day).
		Int(loggers.FieldEventCount, len(partition.Events)).
		Msg("started rolling up day partition")

	bucket, err := s.dayBucketStore.Get(ctx, partition.Day)
	if err != nil {
		return errInternalDayBucketStoreFailed(err)
	}
	isNewBucket := bucket.IsNewBucket()

	err = s.dayBucketRolluper.Rollup(bucket, partition)
	if err != nil {
		if errors.Is(err, ErrBatchAlreadyRolledUp) {
			logger.Info().
				Str(loggers.FieldBatchID, partition.BatchID).
				Str(loggers.FieldDay, partition.Day).
				Msg("day partition already rolled up, skipping")
			metricBatchReplaySkippedTotal.WithLabelValues(partition.Source).Inc()
			return nil
		}
		return errInternalDayBucketRollupFailed(err)
	}

	err = s.dayBucketStore.Upsert(ctx, bucket)
	if err != nil {
		return errInternalDayBucketStoreFailed(err)
	}

	if isNewBucket {
		metricDayBucketCreatedTotal.WithLabelValues(partition.Source).Inc()
	}
	return nil
}
