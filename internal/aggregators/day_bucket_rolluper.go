package aggregators

import (
	"errors"
	"fmt"

	"dealer-analytics/internal/events"
	"dealer-analytics/internal/models"
)

// ErrBatchAlreadyRolledUp is returned when the partition's batch is already part of the bucket.
var ErrBatchAlreadyRolledUp = errors.New("batch already rolled up")

//go:generate mockgen -source=day_bucket_rolluper.go -destination=./mocks/day_bucket_rolluper_mock.go -package=mocks
type DayBucketRolluper interface {
	// Rollup mutates bucket by appending the events of partition.
	// On error the bucket is left untouched.
	Rollup(bucket *models.DayBucket, partition *events.DayPartitionEvent) error
}

type dayBucketRolluper struct{}

func NewDayBucketRolluper() DayBucketRolluper {
	return &dayBucketRolluper{}
}

func (r *dayBucketRolluper) Rollup(bucket *models.DayBucket, partition *events.DayPartitionEvent) error {
	if bucket.Date != partition.Day {
		return fmt.Errorf("day mismatch: bucket=%q, partition=%q", bucket.Date, partition.Day)
	}
	for i := range partition.Events {
		if day := models.DayKey(partition.Events[i].Timestamp); day != bucket.Date {
			return fmt.Errorf("event %d day mismatch: bucket=%q, event=%q", i, bucket.Date, day)
		}
	}
	if bucket.HasBatch(partition.BatchID) {
		return ErrBatchAlreadyRolledUp
	}

	bucket.BatchIDs = append(bucket.BatchIDs, partition.BatchID)
	bucket.Events = append(bucket.Events, partition.Events...)
	return nil
}
