package stores

import (
	"context"
	"errors"
	"fmt"

	"dealer-analytics/internal/models"
	"dealer-analytics/internal/shared/filestorages"
)

// DayBucketStore persists one DayBucket per UTC calendar day.
// Get never reports a missing day: it returns an empty bucket instead.
//
//go:generate mockgen -source=day_bucket_store.go -destination=./mocks/day_bucket_store_mock.go -package=mocks
type DayBucketStore interface {
	Upsert(ctx context.Context, bucket *models.DayBucket) error
	Get(ctx context.Context, day string) (*models.DayBucket, error)
}

type dayBucketStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewDayBucketStore(fileStorage filestorages.FileStorage) DayBucketStore {
	return &dayBucketStore{fileStorage: fileStorage, dir: "day-buckets"}
}

func (s *dayBucketStore) Upsert(ctx context.Context, bucket *models.DayBucket) error {
	err := putJSON(ctx, s.fileStorage, s.getKey(bucket.Date), bucket, filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put day bucket: %w", err)
	}
	return nil
}

func (s *dayBucketStore) Get(ctx context.Context, day string) (*models.DayBucket, error) {
	var bucket models.DayBucket
	if err := getJSON(ctx, s.fileStorage, s.getKey(day), &bucket); err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return models.NewEmptyDayBucket(day), nil
		}
		return nil, fmt.Errorf("failed to get day bucket: %w", err)
	}
	return &bucket, nil
}

func (s *dayBucketStore) getKey(day string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, day)
}
