package stores

import (
	"context"
	"errors"
	"fmt"

	"dealer-analytics/internal/models"
	"dealer-analytics/internal/shared/filestorages"
)

var (
	ErrSummarySnapshotNotFound = errors.New("summary snapshot not found")
)

// SummarySnapshotStore keeps the last successfully computed summary per range so it
// can be served when the event source is unavailable. Window ranges share one
// snapshot per selector, so a rolling "last 7d" always finds the latest one.
//
//go:generate mockgen -source=summary_snapshot_store.go -destination=./mocks/summary_snapshot_store_mock.go -package=mocks
type SummarySnapshotStore interface {
	Put(ctx context.Context, summaryRange models.SummaryRange, summary *models.Summary) error
	Get(ctx context.Context, summaryRange models.SummaryRange) (*models.Summary, error)
}

type summarySnapshotStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewSummarySnapshotStore(fileStorage filestorages.FileStorage) SummarySnapshotStore {
	return &summarySnapshotStore{fileStorage: fileStorage, dir: "summary-snapshots"}
}

func (s *summarySnapshotStore) Put(ctx context.Context, summaryRange models.SummaryRange, summary *models.Summary) error {
	if err := putJSON(ctx, s.fileStorage, s.getKey(summaryRange), summary, filestorages.PutOptions{AllowOverwrite: true}); err != nil {
		return fmt.Errorf("failed to put summary snapshot: %w", err)
	}
	return nil
}

func (s *summarySnapshotStore) Get(ctx context.Context, summaryRange models.SummaryRange) (*models.Summary, error) {
	var summary models.Summary
	if err := getJSON(ctx, s.fileStorage, s.getKey(summaryRange), &summary); err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrSummarySnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get summary snapshot: %w", err)
	}
	return &summary, nil
}

func (s *summarySnapshotStore) getKey(summaryRange models.SummaryRange) string {
	return fmt.Sprintf("%s/%s.json", s.dir, summaryRange.SnapshotKey())
}
