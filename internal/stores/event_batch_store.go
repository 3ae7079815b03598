package stores

import (
	"context"
	"errors"
	"fmt"

	"dealer-analytics/internal/models"
	"dealer-analytics/internal/shared/filestorages"
)

var (
	ErrEventBatchAlreadyExist = errors.New("event batch already exists")
)

// EventBatchStore keeps every accepted intake batch as sent. Put is create-if-absent,
// the same contract as a conditional object-store PUT, so the batch ID doubles as an
// idempotency key:
//   - Request A and Request B both post batch "batch-123"
//   - A's Put succeeds and the batch is stored
//   - B's Put fails with ErrEventBatchAlreadyExist and B is rejected as a replay
//
//go:generate mockgen -source=event_batch_store.go -destination=./mocks/event_batch_store_mock.go -package=mocks
type EventBatchStore interface {
	Put(ctx context.Context, eventBatch *models.EventBatch) error
}

type eventBatchStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewEventBatchStore(fileStorage filestorages.FileStorage) EventBatchStore {
	return &eventBatchStore{fileStorage: fileStorage, dir: "raw-batches"}
}

func (s *eventBatchStore) Put(ctx context.Context, eventBatch *models.EventBatch) error {
	key := fmt.Sprintf("%s/%s/%s.json", s.dir, eventBatch.Source, eventBatch.BatchID)

	err := putJSON(ctx, s.fileStorage, key, eventBatch, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrEventBatchAlreadyExist
		}
		return fmt.Errorf("failed to put event batch: %w", err)
	}
	return nil
}
