package stores

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"dealer-analytics/internal/models"
	"dealer-analytics/internal/shared/filestorages"
	"dealer-analytics/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDayBucketStore_Get_MissingDayReturnsEmptyBucket(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewDayBucketStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Get(gomock.Any(), "day-buckets/2025-12-28.json").
		Return(nil, filestorages.ErrFileNotFound)

	bucket, err := store.Get(context.Background(), "2025-12-28")
	require.NoError(t, err)
	assert.Equal(t, models.NewEmptyDayBucket("2025-12-28"), bucket)
	assert.True(t, bucket.IsNewBucket())
}

func TestDayBucketStore_Get_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewDayBucketStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("permission denied"))

	bucket, err := store.Get(context.Background(), "2025-12-28")
	assert.Nil(t, bucket)
	assert.ErrorContains(t, err, "failed to get day bucket")
}

func TestDayBucketStore_Get_CorruptFile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewDayBucketStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(io.NopCloser(strings.NewReader("{not json")), nil)

	_, err := store.Get(context.Background(), "2025-12-28")
	assert.ErrorContains(t, err, "failed to unmarshal")
}

func TestDayBucketStore_UpsertThenGet(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	store := NewDayBucketStore(fileStorage)
	ctx := context.Background()

	at := time.Date(2025, 12, 28, 18, 3, 15, 0, time.UTC)
	bucket := models.NewEmptyDayBucket("2025-12-28")
	bucket.BatchIDs = append(bucket.BatchIDs, "batch-1")
	bucket.Events = append(bucket.Events, models.Event{Kind: models.PageviewKind, Timestamp: at, DistinctID: "v"})
	require.NoError(t, store.Upsert(ctx, bucket))

	bucket.BatchIDs = append(bucket.BatchIDs, "batch-2")
	bucket.Events = append(bucket.Events, models.Event{Kind: "click", Timestamp: at.Add(time.Hour)})
	require.NoError(t, store.Upsert(ctx, bucket))

	got, err := store.Get(ctx, "2025-12-28")
	require.NoError(t, err)
	assert.Equal(t, []string{"batch-1", "batch-2"}, got.BatchIDs)
	require.Len(t, got.Events, 2)
	assert.True(t, got.Events[1].Timestamp.Equal(at.Add(time.Hour)))
}
