package ingestors_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"dealer-analytics/internal/events"
	"dealer-analytics/internal/ingestors"
	ingestormocks "dealer-analytics/internal/ingestors/mocks"
	"dealer-analytics/internal/models"
	"dealer-analytics/internal/shared/svcerrors"
	"dealer-analytics/internal/stores"
	storemocks "dealer-analytics/internal/stores/mocks"
	streammocks "dealer-analytics/internal/streams/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validJSON = `[{"kind":"$pageview","timestamp":"2025-12-21T14:21:00.000Z","distinctId":"v-1","properties":{"currentUrl":"https://dealer.example.com/"}}]`

func requireServiceError(t *testing.T, err error, code, category string) *svcerrors.ServiceError {
	t.Helper()
	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, code, svcErr.Code)
	assert.Equal(t, category, svcErr.Category)
	return svcErr
}

func TestIngestBatch_ErrValidationFailed_InvalidFormat(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := ingestors.NewIngestionService(
		ingestormocks.NewMockBatchSplitter(ctrl),
		storemocks.NewMockEventBatchStore(ctrl),
		streammocks.NewMockDayPartitionProducer(ctrl),
	)

	result, err := service.IngestBatch(context.Background(), "web", "key1", "xml", bytes.NewReader([]byte(`{}`)))

	requireServiceError(t, err, "EVT_1000", "invalid_argument")
	assert.Nil(t, result, "expected nil result on error")
}

func TestIngestBatch_ErrValidationFailed_BatchTooLarge(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := ingestors.NewIngestionService(
		ingestormocks.NewMockBatchSplitter(ctrl),
		storemocks.NewMockEventBatchStore(ctrl),
		streammocks.NewMockDayPartitionProducer(ctrl),
	)

	largeBody := make([]byte, 2*1024*1024+1)
	_, err := service.IngestBatch(context.Background(), "web", "key1", "application/json", bytes.NewReader(largeBody))

	svcErr := requireServiceError(t, err, "EVT_1000", "invalid_argument")
	assert.Equal(t, "batch too large: must be <= 2MB", svcErr.Message)
}

func TestIngestBatch_ErrValidationFailed_EventValidation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := ingestors.NewIngestionService(
		ingestormocks.NewMockBatchSplitter(ctrl),
		storemocks.NewMockEventBatchStore(ctrl),
		streammocks.NewMockDayPartitionProducer(ctrl),
	)

	tests := []struct {
		name    string
		json    string
		wantMsg string
	}{
		{"not an array", `{"kind":"x"}`, "invalid json"},
		{"invalid json", `[{invalid json}]`, "invalid json"},
		{"empty events", `[]`, "events cannot be empty"},
		{"item not an object", `["x"]`, "item at index 0: invalid event object"},
		{"missing kind", `[{"timestamp":"2025-12-21T14:21:00Z"}]`, "item at index 0: kind (required)"},
		{"blank kind", `[{"kind":"   ","timestamp":"2025-12-21T14:21:00Z"}]`, "kind (required)"},
		{"missing timestamp", `[{"kind":"click"}]`, "timestamp (required)"},
		{"invalid timestamp", `[{"kind":"click","timestamp":"yesterday"}]`, "invalid time format"},
		{"kind too long", `[{"kind":"` + strings.Repeat("k", 257) + `","timestamp":"2025-12-21T14:21:00Z"}]`, "kind (max=256)"},
		{
			"url too long",
			`[{"kind":"click","timestamp":"2025-12-21T14:21:00Z","properties":{"currentUrl":"https://x.test/` + strings.Repeat("a", 2048) + `"}}]`,
			"properties.currenturl (max=2048)",
		},
		{
			"user agent too long",
			`[{"kind":"click","timestamp":"2025-12-21T14:21:00Z","properties":{"userAgent":"` + strings.Repeat("a", 1025) + `"}}]`,
			"properties.useragent (max=1024)",
		},
		{"second item invalid", `[{"kind":"click","timestamp":"2025-12-21T14:21:00Z"},{"kind":"click"}]`, "item at index 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.IngestBatch(context.Background(), "web", "key1", "json", strings.NewReader(tt.json))

			svcErr := requireServiceError(t, err, "EVT_1000", "invalid_argument")
			assert.Contains(t, svcErr.Message, tt.wantMsg)
			assert.Nil(t, result, "expected nil result on error")
		})
	}
}

func TestIngestBatch_ErrValidationFailed_UnsafeIdentifiers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := ingestors.NewIngestionService(
		ingestormocks.NewMockBatchSplitter(ctrl),
		storemocks.NewMockEventBatchStore(ctrl),
		streammocks.NewMockDayPartitionProducer(ctrl),
	)

	_, err := service.IngestBatch(context.Background(), "web", "../../etc/passwd", "json", strings.NewReader(validJSON))
	requireServiceError(t, err, "EVT_1000", "invalid_argument")

	_, err = service.IngestBatch(context.Background(), "we/b", "key1", "json", strings.NewReader(validJSON))
	requireServiceError(t, err, "EVT_1000", "invalid_argument")
}

func TestIngestBatch_ErrBatchPutFailed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		putError         error
		expectedCode     string
		expectedCategory string
	}{
		{"event batch already exists", stores.ErrEventBatchAlreadyExist, "EVT_1001", "resource_conflict"},
		{"event batch put failed", assert.AnError, "EVT_9000", "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			batchStore := storemocks.NewMockEventBatchStore(ctrl)
			batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(tt.putError)

			service := ingestors.NewIngestionService(
				ingestormocks.NewMockBatchSplitter(ctrl),
				batchStore,
				streammocks.NewMockDayPartitionProducer(ctrl),
			)

			result, err := service.IngestBatch(context.Background(), "web", "key1", "json", strings.NewReader(validJSON))

			requireServiceError(t, err, tt.expectedCode, tt.expectedCategory)
			assert.Nil(t, result, "expected nil result on error")
		})
	}
}

func TestIngestBatch_ErrDayPartitionPublishFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batchSplitter := ingestormocks.NewMockBatchSplitter(ctrl)
	batchStore := storemocks.NewMockEventBatchStore(ctrl)
	producer := streammocks.NewMockDayPartitionProducer(ctrl)

	batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	batchSplitter.EXPECT().Split(gomock.Any()).Return([]events.DayPartitionEvent{{Day: "2025-12-21"}})
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(assert.AnError)

	service := ingestors.NewIngestionService(batchSplitter, batchStore, producer)

	result, err := service.IngestBatch(context.Background(), "web", "key1", "json", strings.NewReader(validJSON))

	requireServiceError(t, err, "EVT_9001", "internal")
	assert.Nil(t, result, "expected nil result on error")
}

func TestIngestBatch_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batchStore := storemocks.NewMockEventBatchStore(ctrl)
	producer := streammocks.NewMockDayPartitionProducer(ctrl)

	var storedBatch *models.EventBatch
	var published []events.DayPartitionEvent

	batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, batch *models.EventBatch) {
			storedBatch = batch
		}).
		Return(nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, partitions []events.DayPartitionEvent) {
			published = partitions
		}).
		Return(nil)

	service := ingestors.NewIngestionService(ingestors.NewDayBatchSplitter(), batchStore, producer)

	body := `[
		{"kind":" $pageview ","timestamp":"2025-12-21T14:21:00Z","distinctId":" v-1 ",
		 "properties":{"currentUrl":" https://dealer.example.com/trucks ","sessionDuration":12.5,
		 "userAgent":"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"}},
		{"kind":"trade_in_submitted","timestamp":"2025-12-22T08:00:00.123+02:00",
		 "properties":{"distinctId":"v-2","deviceType":"Desktop","currentUrl":"   ","userAgent":"Googlebot/2.1"}}
	]`

	result, err := service.IngestBatch(context.Background(), " WEB ", "key1", "application/json; charset=utf-8", strings.NewReader(body))

	require.NoError(t, err, "unexpected error")
	assert.Equal(t, &ingestors.IngestResult{BatchID: "key1", Accepted: 2}, result)

	require.NotNil(t, storedBatch)
	assert.Equal(t, "key1", storedBatch.BatchID)
	assert.Equal(t, "web", storedBatch.Source)
	require.Len(t, storedBatch.Events, 2)

	first := storedBatch.Events[0]
	assert.Equal(t, models.PageviewKind, first.Kind)
	assert.Equal(t, "v-1", first.DistinctID)
	assert.Equal(t, "https://dealer.example.com/trucks", *first.Properties.CurrentURL)
	assert.Equal(t, "Mobile", first.Device(), "device derived from user agent")

	second := storedBatch.Events[1]
	assert.Equal(t, time.Date(2025, 12, 22, 6, 0, 0, 123000000, time.UTC), second.Timestamp)
	assert.Nil(t, second.Properties.CurrentURL, "blank url is absent")
	assert.Equal(t, "Desktop", second.Device(), "explicit device type wins")
	id, ok := second.Identity()
	assert.True(t, ok)
	assert.Equal(t, "v-2", id)

	require.Len(t, published, 2)
	assert.Equal(t, "2025-12-21", published[0].Day)
	assert.Equal(t, "2025-12-22", published[1].Day)
}

func TestIngestBatch_NonNumericSessionDurationIsDropped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batchStore := storemocks.NewMockEventBatchStore(ctrl)
	producer := streammocks.NewMockDayPartitionProducer(ctrl)

	var storedBatch *models.EventBatch
	batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, batch *models.EventBatch) {
			storedBatch = batch
		}).
		Return(nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	service := ingestors.NewIngestionService(ingestors.NewDayBatchSplitter(), batchStore, producer)

	body := `[
		{"kind":"click","timestamp":"2025-12-21T14:21:00Z","distinctId":"v-1","properties":{"sessionDuration":"12"}},
		{"kind":"click","timestamp":"2025-12-21T14:22:00Z","distinctId":"v-1","properties":{"sessionDuration":null}},
		{"kind":"click","timestamp":"2025-12-21T14:23:00Z","distinctId":"v-1","properties":{"sessionDuration":30}}
	]`

	result, err := service.IngestBatch(context.Background(), "web", "key1", "json", strings.NewReader(body))

	require.NoError(t, err)
	assert.Equal(t, 3, result.Accepted)
	require.Len(t, storedBatch.Events, 3)
	assert.Nil(t, storedBatch.Events[0].Properties.SessionDuration)
	assert.Nil(t, storedBatch.Events[1].Properties.SessionDuration)
	require.NotNil(t, storedBatch.Events[2].Properties.SessionDuration)
	assert.Equal(t, 30.0, *storedBatch.Events[2].Properties.SessionDuration)
}

func TestIngestBatch_GeneratesBatchIDAndDefaultSource(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batchStore := storemocks.NewMockEventBatchStore(ctrl)
	producer := streammocks.NewMockDayPartitionProducer(ctrl)

	batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, batch *models.EventBatch) {
			assert.Equal(t, "web", batch.Source)
			assert.Len(t, batch.BatchID, 26, "ULID")
		}).
		Return(nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	service := ingestors.NewIngestionService(ingestors.NewDayBatchSplitter(), batchStore, producer)

	result, err := service.IngestBatch(context.Background(), "", "", "json", strings.NewReader(validJSON))
	require.NoError(t, err)
	assert.Len(t, result.BatchID, 26)
	assert.Equal(t, 1, result.Accepted)
}
