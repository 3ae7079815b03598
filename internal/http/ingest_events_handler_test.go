package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dealer-analytics/internal/ingestors"
	ingestormocks "dealer-analytics/internal/ingestors/mocks"
	"dealer-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newIngestRequest() *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`[{"kind":"$pageview","timestamp":"2025-12-22T10:00:00Z"}]`))
	req.Header.Set(headerEventSource, "showroom-kiosk")
	req.Header.Set(headerIdempotencyKey, "batch-001")
	req.Header.Set(headerContentType, "application/json")
	return req
}

func TestIngestEventsHandler_Handle_Accepted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ingestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestEventsHandler(ingestionService)

	ingestionService.EXPECT().
		IngestBatch(gomock.Any(), "showroom-kiosk", "batch-001", "application/json", gomock.Any()).
		Return(&ingestors.IngestResult{BatchID: "batch-001", Accepted: 1}, nil)

	rr := httptest.NewRecorder()
	err := handler.Handle(rr, newIngestRequest())

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.JSONEq(t, `{"batchId":"batch-001","accepted":1}`, rr.Body.String())
}

func TestIngestEventsHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ingestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestEventsHandler(ingestionService)

	ingestionService.EXPECT().
		IngestBatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, svcerrors.NewResourceConflictError("EVT_1001", "event batch already processed", nil))

	rr := httptest.NewRecorder()
	err := handler.Handle(rr, newIngestRequest())

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "EVT_1001", svcErr.Code)
	assert.Empty(t, rr.Body.String())
}
