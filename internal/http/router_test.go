package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dealer-analytics/internal/aggregators"
	aggregatormocks "dealer-analytics/internal/aggregators/mocks"
	"dealer-analytics/internal/ingestors"
	ingestormocks "dealer-analytics/internal/ingestors/mocks"
	"dealer-analytics/internal/models"
	authmocks "dealer-analytics/internal/shared/auth/mocks"
	"dealer-analytics/internal/shared/loggers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	handler          http.Handler
	ingestionService *ingestormocks.MockIngestionService
	summaryService   *aggregatormocks.MockSummaryService
	authenticator    *authmocks.MockAuthenticator
}

func newRouterFixture(t *testing.T) routerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := routerFixture{
		ingestionService: ingestormocks.NewMockIngestionService(ctrl),
		summaryService:   aggregatormocks.NewMockSummaryService(ctrl),
		authenticator:    authmocks.NewMockAuthenticator(ctrl),
	}
	f.handler = NewRouter(RouterDeps{
		IngestionService: f.ingestionService,
		SummaryService:   f.summaryService,
		Authenticator:    f.authenticator,
		DefaultRange:     models.RangeLast30Days,
	}, loggers.Nop())
	return f
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	// one request so the http collectors have a sample
	f.handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "dealer_analytics_http_requests_total")
}

func TestRouter_SummaryRequiresAuthentication(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.authenticator.EXPECT().IsAuthenticated(gomock.Any()).Return(false)

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/analytics/summary?range=7d", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "AUTH_1000", errorResponse.ErrorCode)
	assert.Equal(t, rr.Header().Get(headerRequestID), errorResponse.RequestID)
}

func TestRouter_SummaryAuthenticated(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.authenticator.EXPECT().IsAuthenticated(gomock.Any()).Return(true)
	f.summaryService.EXPECT().
		Summarize(gomock.Any(), gomock.Any()).
		Return(&aggregators.SummaryResult{Summary: &models.Summary{TotalUsers: 2}}, nil)

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/analytics/summary", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body SummaryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 2, body.TotalUsers)
}

func TestRouter_EventsDoesNotRequireAuthentication(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.ingestionService.EXPECT().
		IngestBatch(gomock.Any(), "", "", "application/json", gomock.Any()).
		Return(&ingestors.IngestResult{BatchID: "01JFZ0000000000000000000AB", Accepted: 0}, nil)

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`[]`))
	req.Header.Set(headerContentType, "application/json")
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.JSONEq(t, `{"batchId":"01JFZ0000000000000000000AB","accepted":0}`, rr.Body.String())
}
