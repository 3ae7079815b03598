package http

import (
	"net/http"

	"dealer-analytics/internal/ingestors"
)

type ingestEventsHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestEventsHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestEventsHandler{
		ingestionService: ingestionService,
	}
}

// IngestEventsResponse acknowledges an accepted batch.
type IngestEventsResponse struct {
	BatchID  string `json:"batchId"`
	Accepted int    `json:"accepted"`
}

// Handle processes POST /events requests.
func (h *ingestEventsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestBatch(r.Context(), eventSource(r), idempotencyKey(r), contentType(r), r.Body)
	if err != nil {
		return err
	}

	writeJSONResponse(w, http.StatusAccepted, IngestEventsResponse{
		BatchID:  result.BatchID,
		Accepted: result.Accepted,
	})
	return nil
}
