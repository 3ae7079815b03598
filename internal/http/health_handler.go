package http

import "net/http"

type healthHandler struct{}

func NewHealthHandler() AppHttpHandler {
	return healthHandler{}
}

// Handle reports liveness for GET /healthz.
func (healthHandler) Handle(w http.ResponseWriter, _ *http.Request) error {
	writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	return nil
}
