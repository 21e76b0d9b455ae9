package handler

import "net/http"

// RegisterRoutes registers the API routes on mux (Go 1.22+ patterns)
func RegisterRoutes(mux *http.ServeMux, docHandler *DocumentHandler) {
	mux.HandleFunc("GET /health", HealthCheck)

	// Any method; DocumentHandler answers 405 itself
	mux.HandleFunc("/api/teams/{teamId}/documents/move", docHandler.MoveDocuments)
}
