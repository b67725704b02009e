package rest

import "net/http"

// NewRouter registers the health and review endpoints on a ServeMux.
// Middleware is applied by the caller.
func NewRouter(health *HealthHandler, study *StudyHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /v1/due", study.DueItems)

	mux.HandleFunc("POST /v1/sessions", study.StartSession)
	mux.HandleFunc("GET /v1/sessions/{id}", study.GetSession)
	mux.HandleFunc("DELETE /v1/sessions/{id}", study.AbandonSession)
	mux.HandleFunc("POST /v1/sessions/{id}/flip", study.FlipCard)
	mux.HandleFunc("POST /v1/sessions/{id}/rating", study.SubmitRating)

	mux.HandleFunc("POST /v1/items/{id}/review", study.ReviewItem)
	mux.HandleFunc("GET /v1/items/{id}/preview", study.PreviewItem)
	mux.HandleFunc("GET /v1/items/{id}/history", study.ItemHistory)

	return mux
}
