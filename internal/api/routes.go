package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SetupRoutes builds the API router with all endpoints and middleware.
func SetupRoutes(h *Handler) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	api.HandleFunc("/regions", h.ListRegions).Methods(http.MethodGet)
	api.HandleFunc("/trending", h.GetTrending).Methods(http.MethodGet)
	api.HandleFunc("/search", h.SearchMovies).Methods(http.MethodGet)
	api.HandleFunc("/movies/{id}", h.GetMovie).Methods(http.MethodGet)
	api.HandleFunc("/movies/{id}/combined", h.GetMovieCombined).Methods(http.MethodGet)

	r.Use(corsMiddleware)
	r.Use(loggingMiddleware)

	return r
}
