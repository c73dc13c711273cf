// Package api exposes the aggregation layer over HTTP as a JSON API.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/jkarvonen/cinescope/internal/discovery"
	"github.com/jkarvonen/cinescope/internal/region"
)

// Handler holds the HTTP handlers for the API.
type Handler struct {
	svc *discovery.Service
}

// NewHandler creates an API handler backed by the given service.
func NewHandler(svc *discovery.Service) *Handler {
	return &Handler{svc: svc}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// regionParams reads the region selection from the query string. The
// "regions" parameter (comma-separated) selects multi-region mode; the
// "region" parameter selects a single region, defaulting to US.
func regionParams(r *http.Request) (single string, multi []string) {
	if raw := r.URL.Query().Get("regions"); raw != "" {
		for _, code := range strings.Split(raw, ",") {
			code = strings.TrimSpace(code)
			if code != "" {
				multi = append(multi, code)
			}
		}
		if len(multi) > 0 {
			return "", multi
		}
	}
	single = r.URL.Query().Get("region")
	if single == "" {
		single = region.Default
	}
	return single, nil
}

// HealthCheck reports service liveness.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListRegions returns the supported region registry.
func (h *Handler) ListRegions(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, region.List())
}

// GetTrending returns trending titles for one region, or a region-keyed
// map when "regions" is given.
func (h *Handler) GetTrending(w http.ResponseWriter, r *http.Request) {
	single, multi := regionParams(r)
	if multi != nil {
		respondJSON(w, http.StatusOK, h.svc.TrendingByRegion(r.Context(), multi))
		return
	}
	respondJSON(w, http.StatusOK, h.svc.Trending(r.Context(), single))
}

// SearchMovies searches titles by the "q" query parameter.
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "missing query parameter 'q'")
		return
	}

	single, multi := regionParams(r)
	if multi != nil {
		respondJSON(w, http.StatusOK, h.svc.SearchByRegion(r.Context(), query, multi))
		return
	}
	respondJSON(w, http.StatusOK, h.svc.Search(r.Context(), query, single))
}

// GetMovie returns the full detail record for one title.
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := moviePathID(w, r)
	if !ok {
		return
	}

	single, multi := regionParams(r)
	if multi != nil {
		respondJSON(w, http.StatusOK, h.svc.DetailsByRegion(r.Context(), movieID, multi))
		return
	}
	respondJSON(w, http.StatusOK, h.svc.Details(r.Context(), movieID, single))
}

// GetMovieCombined returns the fully aggregated view for one title.
func (h *Handler) GetMovieCombined(w http.ResponseWriter, r *http.Request) {
	movieID, ok := moviePathID(w, r)
	if !ok {
		return
	}

	single, multi := regionParams(r)
	if multi != nil {
		results := make(map[string]*discovery.Combined, len(multi))
		for _, code := range multi {
			results[code] = h.svc.Combined(r.Context(), movieID, code)
		}
		respondJSON(w, http.StatusOK, results)
		return
	}
	respondJSON(w, http.StatusOK, h.svc.Combined(r.Context(), movieID, single))
}

func moviePathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := mux.Vars(r)["id"]
	movieID, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid movie ID")
		return 0, false
	}
	return movieID, true
}
