package interfaces

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/hkawano/stagedive/pkg/domain"
	"github.com/hkawano/stagedive/pkg/integrations"
)

type SearchHandler struct {
	service domain.SearchService
}

func NewSearchHandler(service domain.SearchService) *SearchHandler {
	return &SearchHandler{
		service: service,
	}
}

func (h *SearchHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/search", h.Search).Methods("GET")
}

// Search handles GET /api/search?artist=<name>. A missing or empty parameter
// is the only 400; any internal failure after that still produces a
// success-shaped body with placeholder content and a warning.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	artistName := strings.TrimSpace(r.URL.Query().Get("artist"))
	if artistName == "" {
		respondWithError(w, http.StatusBadRequest, "artist name is required")
		return
	}

	result, err := h.service.Search(ctx, artistName)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			respondWithError(w, http.StatusBadRequest, "artist name is required")
			return
		}

		// The service is built never to fail for a non-empty name; if it
		// does anyway, keep the contract and answer with placeholder data.
		log.Error().Err(err).Str("artist", artistName).Msg("search service failed, serving fallback body")
		result = &domain.SearchResult{
			Success: true,
			Artists: []domain.Artist{integrations.MockArtist(artistName)},
			Events:  []domain.Event{},
			Warning: "Search failed. Showing placeholder data.",
		}
	}

	respondWithJSON(w, http.StatusOK, result)
}
