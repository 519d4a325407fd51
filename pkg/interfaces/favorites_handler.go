package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/hkawano/stagedive/pkg/domain"
)

type FavoritesHandler struct {
	service domain.FavoritesService
}

func NewFavoritesHandler(service domain.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{
		service: service,
	}
}

func (h *FavoritesHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/favorites", h.List).Methods("GET")
	router.HandleFunc("/api/favorites", h.Add).Methods("POST")
	router.HandleFunc("/api/favorites", h.Clear).Methods("DELETE")
	router.HandleFunc("/api/favorites/count", h.Count).Methods("GET")
	router.HandleFunc("/api/favorites/{id}", h.IsFavorite).Methods("GET")
	router.HandleFunc("/api/favorites/{id}", h.Remove).Methods("DELETE")
}

func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	favorites, err := h.service.List(ctx)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"favorites": favorites,
		"total":     len(favorites),
	})
}

func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var artist domain.Artist
	if err := json.NewDecoder(r.Body).Decode(&artist); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	favorite, err := h.service.Add(ctx, artist)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			respondWithError(w, http.StatusBadRequest, "artist id and name are required")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondWithJSON(w, http.StatusCreated, favorite)
}

func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	vars := mux.Vars(r)
	if err := h.service.Remove(ctx, vars["id"]); err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			respondWithError(w, http.StatusBadRequest, "favorite id is required")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FavoritesHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	vars := mux.Vars(r)
	isFavorite, err := h.service.IsFavorite(ctx, vars["id"])
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"id":       vars["id"],
		"favorite": isFavorite,
	})
}

func (h *FavoritesHandler) Count(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	count, err := h.service.Count(ctx)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"total": count,
	})
}

func (h *FavoritesHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.Clear(ctx); err != nil {
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
