package interfaces

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hkawano/stagedive/pkg/domain"
)

// EventCatalog is the read surface of the curated catalog.
type EventCatalog interface {
	Search(params domain.EventSearchParams) []domain.Event
	Upcoming() []domain.Event
	GetByID(id string) (*domain.Event, error)
}

type EventHandler struct {
	catalog EventCatalog
}

func NewEventHandler(catalog EventCatalog) *EventHandler {
	return &EventHandler{
		catalog: catalog,
	}
}

func (h *EventHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/events", h.SearchEvents).Methods("GET")
	router.HandleFunc("/api/events/upcoming", h.UpcomingEvents).Methods("GET")
	router.HandleFunc("/api/events/{id}", h.GetEvent).Methods("GET")
}

// SearchEvents handles GET /api/events with optional artist, type, location,
// start_date and end_date query parameters; absent parameters are not
// applied as filters.
func (h *EventHandler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	eventType := domain.EventType(query.Get("type"))
	switch eventType {
	case "", domain.EventTypeFestival, domain.EventTypeLive, domain.EventTypeTour:
	default:
		respondWithError(w, http.StatusBadRequest, "type must be one of festival, live, tour")
		return
	}

	events := h.catalog.Search(domain.EventSearchParams{
		Artist:    query.Get("artist"),
		Type:      eventType,
		Location:  query.Get("location"),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	})

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
		"total":  len(events),
	})
}

func (h *EventHandler) UpcomingEvents(w http.ResponseWriter, r *http.Request) {
	events := h.catalog.Upcoming()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
		"total":  len(events),
	})
}

func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	event, err := h.catalog.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			respondWithError(w, http.StatusNotFound, "event not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, event)
}
