package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/hkawano/stagedive/pkg/catalog"
	"github.com/hkawano/stagedive/pkg/domain"
)

type eventListResponse struct {
	Events []domain.Event `json:"events"`
	Total  int            `json:"total"`
}

func newEventRouter() *mux.Router {
	router := mux.NewRouter()
	NewEventHandler(catalog.New()).RegisterRoutes(router)
	return router
}

func TestEventHandler_SearchEvents(t *testing.T) {
	router := newEventRouter()

	t.Run("no filters returns the whole catalog", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/events", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}

		var response eventListResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
			t.Fatal(err)
		}
		if response.Total != 10 {
			t.Errorf("expected 10 events, got %d", response.Total)
		}
	})

	t.Run("date range filter", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/events?start_date=2025-08-01&end_date=2025-08-31", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		var response eventListResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
			t.Fatal(err)
		}
		if response.Total != 4 {
			t.Errorf("expected 4 events in August 2025, got %d", response.Total)
		}
		for _, event := range response.Events {
			if event.Date < "2025-08-01" || event.Date > "2025-08-31" {
				t.Errorf("event %s dated %s is outside the range", event.ID, event.Date)
			}
		}
	})

	t.Run("artist and type filters compose", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/events?artist=Ado&type=festival", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		var response eventListResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
			t.Fatal(err)
		}
		if response.Total != 2 {
			t.Errorf("expected 2 festivals with Ado, got %d", response.Total)
		}
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/events?type=webinar", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rr.Code)
		}
	})
}

func TestEventHandler_GetEvent(t *testing.T) {
	router := newEventRouter()

	t.Run("existing event", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/events/cat-1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}

		var event domain.Event
		if err := json.Unmarshal(rr.Body.Bytes(), &event); err != nil {
			t.Fatal(err)
		}
		if event.Title != "ROCK IN JAPAN FESTIVAL 2025" {
			t.Errorf("unexpected title %s", event.Title)
		}
	})

	t.Run("unknown event", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/events/cat-404", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rr.Code)
		}
	})
}

func TestEventHandler_UpcomingRouteIsNotShadowed(t *testing.T) {
	router := newEventRouter()

	req, _ := http.NewRequest("GET", "/api/events/upcoming", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	// Must hit the upcoming handler, not GetEvent with id="upcoming".
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var response eventListResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatal(err)
	}
}
