package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/hkawano/stagedive/pkg/domain"
)

type mockSearchService struct {
	searchFunc func(ctx context.Context, artistName string) (*domain.SearchResult, error)
}

func (m *mockSearchService) Search(ctx context.Context, artistName string) (*domain.SearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, artistName)
	}
	return nil, nil
}

func TestSearchHandler_Search(t *testing.T) {
	t.Run("successful search", func(t *testing.T) {
		mockService := &mockSearchService{
			searchFunc: func(ctx context.Context, artistName string) (*domain.SearchResult, error) {
				return &domain.SearchResult{
					Success: true,
					Artists: []domain.Artist{{ID: "a1", Name: artistName}},
					Events:  []domain.Event{},
					Seq:     1,
				}, nil
			},
		}

		handler := NewSearchHandler(mockService)
		router := mux.NewRouter()
		handler.RegisterRoutes(router)

		req, _ := http.NewRequest("GET", "/api/search?artist=Ado", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rr.Code)
		}

		var response domain.SearchResult
		if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
			t.Fatalf("could not unmarshal response: %v", err)
		}
		if !response.Success {
			t.Error("expected success=true")
		}
		if len(response.Artists) != 1 || response.Artists[0].Name != "Ado" {
			t.Errorf("unexpected artists %v", response.Artists)
		}
	})

	t.Run("missing artist parameter", func(t *testing.T) {
		handler := NewSearchHandler(&mockSearchService{})
		router := mux.NewRouter()
		handler.RegisterRoutes(router)

		for _, target := range []string{"/api/search", "/api/search?artist=", "/api/search?artist=%20"} {
			req, _ := http.NewRequest("GET", target, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("%s: expected status 400, got %d", target, rr.Code)
			}
		}
	})

	t.Run("service failure still answers success-shaped", func(t *testing.T) {
		mockService := &mockSearchService{
			searchFunc: func(ctx context.Context, artistName string) (*domain.SearchResult, error) {
				return nil, errors.New("boom")
			},
		}

		handler := NewSearchHandler(mockService)
		router := mux.NewRouter()
		handler.RegisterRoutes(router)

		req, _ := http.NewRequest("GET", "/api/search?artist=Ado", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rr.Code)
		}

		var response domain.SearchResult
		if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
			t.Fatalf("could not unmarshal response: %v", err)
		}
		if !response.Success {
			t.Error("expected success=true on the fallback body")
		}
		if response.Warning == "" {
			t.Error("expected a warning on the fallback body")
		}
		if len(response.Artists) != 1 || response.Artists[0].ID != "mock-ado" {
			t.Errorf("expected mock artist fallback, got %v", response.Artists)
		}
	})
}
