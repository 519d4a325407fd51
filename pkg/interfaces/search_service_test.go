package interfaces

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hkawano/stagedive/pkg/catalog"
	"github.com/hkawano/stagedive/pkg/domain"
)

type mockArtistSearcher struct {
	artists []domain.Artist
	err     error
}

func (m *mockArtistSearcher) SearchArtists(ctx context.Context, query string) ([]domain.Artist, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.artists, nil
}

func newTestAggregator(provider EventProvider) *EventAggregator {
	return NewEventAggregator(provider, catalog.New())
}

func TestSearchService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("empty name is rejected", func(t *testing.T) {
		service := NewSearchService(nil, newTestAggregator(nil))
		_, err := service.Search(ctx, "   ")
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("no credentials yields mock artist with catalog events", func(t *testing.T) {
		service := NewSearchService(nil, newTestAggregator(&stubProvider{}))

		result, err := service.Search(ctx, "Ado")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !result.Success {
			t.Error("expected success=true")
		}
		if len(result.Artists) != 1 {
			t.Fatalf("expected exactly one mock artist, got %d", len(result.Artists))
		}
		if result.Artists[0].ID != "mock-ado" {
			t.Errorf("expected id mock-ado, got %s", result.Artists[0].ID)
		}
		if result.Warning == "" {
			t.Error("expected a non-empty warning")
		}

		titles := make(map[string]bool)
		for _, event := range result.Events {
			titles[event.Title] = true
		}
		for _, want := range []string{"ROCK IN JAPAN FESTIVAL 2025", "Ado TOUR 2025 \"新章\""} {
			if !titles[want] {
				t.Errorf("expected catalog event %q in results", want)
			}
		}
	})

	t.Run("provider failure substitutes mock transparently", func(t *testing.T) {
		searcher := &mockArtistSearcher{err: fmt.Errorf("%w: status 500", domain.ErrUpstream)}
		service := NewSearchService(searcher, newTestAggregator(&stubProvider{}))

		result, err := service.Search(ctx, "YOASOBI")
		if err != nil {
			t.Fatalf("failure must not propagate, got %v", err)
		}
		if len(result.Artists) != 1 || result.Artists[0].ID != "mock-yoasobi" {
			t.Fatalf("expected mock substitute, got %v", result.Artists)
		}
		if result.Warning == "" {
			t.Error("expected a warning on the degraded path")
		}
	})

	t.Run("auth failure substitutes mock transparently", func(t *testing.T) {
		searcher := &mockArtistSearcher{err: fmt.Errorf("%w: status 401", domain.ErrAuthFailed)}
		service := NewSearchService(searcher, newTestAggregator(&stubProvider{}))

		result, err := service.Search(ctx, "Ado")
		if err != nil {
			t.Fatalf("failure must not propagate, got %v", err)
		}
		if len(result.Artists) != 1 {
			t.Fatalf("expected one mock artist, got %d", len(result.Artists))
		}
	})

	t.Run("real results pass through without warning", func(t *testing.T) {
		searcher := &mockArtistSearcher{artists: []domain.Artist{
			{ID: "spotify-1", Name: "Ado", Popularity: 90},
		}}
		service := NewSearchService(searcher, newTestAggregator(&stubProvider{}))

		result, err := service.Search(ctx, "Ado")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.Warning != "" {
			t.Errorf("expected no warning, got %q", result.Warning)
		}
		if result.Artists[0].ID != "spotify-1" {
			t.Errorf("expected the provider artist, got %s", result.Artists[0].ID)
		}
	})

	t.Run("legitimate not-found keeps empty artist list", func(t *testing.T) {
		searcher := &mockArtistSearcher{artists: []domain.Artist{}}
		service := NewSearchService(searcher, newTestAggregator(&stubProvider{}))

		result, err := service.Search(ctx, "Completely Unknown Band")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(result.Artists) != 0 {
			t.Errorf("expected empty artist list, got %d", len(result.Artists))
		}
		if result.Warning != warnNoArtists {
			t.Errorf("expected %q warning, got %q", warnNoArtists, result.Warning)
		}
	})

	t.Run("provider events suppress catalog ones", func(t *testing.T) {
		provider := &stubProvider{events: []domain.Event{liveEvent("bt-42", "2025-11-01")}}
		service := NewSearchService(nil, newTestAggregator(provider))

		result, err := service.Search(ctx, "Ado")
		if err != nil {
			t.Fatal(err)
		}
		if len(result.Events) != 1 || result.Events[0].ID != "bt-42" {
			t.Fatalf("expected only the provider event, got %v", result.Events)
		}
	})

	t.Run("seq is monotonically increasing", func(t *testing.T) {
		service := NewSearchService(nil, newTestAggregator(&stubProvider{}))

		var last uint64
		for i := 0; i < 3; i++ {
			result, err := service.Search(ctx, "Ado")
			if err != nil {
				t.Fatal(err)
			}
			if result.Seq <= last {
				t.Fatalf("expected seq to increase, got %d after %d", result.Seq, last)
			}
			last = result.Seq
		}
	})
}
