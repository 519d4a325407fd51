package interfaces

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hkawano/stagedive/pkg/domain"
)

// EventProvider is the live-event source. Implementations report failures as
// an empty list, never an error.
type EventProvider interface {
	FetchEvents(ctx context.Context, artistName string) []domain.Event
}

// CatalogSource is the curated-event source consumed by the aggregator.
type CatalogSource interface {
	SearchByArtist(artistName string) []domain.Event
}

// EventAggregator queries the live-event provider and the curated catalog
// concurrently and applies the preference policy: provider results are
// authoritative when non-empty, the catalog fills in otherwise.
type EventAggregator struct {
	provider EventProvider
	catalog  CatalogSource
	now      func() time.Time
}

func NewEventAggregator(provider EventProvider, catalog CatalogSource) *EventAggregator {
	return &EventAggregator{
		provider: provider,
		catalog:  catalog,
		now:      time.Now,
	}
}

// SearchEvents fans out to both sources and joins on completion; the two
// calls have no ordering dependency. A provider panic is contained here and
// degrades to the catalog result alone.
func (a *EventAggregator) SearchEvents(ctx context.Context, artist domain.Artist) []domain.Event {
	var (
		providerEvents []domain.Event
		catalogEvents  []domain.Event
		wg             sync.WaitGroup
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("artist", artist.Name).
					Msg("event provider panicked, falling back to catalog")
				providerEvents = nil
			}
		}()
		if a.provider != nil {
			providerEvents = a.provider.FetchEvents(ctx, artist.Name)
		}
	}()

	go func() {
		defer wg.Done()
		catalogEvents = a.catalog.SearchByArtist(artist.Name)
	}()

	wg.Wait()

	if len(providerEvents) > 0 {
		log.Debug().Int("count", len(providerEvents)).Str("artist", artist.Name).
			Msg("using provider events")
		return providerEvents
	}
	if len(catalogEvents) > 0 {
		log.Debug().Int("count", len(catalogEvents)).Str("artist", artist.Name).
			Msg("using catalog events")
		return catalogEvents
	}
	return []domain.Event{}
}

// FilterUpcoming keeps events dated today or later. Dates are fixed-width
// zero-padded ISO strings, so lexicographic comparison is date order.
func (a *EventAggregator) FilterUpcoming(events []domain.Event) []domain.Event {
	today := a.now().Format("2006-01-02")
	filtered := make([]domain.Event, 0, len(events))
	for _, event := range events {
		if event.Date >= today {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// FilterByLocation matches the target against location or venue,
// case-insensitively, with the same rules the catalog applies. An empty
// target keeps everything.
func FilterByLocation(events []domain.Event, location string) []domain.Event {
	if location == "" {
		return events
	}

	needle := strings.ToLower(location)
	filtered := make([]domain.Event, 0, len(events))
	for _, event := range events {
		if strings.Contains(strings.ToLower(event.Location), needle) ||
			strings.Contains(strings.ToLower(event.Venue), needle) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// FilterByDateRange keeps events within the inclusive bounds; empty bounds
// are not applied.
func FilterByDateRange(events []domain.Event, startDate, endDate string) []domain.Event {
	filtered := make([]domain.Event, 0, len(events))
	for _, event := range events {
		if startDate != "" && event.Date < startDate {
			continue
		}
		if endDate != "" && event.Date > endDate {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered
}
