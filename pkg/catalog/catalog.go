package catalog

import (
	"strings"
	"time"

	"github.com/hkawano/stagedive/pkg/domain"
)

// Catalog is a fixed, ordered collection of curated events. It is not
// user-mutable; every query returns copies so callers cannot reach the
// backing list.
type Catalog struct {
	events []domain.Event
	now    func() time.Time
}

// New returns a catalog backed by the built-in curated event list.
func New() *Catalog {
	return &Catalog{
		events: curatedEvents,
		now:    time.Now,
	}
}

// SearchByArtist matches case-insensitively against each event's artist
// list, substring semantics.
func (c *Catalog) SearchByArtist(artistName string) []domain.Event {
	needle := strings.ToLower(strings.TrimSpace(artistName))
	if needle == "" {
		return []domain.Event{}
	}

	results := make([]domain.Event, 0)
	for _, event := range c.events {
		for _, artist := range event.Artists {
			if strings.Contains(strings.ToLower(artist), needle) {
				results = append(results, copyEvent(event))
				break
			}
		}
	}
	return results
}

// SearchByType returns events whose type tag matches exactly.
func (c *Catalog) SearchByType(eventType domain.EventType) []domain.Event {
	results := make([]domain.Event, 0)
	for _, event := range c.events {
		if event.Type == eventType {
			results = append(results, copyEvent(event))
		}
	}
	return results
}

// SearchByDateRange returns events whose date falls within the inclusive
// bounds. An empty bound is not applied. Dates are fixed-width ISO
// YYYY-MM-DD, so plain string comparison orders them correctly.
func (c *Catalog) SearchByDateRange(startDate, endDate string) []domain.Event {
	results := make([]domain.Event, 0)
	for _, event := range c.events {
		if startDate != "" && event.Date < startDate {
			continue
		}
		if endDate != "" && event.Date > endDate {
			continue
		}
		results = append(results, copyEvent(event))
	}
	return results
}

// SearchByLocation matches case-insensitively against location or venue.
func (c *Catalog) SearchByLocation(location string) []domain.Event {
	needle := strings.ToLower(strings.TrimSpace(location))
	if needle == "" {
		return []domain.Event{}
	}

	results := make([]domain.Event, 0)
	for _, event := range c.events {
		if strings.Contains(strings.ToLower(event.Location), needle) ||
			strings.Contains(strings.ToLower(event.Venue), needle) {
			results = append(results, copyEvent(event))
		}
	}
	return results
}

// Upcoming returns events dated today or later, evaluated at call time.
func (c *Catalog) Upcoming() []domain.Event {
	today := c.now().Format("2006-01-02")
	return c.SearchByDateRange(today, "")
}

// GetByID returns the event with the given ID or domain.ErrEventNotFound.
func (c *Catalog) GetByID(id string) (*domain.Event, error) {
	for _, event := range c.events {
		if event.ID == id {
			e := copyEvent(event)
			return &e, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

// All returns a copy of the whole catalog in its curated order.
func (c *Catalog) All() []domain.Event {
	results := make([]domain.Event, 0, len(c.events))
	for _, event := range c.events {
		results = append(results, copyEvent(event))
	}
	return results
}

// Search applies every set field of params as a filter; unset fields are
// ignored. Filters compose with AND semantics.
func (c *Catalog) Search(params domain.EventSearchParams) []domain.Event {
	results := c.All()

	if params.Artist != "" {
		results = c.SearchByArtist(params.Artist)
	}

	filtered := make([]domain.Event, 0, len(results))
	for _, event := range results {
		if params.Type != "" && event.Type != params.Type {
			continue
		}
		if params.Location != "" {
			needle := strings.ToLower(strings.TrimSpace(params.Location))
			if !strings.Contains(strings.ToLower(event.Location), needle) &&
				!strings.Contains(strings.ToLower(event.Venue), needle) {
				continue
			}
		}
		if params.StartDate != "" && event.Date < params.StartDate {
			continue
		}
		if params.EndDate != "" && event.Date > params.EndDate {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered
}

func copyEvent(event domain.Event) domain.Event {
	copied := event
	copied.Artists = append([]string(nil), event.Artists...)
	if event.Price != nil {
		price := *event.Price
		copied.Price = &price
	}
	return copied
}
