package domain

import "fmt"

type EventType string

const (
	EventTypeFestival EventType = "festival"
	EventTypeLive     EventType = "live"
	EventTypeTour     EventType = "tour"
)

// Event is a scheduled performance, either curated (catalog) or synthesized
// from a provider response. IDs are source-prefixed ("cat-", "bt-") so the
// two sources cannot collide. Never mutated after creation.
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Type        EventType   `json:"type"`
	Date        string      `json:"date"` // ISO YYYY-MM-DD, no time component
	Venue       string      `json:"venue"`
	Location    string      `json:"location"`
	Artists     []string    `json:"artists"`
	Description string      `json:"description,omitempty"`
	TicketURL   string      `json:"ticket_url,omitempty"`
	Price       *PriceRange `json:"price,omitempty"`
}

type PriceRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Validate checks the structural invariants: a non-empty artist list, a known
// type, and min <= max when a price range is present.
func (e Event) Validate() error {
	if len(e.Artists) == 0 {
		return ValidationError{Field: "artists", Message: "must not be empty"}
	}
	switch e.Type {
	case EventTypeFestival, EventTypeLive, EventTypeTour:
	default:
		return ValidationError{Field: "type", Message: fmt.Sprintf("unknown event type %q", e.Type)}
	}
	if e.Price != nil && e.Price.Min > e.Price.Max {
		return ValidationError{Field: "price", Message: "min must not exceed max"}
	}
	return nil
}

// EventSearchParams is the composite catalog query. A zero-valued field is
// not applied as a filter.
type EventSearchParams struct {
	Artist    string    `json:"artist,omitempty"`
	Type      EventType `json:"type,omitempty"`
	Location  string    `json:"location,omitempty"`
	StartDate string    `json:"start_date,omitempty"`
	EndDate   string    `json:"end_date,omitempty"`
}
