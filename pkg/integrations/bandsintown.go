package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/hkawano/stagedive/pkg/domain"
)

// BandsintownClient fetches upcoming events for an artist. It never fails
// visibly: any transport error or non-success status other than 404 is
// logged and reported as an empty list, so callers treat "empty" uniformly.
type BandsintownClient struct {
	baseURL    string
	appID      string
	httpClient *http.Client
}

type BandsintownConfig struct {
	AppID string
}

func NewBandsintownClient(config BandsintownConfig) (*BandsintownClient, error) {
	if config.AppID == "" {
		return nil, fmt.Errorf("bandsintown app ID is required")
	}

	return &BandsintownClient{
		baseURL: "https://rest.bandsintown.com",
		appID:   config.AppID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

type bandsintownEvent struct {
	ID          string             `json:"id"`
	DateTime    string             `json:"datetime"`
	Description string             `json:"description"`
	Venue       bandsintownVenue   `json:"venue"`
	Offers      []bandsintownOffer `json:"offers"`
}

type bandsintownVenue struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type bandsintownOffer struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// FetchEvents returns the artist's upcoming events, or an empty slice on any
// failure. The caller cannot distinguish "truly no events" from "could not
// ask"; the underlying fault is only logged.
func (c *BandsintownClient) FetchEvents(ctx context.Context, artistName string) []domain.Event {
	artistName = strings.TrimSpace(artistName)
	if artistName == "" {
		return []domain.Event{}
	}

	eventsURL := fmt.Sprintf("%s/artists/%s/events?app_id=%s&date=upcoming",
		c.baseURL,
		url.QueryEscape(artistName),
		url.QueryEscape(c.appID),
	)

	providerEvents, err := retry.DoWithData(
		func() ([]bandsintownEvent, error) {
			return c.fetchOnce(ctx, eventsURL)
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(200*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			// Only transport-level failures are worth a retry; a non-2xx
			// answer will not change on the next attempt.
			return errorsIsTransport(err)
		}),
	)
	if err != nil {
		log.Warn().Err(err).Str("artist", artistName).Msg("bandsintown fetch failed, returning empty")
		return []domain.Event{}
	}

	events := make([]domain.Event, 0, len(providerEvents))
	for _, btEvent := range providerEvents {
		event, err := convertBandsintownEvent(btEvent, artistName)
		if err != nil {
			log.Debug().Err(err).Str("event_id", btEvent.ID).Msg("skipping malformed bandsintown event")
			continue
		}
		events = append(events, event)
	}

	return events
}

type transportError struct{ err error }

func (e transportError) Error() string { return e.err.Error() }
func (e transportError) Unwrap() error { return e.err }

func errorsIsTransport(err error) bool {
	var te transportError
	return errors.As(err, &te)
}

func (c *BandsintownClient) fetchOnce(ctx context.Context, eventsURL string) ([]bandsintownEvent, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", eventsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError{fmt.Errorf("failed to fetch events: %w", err)}
	}
	defer resp.Body.Close()

	// 404 is a legitimate empty result, not a fault.
	if resp.StatusCode == http.StatusNotFound {
		return []bandsintownEvent{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: bandsintown status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var providerEvents []bandsintownEvent
	if err := json.NewDecoder(resp.Body).Decode(&providerEvents); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return providerEvents, nil
}

// convertBandsintownEvent validates the untrusted provider shape and maps it
// into the local event record. The provider has no festival/tour
// distinction, so every record from this source is tagged "live".
func convertBandsintownEvent(btEvent bandsintownEvent, artistName string) (domain.Event, error) {
	// The provider emits local datetimes without a zone designator; some
	// records carry a full RFC 3339 timestamp instead.
	eventTime, err := time.Parse("2006-01-02T15:04:05", btEvent.DateTime)
	if err != nil {
		eventTime, err = time.Parse(time.RFC3339, btEvent.DateTime)
	}
	if err != nil {
		return domain.Event{}, fmt.Errorf("failed to parse event time: %w", err)
	}
	if btEvent.Venue.Name == "" {
		return domain.Event{}, fmt.Errorf("event %s has no venue name", btEvent.ID)
	}

	segments := make([]string, 0, 3)
	for _, s := range []string{btEvent.Venue.City, btEvent.Venue.Region, btEvent.Venue.Country} {
		if s != "" {
			segments = append(segments, s)
		}
	}

	description := btEvent.Description
	if description == "" {
		description = fmt.Sprintf("%sのライブ", artistName)
	}

	event := domain.Event{
		ID:          "bt-" + btEvent.ID,
		Title:       fmt.Sprintf("%s Live", artistName),
		Type:        domain.EventTypeLive,
		Date:        eventTime.Format("2006-01-02"),
		Venue:       btEvent.Venue.Name,
		Location:    strings.Join(segments, ", "),
		Artists:     []string{artistName},
		Description: description,
	}

	if len(btEvent.Offers) > 0 {
		event.TicketURL = btEvent.Offers[0].URL
	}

	return event, nil
}
