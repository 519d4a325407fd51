package interfaces

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/hkawano/stagedive/pkg/domain"
	"github.com/hkawano/stagedive/pkg/integrations"
)

const (
	warnNoCredentials  = "Artist provider credentials are not configured. Showing placeholder data."
	warnProviderFailed = "Artist provider lookup failed. Showing placeholder data."
	warnNoArtists      = "No artists found"
)

// ArtistSearcher is the artist metadata source; nil means never configured.
type ArtistSearcher interface {
	SearchArtists(ctx context.Context, query string) ([]domain.Artist, error)
}

// SearchService resolves an artist name to artists plus their events. Once
// the name is non-empty, every failure path degrades to placeholder data
// with an advisory warning instead of an error.
type SearchService struct {
	artists    ArtistSearcher
	aggregator *EventAggregator
	seq        atomic.Uint64
}

func NewSearchService(artists ArtistSearcher, aggregator *EventAggregator) *SearchService {
	return &SearchService{
		artists:    artists,
		aggregator: aggregator,
	}
}

// Search returns the full search result for an artist name. The Seq field is
// a monotonically increasing token: a client applying results should discard
// any response whose token is below the latest one it has issued, which
// closes the stale-overwrite window between overlapping searches.
func (s *SearchService) Search(ctx context.Context, artistName string) (*domain.SearchResult, error) {
	artistName = strings.TrimSpace(artistName)
	if artistName == "" {
		return nil, domain.ErrInvalidRequest
	}

	seq := s.seq.Add(1)

	var (
		artists []domain.Artist
		warning string
	)

	switch {
	case s.artists == nil:
		// Expected configuration state, not a fault.
		artists = []domain.Artist{integrations.MockArtist(artistName)}
		warning = warnNoCredentials
	default:
		found, err := s.artists.SearchArtists(ctx, artistName)
		switch {
		case err == nil:
			artists = found
			if len(artists) == 0 {
				warning = warnNoArtists
			}
		case errors.Is(err, domain.ErrAuthFailed), errors.Is(err, domain.ErrUpstream):
			log.Error().Err(err).Str("artist", artistName).Msg("artist lookup failed, substituting mock")
			artists = []domain.Artist{integrations.MockArtist(artistName)}
			warning = warnProviderFailed
		default:
			log.Error().Err(err).Str("artist", artistName).Msg("unexpected artist lookup error, substituting mock")
			artists = []domain.Artist{integrations.MockArtist(artistName)}
			warning = warnProviderFailed
		}
	}

	// Events follow the first resolved artist; with no artist at all the
	// query string still drives a catalog-backed lookup.
	subject := domain.Artist{Name: artistName}
	if len(artists) > 0 {
		subject = artists[0]
	}
	events := s.aggregator.SearchEvents(ctx, subject)

	return &domain.SearchResult{
		Success: true,
		Artists: artists,
		Events:  events,
		Warning: warning,
		Seq:     seq,
	}, nil
}
