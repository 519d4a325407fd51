package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hkawano/stagedive/pkg/domain"
)

// tokenSafetyMargin is subtracted from the provider-declared expiry so a
// token is never used right at the edge of its lifetime.
const tokenSafetyMargin = 60 * time.Second

// SpotifyClient looks up artist metadata via the Spotify Web API using the
// client-credentials flow. One access token is shared across searches and
// refreshed lazily; concurrent callers hitting an expired token await a
// single exchange instead of issuing duplicates.
type SpotifyClient struct {
	baseURL      string
	tokenURL     string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	now          func() time.Time

	refresh     singleflight.Group
	accessToken string
	tokenExpiry time.Time
}

type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
}

func NewSpotifyClient(config SpotifyConfig) (*SpotifyClient, error) {
	if config.ClientID == "" || config.ClientSecret == "" {
		return nil, domain.ErrNoCredentials
	}

	return &SpotifyClient{
		baseURL:      "https://api.spotify.com/v1",
		tokenURL:     "https://accounts.spotify.com/api/token",
		clientID:     config.ClientID,
		clientSecret: config.ClientSecret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}, nil
}

type spotifyTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// token returns a valid access token, exchanging credentials when the cached
// one is absent or inside the safety margin. The exchange is single-flighted.
func (c *SpotifyClient) token(ctx context.Context) (string, error) {
	v, err, _ := c.refresh.Do("token", func() (interface{}, error) {
		if c.accessToken != "" && c.now().Before(c.tokenExpiry) {
			return c.accessToken, nil
		}

		data := url.Values{}
		data.Set("grant_type", "client_credentials")

		req, err := http.NewRequestWithContext(ctx, "POST", c.tokenURL, strings.NewReader(data.Encode()))
		if err != nil {
			return nil, fmt.Errorf("failed to create token request: %w", err)
		}

		req.SetBasicAuth(c.clientID, c.clientSecret)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: token exchange: %v", domain.ErrUpstream, err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode == http.StatusBadRequest,
			resp.StatusCode == http.StatusUnauthorized,
			resp.StatusCode == http.StatusForbidden:
			return nil, fmt.Errorf("%w: token exchange status %d", domain.ErrAuthFailed, resp.StatusCode)
		default:
			return nil, fmt.Errorf("%w: token exchange status %d", domain.ErrUpstream, resp.StatusCode)
		}

		var tokenResp spotifyTokenResponse
		if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
			return nil, fmt.Errorf("%w: decode token response: %v", domain.ErrUpstream, err)
		}

		c.accessToken = tokenResp.AccessToken
		c.tokenExpiry = c.now().
			Add(time.Duration(tokenResp.ExpiresIn) * time.Second).
			Add(-tokenSafetyMargin)

		return c.accessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

type spotifyArtist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Genres     []string `json:"genres"`
	Popularity int      `json:"popularity"`
	Images     []struct {
		URL    string `json:"url"`
		Height int    `json:"height"`
		Width  int    `json:"width"`
	} `json:"images"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

type spotifySearchResponse struct {
	Artists struct {
		Items []spotifyArtist `json:"items"`
		Total int             `json:"total"`
	} `json:"artists"`
}

// SearchArtists performs a name-based artist search. "Not found" is an empty
// slice, not an error; a rejected token is domain.ErrAuthFailed and anything
// else non-2xx is domain.ErrUpstream.
func (c *SpotifyClient) SearchArtists(ctx context.Context, query string) ([]domain.Artist, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	searchURL := fmt.Sprintf("%s/search?q=%s&type=artist&limit=10",
		c.baseURL,
		url.QueryEscape(query),
	)

	req, err := http.NewRequestWithContext(ctx, "GET", searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: artist search: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return []domain.Artist{}, nil
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: artist search status %d", domain.ErrAuthFailed, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: artist search status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var searchResp spotifySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %v", domain.ErrUpstream, err)
	}

	artists := make([]domain.Artist, 0, len(searchResp.Artists.Items))
	for _, item := range searchResp.Artists.Items {
		artists = append(artists, convertSpotifyArtist(item))
	}

	return artists, nil
}

func convertSpotifyArtist(item spotifyArtist) domain.Artist {
	artist := domain.Artist{
		ID:          item.ID,
		Name:        item.Name,
		Genres:      item.Genres,
		Popularity:  item.Popularity,
		ExternalURL: item.ExternalURLs.Spotify,
	}
	for _, img := range item.Images {
		artist.Images = append(artist.Images, domain.Image{
			URL:    img.URL,
			Height: img.Height,
			Width:  img.Width,
		})
	}
	return artist
}
