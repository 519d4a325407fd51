package integrations

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"

	"github.com/hkawano/stagedive/pkg/domain"
)

// MockArtist builds a placeholder artist record for a name. Downstream
// consumers never need to distinguish mock from provider-sourced artists:
// the record is syntactically complete, only the popularity is random.
func MockArtist(name string) domain.Artist {
	return domain.Artist{
		ID:   "mock-" + slugify(name),
		Name: name,
		Images: []domain.Image{
			{
				URL:    "https://via.placeholder.com/300x300?text=" + url.QueryEscape(name),
				Height: 300,
				Width:  300,
			},
		},
		Genres:      []string{"J-Pop", "Pop"},
		Popularity:  rand.Intn(100),
		ExternalURL: fmt.Sprintf("https://open.spotify.com/search/%s", url.QueryEscape(name)),
	}
}

// slugify lowercases the name and collapses whitespace runs to single
// hyphens, so "King  Gnu" and "king gnu" produce the same identifier.
func slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
