package integrations

import (
	"strings"
	"testing"
)

func TestMockArtist(t *testing.T) {
	t.Run("slug identifier", func(t *testing.T) {
		artist := MockArtist("Ado")
		if artist.ID != "mock-ado" {
			t.Errorf("expected id mock-ado, got %s", artist.ID)
		}
		if artist.Name != "Ado" {
			t.Errorf("expected name preserved, got %s", artist.Name)
		}
	})

	t.Run("whitespace collapses deterministically", func(t *testing.T) {
		a := MockArtist("King  Gnu")
		b := MockArtist(" king gnu ")
		if a.ID != "mock-king-gnu" || b.ID != "mock-king-gnu" {
			t.Errorf("expected both ids mock-king-gnu, got %s and %s", a.ID, b.ID)
		}
	})

	t.Run("record is complete", func(t *testing.T) {
		artist := MockArtist("YOASOBI")
		if len(artist.Images) != 1 {
			t.Fatalf("expected one placeholder image, got %d", len(artist.Images))
		}
		img := artist.Images[0]
		if img.Height != 300 || img.Width != 300 {
			t.Errorf("expected 300x300 placeholder, got %dx%d", img.Width, img.Height)
		}
		if len(artist.Genres) != 2 {
			t.Errorf("expected fixed two-tag genre set, got %v", artist.Genres)
		}
		if artist.Popularity < 0 || artist.Popularity > 100 {
			t.Errorf("popularity out of range: %d", artist.Popularity)
		}
		if !strings.Contains(artist.ExternalURL, "open.spotify.com/search/") {
			t.Errorf("unexpected external URL %s", artist.ExternalURL)
		}
	})
}
