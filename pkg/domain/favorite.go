package domain

import "time"

// FavoriteArtist is the persisted projection of an Artist the user starred.
// Uniqueness is enforced on ID; the list is kept most-recently-added first.
type FavoriteArtist struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url,omitempty"`
	AddedAt  time.Time `json:"added_at"`
}
