package domain

// Artist is a performer as returned by the artist lookup provider or the
// mock generator. Immutable once created.
type Artist struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Images      []Image  `json:"images,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Popularity  int      `json:"popularity"`
	ExternalURL string   `json:"external_url,omitempty"`
}

type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// ImageURL returns the first image variant, or "" when the artist has none.
func (a Artist) ImageURL() string {
	if len(a.Images) == 0 {
		return ""
	}
	return a.Images[0].URL
}

// SearchResult is the body of the search endpoint. Once an artist name is
// present the endpoint always answers with this shape; degraded paths set
// Warning instead of failing.
type SearchResult struct {
	Success bool     `json:"success"`
	Artists []Artist `json:"artists"`
	Events  []Event  `json:"events"`
	Warning string   `json:"warning,omitempty"`
	Seq     uint64   `json:"seq"`
}
