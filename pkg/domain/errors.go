package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCredentials means the artist provider was never configured. This
	// is an expected state, not a fault: it activates the mock artist path.
	ErrNoCredentials = errors.New("provider credentials not configured")

	ErrAuthFailed       = errors.New("provider rejected credentials")
	ErrUpstream         = errors.New("external provider failure")
	ErrArtistNotFound   = errors.New("artist not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrPersistence      = errors.New("persistence failure")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}
