package interfaces

import (
	"context"
	"errors"
	"time"

	"github.com/hkawano/stagedive/pkg/domain"
)

// FavoritesManager wraps the favorites repository with the add/remove rules:
// adds are idempotent on artist ID and the list is most-recently-added
// first.
type FavoritesManager struct {
	repository domain.FavoriteRepository
	now        func() time.Time
}

func NewFavoritesManager(repository domain.FavoriteRepository) *FavoritesManager {
	return &FavoritesManager{
		repository: repository,
		now:        time.Now,
	}
}

func (m *FavoritesManager) List(ctx context.Context) ([]domain.FavoriteArtist, error) {
	return m.repository.List(ctx)
}

// Add stores a projection of the artist. Adding an already-present ID is a
// no-op that keeps the original entry, timestamp included.
func (m *FavoritesManager) Add(ctx context.Context, artist domain.Artist) (*domain.FavoriteArtist, error) {
	if artist.ID == "" || artist.Name == "" {
		return nil, domain.ErrInvalidRequest
	}

	favorite := domain.FavoriteArtist{
		ID:       artist.ID,
		Name:     artist.Name,
		ImageURL: artist.ImageURL(),
		AddedAt:  m.now(),
	}

	if err := m.repository.Add(ctx, favorite); err != nil {
		return nil, err
	}

	// The stored row wins over the one we just built when the ID already
	// existed.
	stored, err := m.repository.Get(ctx, artist.ID)
	if err != nil {
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			// No persistence medium configured; hand back the projection.
			return &favorite, nil
		}
		return nil, err
	}
	return stored, nil
}

func (m *FavoritesManager) Remove(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidRequest
	}
	return m.repository.Remove(ctx, id)
}

func (m *FavoritesManager) IsFavorite(ctx context.Context, id string) (bool, error) {
	_, err := m.repository.Get(ctx, id)
	if errors.Is(err, domain.ErrFavoriteNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (m *FavoritesManager) Count(ctx context.Context) (int, error) {
	return m.repository.Count(ctx)
}

func (m *FavoritesManager) Clear(ctx context.Context) error {
	return m.repository.Clear(ctx)
}
