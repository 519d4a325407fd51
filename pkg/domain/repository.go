package domain

import (
	"context"
)

type FavoriteRepository interface {
	List(ctx context.Context) ([]FavoriteArtist, error)
	Get(ctx context.Context, id string) (*FavoriteArtist, error)
	Add(ctx context.Context, favorite FavoriteArtist) error
	Remove(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}

type SearchService interface {
	Search(ctx context.Context, artistName string) (*SearchResult, error)
}

type FavoritesService interface {
	List(ctx context.Context) ([]FavoriteArtist, error)
	Add(ctx context.Context, artist Artist) (*FavoriteArtist, error)
	Remove(ctx context.Context, id string) error
	IsFavorite(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}
