package collectors

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/hkawano/stagedive/pkg/domain"
)

// FavoriteRepository persists the user's favorite artists in SQLite, kept
// most-recently-added first. A repository built over a nil database is a
// valid degraded mode: every operation becomes a safe no-op returning
// empty/false rather than failing.
type FavoriteRepository struct {
	db *sql.DB
}

func NewFavoriteRepository(db *sql.DB) (*FavoriteRepository, error) {
	repo := &FavoriteRepository{db: db}
	if db == nil {
		return repo, nil
	}

	if err := repo.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return repo, nil
}

func (r *FavoriteRepository) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS favorites (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		image_url TEXT,
		added_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_favorites_added_at ON favorites(added_at);
	`

	_, err := r.db.Exec(query)
	return err
}

// List returns all favorites, newest first. Rows that fail to scan are
// skipped and logged, never surfaced.
func (r *FavoriteRepository) List(ctx context.Context) ([]domain.FavoriteArtist, error) {
	if r.db == nil {
		return []domain.FavoriteArtist{}, nil
	}

	query := `
	SELECT id, name, image_url, added_at
	FROM favorites
	ORDER BY added_at DESC, rowid DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list favorites: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()

	favorites := make([]domain.FavoriteArtist, 0)
	for rows.Next() {
		var favorite domain.FavoriteArtist
		var imageURL sql.NullString

		if err := rows.Scan(&favorite.ID, &favorite.Name, &imageURL, &favorite.AddedAt); err != nil {
			log.Warn().Err(err).Msg("skipping unreadable favorite row")
			continue
		}

		favorite.ImageURL = imageURL.String
		favorites = append(favorites, favorite)
	}

	return favorites, nil
}

func (r *FavoriteRepository) Get(ctx context.Context, id string) (*domain.FavoriteArtist, error) {
	if r.db == nil {
		return nil, domain.ErrFavoriteNotFound
	}

	query := `
	SELECT id, name, image_url, added_at
	FROM favorites
	WHERE id = ?
	`

	var favorite domain.FavoriteArtist
	var imageURL sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&favorite.ID,
		&favorite.Name,
		&imageURL,
		&favorite.AddedAt,
	)

	if err == sql.ErrNoRows {
		return nil, domain.ErrFavoriteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get favorite: %v", domain.ErrPersistence, err)
	}

	favorite.ImageURL = imageURL.String
	return &favorite, nil
}

// Add inserts a favorite. An existing row with the same ID is left intact,
// original AddedAt included.
func (r *FavoriteRepository) Add(ctx context.Context, favorite domain.FavoriteArtist) error {
	if r.db == nil {
		return nil
	}

	if favorite.AddedAt.IsZero() {
		favorite.AddedAt = time.Now()
	}

	query := `
	INSERT OR IGNORE INTO favorites (id, name, image_url, added_at)
	VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		favorite.ID,
		favorite.Name,
		favorite.ImageURL,
		favorite.AddedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to add favorite: %v", domain.ErrPersistence, err)
	}

	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, id string) error {
	if r.db == nil {
		return nil
	}

	_, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: failed to remove favorite: %v", domain.ErrPersistence, err)
	}

	return nil
}

func (r *FavoriteRepository) Count(ctx context.Context) (int, error) {
	if r.db == nil {
		return 0, nil
	}

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM favorites`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count favorites: %v", domain.ErrPersistence, err)
	}

	return count, nil
}

func (r *FavoriteRepository) Clear(ctx context.Context) error {
	if r.db == nil {
		return nil
	}

	_, err := r.db.ExecContext(ctx, `DELETE FROM favorites`)
	if err != nil {
		return fmt.Errorf("%w: failed to clear favorites: %v", domain.ErrPersistence, err)
	}

	return nil
}
