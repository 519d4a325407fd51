package collectors

import (
	"path/filepath"
	"testing"
)

func TestNewSQLiteDB(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "favorites.db"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			t.Errorf("expected successful ping, got %v", err)
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		if _, err := NewSQLiteDB("/invalid/path/to/database.db"); err == nil {
			t.Error("expected error for invalid path")
		}
	})
}
