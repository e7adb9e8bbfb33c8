package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/shortlist/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB opens an in-memory database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
	})
	return db
}

// setupSeededDB opens an in-memory database with the demo jobs
func setupSeededDB(t *testing.T) (*sql.DB, *Repository) {
	t.Helper()
	db := setupTestDB(t)
	if err := Seed(context.Background(), db); err != nil {
		t.Fatalf("Failed to seed database: %v", err)
	}
	return db, NewRepository(db)
}

// setupTestDBFile opens a file-based database for persistence tests
func setupTestDBFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "shortlist-test.db")
}

// columnOrder returns the ids and positions of one column as stored
func columnOrder(t *testing.T, repo *Repository, jobID int, status models.Status) ([]int, []int) {
	t.Helper()
	candidates, err := repo.ListCandidates(context.Background(), jobID)
	if err != nil {
		t.Fatalf("Failed to list candidates: %v", err)
	}

	var ids, positions []int
	for _, c := range candidates {
		if c.Status == status {
			ids = append(ids, c.ID)
			positions = append(positions, c.Position)
		}
	}
	return ids, positions
}

func denseRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
