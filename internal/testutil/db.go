// Package testutil holds fixtures shared by tests across packages
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/shortlist/internal/database"
	"github.com/thenoetrevino/shortlist/internal/models"
)

// SetupTestDB creates an in-memory database with the full schema and the demo
// jobs. It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Seed(ctx, db); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}
	return db
}

// ColumnIDs returns the candidate IDs stored in one column, in position order
func ColumnIDs(t *testing.T, db *sql.DB, jobID int, status models.Status) []int {
	t.Helper()

	rows, err := db.QueryContext(context.Background(),
		"SELECT id FROM candidates WHERE job_id = ? AND status = ? ORDER BY position",
		jobID, string(status))
	if err != nil {
		t.Fatalf("Failed to query column %s: %v", status, err)
	}
	defer func() { _ = rows.Close() }()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			t.Fatalf("Failed to scan candidate id: %v", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Failed to read column %s: %v", status, err)
	}
	return ids
}
