package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/shortlist/internal/models"
)

// runMigrations creates the database schema
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS jobs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS candidates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id INTEGER NOT NULL,
			email TEXT NOT NULL,
			status TEXT NOT NULL CHECK (status IN ('new', 'interview', 'hired', 'rejected')),
			position INTEGER NOT NULL DEFAULT 0 CHECK (position >= 0),
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (job_id) REFERENCES jobs(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_candidates_column
		ON candidates(job_id, status, position)
	`)
	return err
}

// seedJob is one job of the demo data
type seedJob struct {
	name       string
	candidates []models.Candidate
}

// demoJobs is the board used in the product's own tests, plus a second job
var demoJobs = []seedJob{
	{
		name: "Software Engineer",
		candidates: []models.Candidate{
			{Email: "candidate1@example.com", Status: models.StatusNew, Position: 0},
			{Email: "candidate2@example.com", Status: models.StatusInterview, Position: 0},
			{Email: "candidate3@example.com", Status: models.StatusHired, Position: 0},
			{Email: "candidate4@example.com", Status: models.StatusRejected, Position: 0},
			{Email: "candidate5@example.com", Status: models.StatusRejected, Position: 1},
			{Email: "candidate6@example.com", Status: models.StatusRejected, Position: 2},
		},
	},
	{
		name: "Product Designer",
		candidates: []models.Candidate{
			{Email: "designer1@example.com", Status: models.StatusNew, Position: 0},
			{Email: "designer2@example.com", Status: models.StatusNew, Position: 1},
			{Email: "designer3@example.com", Status: models.StatusInterview, Position: 0},
		},
	},
}

// Seed inserts the demo jobs if the jobs table is empty
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM jobs").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		slog.Debug("skipping seed, jobs already exist", "count", count)
		return nil
	}

	return withTx(ctx, db, func(tx *sql.Tx) error {
		for _, job := range demoJobs {
			result, err := tx.ExecContext(ctx, "INSERT INTO jobs (name) VALUES (?)", job.name)
			if err != nil {
				return fmt.Errorf("failed to seed job %q: %w", job.name, err)
			}
			jobID, err := result.LastInsertId()
			if err != nil {
				return err
			}

			for _, c := range job.candidates {
				_, err := tx.ExecContext(ctx,
					"INSERT INTO candidates (job_id, email, status, position) VALUES (?, ?, ?, ?)",
					jobID, c.Email, string(c.Status), c.Position)
				if err != nil {
					return fmt.Errorf("failed to seed candidate %s: %w", c.Email, err)
				}
			}
		}
		return nil
	})
}
