package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/shortlist/internal/models"
)

// JobRepo handles job queries
type JobRepo struct {
	db *sql.DB
}

// List returns every job ordered by id
func (r *JobRepo) List(ctx context.Context) ([]models.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM jobs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying jobs: %w", err)
	}
	defer closeRows(rows)

	jobs := make([]models.Job, 0)
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(&j.ID, &j.Name); err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// GetByID returns one job; a missing job yields sql.ErrNoRows
func (r *JobRepo) GetByID(ctx context.Context, id int) (*models.Job, error) {
	var j models.Job
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM jobs WHERE id = ?`, id).Scan(&j.ID, &j.Name)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Create inserts a job and returns it
func (r *JobRepo) Create(ctx context.Context, name string) (*models.Job, error) {
	result, err := r.db.ExecContext(ctx, `INSERT INTO jobs (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("inserting job: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Job{ID: int(id), Name: name}, nil
}
