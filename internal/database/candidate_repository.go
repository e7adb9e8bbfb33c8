package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/shortlist/internal/models"
)

// CandidateRepo handles candidate queries and moves
type CandidateRepo struct {
	db *sql.DB
}

// querier is satisfied by *sql.DB and *sql.Tx
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ListByJob returns a job's candidates in board order: by status column, then
// by position
func (r *CandidateRepo) ListByJob(ctx context.Context, jobID int) ([]models.Candidate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, status, position
		FROM candidates
		WHERE job_id = ?
		ORDER BY CASE status
			WHEN 'new' THEN 0
			WHEN 'interview' THEN 1
			WHEN 'hired' THEN 2
			ELSE 3
		END, position, id`, jobID)
	if err != nil {
		return nil, fmt.Errorf("querying candidates for job %d: %w", jobID, err)
	}
	defer closeRows(rows)

	candidates := make([]models.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// GetByID returns one candidate of a job; a missing row yields sql.ErrNoRows
func (r *CandidateRepo) GetByID(ctx context.Context, jobID, id int) (*models.Candidate, error) {
	return getCandidate(ctx, r.db, jobID, id)
}

// Insert appends a candidate at the given position without renumbering
func (r *CandidateRepo) Insert(ctx context.Context, jobID int, email string, status models.Status, position int) (*models.Candidate, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO candidates (job_id, email, status, position) VALUES (?, ?, ?, ?)`,
		jobID, email, string(status), position)
	if err != nil {
		return nil, fmt.Errorf("inserting candidate: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Candidate{ID: int(id), Email: email, Status: status, Position: position}, nil
}

// Move places a candidate at position in the status column and renumbers
// every affected column to 0..n-1 in a single transaction. A position past
// the end of the column appends. The stored row is returned.
func (r *CandidateRepo) Move(ctx context.Context, jobID, id int, status models.Status, position int) (*models.Candidate, error) {
	var stored *models.Candidate

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		current, err := getCandidate(ctx, tx, jobID, id)
		if err != nil {
			return err
		}

		source, err := columnIDs(ctx, tx, jobID, current.Status)
		if err != nil {
			return err
		}
		source = removeID(source, id)

		if current.Status == status {
			source = insertID(source, clamp(position, len(source)), id)
			if err := renumber(ctx, tx, status, source); err != nil {
				return err
			}
		} else {
			target, err := columnIDs(ctx, tx, jobID, status)
			if err != nil {
				return err
			}
			target = insertID(target, clamp(position, len(target)), id)

			if err := renumber(ctx, tx, current.Status, source); err != nil {
				return err
			}
			if err := renumber(ctx, tx, status, target); err != nil {
				return err
			}
		}

		stored, err = getCandidate(ctx, tx, jobID, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("candidate moved",
		"job_id", jobID,
		"candidate_id", id,
		"status", stored.Status,
		"position", stored.Position)

	return stored, nil
}

func getCandidate(ctx context.Context, q querier, jobID, id int) (*models.Candidate, error) {
	row := q.QueryRowContext(ctx,
		`SELECT id, email, status, position FROM candidates WHERE job_id = ? AND id = ?`,
		jobID, id)
	c, err := scanCandidate(row)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// columnIDs returns the ids of one column in stored order
func columnIDs(ctx context.Context, q querier, jobID int, status models.Status) ([]int, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id FROM candidates WHERE job_id = ? AND status = ? ORDER BY position, id`,
		jobID, string(status))
	if err != nil {
		return nil, fmt.Errorf("querying %s column: %w", status, err)
	}
	defer closeRows(rows)

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// renumber writes status and dense positions for ids, in order
func renumber(ctx context.Context, tx *sql.Tx, status models.Status, ids []int) error {
	for pos, id := range ids {
		_, err := tx.ExecContext(ctx,
			`UPDATE candidates SET status = ?, position = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			string(status), pos, id)
		if err != nil {
			return fmt.Errorf("failed to renumber candidate %d: %w", id, err)
		}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCandidate(s scanner) (models.Candidate, error) {
	var (
		c      models.Candidate
		status string
	)
	if err := s.Scan(&c.ID, &c.Email, &status, &c.Position); err != nil {
		return models.Candidate{}, err
	}
	c.Status = models.Status(status)
	return c, nil
}

func removeID(ids []int, id int) []int {
	out := make([]int, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func insertID(ids []int, index, id int) []int {
	out := make([]int, 0, len(ids)+1)
	out = append(out, ids[:index]...)
	out = append(out, id)
	return append(out, ids[index:]...)
}
