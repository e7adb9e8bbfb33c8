// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/shortlist/internal/models"
)

// JobRepository reads jobs
type JobRepository interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id int) (*models.Job, error)
}

// CandidateRepository reads candidates and persists moves
type CandidateRepository interface {
	ListCandidates(ctx context.Context, jobID int) ([]models.Candidate, error)
	GetCandidate(ctx context.Context, jobID, id int) (*models.Candidate, error)
	MoveCandidate(ctx context.Context, jobID, id int, status models.Status, position int) (*models.Candidate, error)
}

// DataStore is everything the server needs from storage
type DataStore interface {
	JobRepository
	CandidateRepository
}

var _ DataStore = (*Repository)(nil)
