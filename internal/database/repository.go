package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/shortlist/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*JobRepo
	*CandidateRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		JobRepo:       &JobRepo{db: db},
		CandidateRepo: &CandidateRepo{db: db},
	}
}

func (r *Repository) ListJobs(ctx context.Context) ([]models.Job, error) {
	return r.JobRepo.List(ctx)
}

func (r *Repository) GetJob(ctx context.Context, id int) (*models.Job, error) {
	return r.JobRepo.GetByID(ctx, id)
}

func (r *Repository) ListCandidates(ctx context.Context, jobID int) ([]models.Candidate, error) {
	return r.CandidateRepo.ListByJob(ctx, jobID)
}

func (r *Repository) GetCandidate(ctx context.Context, jobID, id int) (*models.Candidate, error) {
	return r.CandidateRepo.GetByID(ctx, jobID, id)
}

func (r *Repository) MoveCandidate(ctx context.Context, jobID, id int, status models.Status, position int) (*models.Candidate, error) {
	return r.CandidateRepo.Move(ctx, jobID, id, status, position)
}
