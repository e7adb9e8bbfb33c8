package job

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/shortlist/internal/database"
	"github.com/thenoetrevino/shortlist/internal/models"
)

// Service defines all job-related business operations
type Service interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id int) (*models.Job, error)
}

// service implements Service on top of a job repository
type service struct {
	repo database.JobRepository
}

// NewService creates a new job service
func NewService(repo database.JobRepository) Service {
	return &service{repo: repo}
}

// ListJobs retrieves every job
func (s *service) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.repo.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// GetJob retrieves a specific job
func (s *service) GetJob(ctx context.Context, id int) (*models.Job, error) {
	if id <= 0 {
		return nil, ErrInvalidJobID
	}
	job, err := s.repo.GetJob(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job %d: %w", id, err)
	}
	return job, nil
}
