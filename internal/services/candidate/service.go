package candidate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/shortlist/internal/database"
	"github.com/thenoetrevino/shortlist/internal/models"
)

// Service defines all candidate-related business operations
type Service interface {
	// Read operations
	ListCandidates(ctx context.Context, jobID int) ([]models.Candidate, error)

	// Write operations
	MoveCandidate(ctx context.Context, req MoveCandidateRequest) (*models.Candidate, error)
}

// MoveCandidateRequest is one persisted move: the record the client sends for
// the candidate addressed by JobID and CandidateID
type MoveCandidateRequest struct {
	JobID       int
	CandidateID int
	Candidate   models.Candidate
}

// service implements Service on top of the repositories
type service struct {
	store database.DataStore
}

// NewService creates a new candidate service
func NewService(store database.DataStore) Service {
	return &service{store: store}
}

// ListCandidates retrieves a job's candidates in board order
func (s *service) ListCandidates(ctx context.Context, jobID int) ([]models.Candidate, error) {
	if jobID <= 0 {
		return nil, ErrInvalidJobID
	}
	if err := s.requireJob(ctx, jobID); err != nil {
		return nil, err
	}

	candidates, err := s.store.ListCandidates(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

// MoveCandidate stores the candidate's new status and position. The server
// keeps every column densely numbered, so the returned record may carry a
// position other than the requested one.
func (s *service) MoveCandidate(ctx context.Context, req MoveCandidateRequest) (*models.Candidate, error) {
	if err := validateMove(req); err != nil {
		return nil, err
	}
	if err := s.requireJob(ctx, req.JobID); err != nil {
		return nil, err
	}

	stored, err := s.store.MoveCandidate(ctx, req.JobID, req.CandidateID, req.Candidate.Status, req.Candidate.Position)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCandidateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to move candidate %d: %w", req.CandidateID, err)
	}

	if stored.Position != req.Candidate.Position {
		slog.Debug("requested position clamped",
			"candidate_id", stored.ID,
			"requested", req.Candidate.Position,
			"stored", stored.Position)
	}

	return stored, nil
}

func (s *service) requireJob(ctx context.Context, jobID int) error {
	_, err := s.store.GetJob(ctx, jobID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrJobNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get job %d: %w", jobID, err)
	}
	return nil
}

func validateMove(req MoveCandidateRequest) error {
	if req.JobID <= 0 {
		return ErrInvalidJobID
	}
	if req.CandidateID <= 0 {
		return ErrInvalidCandidateID
	}
	if req.Candidate.ID != req.CandidateID {
		return ErrIDMismatch
	}
	if _, err := models.ParseStatus(string(req.Candidate.Status)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStatus, err)
	}
	if req.Candidate.Position < 0 {
		return ErrInvalidPosition
	}
	return nil
}
