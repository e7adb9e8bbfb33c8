package app

import (
	"context"
	"testing"

	"github.com/thenoetrevino/shortlist/internal/database"
	"github.com/thenoetrevino/shortlist/internal/models"
	"github.com/thenoetrevino/shortlist/internal/services/candidate"
)

func TestNew(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	defer func() { _ = db.Close() }()
	if err := database.Seed(ctx, db); err != nil {
		t.Fatalf("Failed to seed database: %v", err)
	}

	app := New(db)

	if app.JobService == nil {
		t.Fatal("Expected JobService to be initialized")
	}
	if app.CandidateService == nil {
		t.Fatal("Expected CandidateService to be initialized")
	}
	if app.Repo() == nil {
		t.Fatal("Expected Repo to be initialized")
	}

	jobs, err := app.JobService.ListJobs(ctx)
	if err != nil {
		t.Fatalf("ListJobs failed: %v", err)
	}
	if len(jobs) != 2 {
		t.Errorf("Expected 2 seeded jobs, got %d", len(jobs))
	}

	// services share the repository
	moved, err := app.CandidateService.MoveCandidate(ctx, candidate.MoveCandidateRequest{
		JobID:       1,
		CandidateID: 1,
		Candidate: models.Candidate{
			ID:       1,
			Email:    "candidate1@example.com",
			Status:   models.StatusHired,
			Position: 0,
		},
	})
	if err != nil {
		t.Fatalf("MoveCandidate failed: %v", err)
	}
	if moved.Status != models.StatusHired {
		t.Errorf("Expected candidate in hired, got %s", moved.Status)
	}

	stored, err := app.Repo().GetCandidate(ctx, 1, 1)
	if err != nil {
		t.Fatalf("GetCandidate failed: %v", err)
	}
	if stored.Status != models.StatusHired || stored.Position != 0 {
		t.Errorf("Expected hired:0, got %s:%d", stored.Status, stored.Position)
	}
}
