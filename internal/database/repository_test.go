package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/thenoetrevino/shortlist/internal/models"
)

// ============================================================================
// JOBS
// ============================================================================

func TestListJobs(t *testing.T) {
	_, repo := setupSeededDB(t)

	jobs, err := repo.ListJobs(context.Background())
	if err != nil {
		t.Fatalf("ListJobs failed: %v", err)
	}

	want := []models.Job{{ID: 1, Name: "Software Engineer"}, {ID: 2, Name: "Product Designer"}}
	if diff := cmp.Diff(want, jobs); diff != "" {
		t.Errorf("jobs mismatch (-want +got):\n%s", diff)
	}
}

func TestListJobs_Empty(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	jobs, err := repo.ListJobs(context.Background())
	if err != nil {
		t.Fatalf("ListJobs failed: %v", err)
	}
	if jobs == nil || len(jobs) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", jobs)
	}
}

func TestGetJob_NotFound(t *testing.T) {
	_, repo := setupSeededDB(t)

	_, err := repo.GetJob(context.Background(), 99)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	db, repo := setupSeededDB(t)

	if err := Seed(context.Background(), db); err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}

	jobs, err := repo.ListJobs(context.Background())
	if err != nil {
		t.Fatalf("ListJobs failed: %v", err)
	}
	if len(jobs) != 2 {
		t.Errorf("expected 2 jobs after reseeding, got %d", len(jobs))
	}
}

// ============================================================================
// CANDIDATES
// ============================================================================

func TestListCandidates_BoardOrder(t *testing.T) {
	_, repo := setupSeededDB(t)

	candidates, err := repo.ListCandidates(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListCandidates failed: %v", err)
	}

	want := []models.Candidate{
		{ID: 1, Email: "candidate1@example.com", Status: models.StatusNew, Position: 0},
		{ID: 2, Email: "candidate2@example.com", Status: models.StatusInterview, Position: 0},
		{ID: 3, Email: "candidate3@example.com", Status: models.StatusHired, Position: 0},
		{ID: 4, Email: "candidate4@example.com", Status: models.StatusRejected, Position: 0},
		{ID: 5, Email: "candidate5@example.com", Status: models.StatusRejected, Position: 1},
		{ID: 6, Email: "candidate6@example.com", Status: models.StatusRejected, Position: 2},
	}
	if diff := cmp.Diff(want, candidates); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestGetCandidate_WrongJob(t *testing.T) {
	_, repo := setupSeededDB(t)

	// candidate 1 belongs to job 1
	_, err := repo.GetCandidate(context.Background(), 2, 1)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

// ============================================================================
// MOVES
// ============================================================================

func TestMoveCandidate_WithinColumn(t *testing.T) {
	_, repo := setupSeededDB(t)

	stored, err := repo.MoveCandidate(context.Background(), 1, 4, models.StatusRejected, 2)
	if err != nil {
		t.Fatalf("MoveCandidate failed: %v", err)
	}
	if stored.Position != 2 || stored.Status != models.StatusRejected {
		t.Errorf("unexpected stored candidate: %+v", stored)
	}

	ids, positions := columnOrder(t, repo, 1, models.StatusRejected)
	if diff := cmp.Diff([]int{5, 6, 4}, ids); diff != "" {
		t.Errorf("rejected order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(denseRange(3), positions); diff != "" {
		t.Errorf("positions not dense (-want +got):\n%s", diff)
	}
}

func TestMoveCandidate_AcrossColumns(t *testing.T) {
	_, repo := setupSeededDB(t)

	stored, err := repo.MoveCandidate(context.Background(), 1, 5, models.StatusInterview, 0)
	if err != nil {
		t.Fatalf("MoveCandidate failed: %v", err)
	}
	want := &models.Candidate{ID: 5, Email: "candidate5@example.com", Status: models.StatusInterview, Position: 0}
	if diff := cmp.Diff(want, stored); diff != "" {
		t.Errorf("stored mismatch (-want +got):\n%s", diff)
	}

	// both affected columns are renumbered
	ids, positions := columnOrder(t, repo, 1, models.StatusRejected)
	if diff := cmp.Diff([]int{4, 6}, ids); diff != "" {
		t.Errorf("rejected order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(denseRange(2), positions); diff != "" {
		t.Errorf("rejected positions not dense (-want +got):\n%s", diff)
	}

	ids, positions = columnOrder(t, repo, 1, models.StatusInterview)
	if diff := cmp.Diff([]int{5, 2}, ids); diff != "" {
		t.Errorf("interview order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(denseRange(2), positions); diff != "" {
		t.Errorf("interview positions not dense (-want +got):\n%s", diff)
	}
}

func TestMoveCandidate_PositionPastEndAppends(t *testing.T) {
	_, repo := setupSeededDB(t)

	stored, err := repo.MoveCandidate(context.Background(), 1, 1, models.StatusHired, 42)
	if err != nil {
		t.Fatalf("MoveCandidate failed: %v", err)
	}
	if stored.Position != 1 {
		t.Errorf("expected clamped position 1, got %d", stored.Position)
	}

	ids, _ := columnOrder(t, repo, 1, models.StatusHired)
	if diff := cmp.Diff([]int{3, 1}, ids); diff != "" {
		t.Errorf("hired order mismatch (-want +got):\n%s", diff)
	}
	ids, _ = columnOrder(t, repo, 1, models.StatusNew)
	if len(ids) != 0 {
		t.Errorf("new column should be empty, got %v", ids)
	}
}

func TestMoveCandidate_NotFound(t *testing.T) {
	_, repo := setupSeededDB(t)

	_, err := repo.MoveCandidate(context.Background(), 1, 99, models.StatusNew, 0)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}

	// candidate of another job
	_, err = repo.MoveCandidate(context.Background(), 2, 1, models.StatusNew, 0)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows for foreign candidate, got %v", err)
	}
}

func TestMoveCandidate_OtherJobUntouched(t *testing.T) {
	_, repo := setupSeededDB(t)

	before, err := repo.ListCandidates(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListCandidates failed: %v", err)
	}

	if _, err := repo.MoveCandidate(context.Background(), 1, 1, models.StatusInterview, 0); err != nil {
		t.Fatalf("MoveCandidate failed: %v", err)
	}

	after, err := repo.ListCandidates(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListCandidates failed: %v", err)
	}
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("other job changed (-before +after):\n%s", diff)
	}
}

// TestPersistenceAcrossRestart verifies a move survives closing and reopening the db
func TestPersistenceAcrossRestart(t *testing.T) {
	ctx := context.Background()
	path := setupTestDBFile(t)

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := Seed(ctx, db); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if _, err := NewRepository(db).MoveCandidate(ctx, 1, 6, models.StatusNew, 0); err != nil {
		t.Fatalf("MoveCandidate failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
	}()

	c, err := NewRepository(db).GetCandidate(ctx, 1, 6)
	if err != nil {
		t.Fatalf("GetCandidate failed: %v", err)
	}
	if c.Status != models.StatusNew || c.Position != 0 {
		t.Errorf("move not persisted: %+v", c)
	}
}
