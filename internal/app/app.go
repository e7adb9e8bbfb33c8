package app

import (
	"database/sql"

	"github.com/thenoetrevino/shortlist/internal/database"
	candidateservice "github.com/thenoetrevino/shortlist/internal/services/candidate"
	jobservice "github.com/thenoetrevino/shortlist/internal/services/job"
)

// App holds all application services and provides dependency injection.
// This is the container the store server is built from.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	JobService       jobservice.Service
	CandidateService candidateservice.Service
}

// New creates a new App with all services initialized over db
func New(db *sql.DB) *App {
	repo := database.NewRepository(db)
	return &App{
		repo:             repo,
		JobService:       jobservice.NewService(repo),
		CandidateService: candidateservice.NewService(repo),
	}
}

// Repo returns the underlying repository for direct database access
func (a *App) Repo() database.DataStore {
	return a.repo
}
