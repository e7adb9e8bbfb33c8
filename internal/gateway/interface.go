package gateway

import (
	"context"

	"github.com/thenoetrevino/shortlist/internal/board"
	"github.com/thenoetrevino/shortlist/internal/models"
	"github.com/thenoetrevino/shortlist/internal/types"
)

// Gateway persists a candidate move to the remote system of record.
// Persist returns the candidate as stored remotely, or a *PersistenceError.
type Gateway interface {
	Persist(ctx context.Context, jobID types.JobID, intent board.Intent) (*models.Candidate, error)
}

// BoardSource reads the data a board is built from
type BoardSource interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, jobID types.JobID) (*models.Job, error)
	ListCandidates(ctx context.Context, jobID types.JobID) ([]models.Candidate, error)
}

// Compile-time verification that *Client implements both interfaces
var (
	_ Gateway     = (*Client)(nil)
	_ BoardSource = (*Client)(nil)
)
