// Package session owns a job's board while it is being edited. Moves are
// applied to the local view at once and persisted in the background; failed
// persists are rolled back.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/shortlist/internal/board"
	"github.com/thenoetrevino/shortlist/internal/gateway"
	"github.com/thenoetrevino/shortlist/internal/models"
	"github.com/thenoetrevino/shortlist/internal/types"
)

// Outcome is the result of one persist call
type Outcome struct {
	Seq    int64
	Intent board.Intent
	Stored *models.Candidate
	Err    error
}

// Resolution tells what Resolve did with an Outcome
type Resolution int

const (
	// ResolutionIgnored means the outcome was unknown or already resolved
	ResolutionIgnored Resolution = iota
	// ResolutionConfirmed means the move was stored and the stored record merged
	ResolutionConfirmed
	// ResolutionStale means the move was stored but a newer move of the same
	// candidate has been made since, so the response was dropped
	ResolutionStale
	// ResolutionRolledBack means the move failed and the candidate was put back
	ResolutionRolledBack
	// ResolutionSuperseded means the move failed while a newer move of the same
	// candidate is still in flight; that move now carries the rollback target
	ResolutionSuperseded
)

func (r Resolution) String() string {
	switch r {
	case ResolutionConfirmed:
		return "confirmed"
	case ResolutionStale:
		return "stale"
	case ResolutionRolledBack:
		return "rolled back"
	case ResolutionSuperseded:
		return "superseded"
	default:
		return "ignored"
	}
}

// pendingMove is a move that has been applied locally but not resolved
type pendingMove struct {
	seq    int64
	intent board.Intent
}

// Session owns the column store of one job.
//
// HandleMove, Resolve, Reload and Store must be called from a single
// goroutine (the owner's event loop). Persist calls run on a background
// dispatcher, one at a time and in move order; their outcomes are delivered on
// Outcomes and must be passed back to Resolve in the order received.
type Session struct {
	jobID     types.JobID
	gw        gateway.Gateway
	notifier  Notifier
	timeout   time.Duration
	queueSize int

	store   board.ColumnStore
	seq     int64
	pending map[int64]*pendingMove
	latest  map[int]int64 // candidate ID -> sequence of its newest move

	queue    chan pendingMove
	outcomes chan Outcome

	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// New loads candidates into a column store and starts the persist dispatcher.
// The dispatcher stops when ctx is cancelled or Close is called.
func New(ctx context.Context, jobID types.JobID, candidates []models.Candidate, gw gateway.Gateway, opts ...Option) *Session {
	s := &Session{
		jobID:     jobID,
		gw:        gw,
		notifier:  logNotifier{},
		timeout:   defaultPersistTimeout,
		queueSize: defaultQueueSize,
		store:     board.Load(candidates),
		pending:   make(map[int64]*pendingMove),
		latest:    make(map[int]int64),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.queue = make(chan pendingMove, s.queueSize)
	s.outcomes = make(chan Outcome, s.queueSize)
	s.ctx, s.cancel = context.WithCancel(ctx)

	go s.dispatch()

	return s
}

// JobID returns the job this session edits
func (s *Session) JobID() types.JobID {
	return s.jobID
}

// Store returns the current column store
func (s *Session) Store() board.ColumnStore {
	return s.store
}

// Pending returns the number of moves applied locally but not yet resolved
func (s *Session) Pending() int {
	return len(s.pending)
}

// Outcomes delivers persist results; pass each one to Resolve
func (s *Session) Outcomes() <-chan Outcome {
	return s.outcomes
}

// Done is closed once the dispatcher has stopped
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// HandleMove applies ev to the local store and queues the resulting intent for
// persistence. The store is replaced before the function returns; persistence
// is not awaited. Cancelled and same-slot events return a nil intent and
// change nothing. A malformed event returns an error wrapping
// board.ErrMalformedEvent and changes nothing.
func (s *Session) HandleMove(ev board.MoveEvent) (*board.Intent, error) {
	if s.ctx.Err() != nil {
		return nil, ErrClosed
	}

	next, intent, err := board.Apply(s.store, ev)
	if err != nil {
		slog.Warn("rejected move event", "job_id", s.jobID, "error", err)
		return nil, err
	}
	if intent == nil {
		return nil, nil
	}

	pm := pendingMove{seq: s.seq + 1, intent: *intent}
	select {
	case s.queue <- pm:
	default:
		return nil, ErrQueueFull
	}

	s.seq = pm.seq
	s.store = next
	s.pending[pm.seq] = &pm
	s.latest[intent.ID] = pm.seq

	slog.Debug("move applied",
		"job_id", s.jobID,
		"seq", pm.seq,
		"candidate_id", intent.ID,
		"from", intent.From.Column,
		"to", intent.Status,
		"position", intent.Position)

	return intent, nil
}

// Resolve applies the reconciliation policy for o exactly once.
//
// On success the stored record is merged into the board unless a newer move
// of the same candidate exists. On failure the user is notified and the
// candidate is put back where it was before the move, unless a newer move of
// that candidate is still in flight, in which case that move inherits the
// rollback target.
func (s *Session) Resolve(o Outcome) Resolution {
	pm, ok := s.pending[o.Seq]
	if !ok {
		return ResolutionIgnored
	}
	delete(s.pending, o.Seq)

	id := pm.intent.ID
	newest := s.latest[id] == o.Seq

	if o.Err == nil {
		if !newest {
			slog.Debug("dropping stale persist response", "seq", o.Seq, "candidate_id", id)
			return ResolutionStale
		}
		if o.Stored != nil {
			next, merged := board.WithCandidate(s.store, *o.Stored)
			if !merged {
				slog.Warn("stored candidate does not match local board",
					"candidate_id", id,
					"stored_status", o.Stored.Status)
			}
			s.store = next
		}
		return ResolutionConfirmed
	}

	slog.Error("failed to persist move",
		"job_id", s.jobID,
		"seq", o.Seq,
		"candidate_id", id,
		"error", o.Err)

	if !newest {
		if newer, ok := s.pending[s.latest[id]]; ok {
			newer.intent.From = pm.intent.From
			newer.intent.Original = pm.intent.Original
		}
		s.notifier.Notify(LevelError, fmt.Sprintf("Failed to move %s to %s", pm.intent.Email, pm.intent.Status))
		return ResolutionSuperseded
	}

	next, err := board.Revert(s.store, pm.intent)
	if err != nil {
		slog.Error("failed to roll back move", "candidate_id", id, "error", err)
	}
	s.store = next
	s.notifier.Notify(LevelError, fmt.Sprintf("Failed to move %s to %s, change reverted", pm.intent.Email, pm.intent.Status))
	return ResolutionRolledBack
}

// Reload replaces the board with freshly fetched candidates
func (s *Session) Reload(candidates []models.Candidate) error {
	if len(s.pending) > 0 {
		return ErrPendingMoves
	}
	s.store = board.Load(candidates)
	s.latest = make(map[int]int64)
	return nil
}

// Close stops the dispatcher and waits for it to exit. Moves still queued are
// not persisted.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		<-s.done
	})
	return nil
}

// dispatch persists queued moves one at a time, in order
func (s *Session) dispatch() {
	defer close(s.done)

	for {
		select {
		case <-s.ctx.Done():
			return

		case pm := <-s.queue:
			ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
			stored, err := s.gw.Persist(ctx, s.jobID, pm.intent)
			cancel()

			out := Outcome{Seq: pm.seq, Intent: pm.intent, Stored: stored, Err: err}
			select {
			case s.outcomes <- out:
			case <-s.ctx.Done():
				return
			}
		}
	}
}
