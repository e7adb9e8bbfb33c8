// Package tui is the terminal board: a keyboard-driven source of move events
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/shortlist/internal/config"
	"github.com/thenoetrevino/shortlist/internal/gateway"
	"github.com/thenoetrevino/shortlist/internal/models"
	"github.com/thenoetrevino/shortlist/internal/session"
	"github.com/thenoetrevino/shortlist/internal/tui/state"
	"github.com/thenoetrevino/shortlist/internal/types"
)

const maxNotifications = 3

// Model represents the application state for the TUI
type Model struct {
	ctx     context.Context
	job     models.Job
	session *session.Session
	source  gateway.BoardSource

	ui     *state.UIState
	notes  *state.NotificationState
	keys   keyMap
	help   help.Model
	styles styles
	scheme config.ColorScheme
}

// NewModel creates the board model over an open session. Notifications the
// session raises must be routed to notes (see Notifier).
func NewModel(ctx context.Context, job models.Job, sess *session.Session, src gateway.BoardSource, notes *state.NotificationState, cfg *config.Config) Model {
	return Model{
		ctx:     ctx,
		job:     job,
		session: sess,
		source:  src,
		ui:      state.NewUIState(),
		notes:   notes,
		keys:    newKeyMap(cfg.KeyMappings),
		help:    help.New(),
		styles:  newStyles(cfg.ColorScheme),
		scheme:  cfg.ColorScheme,
	}
}

// Notifier returns a session notifier that posts into notes
func Notifier(notes *state.NotificationState) session.Notifier {
	return session.NotifierFunc(func(level session.Level, message string) {
		switch level {
		case session.LevelError:
			notes.Add(state.LevelError, message)
		case session.LevelWarning:
			notes.Add(state.LevelWarning, message)
		default:
			notes.Add(state.LevelInfo, message)
		}
	})
}

// Init starts listening for persist outcomes
func (m Model) Init() tea.Cmd {
	return waitForOutcome(m.session)
}

// Run opens a session over the job's candidates and runs the board until the
// user quits. Moves are persisted and reloads fetched through client.
func Run(ctx context.Context, cfg *config.Config, client *gateway.Client, job models.Job, candidates []models.Candidate) error {
	notes := state.NewNotificationState(maxNotifications)
	sess := session.New(ctx, types.JobID(job.ID), candidates, client,
		session.WithNotifier(Notifier(notes)),
		session.WithPersistTimeout(cfg.Client.Timeout*2))
	defer func() { _ = sess.Close() }()

	m := NewModel(ctx, job, sess, client, notes, cfg)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
