package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/shortlist/internal/board"
	"github.com/thenoetrevino/shortlist/internal/models"
	"github.com/thenoetrevino/shortlist/internal/session"
	"github.com/thenoetrevino/shortlist/internal/tui/state"
)

// outcomeMsg carries one persist outcome from the session
type outcomeMsg session.Outcome

// reloadedMsg carries freshly fetched candidates
type reloadedMsg struct {
	candidates []models.Candidate
	err        error
}

// waitForOutcome blocks until the session delivers an outcome or stops
func waitForOutcome(s *session.Session) tea.Cmd {
	return func() tea.Msg {
		select {
		case o := <-s.Outcomes():
			return outcomeMsg(o)
		case <-s.Done():
			return nil
		}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.SetWindowSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case outcomeMsg:
		m.session.Resolve(session.Outcome(msg))
		m.follow()
		return m, waitForOutcome(m.session)

	case reloadedMsg:
		if msg.err != nil {
			m.notes.Add(state.LevelError, fmt.Sprintf("Reload failed: %v", msg.err))
			return m, nil
		}
		if err := m.session.Reload(msg.candidates); err != nil {
			m.notes.Add(state.LevelWarning, "Board not reloaded: moves are still being saved")
			return m, nil
		}
		m.follow()
		m.notes.Add(state.LevelInfo, "Board reloaded")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	store := m.session.Store()

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.ui.MoveColumn(-1, store)
	case key.Matches(msg, m.keys.Right):
		m.ui.MoveColumn(1, store)
	case key.Matches(msg, m.keys.Up):
		m.ui.MoveRow(-1, store)
	case key.Matches(msg, m.keys.Down):
		m.ui.MoveRow(1, store)

	case key.Matches(msg, m.keys.PickUp), key.Matches(msg, m.keys.Drop):
		if m.ui.Carrying() != nil {
			if ev, ok := m.ui.Drop(store); ok {
				m.emit(ev)
			} else {
				m.notes.Add(state.LevelWarning, "The carried card is no longer on the board")
			}
			break
		}
		if key.Matches(msg, m.keys.PickUp) && m.ui.PickUp(store) {
			// a new gesture acknowledges earlier notifications
			m.notes.Clear()
		}

	case key.Matches(msg, m.keys.Cancel):
		if m.ui.Carrying() == nil {
			m.notes.Clear()
			break
		}
		if ev, ok := m.ui.Cancel(store); ok {
			m.emit(ev)
		}

	case key.Matches(msg, m.keys.Reload):
		if m.ui.Carrying() != nil {
			break
		}
		if m.session.Pending() > 0 {
			m.notes.Add(state.LevelWarning, "Wait for pending moves to be saved before reloading")
			break
		}
		return m, m.reload()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// follow keeps the cursor and the carried card in step with the store after
// it changed underneath the gesture
func (m Model) follow() {
	store := m.session.Store()
	if m.ui.Carrying() == nil {
		m.ui.Clamp(store)
		return
	}
	if !m.ui.Track(store) {
		m.notes.Add(state.LevelWarning, "The carried card is no longer on the board")
	}
}

// emit hands one completed gesture to the session
func (m Model) emit(ev board.MoveEvent) {
	_, err := m.session.HandleMove(ev)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrQueueFull):
		m.notes.Add(state.LevelWarning, "Too many unsaved moves, try again in a moment")
	default:
		m.notes.Add(state.LevelError, fmt.Sprintf("Move rejected: %v", err))
	}
	m.ui.Clamp(m.session.Store())
}

func (m Model) reload() tea.Cmd {
	ctx, src, jobID := m.ctx, m.source, m.session.JobID()
	return func() tea.Msg {
		candidates, err := src.ListCandidates(ctx, jobID)
		return reloadedMsg{candidates: candidates, err: err}
	}
}
