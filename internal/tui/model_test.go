package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/shortlist/internal/board"
	"github.com/thenoetrevino/shortlist/internal/config"
	"github.com/thenoetrevino/shortlist/internal/models"
	"github.com/thenoetrevino/shortlist/internal/session"
	"github.com/thenoetrevino/shortlist/internal/tui/state"
	"github.com/thenoetrevino/shortlist/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// fakeStore serves the board and answers persists with fail
type fakeStore struct {
	candidates []models.Candidate
	fail       bool
}

func (f *fakeStore) Persist(ctx context.Context, jobID types.JobID, intent board.Intent) (*models.Candidate, error) {
	if f.fail {
		return nil, errors.New("store unavailable")
	}
	c := intent.Candidate()
	return &c, nil
}

func (f *fakeStore) ListJobs(ctx context.Context) ([]models.Job, error) {
	return []models.Job{{ID: 1, Name: "Software Engineer"}}, nil
}

func (f *fakeStore) GetJob(ctx context.Context, jobID types.JobID) (*models.Job, error) {
	return &models.Job{ID: jobID.ToInt(), Name: "Software Engineer"}, nil
}

func (f *fakeStore) ListCandidates(ctx context.Context, jobID types.JobID) ([]models.Candidate, error) {
	return f.candidates, nil
}

func fixture() []models.Candidate {
	return []models.Candidate{
		{ID: 1, Email: "candidate1@example.com", Status: models.StatusNew, Position: 0},
		{ID: 2, Email: "candidate2@example.com", Status: models.StatusInterview, Position: 0},
		{ID: 3, Email: "candidate3@example.com", Status: models.StatusHired, Position: 0},
		{ID: 4, Email: "candidate4@example.com", Status: models.StatusRejected, Position: 0},
		{ID: 5, Email: "candidate5@example.com", Status: models.StatusRejected, Position: 1},
		{ID: 6, Email: "candidate6@example.com", Status: models.StatusRejected, Position: 2},
	}
}

func newTestModel(t *testing.T, store *fakeStore) Model {
	t.Helper()
	notes := state.NewNotificationState(maxNotifications)
	sess := session.New(context.Background(), types.JobID(1), fixture(), store,
		session.WithNotifier(Notifier(notes)))
	t.Cleanup(func() { _ = sess.Close() })

	return NewModel(context.Background(), models.Job{ID: 1, Name: "Software Engineer"}, sess, store, notes, config.Default())
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

// press feeds keys through Update, returning the final model
func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

// settle resolves the next persist outcome through Update
func settle(t *testing.T, m Model) Model {
	t.Helper()
	select {
	case o := <-m.session.Outcomes():
		next, cmd := m.Update(outcomeMsg(o))
		assert.NotNil(t, cmd, "model must keep listening for outcomes")
		return next.(Model)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for persist outcome")
		return m
	}
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestMoveWithinColumn(t *testing.T) {
	m := newTestModel(t, &fakeStore{})

	// to rejected, pick up the first card, carry it to the bottom, drop
	m = press(t, m, runeKey('l'), runeKey('l'), runeKey('l'), space, runeKey('j'), runeKey('j'), space)

	assert.Equal(t, []int{5, 6, 4}, m.session.Store().IDs(models.StatusRejected))
	assert.Equal(t, 1, m.session.Pending())

	m = settle(t, m)
	assert.Equal(t, 0, m.session.Pending())
	assert.False(t, m.notes.HasAny())
}

func TestMoveAcrossColumns(t *testing.T) {
	m := newTestModel(t, &fakeStore{})

	m = press(t, m, space, runeKey('l'), enter)

	assert.Empty(t, m.session.Store().IDs(models.StatusNew))
	assert.Equal(t, []int{1, 2}, m.session.Store().IDs(models.StatusInterview))
	assert.Equal(t, models.StatusInterview, m.ui.Column())
}

func TestCancelLeavesBoardUnchanged(t *testing.T) {
	m := newTestModel(t, &fakeStore{})
	before := m.session.Store()

	m = press(t, m, space, runeKey('l'), runeKey('l'), esc)

	assert.True(t, m.session.Store().Equal(before))
	assert.Equal(t, 0, m.session.Pending())
	assert.Nil(t, m.ui.Carrying())
	assert.Equal(t, models.StatusNew, m.ui.Column())
}

func TestPickUpInEmptyColumnIsIgnored(t *testing.T) {
	m := newTestModel(t, &fakeStore{})

	// empty the new column first
	m = press(t, m, space, runeKey('l'), space)
	m = settle(t, m)
	m = press(t, m, runeKey('h'), space)

	assert.Nil(t, m.ui.Carrying())
}

func TestFailedPersistRollsBackAndNotifies(t *testing.T) {
	m := newTestModel(t, &fakeStore{fail: true})
	before := m.session.Store()

	m = press(t, m, space, runeKey('l'), runeKey('l'), space)
	require.False(t, m.session.Store().Equal(before))

	m = settle(t, m)

	assert.True(t, before.Equal(m.session.Store()), "board should be rolled back")
	require.Len(t, m.notes.All(), 1)
	assert.Equal(t, state.LevelError, m.notes.All()[0].Level)
	assert.Contains(t, m.notes.All()[0].Message, "candidate1@example.com")
	assert.Contains(t, m.View(), "candidate1@example.com")
}

func TestCarriedCardSurvivesRollback(t *testing.T) {
	m := newTestModel(t, &fakeStore{fail: true})

	// candidate 1 to the top of rejected, then pick up candidate 4 below it
	m = press(t, m, space, runeKey('l'), runeKey('l'), runeKey('l'), space)
	require.Equal(t, []int{1, 4, 5, 6}, m.session.Store().IDs(models.StatusRejected))
	m = press(t, m, runeKey('j'), space)
	require.NotNil(t, m.ui.Carrying())

	// the failed move rolls candidate 1 back while candidate 4 is carried
	m = settle(t, m)
	require.Equal(t, []int{4, 5, 6}, m.session.Store().IDs(models.StatusRejected))
	assert.Equal(t, board.Location{Column: models.StatusRejected, Index: 0}, *m.ui.Carrying())

	m = press(t, m, runeKey('h'), runeKey('h'), runeKey('h'), space)

	assert.Equal(t, []int{1, 4}, m.session.Store().IDs(models.StatusNew))
	assert.Equal(t, []int{5, 6}, m.session.Store().IDs(models.StatusRejected))
}

func TestNotificationsOutliveNavigation(t *testing.T) {
	m := newTestModel(t, &fakeStore{fail: true})

	m = press(t, m, space, runeKey('l'), space)
	m = settle(t, m)
	require.Len(t, m.notes.All(), 1)

	m = press(t, m, runeKey('l'), runeKey('j'), runeKey('h'), runeKey('k'))
	assert.Len(t, m.notes.All(), 1, "moving the cursor must not dismiss notifications")

	m = press(t, m, esc)
	assert.False(t, m.notes.HasAny(), "esc dismisses notifications")
}

func TestPickUpDismissesNotifications(t *testing.T) {
	m := newTestModel(t, &fakeStore{fail: true})

	m = press(t, m, space, runeKey('l'), space)
	m = settle(t, m)
	require.True(t, m.notes.HasAny())

	m = press(t, m, runeKey('h'), space)

	require.NotNil(t, m.ui.Carrying())
	assert.False(t, m.notes.HasAny())
}

func TestReloadWaitsForPendingMoves(t *testing.T) {
	store := &fakeStore{candidates: fixture()[:2]}
	m := newTestModel(t, store)

	m = press(t, m, space, runeKey('l'), space)
	next, cmd := m.Update(runeKey('r'))
	m = next.(Model)
	assert.Nil(t, cmd)
	require.Len(t, m.notes.All(), 1)
	assert.Equal(t, state.LevelWarning, m.notes.All()[0].Level)

	m = settle(t, m)
	next, cmd = m.Update(runeKey('r'))
	m = next.(Model)
	require.NotNil(t, cmd)

	next, _ = m.Update(cmd())
	m = next.(Model)
	assert.Equal(t, 2, m.session.Store().Total())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, &fakeStore{})

	_, cmd := m.Update(runeKey('q'))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView(t *testing.T) {
	m := newTestModel(t, &fakeStore{})
	m = press(t, m, runeKey('l'), runeKey('l'), runeKey('l'), space, runeKey('j'))

	view := m.View()

	assert.Contains(t, view, "Software Engineer")
	for _, title := range []string{"New (1)", "Interview (1)", "Hired (1)", "Rejected (3)"} {
		assert.Contains(t, view, title)
	}
	assert.Contains(t, view, "drop here")
	assert.Equal(t, 1, strings.Count(view, "drop here"))
}
