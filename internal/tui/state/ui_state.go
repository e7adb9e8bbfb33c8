// Package state holds the mutable UI state of the board
package state

import (
	"github.com/thenoetrevino/shortlist/internal/board"
	"github.com/thenoetrevino/shortlist/internal/models"
)

// UIState tracks the cursor and the card being carried.
//
// While nothing is carried the cursor selects a card. While a card is carried
// the cursor selects a drop slot: in the source column any index of the
// column, in another column any index up to and including its length.
// The carried card is tracked by candidate ID, so it stays the same card when
// persist outcomes reshuffle the board mid-gesture.
type UIState struct {
	column    int
	row       int
	carrying  *board.Location
	carriedID int
	width     int
	height    int
}

// NewUIState creates a UIState with the cursor on the first column
func NewUIState() *UIState {
	return &UIState{}
}

// Column returns the status under the cursor
func (s *UIState) Column() models.Status {
	return models.Statuses[s.column]
}

// Row returns the cursor row
func (s *UIState) Row() int {
	return s.row
}

// Cursor returns the cursor as a board location
func (s *UIState) Cursor() board.Location {
	return board.Location{Column: s.Column(), Index: s.row}
}

// Carrying returns where the carried card currently is, or nil when nothing
// is carried
func (s *UIState) Carrying() *board.Location {
	return s.carrying
}

// PickUp starts carrying the card under the cursor. It reports false when the
// cursor is not on a card.
func (s *UIState) PickUp(store board.ColumnStore) bool {
	loc := s.Cursor()
	col := store.ColumnOf(loc.Column)
	if loc.Index < 0 || loc.Index >= len(col) {
		return false
	}
	s.carriedID = col[loc.Index].ID
	s.carrying = &loc
	return true
}

// Track moves the carry to wherever the carried card sits in store. When the
// card is no longer on the board the gesture ends and Track reports false.
func (s *UIState) Track(store board.ColumnStore) bool {
	if s.carrying == nil {
		return false
	}
	loc, _, ok := store.Find(s.carriedID)
	if !ok {
		s.carrying = nil
		s.Clamp(store)
		return false
	}
	s.carrying = &loc
	s.Clamp(store)
	return true
}

// Drop ends the gesture and returns the event it produced. The cursor stays
// on the drop slot. It reports false, with no event, when the carried card
// has left the board.
func (s *UIState) Drop(store board.ColumnStore) (board.MoveEvent, bool) {
	if !s.Track(store) {
		return board.MoveEvent{}, false
	}
	src := *s.carrying
	dst := s.Cursor()
	s.carrying = nil
	s.Clamp(store)
	return board.MoveEvent{Source: src, Destination: &dst}, true
}

// Cancel ends the gesture without a destination and returns the cursor to
// the carried card
func (s *UIState) Cancel(store board.ColumnStore) (board.MoveEvent, bool) {
	if !s.Track(store) {
		return board.MoveEvent{}, false
	}
	src := *s.carrying
	s.carrying = nil
	s.column = src.Column.Index()
	s.row = src.Index
	s.Clamp(store)
	return board.MoveEvent{Source: src}, true
}

// MoveColumn shifts the cursor delta columns, keeping it on the board
func (s *UIState) MoveColumn(delta int, store board.ColumnStore) {
	s.column = min(max(s.column+delta, 0), len(models.Statuses)-1)
	s.Clamp(store)
}

// MoveRow shifts the cursor delta rows within the current column
func (s *UIState) MoveRow(delta int, store board.ColumnStore) {
	s.row += delta
	s.Clamp(store)
}

// Clamp keeps the cursor on a valid card or drop slot of store
func (s *UIState) Clamp(store board.ColumnStore) {
	limit := store.Len(s.Column()) - 1
	if s.carrying != nil && s.carrying.Column != s.Column() {
		// one past the end appends
		limit++
	}
	s.row = min(s.row, limit)
	s.row = max(s.row, 0)
}

// SetWindowSize records the terminal size
func (s *UIState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the terminal width
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height
func (s *UIState) Height() int {
	return s.height
}
