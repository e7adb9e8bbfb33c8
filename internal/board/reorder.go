package board

import (
	"fmt"

	"github.com/thenoetrevino/shortlist/internal/models"
)

// MoveEvent is the outcome of one pick-up/drop gesture.
// A nil Destination means the gesture was cancelled.
type MoveEvent struct {
	Source      Location
	Destination *Location
}

// Cancelled reports whether the gesture ended without a drop target
func (e MoveEvent) Cancelled() bool {
	return e.Destination == nil
}

// SameSlot reports whether the candidate was dropped where it was picked up
func (e MoveEvent) SameSlot() bool {
	return e.Destination != nil &&
		e.Source.Column == e.Destination.Column &&
		e.Source.Index == e.Destination.Index
}

// Intent is the minimal payload describing the moved candidate's new place,
// handed to the gateway for persistence.
type Intent struct {
	ID       int
	Email    string
	Status   models.Status
	Position int

	// From is where the candidate was before the move, with its record as it
	// was at that point. It is never sent to the remote store.
	From     Location
	Original models.Candidate
}

// Candidate returns the candidate record the intent persists
func (i Intent) Candidate() models.Candidate {
	return models.Candidate{
		ID:       i.ID,
		Email:    i.Email,
		Status:   i.Status,
		Position: i.Position,
	}
}

// Apply computes the store that results from ev. It performs no I/O.
//
// Cancelled and same-slot events return the input store and a nil intent.
// Destination indexes range over [0, length] of the destination column. In the
// source column the index addresses the shortened sequence, so the column's
// full length is taken as its end.
// Events that do not fit the store return a *MalformedEventError and the
// input store. At most two columns differ between the input and the result,
// and only the moved candidate changes status.
func Apply(store ColumnStore, ev MoveEvent) (ColumnStore, *Intent, error) {
	if ev.Cancelled() || ev.SameSlot() {
		return store, nil, nil
	}

	if err := validate(store, ev); err != nil {
		return store, nil, err
	}

	src := ev.Source
	dst := *ev.Destination

	source := store.ColumnOf(src.Column)
	moved := source[src.Index]
	original := moved
	source = append(source[:src.Index], source[src.Index+1:]...)

	// the column's own length appends, like the slot after the last card
	if src.Column == dst.Column && dst.Index > len(source) {
		dst.Index = len(source)
	}
	if dst.Column == src.Column && dst.Index == src.Index {
		return store, nil, nil
	}

	moved.Status = dst.Column
	moved.Position = dst.Index

	var next ColumnStore
	if src.Column == dst.Column {
		next = store.Replace(src.Column, insertAt(source, dst.Index, moved))
	} else {
		destination := store.ColumnOf(dst.Column)
		next = store.ReplaceMany(map[models.Status][]models.Candidate{
			src.Column: source,
			dst.Column: insertAt(destination, dst.Index, moved),
		})
	}

	intent := &Intent{
		ID:       moved.ID,
		Email:    moved.Email,
		Status:   dst.Column,
		Position: dst.Index,
		From:     src,
		Original: original,
	}

	return next, intent, nil
}

// validate checks the event against the store before anything is touched
func validate(store ColumnStore, ev MoveEvent) error {
	src := ev.Source
	dst := *ev.Destination

	if !src.Column.Valid() {
		return &MalformedEventError{Column: src.Column, Index: src.Index,
			Reason: fmt.Sprintf("unknown source column %q", src.Column)}
	}
	if !dst.Column.Valid() {
		return &MalformedEventError{Column: dst.Column, Index: dst.Index,
			Reason: fmt.Sprintf("unknown destination column %q", dst.Column)}
	}

	srcLen := store.Len(src.Column)
	if src.Index < 0 || src.Index >= srcLen {
		return &MalformedEventError{Column: src.Column, Index: src.Index, Length: srcLen}
	}

	dstLen := store.Len(dst.Column)
	if dst.Index < 0 || dst.Index > dstLen {
		return &MalformedEventError{Column: dst.Column, Index: dst.Index, Length: dstLen}
	}

	return nil
}

// insertAt returns a new slice with c inserted at index
func insertAt(col []models.Candidate, index int, c models.Candidate) []models.Candidate {
	out := make([]models.Candidate, 0, len(col)+1)
	out = append(out, col[:index]...)
	out = append(out, c)
	out = append(out, col[index:]...)
	return out
}

// WithCandidate returns a store where the record of c (matched by ID) is
// replaced in place, keeping its column and index. The second return value is
// false if c is not on the board or its status differs from the stored one.
func WithCandidate(store ColumnStore, c models.Candidate) (ColumnStore, bool) {
	loc, current, ok := store.Find(c.ID)
	if !ok || current.Status != c.Status {
		return store, false
	}
	col := store.ColumnOf(loc.Column)
	col[loc.Index] = c
	return store.Replace(loc.Column, col), true
}

// Revert undoes a previously applied intent on store: the candidate is moved
// from wherever it is now back to intent.From (clamped to the column length)
// and its record is restored to intent.Original.
func Revert(store ColumnStore, intent Intent) (ColumnStore, error) {
	loc, _, ok := store.Find(intent.ID)
	if !ok {
		return store, &MalformedEventError{Reason: fmt.Sprintf("candidate %d is not on the board", intent.ID)}
	}

	target := intent.From
	limit := store.Len(target.Column)
	if loc.Column == target.Column {
		limit--
	}
	if target.Index > limit {
		target.Index = limit
	}
	if target.Index < 0 {
		target.Index = 0
	}

	next, _, err := Apply(store, MoveEvent{Source: loc, Destination: &target})
	if err != nil {
		return store, err
	}

	restored, _ := WithCandidate(next, intent.Original)
	return restored, nil
}
