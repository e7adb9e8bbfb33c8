// Package board holds the per-status ordered view of a job's candidates and the
// engine that computes the next view from a single move.
package board

import (
	"sort"

	"github.com/thenoetrevino/shortlist/internal/models"
)

// ColumnStore maps each status to its ordered sequence of candidates.
// A ColumnStore is never mutated after construction: Replace and ReplaceMany
// return a new store, so a holder of the previous value never observes a
// partially applied move.
type ColumnStore struct {
	columns map[models.Status][]models.Candidate
}

// Location addresses one slot on the board
type Location struct {
	Column models.Status
	Index  int
}

// Load groups candidates by status and stable-sorts each group by position.
// Every status gets a column, empty when no candidate has that status.
// Candidates with an unknown status are dropped.
func Load(candidates []models.Candidate) ColumnStore {
	columns := emptyColumns()
	for _, c := range candidates {
		if !c.Status.Valid() {
			continue
		}
		columns[c.Status] = append(columns[c.Status], c)
	}

	for _, status := range models.Statuses {
		col := columns[status]
		sort.SliceStable(col, func(i, j int) bool {
			return col[i].Position < col[j].Position
		})
	}

	return ColumnStore{columns: columns}
}

func emptyColumns() map[models.Status][]models.Candidate {
	columns := make(map[models.Status][]models.Candidate, len(models.Statuses))
	for _, status := range models.Statuses {
		columns[status] = []models.Candidate{}
	}
	return columns
}

// ColumnOf returns a copy of the column for status, empty if there is none
func (s ColumnStore) ColumnOf(status models.Status) []models.Candidate {
	col := s.columns[status]
	out := make([]models.Candidate, len(col))
	copy(out, col)
	return out
}

// Len returns the number of candidates in the column for status
func (s ColumnStore) Len(status models.Status) int {
	return len(s.columns[status])
}

// Total returns the number of candidates across all columns
func (s ColumnStore) Total() int {
	total := 0
	for _, col := range s.columns {
		total += len(col)
	}
	return total
}

// Statuses returns the columns of the store in board order
func (s ColumnStore) Statuses() []models.Status {
	return models.Statuses
}

// Candidates flattens the store in board order: column by column, top to bottom
func (s ColumnStore) Candidates() []models.Candidate {
	out := make([]models.Candidate, 0, s.Total())
	for _, status := range models.Statuses {
		out = append(out, s.columns[status]...)
	}
	return out
}

// Find locates a candidate by ID
func (s ColumnStore) Find(id int) (Location, models.Candidate, bool) {
	for _, status := range models.Statuses {
		for i, c := range s.columns[status] {
			if c.ID == id {
				return Location{Column: status, Index: i}, c, true
			}
		}
	}
	return Location{}, models.Candidate{}, false
}

// Replace returns a store with the column for status swapped for seq
func (s ColumnStore) Replace(status models.Status, seq []models.Candidate) ColumnStore {
	return s.ReplaceMany(map[models.Status][]models.Candidate{status: seq})
}

// ReplaceMany returns a store with every given column swapped in at once.
// Columns not named in replacements are shared with the receiver.
func (s ColumnStore) ReplaceMany(replacements map[models.Status][]models.Candidate) ColumnStore {
	columns := emptyColumns()
	for status, col := range s.columns {
		columns[status] = col
	}
	for status, seq := range replacements {
		if !status.Valid() {
			continue
		}
		col := make([]models.Candidate, len(seq))
		copy(col, seq)
		columns[status] = col
	}
	return ColumnStore{columns: columns}
}

// Equal reports whether both stores hold the same candidates in the same order
func (s ColumnStore) Equal(other ColumnStore) bool {
	for _, status := range models.Statuses {
		a, b := s.columns[status], other.columns[status]
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}
	return true
}

// IDs returns the candidate IDs of a column in order
func (s ColumnStore) IDs(status models.Status) []int {
	col := s.columns[status]
	ids := make([]int, len(col))
	for i, c := range col {
		ids[i] = c.ID
	}
	return ids
}
