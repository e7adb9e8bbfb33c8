package models

import "fmt"

// Status is the pipeline stage of a candidate. Each status is one board column.
type Status string

const (
	StatusNew       Status = "new"
	StatusInterview Status = "interview"
	StatusHired     Status = "hired"
	StatusRejected  Status = "rejected"
)

// Statuses lists every status in board (left to right) order
var Statuses = []Status{StatusNew, StatusInterview, StatusHired, StatusRejected}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if st.Valid() {
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Valid reports whether s is one of the four board statuses
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInterview, StatusHired, StatusRejected:
		return true
	}
	return false
}

// Index returns the column index of s on the board, or -1 if s is unknown
func (s Status) Index() int {
	for i, st := range Statuses {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Status) String() string {
	return string(s)
}
