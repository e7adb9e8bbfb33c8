package board

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/shortlist/internal/models"
)

// ErrMalformedEvent is matched by every MalformedEventError
var ErrMalformedEvent = errors.New("malformed move event")

// MalformedEventError reports a move event that does not fit the store it was
// applied to. The store is left unchanged when it is returned.
type MalformedEventError struct {
	Column models.Status
	Index  int
	Length int
	Reason string
}

// Error implements the error interface.
func (e *MalformedEventError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", ErrMalformedEvent, e.Reason)
	}
	return fmt.Sprintf("%s: index %d out of range for column %q (length %d)",
		ErrMalformedEvent, e.Index, e.Column, e.Length)
}

// Is lets errors.Is match ErrMalformedEvent.
func (e *MalformedEventError) Is(target error) bool {
	return target == ErrMalformedEvent
}
