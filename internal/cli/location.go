package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/shortlist/internal/board"
	"github.com/thenoetrevino/shortlist/internal/models"
)

// ErrInvalidLocation is returned for a slot that is not status:index
var ErrInvalidLocation = errors.New("location must be status:index")

// ParseLocation parses a board slot written as status:index, e.g. "rejected:2".
// The index is 0-based.
func ParseLocation(s string) (board.Location, error) {
	name, rawIndex, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return board.Location{}, fmt.Errorf("%w, got %q", ErrInvalidLocation, s)
	}

	status, err := models.ParseStatus(strings.ToLower(name))
	if err != nil {
		return board.Location{}, err
	}

	index, err := strconv.Atoi(rawIndex)
	if err != nil || index < 0 {
		return board.Location{}, fmt.Errorf("%w, got %q: index must be a non-negative integer", ErrInvalidLocation, s)
	}

	return board.Location{Column: status, Index: index}, nil
}

// FormatLocation is the inverse of ParseLocation
func FormatLocation(loc board.Location) string {
	return fmt.Sprintf("%s:%d", loc.Column, loc.Index)
}
