package models

import "errors"

// Domain-specific errors shared by the board and the remote store
var (
	// ErrUnknownStatus indicates a status outside new/interview/hired/rejected
	ErrUnknownStatus = errors.New("unknown candidate status")
)
