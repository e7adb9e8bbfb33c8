package candidate

import "errors"

// Candidate-related errors
var (
	// Validation errors
	ErrInvalidJobID       = errors.New("invalid job ID")
	ErrInvalidCandidateID = errors.New("invalid candidate ID")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPosition    = errors.New("invalid position: must be >= 0")
	ErrIDMismatch         = errors.New("candidate id in body does not match path")

	// Business logic errors
	ErrJobNotFound       = errors.New("job not found")
	ErrCandidateNotFound = errors.New("candidate not found")
)
