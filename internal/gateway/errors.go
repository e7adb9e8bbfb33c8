package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedStatus is wrapped when the remote store answers with a non-2xx status
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrNotFound is wrapped when the remote store answers 404
	ErrNotFound = errors.New("not found")

	// ErrMalformedResponse is wrapped when a 2xx body cannot be decoded. The
	// store has already acted on the request, so it is never retried.
	ErrMalformedResponse = errors.New("malformed response")
)

// PersistenceError reports a failed candidate update
type PersistenceError struct {
	JobID       int
	CandidateID int
	StatusCode  int // 0 when the request never got a response
	Err         error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to update candidate %d of job %d: status %d: %v",
			e.CandidateID, e.JobID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("failed to update candidate %d of job %d: %v", e.CandidateID, e.JobID, e.Err)
}

// Unwrap returns the underlying cause.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Retryable reports whether another attempt could succeed. Transport failures
// and 5xx answers qualify; client errors and undecodable success bodies do not.
func (e *PersistenceError) Retryable() bool {
	if errors.Is(e.Err, ErrMalformedResponse) {
		return false
	}
	return e.StatusCode == 0 || e.StatusCode >= 500
}

// statusError builds the error for a non-2xx response
func statusError(code int, message string) error {
	var err error = ErrUnexpectedStatus
	if code == 404 {
		err = fmt.Errorf("%w: %w", ErrUnexpectedStatus, ErrNotFound)
	}
	if message == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, message)
}
