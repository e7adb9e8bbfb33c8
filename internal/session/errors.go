package session

import "errors"

var (
	// ErrClosed is returned by HandleMove after Close
	ErrClosed = errors.New("session is closed")

	// ErrQueueFull is returned when too many moves are waiting to be persisted.
	// The move is not applied.
	ErrQueueFull = errors.New("persist queue full")

	// ErrPendingMoves is returned by Reload while moves are still in flight
	ErrPendingMoves = errors.New("moves are still being persisted")
)
