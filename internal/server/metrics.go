package server

import (
	"sync/atomic"
	"time"
)

// Metrics tracks server statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal  atomic.Int64
	ServerErrors   atomic.Int64
	MovesTotal     atomic.Int64
	MovesRejected  atomic.Int64
	ActiveRequests atomic.Int32
	StartTime      time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncRequests increments the handled requests counter
func (m *Metrics) IncRequests() {
	m.RequestsTotal.Add(1)
}

// IncServerErrors increments the 5xx responses counter
func (m *Metrics) IncServerErrors() {
	m.ServerErrors.Add(1)
}

// IncMoves increments the persisted moves counter
func (m *Metrics) IncMoves() {
	m.MovesTotal.Add(1)
}

// IncMovesRejected increments the refused moves counter
func (m *Metrics) IncMovesRejected() {
	m.MovesRejected.Add(1)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	RequestsTotal  int64     `json:"requests_total"`
	ServerErrors   int64     `json:"server_errors"`
	MovesTotal     int64     `json:"moves_total"`
	MovesRejected  int64     `json:"moves_rejected"`
	ActiveRequests int32     `json:"active_requests"`
	StartTime      time.Time `json:"start_time"`
	Uptime         string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RequestsTotal:  m.RequestsTotal.Load(),
		ServerErrors:   m.ServerErrors.Load(),
		MovesTotal:     m.MovesTotal.Load(),
		MovesRejected:  m.MovesRejected.Load(),
		ActiveRequests: m.ActiveRequests.Load(),
		StartTime:      m.StartTime,
		Uptime:         time.Since(m.StartTime).String(),
	}
}
