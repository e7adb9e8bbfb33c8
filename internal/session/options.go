package session

import "time"

const (
	defaultPersistTimeout = 15 * time.Second
	defaultQueueSize      = 64
)

// Option is a functional option for configuring a Session
type Option func(*Session)

// WithNotifier sets where rollback and failure messages are sent
func WithNotifier(n Notifier) Option {
	return func(s *Session) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithPersistTimeout bounds each Persist call, retries included
func WithPersistTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithQueueSize sets how many moves may wait for persistence at once
func WithQueueSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.queueSize = n
		}
	}
}
