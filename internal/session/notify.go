package session

import "log/slog"

// Level represents the severity of a user-facing notification
type Level int

const (
	// LevelInfo represents informational notifications
	LevelInfo Level = iota
	// LevelWarning represents warnings
	LevelWarning
	// LevelError represents failures the user should know about
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notifier surfaces reconciliation results to the user
type Notifier interface {
	Notify(level Level, message string)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(level Level, message string)

// Notify calls f(level, message).
func (f NotifierFunc) Notify(level Level, message string) {
	f(level, message)
}

// logNotifier is the default Notifier; it only logs
type logNotifier struct{}

func (logNotifier) Notify(level Level, message string) {
	switch level {
	case LevelError:
		slog.Error(message)
	case LevelWarning:
		slog.Warn(message)
	default:
		slog.Info(message)
	}
}
