// Package notifications renders user-facing notification banners
package notifications

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/shortlist/internal/config"
	"github.com/thenoetrevino/shortlist/internal/tui/state"
)

type style struct {
	icon       string
	foreground string
	background string
}

func styleFor(level state.NotificationLevel, scheme config.ColorScheme) style {
	switch level {
	case state.LevelWarning:
		return style{icon: "⚠", foreground: scheme.WarningFg, background: scheme.WarningBg}
	case state.LevelError:
		return style{icon: "✕", foreground: scheme.ErrorFg, background: scheme.ErrorBg}
	default:
		return style{icon: "•", foreground: scheme.InfoFg, background: scheme.InfoBg}
	}
}

// RenderInline renders a compact single-line notification
func RenderInline(n state.Notification, scheme config.ColorScheme) string {
	s := styleFor(n.Level, scheme)

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Background(lipgloss.Color(s.background)).
		Padding(0, 1).
		Render(s.icon + " " + n.Message)
}

// RenderAll stacks every notification, oldest first
func RenderAll(ns []state.Notification, scheme config.ColorScheme) string {
	lines := make([]string, 0, len(ns))
	for _, n := range ns {
		lines = append(lines, RenderInline(n, scheme))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
