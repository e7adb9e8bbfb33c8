package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/shortlist/internal/config"
)

const columnWidth = 30

// styles are built once from the color scheme
type styles struct {
	title    lipgloss.Style
	column   lipgloss.Style
	header   lipgloss.Style
	card     lipgloss.Style
	selected lipgloss.Style
	carried  lipgloss.Style
	slot     lipgloss.Style
	empty    lipgloss.Style
	subtle   lipgloss.Style
}

func newStyles(c config.ColorScheme) styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.CardBorder)).
		Foreground(lipgloss.Color(c.Normal)).
		Width(columnWidth - 4).
		Padding(0, 1)

	return styles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Title)).
			Bold(true).
			Padding(0, 1),
		column: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(c.ColumnBorder)).
			Width(columnWidth).
			Padding(0, 1),
		header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Accent)).
			Bold(true),
		card:     card,
		selected: card.BorderForeground(lipgloss.Color(c.SelectedBorder)),
		carried: card.
			BorderForeground(lipgloss.Color(c.CarriedBorder)).
			Foreground(lipgloss.Color(c.Subtle)),
		slot: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.CarriedBorder)).
			Bold(true),
		empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Subtle)).
			Italic(true),
		subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Subtle)),
	}
}
