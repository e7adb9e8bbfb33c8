package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/shortlist/internal/models"
	"github.com/thenoetrevino/shortlist/internal/tui/notifications"
)

// View renders the board
func (m Model) View() string {
	var b strings.Builder

	title := m.styles.title.Render(m.job.Name)
	if pending := m.session.Pending(); pending > 0 {
		title += m.styles.subtle.Render(fmt.Sprintf("  saving %d…", pending))
	}
	b.WriteString(title)
	b.WriteString("\n")

	columns := make([]string, 0, len(models.Statuses))
	for _, status := range models.Statuses {
		columns = append(columns, m.renderColumn(status))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")

	if m.notes.HasAny() {
		b.WriteString(notifications.RenderAll(m.notes.All(), m.scheme))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderColumn(status models.Status) string {
	cards := m.session.Store().ColumnOf(status)
	active := m.ui.Column() == status
	carrying := m.ui.Carrying()

	parts := []string{m.styles.header.Render(fmt.Sprintf("%s (%d)", columnTitle(status), len(cards)))}

	// drop marker shows where the carried card will land
	slot := -1
	if active && carrying != nil {
		slot = m.ui.Row()
		// in the source column the card is removed before it is reinserted
		if carrying.Column == status && slot > carrying.Index {
			slot++
		}
	}

	for i, c := range cards {
		if i == slot {
			parts = append(parts, m.styles.slot.Render("▸ drop here"))
		}

		style := m.styles.card
		switch {
		case carrying != nil && carrying.Column == status && carrying.Index == i:
			style = m.styles.carried
		case carrying == nil && active && m.ui.Row() == i:
			style = m.styles.selected
		}
		parts = append(parts, style.Render(c.Email))
	}
	if slot >= len(cards) {
		parts = append(parts, m.styles.slot.Render("▸ drop here"))
	}
	if len(cards) == 0 && slot < 0 {
		parts = append(parts, m.styles.empty.Render("No candidates"))
	}

	return m.styles.column.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func columnTitle(s models.Status) string {
	name := s.String()
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
