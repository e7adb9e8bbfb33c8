// Package boardview renders a job's board for the terminal and as markdown
package boardview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/shortlist/internal/board"
	"github.com/thenoetrevino/shortlist/internal/cli/styles"
	"github.com/thenoetrevino/shortlist/internal/models"
)

const emptyColumn = "No candidates"

// Markdown renders the board as a markdown document: one heading per column
// in board order and a numbered list of emails in column order. The output
// depends only on its inputs.
func Markdown(job models.Job, store board.ColumnStore) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", job.Name)
	for _, status := range models.Statuses {
		cards := store.ColumnOf(status)
		fmt.Fprintf(&b, "\n## %s (%d)\n\n", styles.ColumnTitle(status), len(cards))
		if len(cards) == 0 {
			fmt.Fprintf(&b, "_%s_\n", emptyColumn)
			continue
		}
		for i, c := range cards {
			fmt.Fprintf(&b, "%d. %s\n", i+1, c.Email)
		}
	}

	return b.String()
}

// RenderMarkdown renders the markdown board through glamour. An empty style
// picks one from the terminal background.
func RenderMarkdown(job models.Job, store board.ColumnStore, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(Markdown(job, store))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// Render draws the board as side-by-side lipgloss columns
func Render(job models.Job, store board.ColumnStore) string {
	columns := make([]string, 0, len(models.Statuses))
	for _, status := range models.Statuses {
		columns = append(columns, renderColumn(status, store.ColumnOf(status)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render(job.Name),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
	)
}

func renderColumn(status models.Status, cards []models.Candidate) string {
	parts := []string{styles.HeaderStyle.Render(fmt.Sprintf("%s (%d)", styles.ColumnTitle(status), len(cards)))}
	for _, c := range cards {
		parts = append(parts, styles.RenderCard(c.Email))
	}
	if len(cards) == 0 {
		parts = append(parts, styles.SubtitleStyle.Render(emptyColumn))
	}
	return styles.ColumnStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
