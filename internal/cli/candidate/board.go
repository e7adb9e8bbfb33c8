package candidate

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/shortlist/internal/board"
	"github.com/thenoetrevino/shortlist/internal/cli"
	"github.com/thenoetrevino/shortlist/internal/cli/boardview"
	"github.com/thenoetrevino/shortlist/internal/models"
)

const markdownWidth = 100

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show a job's candidate board",
		Long: `Show the candidates of a job grouped by status, in board order.

Examples:
  shortlist board --job 1

  # Markdown, rendered for the terminal
  shortlist board --job 1 --markdown

  # Plain markdown for pasting elsewhere
  shortlist board --job 1 --markdown --style notty

  # JSON output for scripts
  shortlist board --job 1 --json
`,
		Args: cobra.NoArgs,
		RunE: runBoard,
	}

	addJobFlag(cmd)
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("markdown", false, "Render the board as markdown")
	cmd.Flags().String("style", "", "Markdown style (dark, light, notty, ...; default picks from the terminal)")

	return cmd
}

// columnJSON is one board column in JSON output
type columnJSON struct {
	Status     models.Status      `json:"status"`
	Candidates []models.Candidate `json:"candidates"`
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	markdown, _ := cmd.Flags().GetBool("markdown")
	style, _ := cmd.Flags().GetString("style")
	formatter := newFormatter(cmd)

	id, err := jobID(cmd, formatter)
	if err != nil {
		return err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}

	job, candidates, err := fetchBoard(ctx, cliInstance, id, formatter)
	if err != nil {
		return err
	}
	store := board.Load(candidates)

	if formatter.JSON {
		columns := make([]columnJSON, 0, len(models.Statuses))
		for _, status := range models.Statuses {
			columns = append(columns, columnJSON{Status: status, Candidates: store.ColumnOf(status)})
		}
		return formatter.Encode(map[string]any{
			"success": true,
			"job":     job,
			"columns": columns,
		})
	}

	if markdown {
		out, err := boardview.RenderMarkdown(*job, store, style, markdownWidth)
		if err != nil {
			return formatter.Fail(cli.ExitError, "RENDER_ERROR", err)
		}
		formatter.Printf("%s", out)
		return nil
	}

	formatter.Printf("%s\n", boardview.Render(*job, store))
	return nil
}
