package candidate

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/shortlist/internal/cli"
	"github.com/thenoetrevino/shortlist/internal/tui"
)

// TUICmd returns the interactive board command
func TUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Rearrange a job's candidates interactively",
		Long: `Open the interactive board for a job. Pick a card up with space, carry it
with the arrow keys or hjkl and drop it with space or enter. Moves are shown
at once and saved in the background; a move the store rejects is undone.`,
		Args: cobra.NoArgs,
		RunE: runTUI,
	}

	addJobFlag(cmd)

	return cmd
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
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

	if err := tui.Run(ctx, cliInstance.Config, cliInstance.Client, *job, candidates); err != nil {
		return formatter.Fail(cli.ExitError, "TUI_ERROR", err)
	}
	return nil
}
