package candidate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/shortlist/internal/board"
	"github.com/thenoetrevino/shortlist/internal/cli"
	"github.com/thenoetrevino/shortlist/internal/cli/styles"
	"github.com/thenoetrevino/shortlist/internal/models"
	"github.com/thenoetrevino/shortlist/internal/session"
)

// MoveCmd returns the move command
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a candidate to another slot on the board",
		Long: `Move the candidate at one board slot to another and wait until the store
has saved it. Slots are written status:index with 0-based indexes; the
destination index is where the candidate ends up.

Examples:
  # Move the first rejected candidate to the bottom of the column
  shortlist move --job 1 --from rejected:0 --to rejected:2

  # Move a new candidate to the top of interview
  shortlist move --job 1 --from new:0 --to interview:0

  # JSON output for scripts
  shortlist move --job 1 --from new:0 --to hired:0 --json
`,
		Args: cobra.NoArgs,
		RunE: runMove,
	}

	addJobFlag(cmd)
	cmd.Flags().String("from", "", "Slot of the candidate to move, status:index (required)")
	cmd.Flags().String("to", "", "Destination slot, status:index (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := newFormatter(cmd)

	id, err := jobID(cmd, formatter)
	if err != nil {
		return err
	}

	rawFrom, _ := cmd.Flags().GetString("from")
	rawTo, _ := cmd.Flags().GetString("to")
	from, err := parseSlot(rawFrom, formatter)
	if err != nil {
		return err
	}
	to, err := parseSlot(rawTo, formatter)
	if err != nil {
		return err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}

	_, candidates, err := fetchBoard(ctx, cliInstance, id, formatter)
	if err != nil {
		return err
	}

	sess := session.New(ctx, id, candidates, cliInstance.Client,
		session.WithPersistTimeout(cliInstance.Config.Client.Timeout*2))
	defer func() {
		if err := sess.Close(); err != nil {
			slog.Error("failed to close session", "error", err)
		}
	}()

	intent, err := sess.HandleMove(board.MoveEvent{Source: from, Destination: &to})
	switch {
	case errors.Is(err, board.ErrMalformedEvent):
		return formatter.FailWithSuggestion(cli.ExitValidation, "INVALID_MOVE", err,
			fmt.Sprintf("Show the board with: shortlist board --job %d", id))
	case err != nil:
		return formatter.Fail(cli.ExitError, "MOVE_ERROR", err)
	}

	if intent == nil {
		if formatter.JSON {
			return formatter.Encode(map[string]any{
				"success": true,
				"moved":   false,
				"from":    cli.FormatLocation(from),
				"to":      cli.FormatLocation(to),
			})
		}
		formatter.Printf("Nothing to move: %s is already at %s\n", rawFrom, cli.FormatLocation(to))
		return nil
	}

	var outcome session.Outcome
	select {
	case outcome = <-sess.Outcomes():
	case <-ctx.Done():
		return formatter.Fail(cli.ExitError, "MOVE_ERROR", ctx.Err())
	}

	if res := sess.Resolve(outcome); res != session.ResolutionConfirmed {
		err := outcome.Err
		if err == nil {
			err = fmt.Errorf("move was not confirmed: %s", res)
		}
		return formatter.Fail(cli.ExitError, "MOVE_FAILED", err)
	}

	stored := intent.Candidate()
	if outcome.Stored != nil {
		stored = *outcome.Stored
	}

	if formatter.JSON {
		return formatter.Encode(map[string]any{
			"success":   true,
			"moved":     true,
			"from":      cli.FormatLocation(from),
			"to":        cli.FormatLocation(board.Location{Column: stored.Status, Index: stored.Position}),
			"candidate": stored,
		})
	}

	formatter.Printf("%s %s moved from %s to %s\n",
		styles.SuccessStyle.Render("✓"),
		stored.Email,
		cli.FormatLocation(from),
		cli.FormatLocation(board.Location{Column: stored.Status, Index: stored.Position}))
	return nil
}

// parseSlot parses a status:index flag value
func parseSlot(raw string, formatter *cli.OutputFormatter) (board.Location, error) {
	loc, err := cli.ParseLocation(raw)
	switch {
	case err == nil:
		return loc, nil
	case errors.Is(err, models.ErrUnknownStatus):
		return board.Location{}, formatter.FailWithSuggestion(cli.ExitValidation, "INVALID_STATUS", err,
			"Statuses are: new, interview, hired, rejected")
	default:
		return board.Location{}, formatter.FailWithSuggestion(cli.ExitUsage, "INVALID_SLOT", err,
			"Write slots as status:index, e.g. rejected:0")
	}
}
