package candidate

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/shortlist/internal/cli"
	"github.com/thenoetrevino/shortlist/internal/gateway"
	"github.com/thenoetrevino/shortlist/internal/models"
	"github.com/thenoetrevino/shortlist/internal/types"
)

const jobsSuggestion = "List jobs with: shortlist jobs"

func addJobFlag(cmd *cobra.Command) {
	cmd.Flags().Int("job", 0, "Job ID (required)")
	_ = cmd.MarkFlagRequired("job")
}

// jobID reads and validates --job
func jobID(cmd *cobra.Command, formatter *cli.OutputFormatter) (types.JobID, error) {
	raw, _ := cmd.Flags().GetInt("job")
	id := types.JobID(raw)
	if !id.Valid() {
		return 0, formatter.FailWithSuggestion(cli.ExitUsage, "INVALID_JOB_ID",
			fmt.Errorf("job ID must be a positive integer, got %d", raw), jobsSuggestion)
	}
	return id, nil
}

// fetchBoard loads the job and its candidates, reporting failures through
// formatter
func fetchBoard(ctx context.Context, c *cli.CLI, id types.JobID, formatter *cli.OutputFormatter) (*models.Job, []models.Candidate, error) {
	job, candidates, err := gateway.FetchBoard(ctx, c.Client, id)
	switch {
	case err == nil:
		return job, candidates, nil
	case errors.Is(err, gateway.ErrNotFound):
		return nil, nil, formatter.FailWithSuggestion(cli.ExitNotFound, "JOB_NOT_FOUND",
			fmt.Errorf("job %d not found", id), jobsSuggestion)
	default:
		return nil, nil, formatter.FailWithSuggestion(cli.ExitError, "BOARD_FETCH_ERROR", err,
			"Is the server running? Start it with: shortlist serve")
	}
}

func newFormatter(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	return &cli.OutputFormatter{JSON: jsonOutput, Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
}
