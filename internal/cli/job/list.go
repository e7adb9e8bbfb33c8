package job

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/shortlist/internal/cli"
	"github.com/thenoetrevino/shortlist/internal/cli/styles"
)

// ListCmd returns the jobs command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List jobs",
		Long: `List every job in the candidate store.

Examples:
  shortlist jobs

  # JSON output for scripts
  shortlist jobs --json

  # IDs only
  shortlist jobs --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode, Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}

	jobs, err := cliInstance.Client.ListJobs(ctx)
	if err != nil {
		return formatter.FailWithSuggestion(cli.ExitError, "JOB_FETCH_ERROR", err,
			"Is the server running? Start it with: shortlist serve")
	}

	if quietMode {
		for _, j := range jobs {
			formatter.Printf("%d\n", j.ID)
		}
		return nil
	}

	if jsonOutput {
		return formatter.Encode(map[string]any{
			"success": true,
			"jobs":    jobs,
		})
	}

	if len(jobs) == 0 {
		formatter.Printf("No jobs found\n")
		return nil
	}

	formatter.Printf("%s\n\n", styles.TitleStyle.Render("Jobs"))
	for _, j := range jobs {
		formatter.Printf("  [%d] %s\n", j.ID, j.Name)
	}
	return nil
}
