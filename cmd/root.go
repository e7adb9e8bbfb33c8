package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/shortlist/internal/cli"
	"github.com/thenoetrevino/shortlist/internal/cli/candidate"
	"github.com/thenoetrevino/shortlist/internal/cli/job"
	"github.com/thenoetrevino/shortlist/internal/cli/serve"
	"github.com/thenoetrevino/shortlist/internal/cli/styles"
	"github.com/thenoetrevino/shortlist/internal/config"
	"github.com/thenoetrevino/shortlist/internal/logging"
)

// NewRootCmd builds the shortlist command tree
func NewRootCmd() *cobra.Command {
	var logFile io.Closer

	rootCmd := &cobra.Command{
		Use:   "shortlist",
		Short: "Shortlist - a terminal candidate board",
		Long: `Shortlist arranges a job's candidates on a board with one column per
status. Moves show at once and are saved to the candidate store in the
background; a move the store rejects is undone.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			closer, err := logging.Init()
			if err != nil {
				// logging is best effort; slog keeps writing to stderr
				slog.Warn("failed to initialize logging", "error", err)
			}
			logFile = closer

			ctx := cmd.Context()
			if _, err := cli.GetCLIFromContext(ctx); err == nil {
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				formatter := &cli.OutputFormatter{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
				return formatter.Fail(cli.ExitError, "CONFIG_ERROR", fmt.Errorf("failed to load config: %w", err))
			}
			styles.Init(cfg.ColorScheme)

			cmd.SetContext(cli.WithCLI(ctx, cli.New(cfg)))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				_ = logFile.Close()
			}
		},
	}

	rootCmd.AddCommand(serve.ServeCmd())
	rootCmd.AddCommand(job.ListCmd())
	rootCmd.AddCommand(candidate.BoardCmd())
	rootCmd.AddCommand(candidate.MoveCmd())
	rootCmd.AddCommand(candidate.TUICmd())

	return rootCmd
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
