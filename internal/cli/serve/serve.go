package serve

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/shortlist/internal/app"
	"github.com/thenoetrevino/shortlist/internal/cli"
	"github.com/thenoetrevino/shortlist/internal/database"
	"github.com/thenoetrevino/shortlist/internal/server"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the candidate store server",
		Long: `Run the HTTP server that stores jobs and candidates in SQLite.

Examples:
  # Serve on the configured address with demo data
  shortlist serve --seed

  # Serve a specific database file
  shortlist serve --addr 127.0.0.1:9000 --db ./shortlist.db

  # Throwaway in-memory store
  shortlist serve --db :memory: --seed
`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default from config)")
	cmd.Flags().String("db", "", "SQLite database path (default ~/.shortlist/shortlist.db)")
	cmd.Flags().Bool("seed", false, "Insert demo jobs and candidates if the store is empty")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	addr, _ := cmd.Flags().GetString("addr")
	dbPath, _ := cmd.Flags().GetString("db")
	seed, _ := cmd.Flags().GetBool("seed")

	formatter := &cli.OutputFormatter{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}

	if addr == "" {
		addr = cliInstance.Config.Server.Addr
	}
	if dbPath == "" {
		dbPath = cliInstance.Config.Server.DBPath
	}
	if dbPath == "" {
		if dbPath, err = database.DefaultPath(); err != nil {
			return formatter.Fail(cli.ExitError, "DATABASE_ERROR", err)
		}
	}

	db, err := openStore(ctx, dbPath, seed)
	if err != nil {
		return formatter.Fail(cli.ExitError, "DATABASE_ERROR", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	application := app.New(db)
	srv := server.New(addr, application.JobService, application.CandidateService)

	formatter.Printf("Serving %s on http://%s\n", dbPath, addr)
	if err := srv.Start(ctx); err != nil {
		return formatter.Fail(cli.ExitError, "SERVER_ERROR", err)
	}
	return nil
}

func openStore(ctx context.Context, path string, seed bool) (*sql.DB, error) {
	db, err := database.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	if seed {
		if err := database.Seed(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}
	return db, nil
}
