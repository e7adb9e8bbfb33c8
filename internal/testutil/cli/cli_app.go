// Package cli runs CLI commands against a live candidate store in tests.
// It is separate from testutil so that packages testutil depends on can still
// use it.
package cli

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/shortlist/internal/cli"
	"github.com/thenoetrevino/shortlist/internal/config"
	"github.com/thenoetrevino/shortlist/internal/testutil"
)

// SetupCLITest starts a store server over a seeded in-memory database and
// returns the database together with a CLI pointed at the server
func SetupCLITest(t *testing.T) (*sql.DB, *cli.CLI) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ts := testutil.NewStoreServer(t, db)

	cfg := config.Default()
	cfg.Client.APIURL = ts.URL
	cfg.Client.Timeout = 2 * time.Second
	cfg.Client.MaxRetries = 1

	return db, cli.New(cfg)
}

// ExecuteCLICommand runs cmd with args and the CLI in its context, returning
// what it wrote to stdout and stderr
func ExecuteCLICommand(t *testing.T, c *cli.CLI, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if c == nil {
		t.Fatal("cli cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.WithCLI(context.Background(), c))
	return stdout.String(), stderr.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
