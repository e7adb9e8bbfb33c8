package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/shortlist/cmd"
	"github.com/thenoetrevino/shortlist/internal/cli"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)

	err := cmd.Execute(ctx)
	cancel()

	var cmdErr *cli.CommandError
	if err != nil && !errors.As(err, &cmdErr) {
		// errors from cobra itself (unknown flag, missing required flag) are
		// not reported by the commands
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitUsage)
	}
	os.Exit(cli.ExitCode(err))
}
