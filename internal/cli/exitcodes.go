package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: network errors, a move the remote store refused, unexpected
	// failures, or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags, unparseable flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: unknown job, no candidate at the given slot.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: responses from the remote store that cannot be decoded.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: unknown status names, indexes outside a column.
	ExitValidation = 5
)

// CommandError carries the process exit code for a failed command. The
// message has already been shown to the user when it is returned.
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode maps a command error to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return ExitError
}
