package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out io.Writer // defaults to os.Stdout
	Err io.Writer // defaults to os.Stderr
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			_, err := fmt.Fprintf(f.out(), "%d\n", idGetter.GetID())
			return err
		}
	}

	if f.JSON {
		return f.Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

// Encode writes v as one line of JSON
func (f *OutputFormatter) Encode(v any) error {
	return json.NewEncoder(f.out()).Encode(v)
}

// Printf writes human-readable output
func (f *OutputFormatter) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(f.out(), format, args...)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return f.Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	_, _ = fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	if suggestion != "" {
		_, _ = fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err under code and returns it with the exit code attached
func (f *OutputFormatter) Fail(exitCode int, code string, err error) error {
	return f.FailWithSuggestion(exitCode, code, err, "")
}

// FailWithSuggestion is Fail with a hint for the user
func (f *OutputFormatter) FailWithSuggestion(exitCode int, code string, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &CommandError{Code: exitCode, Err: err}
}
