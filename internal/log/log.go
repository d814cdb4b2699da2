// Package log configures structured logging for confpull using log/slog.
package log

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Setup configures the default slog logger based on verbosity flags.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Output is written to stderr using slog.TextHandler.
func Setup(verbose, quiet bool) {
	var level slog.Level
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// NewRunID mints a correlation ID for one driver run (one invocation of
// `confpull run`, covering every Collection it executes).
func NewRunID() string {
	return uuid.NewString()
}

// With returns a logger that attaches run_id to every record, for the
// duration of one driver run. Pass the result down to every component
// invoked for that run instead of calling slog's package-level functions.
func With(runID string) *slog.Logger {
	return slog.Default().With("run_id", runID)
}
