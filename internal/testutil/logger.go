package testutil

import (
	"io"
	"log/slog"
)

// Logger returns a slog logger that discards everything; test output stays
// readable.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
