package adapters

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a text logger writing to w (stderr when nil) at the given
// level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
