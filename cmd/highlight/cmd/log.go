package cmd

import (
	"io"
	"log/slog"
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// setDefaultLogger installs logger as slog's default and returns a func
// restoring the previous one.
func setDefaultLogger(logger *slog.Logger) func() {
	prev := slog.Default()
	slog.SetDefault(logger)
	return func() { slog.SetDefault(prev) }
}
