package main

import (
	"io"
	"log/slog"
)

// InitLogger installs the default slog logger. Logs go to w (stderr) so
// stdout only carries the program output.
func InitLogger(w io.Writer, level slog.Level, json bool) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}
