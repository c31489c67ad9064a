package main

import (
	"io"
	"log/slog"
)

// NewLogger returns a JSON logger whose level can be raised or lowered
// after configuration is loaded.
func NewLogger(w io.Writer, level *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
