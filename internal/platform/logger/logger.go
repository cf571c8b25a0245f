package logger

import (
	"log/slog"
	"os"
)

// New returns the structured JSON logger used across services and handlers.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
