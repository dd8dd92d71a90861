package logging

import (
	"log/slog"
	"os"
)

// New returns a configured slog.Logger. Format is "json" or "text".
func New(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
