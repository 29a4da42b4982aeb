package logging

import (
	"log/slog"
	"os"
)

// New creates the application logger at the given level.
// Records go to Stderr: Stdout carries the rating row in play mode and the
// JSON-RPC stream of the MCP stdio transport.
// The "error" attribute key is shortened to "err".
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a logger that drops every record.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
