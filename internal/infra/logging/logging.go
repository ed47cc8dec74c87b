// Package logging configures the process-wide structured logger.
// Dispatch failures are logged with tool name and error class so a bad
// call can be debugged without ever writing credentials to the log.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format is the log output format.
type Format string

const (
	// FormatJSON outputs logs in JSON format for machine parsing.
	FormatJSON Format = "json"
	// FormatText outputs logs in human-readable text format.
	FormatText Format = "text"
)

// Standard field keys used across the codebase.
const (
	ToolKey      = "tool"
	ErrorKindKey = "error_kind"
	ProviderKey  = "provider"
	DurationKey  = "duration_ms"
)

// New builds a slog.Logger writing to w.
// Level is one of debug, info, warn, error (default info).
func New(w io.Writer, level string, format Format) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
