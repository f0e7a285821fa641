// Package logger builds the structured terminal logger shared by all
// components. Log lines go to stderr so stdout carries only the report.
package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// Logger is the structured logger used across the application.
type Logger = pterm.Logger

// Levels lists the accepted level names.
var Levels = []string{"trace", "debug", "info", "warn", "error"}

// ParseLevel converts a level name to a pterm log level.
func ParseLevel(level string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "", "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	default:
		return pterm.LogLevelInfo, fmt.Errorf("unknown log level %q (want one of %s)", level, strings.Join(Levels, ", "))
	}
}

// New returns a logger writing to w at the given level.
func New(level string, w io.Writer) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return pterm.DefaultLogger.
		WithLevel(lvl).
		WithWriter(w).
		WithTime(true), nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return pterm.DefaultLogger.
		WithLevel(pterm.LogLevelError).
		WithWriter(io.Discard)
}
