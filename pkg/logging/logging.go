// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup("info")
//	logger := logging.New(os.Stderr, slog.LevelDebug)
//
// Set NO_COLOR to disable ANSI colors.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a tint logger at the named level as the slog default.
func Setup(level string) error {
	l, err := ParseLevel(level)
	if err != nil {
		return err
	}
	slog.SetDefault(New(os.Stderr, l))
	return nil
}

// New returns a tint-backed logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  level == slog.LevelDebug,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}))
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
