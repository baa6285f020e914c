package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/myrjola/detectivequest/internal/errors"
)

var ErrInvalidLevel = errors.NewSentinel("invalid log level")

// ParseLevel parses debug, info, warn or error, ignoring case.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, errors.Wrap(ErrInvalidLevel, "parse level", slog.String("level", s))
	}
	return level, nil
}

// New creates a text logger writing to w at the given level with the context enrichment of [ContextHandler].
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := NewContextHandler(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	}))
	return slog.New(handler)
}

// Open creates a logger for the command line. Logs are appended to path, or written to stderr when path is empty. The
// returned close function releases the log file.
func Open(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		return New(os.Stderr, level), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:mnd // rw-r--r--
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file", slog.String("path", path))
	}
	return New(f, level), f.Close, nil
}
