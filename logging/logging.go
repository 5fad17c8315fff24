// Package logging builds the slog loggers used by tacgrid binaries. Library
// packages never log on their own: they accept a *slog.Logger through their
// options and discard output by default.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var (
	// ErrUnknownLevel indicates a level name slog does not recognise.
	ErrUnknownLevel = errors.New("logging: unknown level")

	// ErrUnknownFormat indicates a format other than text or json.
	ErrUnknownFormat = errors.New("logging: unknown format")
)

// Format selects the handler encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text" (or "") and "json", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ParseLevel accepts slog level names such as "debug", "INFO" or "warn+2".
// An empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
	return lvl, nil
}

// New returns a logger writing to w. level may be a *slog.LevelVar to allow
// changing verbosity at run time.
func New(w io.Writer, level slog.Leveler, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Bracket runs fn with lv temporarily set to lvl.
func Bracket(lv *slog.LevelVar, lvl slog.Level, fn func()) {
	prev := lv.Level()
	lv.Set(lvl)
	defer lv.Set(prev)
	fn()
}
