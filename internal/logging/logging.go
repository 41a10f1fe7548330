// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package logging provides the process-wide logger and
// the line-oriented handler used to print its records.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/term"
)

// OwnerKey is the attribute key identifying the component
// that emitted a record.
const OwnerKey = "owner"

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() { loggerPtr.Store(newNopLogger()) }

// SetLogger sets the logger used by every package of the
// module. Passing nil disables logging, which is also the
// default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger { return loggerPtr.Load() }

// For returns the current logger tagged with owner.
// It should be called at the logging site rather than
// cached, so that later calls to SetLogger take effect.
func For(owner string) *slog.Logger { return Logger().With(OwnerKey, owner) }

// ParseLevel parses a level name.
// Valid names are "debug", "info", "warn" and "error",
// in any case. The empty string is parsed as "info".
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
	}
	return 0, fmt.Errorf("logging: invalid level %q", s)
}

// Setup parses level and installs a logger writing to
// stderr or, if file is not empty, appending to file.
// Output to stderr is colored when stderr is a terminal.
// The returned function closes the file, if any.
func Setup(level, file string) (done func() error, err error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if file != "" {
		h, err := NewFileHandler(file, lvl)
		if err != nil {
			return nil, err
		}
		SetLogger(slog.New(h))
		return h.Close, nil
	}
	h := NewHandler(os.Stderr, &Options{
		Level: lvl,
		Color: term.IsTerminal(int(os.Stderr.Fd())),
	})
	SetLogger(slog.New(h))
	return func() error { return nil }, nil
}
