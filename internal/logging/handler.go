// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// Options configures a Handler.
type Options struct {
	// Minimum level to log.
	// nil means slog.LevelInfo.
	Level slog.Leveler
	// Whether to color the level tag.
	Color bool
}

// Handler is a slog.Handler that writes one line per record:
//
//	[LEVEL] owner |: message key=value ...
type Handler struct {
	mu     *sync.Mutex
	w      io.Writer
	opts   Options
	owner  string
	attrs  string
	prefix string
}

// NewHandler creates a new Handler writing to w.
// opts may be nil.
func NewHandler(w io.Writer, opts *Options) *Handler {
	h := &Handler{mu: new(sync.Mutex), w: w}
	if opts != nil {
		h.opts = *opts
	}
	if h.opts.Level == nil {
		h.opts.Level = slog.LevelInfo
	}
	return h
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.opts.Level.Level()
}

var levelStyles = [...]struct {
	tag   string
	style ansi.Style
}{
	{"[DEBUG]", ansi.Style{}.ForegroundColor(ansi.Green)},
	{"[INFO] ", ansi.Style{}.ForegroundColor(ansi.Blue)},
	{"[WARN] ", ansi.Style{}.ForegroundColor(ansi.Yellow)},
	{"[ERROR]", ansi.Style{}.ForegroundColor(ansi.Red).Bold()},
}

func levelTag(l slog.Level, color bool) string {
	var i int
	switch {
	case l < slog.LevelInfo:
		i = 0
	case l < slog.LevelWarn:
		i = 1
	case l < slog.LevelError:
		i = 2
	default:
		i = 3
	}
	if color {
		return levelStyles[i].style.Styled(levelStyles[i].tag)
	}
	return levelStyles[i].tag
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(levelTag(r.Level, h.opts.Color))
	sb.WriteByte(' ')
	owner := h.owner
	var attrs strings.Builder
	attrs.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		if h.prefix == "" && a.Key == OwnerKey {
			owner = a.Value.String()
		} else {
			appendAttr(&attrs, h.prefix, a)
		}
		return true
	})
	if owner == "" {
		owner = "-"
	}
	sb.WriteString(owner)
	sb.WriteString(" |: ")
	sb.WriteString(r.Message)
	sb.WriteString(attrs.String())
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(as []slog.Attr) slog.Handler {
	g := *h
	var sb strings.Builder
	sb.WriteString(h.attrs)
	for _, a := range as {
		if h.prefix == "" && a.Key == OwnerKey {
			g.owner = a.Value.String()
			continue
		}
		appendAttr(&sb, h.prefix, a)
	}
	g.attrs = sb.String()
	return &g
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	g := *h
	g.prefix = h.prefix + name + "."
	return &g
}

func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, b := range a.Value.Group() {
			appendAttr(sb, prefix, b)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	s := a.Value.String()
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		s = strconv.Quote(s)
	}
	sb.WriteString(s)
}

// FileHandler is a Handler that appends to a file.
// Escape sequences are removed from its output.
type FileHandler struct {
	*Handler
	f *os.File
}

type stripWriter struct{ w io.Writer }

func (s stripWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(s.w, ansi.Strip(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// NewFileHandler opens path for appending, creating it if
// needed, and returns a handler writing to it.
func NewFileHandler(path string, level slog.Leveler) (*FileHandler, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileHandler{
		Handler: NewHandler(stripWriter{f}, &Options{Level: level}),
		f:       f,
	}, nil
}

// Close closes the underlying file.
func (h *FileHandler) Close() error { return h.f.Close() }
