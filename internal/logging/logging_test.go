// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, &Options{Level: slog.LevelDebug}))

	l.With(OwnerKey, "shader").Warn("uniform not found", "name", "model")
	l.Info("no owner")
	l.With(OwnerKey, "app").Debug("frame", "n", 3, "msg", "a b")
	l.WithGroup("g").Error("grouped", "k", 1)
	l.Error("inline owner", OwnerKey, "model")

	want := []string{
		"[WARN]  shader |: uniform not found name=model",
		"[INFO]  - |: no owner",
		`[DEBUG] app |: frame n=3 msg="a b"`,
		"[ERROR] - |: grouped g.k=1",
		"[ERROR] model |: inline owner",
	}
	have := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(have) != len(want) {
		t.Fatalf("Handler: lines\nhave %q\nwant %q", have, want)
	}
	for i := range want {
		if have[i] != want[i] {
			t.Fatalf("Handler: line %d\nhave %q\nwant %q", i, have[i], want[i])
		}
	}
}

func TestHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, &Options{Level: slog.LevelWarn}))
	l.Debug("x")
	l.Info("y")
	if buf.Len() != 0 {
		t.Fatalf("Handler: below level\nhave %q\nwant \"\"", buf.String())
	}
	l.Warn("z")
	if buf.Len() == 0 {
		t.Fatal("Handler: at level\nhave \"\"\nwant output")
	}

	buf.Reset()
	slog.New(NewHandler(&buf, nil)).Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("Handler: default level\nhave %q\nwant \"\"", buf.String())
	}
}

func TestHandlerColor(t *testing.T) {
	var buf bytes.Buffer
	slog.New(NewHandler(&buf, &Options{Color: true})).With(OwnerKey, "app").Warn("w")
	s := buf.String()
	if s == ansi.Strip(s) {
		t.Fatalf("Handler: Color\nhave %q\nwant escape sequences", s)
	}
	if x := ansi.Strip(s); x != "[WARN]  app |: w\n" {
		t.Fatalf("Handler: Color\nhave %q\nwant %q", x, "[WARN]  app |: w\n")
	}
}

func TestFileHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	for i := range 2 {
		h, err := NewFileHandler(path, slog.LevelInfo)
		if err != nil {
			t.Fatalf("NewFileHandler: %v", err)
		}
		slog.New(h).With(OwnerKey, "texture").Info("loaded", "n", i)
		if err := h.Close(); err != nil {
			t.Fatalf("FileHandler.Close: %v", err)
		}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "[INFO]  texture |: loaded n=0\n[INFO]  texture |: loaded n=1\n"
	if string(b) != want {
		t.Fatalf("FileHandler\nhave %q\nwant %q", b, want)
	}
}

func TestParseLevel(t *testing.T) {
	for _, x := range [...]struct {
		s    string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
	} {
		l, err := ParseLevel(x.s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", x.s, err)
		}
		if l != x.want {
			t.Fatalf("ParseLevel(%q)\nhave %v\nwant %v", x.s, l, x.want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatal("ParseLevel: unexpected nil error")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("Logger: default logger should be disabled")
	}
	var buf bytes.Buffer
	SetLogger(slog.New(NewHandler(&buf, nil)))
	For("camera").Info("added", "name", "free")
	if s := buf.String(); s != "[INFO]  camera |: added name=free\n" {
		t.Fatalf("For\nhave %q\nwant %q", s, "[INFO]  camera |: added name=free\n")
	}
	SetLogger(nil)
	buf.Reset()
	For("camera").Error("dropped")
	if buf.Len() != 0 {
		t.Fatalf("SetLogger(nil)\nhave %q\nwant \"\"", buf.String())
	}
}

func TestSetup(t *testing.T) {
	defer SetLogger(nil)
	path := filepath.Join(t.TempDir(), "craft.log")
	done, err := Setup("debug", path)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	For("app").Debug("hello")
	if err := done(); err != nil {
		t.Fatalf("Setup: close: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[DEBUG] app |: hello\n" {
		t.Fatalf("Setup\nhave %q\nwant %q", b, "[DEBUG] app |: hello\n")
	}
	if _, err := Setup("loud", ""); err == nil {
		t.Fatal("Setup: unexpected nil error")
	}
}
