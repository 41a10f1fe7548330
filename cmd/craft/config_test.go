// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gviegas/craft/driver/drivertest"
	"github.com/gviegas/craft/linear"
)

func TestLoadSettings(t *testing.T) {
	s := defaultSettings()
	err := loadSettings(strings.NewReader(`
width: 1024
height: 768
vsync: true
disable_cursor: true
shaders: res/shaders
log_level: debug
camera: orbit
`), &s)
	if err != nil {
		t.Fatalf("loadSettings:\nhave %v\nwant nil", err)
	}
	want := defaultSettings()
	want.Width, want.Height = 1024, 768
	want.VSync, want.DisableCursor = true, true
	want.Shaders = "res/shaders"
	want.LogLevel = "debug"
	want.Camera = "orbit"
	if s != want {
		t.Fatalf("loadSettings:\nhave %+v\nwant %+v", s, want)
	}

	s = defaultSettings()
	if err := loadSettings(strings.NewReader(""), &s); err != nil || s != defaultSettings() {
		t.Fatalf("loadSettings: empty\nhave %+v, %v\nwant defaults, nil", s, err)
	}
	if err := loadSettings(strings.NewReader("fullscreen: true\n"), &s); err == nil {
		t.Fatal("loadSettings: unknown key\nhave nil\nwant non-nil")
	}
	if err := loadSettings(strings.NewReader("width: wide\n"), &s); err == nil {
		t.Fatal("loadSettings: bad value\nhave nil\nwant non-nil")
	}
}

func TestParseArgs(t *testing.T) {
	s, err := parseArgs(nil, io.Discard)
	if err != nil || s != defaultSettings() {
		t.Fatalf("parseArgs: no args\nhave %+v, %v\nwant defaults, nil", s, err)
	}

	file := filepath.Join(t.TempDir(), "craft.yaml")
	data := "width: 1280\nheight: 720\ncamera: orbit\nlog_level: warn\ntitle: yaml\n"
	if err := os.WriteFile(file, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err = parseArgs([]string{"-config", file, "-width", "640", "-vsync", "-log", "debug"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs:\nhave %v\nwant nil", err)
	}
	// Flags override the file; the file overrides defaults.
	if s.Width != 640 || s.Height != 720 || !s.VSync || s.LogLevel != "debug" || s.Camera != "orbit" || s.Title != "yaml" {
		t.Fatalf("parseArgs: unexpected settings\n%+v", s)
	}

	for _, args := range [][]string{
		{"-camera", "fps"},
		{"-width", "0"},
		{"-width", "abc"},
		{"-height", "1e3"},
		{"-vsync=maybe"},
		{"-nope"},
		{"extra"},
		{"-config", filepath.Join(t.TempDir(), "missing.yaml")},
	} {
		if _, err := parseArgs(args, io.Discard); err == nil {
			t.Fatalf("parseArgs(%q)\nhave nil\nwant non-nil", args)
		}
	}

	// An explicit false overrides the file.
	if err := os.WriteFile(file, []byte("vsync: true\nheight: 480\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err = parseArgs([]string{"-config", file, "-vsync=false", "-height", "500"}, io.Discard)
	if err != nil || s.VSync || s.Height != 500 {
		t.Fatalf("parseArgs: -vsync=false\nhave %t, %d, %v\nwant false, 500, nil", s.VSync, s.Height, err)
	}
	if _, err := parseArgs([]string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("parseArgs(-h)\nhave %v\nwant flag.ErrHelp", err)
	}
}

func TestAssets(t *testing.T) {
	for _, name := range []string{
		"assets/shaders/basic.vert",
		"assets/shaders/basic.frag",
		"assets/models/cube.json",
		"assets/models/floor.json",
	} {
		if _, err := assets.Open(name); err != nil {
			t.Fatalf("assets.Open(%s):\nhave %v\nwant nil", name, err)
		}
	}
}

func TestChecker(t *testing.T) {
	img := checker(16)
	if a, b := img.NRGBAAt(0, 0), img.NRGBAAt(8, 0); a == b {
		t.Fatalf("checker: adjacent squares have the same color %v", a)
	}
	if a, b := img.NRGBAAt(0, 0), img.NRGBAAt(8, 8); a != b {
		t.Fatalf("checker: diagonal squares differ\nhave %v\nwant %v", b, a)
	}
}

func TestDemoInit(t *testing.T) {
	gpu := drivertest.New()
	d := &demo{s: defaultSettings()}
	d.init(nil, gpu)
	if x := d.shaders.Programs(); len(x) != 1 || x[0] != "basic" {
		t.Fatalf("demo.init: programs\nhave %v\nwant [basic]", x)
	}
	if !d.textures.Has("checker") {
		t.Fatal("demo.init: checker texture missing")
	}
	if x := d.models.Names(); len(x) != 2 || x[0] != "cube" || x[1] != "floor" {
		t.Fatalf("demo.init: models\nhave %v\nwant [cube floor]", x)
	}
	if !gpu.DepthTest() {
		t.Fatal("demo.init: depth test disabled")
	}
	if d.graph.Len() != 2 || d.graph.Parent(d.moon) != d.cube {
		t.Fatalf("demo.init: graph\nhave %d nodes, moon parent %d\nwant 2 nodes, moon parent %d",
			d.graph.Len(), d.graph.Parent(d.moon), d.cube)
	}
	d.graph.SetLocal(d.cube, linear.Translate3(linear.Vec3[float32]{0, 1, 0}))
	d.graph.Update()
	want := linear.Translate3(linear.Vec3[float32]{1.5, 1, 0}).Mul(linear.Scale3(linear.Vec3[float32]{0.3, 0.3, 0.3}))
	if have := d.graph.World(d.moon); !have.Equal(want, 1e-6) {
		t.Fatalf("demo.graph: moon world\nhave %v\nwant %v", have, want)
	}
	d.exit(nil, gpu)
	if x := gpu.Destroyed(); x != 4 {
		t.Fatalf("demo.exit: Destroyed\nhave %d\nwant 4", x)
	}
}
