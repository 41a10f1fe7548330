// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// settings are read from an optional YAML file and then
// overridden by command-line flags.
type settings struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Title         string `yaml:"title"`
	VSync         bool   `yaml:"vsync"`
	DisableCursor bool   `yaml:"disable_cursor"`
	// Resource directories. Empty means the built-in
	// assets.
	Shaders  string `yaml:"shaders"`
	Textures string `yaml:"textures"`
	Models   string `yaml:"models"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	// Initial camera, "free" or "orbit".
	Camera string `yaml:"camera"`
}

func defaultSettings() settings {
	return settings{
		Width:    800,
		Height:   600,
		Title:    "craft",
		LogLevel: "info",
		Camera:   "free",
	}
}

// loadSettings decodes YAML from r over s.
// Unknown keys are rejected.
func loadSettings(r io.Reader, s *settings) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (s *settings) validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("config: invalid window size %dx%d", s.Width, s.Height)
	case s.Camera != "free" && s.Camera != "orbit":
		return fmt.Errorf("config: invalid camera %q", s.Camera)
	}
	return nil
}

// parseArgs parses the command line.
// If -config is given, the file is loaded first and
// explicitly set flags are applied on top of it.
func parseArgs(args []string, stderr io.Writer) (settings, error) {
	s := defaultSettings()
	fs := flag.NewFlagSet("craft", flag.ContinueOnError)
	fs.SetOutput(stderr)
	config := fs.String("config", "", "YAML configuration `file`")
	// Only flags given explicitly override the file.
	logLevel := fs.String("log", s.LogLevel, "log `level` (debug, info, warn, error)")
	logFile := fs.String("logfile", "", "append log to `file` instead of stderr")
	width := fs.Int("width", s.Width, "window width")
	height := fs.Int("height", s.Height, "window height")
	vsync := fs.Bool("vsync", false, "enable vertical sync")
	cam := fs.String("camera", s.Camera, "initial camera (free, orbit)")
	shaders := fs.String("shaders", "", "shader `dir`")
	textures := fs.String("textures", "", "texture `dir`")
	models := fs.String("models", "", "model `dir`")
	if err := fs.Parse(args); err != nil {
		return s, err
	}
	if fs.NArg() > 0 {
		return s, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}
	if *config != "" {
		data, err := os.ReadFile(*config)
		if err != nil {
			return s, fmt.Errorf("config: %w", err)
		}
		if err := loadSettings(bytes.NewReader(data), &s); err != nil {
			return s, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log":
			s.LogLevel = *logLevel
		case "logfile":
			s.LogFile = *logFile
		case "width":
			s.Width = *width
		case "height":
			s.Height = *height
		case "vsync":
			s.VSync = *vsync
		case "camera":
			s.Camera = *cam
		case "shaders":
			s.Shaders = *shaders
		case "textures":
			s.Textures = *textures
		case "models":
			s.Models = *models
		}
	})
	return s, s.validate()
}
