// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package camera

import (
	"log/slog"

	"github.com/gviegas/craft/internal/logging"
	"github.com/gviegas/craft/linear"
)

func logger() *slog.Logger { return logging.For("camera") }

// System is a registry of named cameras.
// At most one camera is active at a time, and only the
// active camera receives input.
// System is not safe for concurrent use.
type System struct {
	cams   map[string]Camera
	active string
	mouse  bool
}

// NewSystem creates a new System with mouse handling
// enabled and no active camera.
func NewSystem() *System {
	return &System{
		cams:  make(map[string]Camera),
		mouse: true,
	}
}

// Add registers cam under name.
// If name is already registered, Add logs a warning and
// does nothing. It returns whether cam was added.
func (s *System) Add(name string, cam Camera) bool {
	if _, ok := s.cams[name]; ok {
		logger().Warn("camera already exists", "name", name)
		return false
	}
	s.cams[name] = cam
	logger().Debug("camera added", "name", name)
	return true
}

// Remove unregisters the camera named name.
// If it was active, no camera will be active.
func (s *System) Remove(name string) {
	delete(s.cams, name)
	if s.active == name {
		s.active = ""
	}
}

// Get returns the camera named name.
func (s *System) Get(name string) (Camera, bool) {
	c, ok := s.cams[name]
	return c, ok
}

// SetActive makes the camera named name active.
// An empty name deactivates the current camera.
// If name is not registered, SetActive logs a warning
// and leaves the active camera unchanged.
func (s *System) SetActive(name string) bool {
	if name == "" {
		s.active = ""
		return true
	}
	if _, ok := s.cams[name]; !ok {
		logger().Warn("camera not found", "name", name)
		return false
	}
	s.active = name
	return true
}

// Active returns the name of the active camera.
// It returns false if no camera is active.
func (s *System) Active() (string, bool) { return s.active, s.active != "" }

// EnableMouse sets whether mouse events are forwarded to
// the active camera.
func (s *System) EnableMouse(enabled bool) { s.mouse = enabled }

// MouseEnabled returns whether mouse events are forwarded
// to the active camera.
func (s *System) MouseEnabled() bool { return s.mouse }

func (s *System) current() Camera {
	if s.active == "" {
		return nil
	}
	return s.cams[s.active]
}

// ViewMatrix returns the active camera's view matrix, or
// the identity if no camera is active.
func (s *System) ViewMatrix() linear.M4[float32] {
	if c := s.current(); c != nil {
		return c.View()
	}
	return linear.I4[float32]()
}

// Update updates the active camera.
func (s *System) Update(in Input, dt float32) {
	if c := s.current(); c != nil {
		c.Update(in, dt)
	}
}

// MouseMove forwards a cursor position to the active
// camera if mouse handling is enabled.
func (s *System) MouseMove(x, y float64) {
	if c := s.current(); c != nil && s.mouse {
		c.MouseMove(x, y)
	}
}

// MouseScroll forwards scroll offsets to the active
// camera if mouse handling is enabled.
func (s *System) MouseScroll(dx, dy float64) {
	if c := s.current(); c != nil && s.mouse {
		c.MouseScroll(dx, dy)
	}
}
