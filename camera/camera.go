// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package camera implements view-matrix producing cameras
// driven by keyboard and pointer input.
package camera

import (
	"github.com/gviegas/craft/linear"
	"github.com/gviegas/craft/wsi"
)

// Input is the input state a camera polls on update.
// wsi.Window implements it.
type Input interface {
	KeyPressed(key wsi.Key) bool
	ButtonPressed(btn wsi.Button) bool
}

// Camera is the interface that defines a camera.
type Camera interface {
	// View returns the current view matrix.
	View() linear.M4[float32]

	// Update polls in and integrates movement over dt
	// seconds. It recomputes the view matrix.
	Update(in Input, dt float32)

	// MouseMove is called with the cursor position.
	MouseMove(x, y float64)

	// MouseScroll is called with scroll offsets.
	MouseScroll(dx, dy float64)
}

// Pitch is clamped to this range, in degrees.
const (
	MinPitch = -89
	MaxPitch = 89
)

func clampPitch(p float32) float32 {
	switch {
	case p > MaxPitch:
		return MaxPitch
	case p < MinPitch:
		return MinPitch
	}
	return p
}

// orient returns the rotation that turns the -z axis
// towards yaw and pitch, in degrees.
// A yaw of -90 faces -z and increasing yaw turns right.
func orient(yaw, pitch float32) linear.M4[float32] {
	ry := linear.Rotate3Y(-linear.Radian(yaw + 90))
	rx := linear.Rotate3X(linear.Radian(pitch))
	return ry.Mul(rx)
}
