// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package camera

import (
	"github.com/gviegas/craft/linear"
	"github.com/gviegas/craft/wsi"
)

// Free is a first-person camera.
// W/S move forward/backward, A/D strafe and Space/Left
// Shift move up/down. Mouse motion turns the camera.
// While Left Alt is held, the camera ignores all input.
type Free struct {
	pos   linear.Vec3[float32]
	yaw   float32
	pitch float32
	speed float32
	sens  float32

	first bool
	lastX float64
	lastY float64
	fixed bool

	view linear.M4[float32]
}

// NewFree creates a new Free camera at pos facing -z.
// speed is given in units per second and sensitivity in
// degrees per cursor unit.
func NewFree(pos linear.Vec3[float32], speed, sensitivity float32) *Free {
	c := &Free{
		pos:   pos,
		yaw:   -90,
		speed: speed,
		sens:  sensitivity,
		first: true,
	}
	c.view.I()
	return c
}

// View implements Camera.
func (c *Free) View() linear.M4[float32] { return c.view }

// Pos returns the camera's position.
func (c *Free) Pos() linear.Vec3[float32] { return c.pos }

// Angles returns the camera's yaw and pitch, in degrees.
func (c *Free) Angles() (yaw, pitch float32) { return c.yaw, c.pitch }

// Update implements Camera.
func (c *Free) Update(in Input, dt float32) {
	if c.fixed = in.KeyPressed(wsi.KeyLAlt); c.fixed {
		// Avoid a jump when released.
		c.first = true
		return
	}
	step := c.speed * dt
	up := linear.Vec3[float32]{0, 1, 0}
	front := linear.Rotate3Y(-linear.Radian(c.yaw + 90)).MulVec(linear.Vec4[float32]{0, 0, -1, 1}).XYZ()
	right := front.Cross(up).Norm()
	if in.KeyPressed(wsi.KeyW) {
		c.pos = c.pos.Add(front.Scale(step))
	}
	if in.KeyPressed(wsi.KeyS) {
		c.pos = c.pos.Sub(front.Scale(step))
	}
	if in.KeyPressed(wsi.KeyD) {
		c.pos = c.pos.Add(right.Scale(step))
	}
	if in.KeyPressed(wsi.KeyA) {
		c.pos = c.pos.Sub(right.Scale(step))
	}
	if in.KeyPressed(wsi.KeySpace) {
		c.pos = c.pos.Add(up.Scale(step))
	}
	if in.KeyPressed(wsi.KeyLShift) {
		c.pos = c.pos.Sub(up.Scale(step))
	}
	c.updateView()
}

func (c *Free) updateView() {
	r := orient(c.yaw, c.pitch)
	f := r.MulVec(linear.Vec4[float32]{0, 0, -1, 0}).XYZ()
	u := r.MulVec(linear.Vec4[float32]{0, 1, 0, 0}).XYZ()
	c.view = linear.LookAt(c.pos, c.pos.Add(f), u)
}

// MouseMove implements Camera.
func (c *Free) MouseMove(x, y float64) {
	if c.fixed {
		return
	}
	if c.first {
		c.lastX, c.lastY = x, y
		c.first = false
	}
	dx := x - c.lastX
	dy := c.lastY - y
	c.lastX, c.lastY = x, y
	c.yaw += float32(dx) * c.sens
	c.pitch = clampPitch(c.pitch + float32(dy)*c.sens)
}

// MouseScroll implements Camera.
// Free cameras do not zoom.
func (c *Free) MouseScroll(dx, dy float64) {}
