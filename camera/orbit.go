// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package camera

import (
	"math"

	"github.com/gviegas/craft/linear"
	"github.com/gviegas/craft/wsi"
)

// Orbit is a camera that circles the origin.
// Dragging with the left button orbits and scrolling
// changes the distance, which is 2 raised to a zoom
// exponent.
type Orbit struct {
	zoom  float32
	yaw   float32
	pitch float32
	sens  float32
	scale float32

	move  bool
	lastX float64
	lastY float64

	view linear.M4[float32]
}

// NewOrbit creates a new Orbit camera at distance 2^zoom
// from the origin, on the +z axis.
// sensitivity is given in degrees per cursor unit and
// scale multiplies scroll offsets.
func NewOrbit(zoom, sensitivity, scale float32) *Orbit {
	c := &Orbit{
		zoom:  zoom,
		sens:  sensitivity,
		scale: scale,
	}
	c.view.I()
	return c
}

// View implements Camera.
func (c *Orbit) View() linear.M4[float32] { return c.view }

// Distance returns the distance from the origin.
func (c *Orbit) Distance() float32 { return float32(math.Exp2(float64(c.zoom))) }

// Angles returns the camera's yaw and pitch, in degrees.
func (c *Orbit) Angles() (yaw, pitch float32) { return c.yaw, c.pitch }

// Pos returns the camera's position.
func (c *Orbit) Pos() linear.Vec3[float32] {
	return c.rotation().MulVec(linear.Vec4[float32]{0, 0, c.Distance(), 1}).XYZ()
}

func (c *Orbit) rotation() linear.M4[float32] {
	ry := linear.Rotate3Y(linear.Radian(c.yaw))
	rx := linear.Rotate3X(-linear.Radian(c.pitch))
	return ry.Mul(rx)
}

// Update implements Camera.
func (c *Orbit) Update(in Input, dt float32) {
	c.move = in.ButtonPressed(wsi.BtnLeft)
	r := c.rotation()
	pos := r.Mul(linear.Translate3(linear.Vec3[float32]{0, 0, c.Distance()})).MulVec(linear.Vec4[float32]{0, 0, 0, 1})
	up := r.MulVec(linear.Vec4[float32]{0, 1, 0, 0})
	c.view = linear.LookAt(pos.XYZ(), linear.Vec3[float32]{}, up.XYZ())
}

// MouseMove implements Camera.
func (c *Orbit) MouseMove(x, y float64) {
	dx := x - c.lastX
	dy := c.lastY - y
	c.lastX, c.lastY = x, y
	if !c.move {
		return
	}
	c.yaw += float32(dx) * c.sens
	c.pitch = clampPitch(c.pitch + float32(dy)*c.sens)
}

// MouseScroll implements Camera.
func (c *Orbit) MouseScroll(dx, dy float64) {
	c.zoom -= float32(dy) / 2 * c.scale
}
