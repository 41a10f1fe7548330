// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package camera

import (
	"math"
	"testing"

	"github.com/gviegas/craft/linear"
	"github.com/gviegas/craft/wsi"
)

type input struct {
	keys map[wsi.Key]bool
	btns map[wsi.Button]bool
}

func (in *input) KeyPressed(k wsi.Key) bool       { return in.keys[k] }
func (in *input) ButtonPressed(b wsi.Button) bool { return in.btns[b] }

func newInput(keys ...wsi.Key) *input {
	in := &input{keys: map[wsi.Key]bool{}, btns: map[wsi.Button]bool{}}
	for _, k := range keys {
		in.keys[k] = true
	}
	return in
}

const eps = 1e-4

func near(x, y float32) bool { return math.Abs(float64(x-y)) <= eps }

func nearV3(v, w linear.Vec3[float32]) bool {
	return near(v.X, w.X) && near(v.Y, w.Y) && near(v.Z, w.Z)
}

func TestFree(t *testing.T) {
	c := NewFree(linear.Vec3[float32]{0, 0, 3}, 2, 0.1)
	if v := c.View(); v != linear.I4[float32]() {
		t.Fatalf("Free.View before Update\nhave %v\nwant I", v)
	}

	c.Update(newInput(), 1)
	// Facing -z from (0, 0, 3): the origin is 3 units ahead.
	p := c.View().MulVec(linear.Vec4[float32]{0, 0, 0, 1})
	if !nearV3(p.XYZ(), linear.Vec3[float32]{0, 0, -3}) {
		t.Fatalf("Free.View: origin\nhave %v\nwant {0 0 -3 1}", p)
	}

	c.Update(newInput(wsi.KeyW), 0.5)
	if pos := c.Pos(); !nearV3(pos, linear.Vec3[float32]{0, 0, 2}) {
		t.Fatalf("Free.Update: W\nhave %v\nwant {0 0 2}", pos)
	}
	c.Update(newInput(wsi.KeyD), 0.5)
	if pos := c.Pos(); !nearV3(pos, linear.Vec3[float32]{1, 0, 2}) {
		t.Fatalf("Free.Update: D\nhave %v\nwant {1 0 2}", pos)
	}
	c.Update(newInput(wsi.KeySpace), 1)
	if pos := c.Pos(); !nearV3(pos, linear.Vec3[float32]{1, 2, 2}) {
		t.Fatalf("Free.Update: Space\nhave %v\nwant {1 2 2}", pos)
	}
	c.Update(newInput(wsi.KeyS, wsi.KeyA, wsi.KeyLShift), 0.5)
	if pos := c.Pos(); !nearV3(pos, linear.Vec3[float32]{0, 1, 3}) {
		t.Fatalf("Free.Update: S+A+LShift\nhave %v\nwant {0 1 3}", pos)
	}
	// Opposite keys cancel out.
	c.Update(newInput(wsi.KeyW, wsi.KeyS), 1)
	if pos := c.Pos(); !nearV3(pos, linear.Vec3[float32]{0, 1, 3}) {
		t.Fatalf("Free.Update: W+S\nhave %v\nwant {0 1 3}", pos)
	}
}

func TestFreeMouse(t *testing.T) {
	c := NewFree(linear.Vec3[float32]{}, 1, 0.1)
	// The first event only records the position.
	c.MouseMove(100, 100)
	if yaw, pitch := c.Angles(); yaw != -90 || pitch != 0 {
		t.Fatalf("Free.MouseMove: first\nhave %v, %v\nwant -90, 0", yaw, pitch)
	}
	c.MouseMove(1000, 100)
	if yaw, _ := c.Angles(); !near(yaw, 0) {
		t.Fatalf("Free.MouseMove: yaw\nhave %v\nwant 0", yaw)
	}
	// Facing +x after turning right by 90 degrees.
	c.Update(newInput(wsi.KeyW), 1)
	if pos := c.Pos(); !nearV3(pos, linear.Vec3[float32]{1, 0, 0}) {
		t.Fatalf("Free.Update: W after turn\nhave %v\nwant {1 0 0}", pos)
	}

	// Moving the cursor up raises pitch.
	c.MouseMove(1000, 0)
	if _, pitch := c.Angles(); !near(pitch, 10) {
		t.Fatalf("Free.MouseMove: pitch\nhave %v\nwant 10", pitch)
	}
}

func TestPitchClamp(t *testing.T) {
	c := NewFree(linear.Vec3[float32]{}, 1, 0.1)
	c.MouseMove(0, 0)
	for i := 1; i <= 20; i++ {
		c.MouseMove(0, float64(-100*i))
		if _, pitch := c.Angles(); pitch > MaxPitch {
			t.Fatalf("Free.MouseMove: pitch\nhave %v\nwant <= %v", pitch, MaxPitch)
		}
	}
	if _, pitch := c.Angles(); pitch != MaxPitch {
		t.Fatalf("Free.MouseMove: pitch\nhave %v\nwant %v", pitch, MaxPitch)
	}
	c.MouseMove(0, 1e6)
	if _, pitch := c.Angles(); pitch != MinPitch {
		t.Fatalf("Free.MouseMove: pitch\nhave %v\nwant %v", pitch, MinPitch)
	}
	c.Update(newInput(), 0)
	// Up must not flip at the boundary.
	u := c.View()
	if u[1][1] <= 0 {
		t.Fatalf("Free.View at min pitch: up.y\nhave %v\nwant > 0", u[1][1])
	}

	o := NewOrbit(1, 1, 1)
	in := newInput()
	in.btns[wsi.BtnLeft] = true
	o.Update(in, 0)
	o.MouseMove(0, 0)
	o.MouseMove(0, -500)
	if _, pitch := o.Angles(); pitch != MaxPitch {
		t.Fatalf("Orbit.MouseMove: pitch\nhave %v\nwant %v", pitch, MaxPitch)
	}
	o.MouseMove(0, 500)
	if _, pitch := o.Angles(); pitch != MinPitch {
		t.Fatalf("Orbit.MouseMove: pitch\nhave %v\nwant %v", pitch, MinPitch)
	}
}

func TestFreeFixed(t *testing.T) {
	c := NewFree(linear.Vec3[float32]{}, 1, 1)
	c.MouseMove(0, 0)
	c.Update(newInput(wsi.KeyLAlt, wsi.KeyW), 1)
	if pos := c.Pos(); pos != (linear.Vec3[float32]{}) {
		t.Fatalf("Free.Update: fixed\nhave %v\nwant {0 0 0}", pos)
	}
	c.MouseMove(50, 50)
	if yaw, pitch := c.Angles(); yaw != -90 || pitch != 0 {
		t.Fatalf("Free.MouseMove: fixed\nhave %v, %v\nwant -90, 0", yaw, pitch)
	}
	// Released: the next event only records the position.
	c.Update(newInput(), 1)
	c.MouseMove(80, 80)
	if yaw, pitch := c.Angles(); yaw != -90 || pitch != 0 {
		t.Fatalf("Free.MouseMove: after release\nhave %v, %v\nwant -90, 0", yaw, pitch)
	}
}

func TestOrbit(t *testing.T) {
	c := NewOrbit(1, 0.5, 1)
	if d := c.Distance(); d != 2 {
		t.Fatalf("Orbit.Distance\nhave %v\nwant 2", d)
	}
	c.Update(newInput(), 0)
	p := c.View().MulVec(linear.Vec4[float32]{0, 0, 0, 1})
	if !nearV3(p.XYZ(), linear.Vec3[float32]{0, 0, -2}) {
		t.Fatalf("Orbit.View: origin\nhave %v\nwant {0 0 -2 1}", p)
	}

	c.MouseScroll(0, 2)
	if d := c.Distance(); d != 1 {
		t.Fatalf("Orbit.MouseScroll\nhave %v\nwant 1", d)
	}
	c.MouseScroll(0, -4)
	if d := c.Distance(); d != 4 {
		t.Fatalf("Orbit.MouseScroll\nhave %v\nwant 4", d)
	}

	// Not dragging: motion is ignored.
	c.MouseMove(10, 10)
	c.MouseMove(200, 10)
	if yaw, _ := c.Angles(); yaw != 0 {
		t.Fatalf("Orbit.MouseMove: not dragging\nhave %v\nwant 0", yaw)
	}
	in := newInput()
	in.btns[wsi.BtnLeft] = true
	c.Update(in, 0)
	c.MouseMove(380, 10)
	if yaw, _ := c.Angles(); yaw != 90 {
		t.Fatalf("Orbit.MouseMove: dragging\nhave %v\nwant 90", yaw)
	}
	c.Update(in, 0)
	if pos := c.Pos(); !nearV3(pos, linear.Vec3[float32]{4, 0, 0}) {
		t.Fatalf("Orbit.Pos\nhave %v\nwant {4 0 0}", pos)
	}
	// The origin stays in front of the camera.
	p = c.View().MulVec(linear.Vec4[float32]{0, 0, 0, 1})
	if !nearV3(p.XYZ(), linear.Vec3[float32]{0, 0, -4}) {
		t.Fatalf("Orbit.View: origin\nhave %v\nwant {0 0 -4 1}", p)
	}
}

func TestSystem(t *testing.T) {
	s := NewSystem()
	if v := s.ViewMatrix(); v != linear.I4[float32]() {
		t.Fatalf("System.ViewMatrix: no active camera\nhave %v\nwant I", v)
	}
	if _, ok := s.Active(); ok {
		t.Fatal("System.Active: unexpected true")
	}
	// Inert without an active camera.
	s.Update(newInput(wsi.KeyW), 1)
	s.MouseMove(1, 1)
	s.MouseScroll(1, 1)

	free := NewFree(linear.Vec3[float32]{0, 0, 3}, 1, 0.1)
	orbit := NewOrbit(1, 1, 1)
	if !s.Add("free", free) || !s.Add("orbit", orbit) {
		t.Fatal("System.Add: unexpected false")
	}
	if s.Add("free", NewFree(linear.Vec3[float32]{}, 1, 1)) {
		t.Fatal("System.Add: duplicate name: unexpected true")
	}
	if c, _ := s.Get("free"); c != Camera(free) {
		t.Fatal("System.Add: duplicate name replaced the camera")
	}
	if s.SetActive("none") {
		t.Fatal("System.SetActive: unknown name: unexpected true")
	}
	if !s.SetActive("free") {
		t.Fatal("System.SetActive: unexpected false")
	}
	if name, ok := s.Active(); !ok || name != "free" {
		t.Fatalf("System.Active\nhave %s, %t\nwant free, true", name, ok)
	}

	s.Update(newInput(wsi.KeyW), 1)
	if pos := free.Pos(); !nearV3(pos, linear.Vec3[float32]{0, 0, 2}) {
		t.Fatalf("System.Update\nhave %v\nwant {0 0 2}", pos)
	}
	if s.ViewMatrix() != free.View() {
		t.Fatal("System.ViewMatrix: not the active camera's")
	}
	// Only the active camera is driven.
	if orbit.View() != linear.I4[float32]() {
		t.Fatal("System.Update: inactive camera was updated")
	}

	s.EnableMouse(false)
	if s.MouseEnabled() {
		t.Fatal("System.MouseEnabled: unexpected true")
	}
	s.MouseMove(0, 0)
	s.MouseMove(0, -1000)
	if _, pitch := free.Angles(); pitch != 0 {
		t.Fatalf("System.MouseMove: mouse disabled\nhave %v\nwant 0", pitch)
	}
	s.EnableMouse(true)
	s.MouseMove(0, 0)
	s.MouseMove(0, -100)
	if _, pitch := free.Angles(); !near(pitch, 10) {
		t.Fatalf("System.MouseMove\nhave %v\nwant 10", pitch)
	}

	s.SetActive("orbit")
	s.MouseScroll(0, 2)
	if d := orbit.Distance(); d != 1 {
		t.Fatalf("System.MouseScroll\nhave %v\nwant 1", d)
	}

	s.Remove("orbit")
	if _, ok := s.Active(); ok {
		t.Fatal("System.Remove: active camera still set")
	}
	if _, ok := s.Get("orbit"); ok {
		t.Fatal("System.Remove: camera still registered")
	}
	s.SetActive("free")
	s.SetActive("")
	if _, ok := s.Active(); ok {
		t.Fatal("System.SetActive(\"\"): unexpected true")
	}
}
