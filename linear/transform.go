// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// Radian converts degrees to radians.
func Radian[T Float](degrees T) T { return degrees * math.Pi / 180 }

func sincos[T Float](angle T) (s, c T) {
	s64, c64 := math.Sincos(float64(angle))
	return T(s64), T(c64)
}

// Translate2 returns a 2D homogeneous translation by v.
func Translate2[T Number](v Vec2[T]) M3[T] {
	m := I3[T]()
	m[0][2] = v.X
	m[1][2] = v.Y
	return m
}

// Scale2 returns a 2D homogeneous scale by v.
func Scale2[T Number](v Vec2[T]) (m M3[T]) {
	m[0][0] = v.X
	m[1][1] = v.Y
	m[2][2] = 1
	return
}

// Rotate2 returns a 2D homogeneous rotation of angle radians.
func Rotate2[T Float](angle T) M3[T] {
	s, c := sincos(angle)
	return M3[T]{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Translate3 returns a 3D homogeneous translation by v.
func Translate3[T Number](v Vec3[T]) M4[T] {
	m := I4[T]()
	m[0][3] = v.X
	m[1][3] = v.Y
	m[2][3] = v.Z
	return m
}

// Scale3 returns a 3D homogeneous scale by v.
func Scale3[T Number](v Vec3[T]) (m M4[T]) {
	m[0][0] = v.X
	m[1][1] = v.Y
	m[2][2] = v.Z
	m[3][3] = 1
	return
}

// Rotate3 returns a 3D homogeneous rotation of angle
// radians around axis.
// axis need not be normalized. The zero axis yields
// the identity.
func Rotate3[T Float](angle T, axis Vec3[T]) M4[T] {
	a := axis.Norm()
	s, c := sincos(angle)
	// Rodrigues: I + K⋅sin + K²⋅(1-cos).
	k := M3[T]{
		{0, -a.Z, a.Y},
		{a.Z, 0, -a.X},
		{-a.Y, a.X, 0},
	}
	r := I3[T]().Add(k.Scale(s)).Add(k.Mul(k).Scale(1 - c))
	m := I4[T]()
	for i := range r {
		copy(m[i][:3], r[i][:])
	}
	return m
}

// Rotate3X returns a 3D homogeneous rotation of angle
// radians around the x axis.
func Rotate3X[T Float](angle T) M4[T] {
	s, c := sincos(angle)
	return M4[T]{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

// Rotate3Y returns a 3D homogeneous rotation of angle
// radians around the y axis.
func Rotate3Y[T Float](angle T) M4[T] {
	s, c := sincos(angle)
	return M4[T]{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// Rotate3Z returns a 3D homogeneous rotation of angle
// radians around the z axis.
func Rotate3Z[T Float](angle T) M4[T] {
	s, c := sincos(angle)
	return M4[T]{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// LookAt returns a view transform for a camera at eye
// looking at target.
// The camera looks down its -z axis. Points are first
// translated by -eye and then rotated into the basis
// formed by the camera's right, up and backward vectors.
func LookAt[T Float](eye, target, up Vec3[T]) M4[T] {
	z := eye.Sub(target).Norm()
	x := up.Cross(z).Norm()
	y := z.Cross(x)
	t := Translate3(eye.Scale(-1))
	r := M4[T]{
		{x.X, x.Y, x.Z, 0},
		{y.X, y.Y, y.Z, 0},
		{z.X, z.Y, z.Z, 0},
		{0, 0, 0, 1},
	}
	return r.Mul(t)
}

// Perspective returns an OpenGL perspective projection.
// fovy is the vertical field of view in radians.
func Perspective[T Float](fovy, aspect, near, far T) (m M4[T]) {
	f := 1 / T(math.Tan(float64(fovy/2)))
	m[0][0] = f / aspect
	m[1][1] = f
	m[2][2] = (far + near) / (near - far)
	m[2][3] = 2 * far * near / (near - far)
	m[3][2] = -1
	return
}
