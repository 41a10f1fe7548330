// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// Vec2 is a 2-component vector.
type Vec2[T Number] struct{ X, Y T }

// Add returns v + w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X - w.X, v.Y - w.Y} }

// Scale returns s ⋅ v.
func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{s * v.X, s * v.Y} }

// Div returns v / s.
func (v Vec2[T]) Div(s T) Vec2[T] { return Vec2[T]{v.X / s, v.Y / s} }

// Dot returns v ⋅ w.
func (v Vec2[T]) Dot(w Vec2[T]) T { return v.X*w.X + v.Y*w.Y }

// Len returns the length of v.
func (v Vec2[T]) Len() T { return sqrt(v.Dot(v)) }

// Norm returns v normalized.
// The zero vector normalizes to itself.
func (v Vec2[T]) Norm() Vec2[T] {
	l := v.Len()
	if l == 0 {
		return Vec2[T]{}
	}
	return v.Div(l)
}

// Vec3 is a 3-component vector.
type Vec3[T Number] struct{ X, Y, Z T }

// Vec3From2 returns the vector (v.X, v.Y, z).
func Vec3From2[T Number](v Vec2[T], z T) Vec3[T] { return Vec3[T]{v.X, v.Y, z} }

// Add returns v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns s ⋅ v.
func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{s * v.X, s * v.Y, s * v.Z} }

// Div returns v / s.
func (v Vec3[T]) Div(s T) Vec3[T] { return Vec3[T]{v.X / s, v.Y / s, v.Z / s} }

// Dot returns v ⋅ w.
func (v Vec3[T]) Dot(w Vec3[T]) T { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Len returns the length of v.
func (v Vec3[T]) Len() T { return sqrt(v.Dot(v)) }

// Norm returns v normalized.
// The zero vector normalizes to itself.
func (v Vec3[T]) Norm() Vec3[T] {
	l := v.Len()
	if l == 0 {
		return Vec3[T]{}
	}
	return v.Div(l)
}

// Cross returns v × w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// XY returns (v.X, v.Y).
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v.X, v.Y} }

// YZ returns (v.Y, v.Z).
func (v Vec3[T]) YZ() Vec2[T] { return Vec2[T]{v.Y, v.Z} }

// Vec4 is a 4-component vector.
type Vec4[T Number] struct{ X, Y, Z, W T }

// Vec4From3 returns the vector (v.X, v.Y, v.Z, w).
func Vec4From3[T Number](v Vec3[T], w T) Vec4[T] { return Vec4[T]{v.X, v.Y, v.Z, w} }

// Vec4From2 returns the vector (v.X, v.Y, z, w).
func Vec4From2[T Number](v Vec2[T], z, w T) Vec4[T] { return Vec4[T]{v.X, v.Y, z, w} }

// Add returns v + w.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.W + w.W}
}

// Sub returns v - w.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.W - w.W}
}

// Scale returns s ⋅ v.
func (v Vec4[T]) Scale(s T) Vec4[T] { return Vec4[T]{s * v.X, s * v.Y, s * v.Z, s * v.W} }

// Div returns v / s.
func (v Vec4[T]) Div(s T) Vec4[T] { return Vec4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s} }

// Dot returns v ⋅ w.
func (v Vec4[T]) Dot(w Vec4[T]) T { return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W }

// Len returns the length of v.
func (v Vec4[T]) Len() T { return sqrt(v.Dot(v)) }

// Norm returns v normalized.
// The zero vector normalizes to itself.
func (v Vec4[T]) Norm() Vec4[T] {
	l := v.Len()
	if l == 0 {
		return Vec4[T]{}
	}
	return v.Div(l)
}

// XY returns (v.X, v.Y).
func (v Vec4[T]) XY() Vec2[T] { return Vec2[T]{v.X, v.Y} }

// ZW returns (v.Z, v.W).
func (v Vec4[T]) ZW() Vec2[T] { return Vec2[T]{v.Z, v.W} }

// XYZ returns (v.X, v.Y, v.Z).
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v.X, v.Y, v.Z} }

// YZW returns (v.Y, v.Z, v.W).
func (v Vec4[T]) YZW() Vec3[T] { return Vec3[T]{v.Y, v.Z, v.W} }

func sqrt[T Number](x T) T { return T(math.Sqrt(float64(x))) }
