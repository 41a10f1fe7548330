// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package linear implements math for 3D graphics.
//
// Matrices are row-major and are meant to multiply column
// vectors on the right (m.MulVec(v)). Transforms place the
// translation in the last column. The shape of a matrix is
// part of its type, so only commensurate shapes can be
// added or multiplied.
//
// Division by zero is not checked. Float element types
// produce infinities/NaNs; integer types panic as usual.
package linear

//go:generate go run gen.go

// Number is the constraint for element types.
// These are the scalar types that a GL uniform can hold.
type Number interface {
	~float32 | ~float64 | ~int32 | ~uint32
}

// Float is the constraint for floating-point element types.
type Float interface {
	~float32 | ~float64
}
