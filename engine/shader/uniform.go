// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package shader

import (
	"unsafe"

	"github.com/gviegas/craft/linear"
)

// Value is the set of types that can be uploaded as a
// uniform value.
type Value interface {
	float32 | float64 | int32 | uint32 |
		linear.Vec2[float32] | linear.Vec3[float32] | linear.Vec4[float32] |
		linear.Vec2[float64] | linear.Vec3[float64] | linear.Vec4[float64] |
		linear.Vec2[int32] | linear.Vec3[int32] | linear.Vec4[int32] |
		linear.Vec2[uint32] | linear.Vec3[uint32] | linear.Vec4[uint32] |
		linear.M2[float32] | linear.M3[float32] | linear.M4[float32] |
		linear.M2x3[float32] | linear.M2x4[float32] | linear.M3x2[float32] |
		linear.M3x4[float32] | linear.M4x2[float32] | linear.M4x3[float32] |
		linear.M2[float64] | linear.M3[float64] | linear.M4[float64] |
		linear.M2x3[float64] | linear.M2x4[float64] | linear.M3x2[float64] |
		linear.M3x4[float64] | linear.M4x2[float64] | linear.M4x3[float64]
}

// Set sets the uniform named name of p to v.
// p need not be in use; a nil p is a no-op, so the
// result of Manager.Use can be passed directly.
// Failures are logged as warnings once per program and
// name: a missing uniform, or a device error raised by
// the upload.
func Set[V Value](p *Program, name string, v V) {
	if p == nil {
		return
	}
	loc := p.prog.Location(name)
	if loc < 0 {
		if p.missing.First(name) {
			logger().Warn("uniform not found", "program", p.name, "uniform", name)
		}
		return
	}
	p.Use()
	// Discard errors left by earlier calls.
	for range maxStaleErrs {
		if p.gpu.Err() == nil {
			break
		}
	}
	upload(p, loc, v)
	if err := p.gpu.Err(); err != nil {
		if p.failed.First(name) {
			logger().Warn("uniform upload failed", "program", p.name, "uniform", name, "err", err)
		}
		return
	}
	p.failed.Forget(name)
}

// Bound on the number of pending device errors discarded
// before an upload.
const maxStaleErrs = 8

func flat[T any, M any](m *M, n int) []T { return unsafe.Slice((*T)(unsafe.Pointer(m)), n) }

func upload[V Value](p *Program, loc int, v V) {
	g := p.prog
	switch v := any(v).(type) {
	case float32:
		g.Uniformf(loc, 1, []float32{v})
	case float64:
		g.Uniformd(loc, 1, []float64{v})
	case int32:
		g.Uniformi(loc, 1, []int32{v})
	case uint32:
		g.Uniformu(loc, 1, []uint32{v})

	case linear.Vec2[float32]:
		g.Uniformf(loc, 2, []float32{v.X, v.Y})
	case linear.Vec3[float32]:
		g.Uniformf(loc, 3, []float32{v.X, v.Y, v.Z})
	case linear.Vec4[float32]:
		g.Uniformf(loc, 4, []float32{v.X, v.Y, v.Z, v.W})
	case linear.Vec2[float64]:
		g.Uniformd(loc, 2, []float64{v.X, v.Y})
	case linear.Vec3[float64]:
		g.Uniformd(loc, 3, []float64{v.X, v.Y, v.Z})
	case linear.Vec4[float64]:
		g.Uniformd(loc, 4, []float64{v.X, v.Y, v.Z, v.W})
	case linear.Vec2[int32]:
		g.Uniformi(loc, 2, []int32{v.X, v.Y})
	case linear.Vec3[int32]:
		g.Uniformi(loc, 3, []int32{v.X, v.Y, v.Z})
	case linear.Vec4[int32]:
		g.Uniformi(loc, 4, []int32{v.X, v.Y, v.Z, v.W})
	case linear.Vec2[uint32]:
		g.Uniformu(loc, 2, []uint32{v.X, v.Y})
	case linear.Vec3[uint32]:
		g.Uniformu(loc, 3, []uint32{v.X, v.Y, v.Z})
	case linear.Vec4[uint32]:
		g.Uniformu(loc, 4, []uint32{v.X, v.Y, v.Z, v.W})

	case linear.M2[float32]:
		g.UniformMatf(loc, 2, 2, flat[float32](&v, 4))
	case linear.M3[float32]:
		g.UniformMatf(loc, 3, 3, flat[float32](&v, 9))
	case linear.M4[float32]:
		g.UniformMatf(loc, 4, 4, flat[float32](&v, 16))
	case linear.M2x3[float32]:
		g.UniformMatf(loc, 2, 3, flat[float32](&v, 6))
	case linear.M2x4[float32]:
		g.UniformMatf(loc, 2, 4, flat[float32](&v, 8))
	case linear.M3x2[float32]:
		g.UniformMatf(loc, 3, 2, flat[float32](&v, 6))
	case linear.M3x4[float32]:
		g.UniformMatf(loc, 3, 4, flat[float32](&v, 12))
	case linear.M4x2[float32]:
		g.UniformMatf(loc, 4, 2, flat[float32](&v, 8))
	case linear.M4x3[float32]:
		g.UniformMatf(loc, 4, 3, flat[float32](&v, 12))

	case linear.M2[float64]:
		g.UniformMatd(loc, 2, 2, flat[float64](&v, 4))
	case linear.M3[float64]:
		g.UniformMatd(loc, 3, 3, flat[float64](&v, 9))
	case linear.M4[float64]:
		g.UniformMatd(loc, 4, 4, flat[float64](&v, 16))
	case linear.M2x3[float64]:
		g.UniformMatd(loc, 2, 3, flat[float64](&v, 6))
	case linear.M2x4[float64]:
		g.UniformMatd(loc, 2, 4, flat[float64](&v, 8))
	case linear.M3x2[float64]:
		g.UniformMatd(loc, 3, 2, flat[float64](&v, 6))
	case linear.M3x4[float64]:
		g.UniformMatd(loc, 3, 4, flat[float64](&v, 12))
	case linear.M4x2[float64]:
		g.UniformMatd(loc, 4, 2, flat[float64](&v, 8))
	case linear.M4x3[float64]:
		g.UniformMatd(loc, 4, 3, flat[float64](&v, 12))
	}
}
