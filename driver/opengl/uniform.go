// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

func (p *program) Uniformf(loc, n int, v []float32) {
	if len(v) == 0 {
		return
	}
	cnt := int32(len(v) / n)
	switch n {
	case 1:
		gl.Uniform1fv(int32(loc), cnt, &v[0])
	case 2:
		gl.Uniform2fv(int32(loc), cnt, &v[0])
	case 3:
		gl.Uniform3fv(int32(loc), cnt, &v[0])
	case 4:
		gl.Uniform4fv(int32(loc), cnt, &v[0])
	}
}

func (p *program) Uniformd(loc, n int, v []float64) {
	if len(v) == 0 {
		return
	}
	cnt := int32(len(v) / n)
	switch n {
	case 1:
		gl.Uniform1dv(int32(loc), cnt, &v[0])
	case 2:
		gl.Uniform2dv(int32(loc), cnt, &v[0])
	case 3:
		gl.Uniform3dv(int32(loc), cnt, &v[0])
	case 4:
		gl.Uniform4dv(int32(loc), cnt, &v[0])
	}
}

func (p *program) Uniformi(loc, n int, v []int32) {
	if len(v) == 0 {
		return
	}
	cnt := int32(len(v) / n)
	switch n {
	case 1:
		gl.Uniform1iv(int32(loc), cnt, &v[0])
	case 2:
		gl.Uniform2iv(int32(loc), cnt, &v[0])
	case 3:
		gl.Uniform3iv(int32(loc), cnt, &v[0])
	case 4:
		gl.Uniform4iv(int32(loc), cnt, &v[0])
	}
}

func (p *program) Uniformu(loc, n int, v []uint32) {
	if len(v) == 0 {
		return
	}
	cnt := int32(len(v) / n)
	switch n {
	case 1:
		gl.Uniform1uiv(int32(loc), cnt, &v[0])
	case 2:
		gl.Uniform2uiv(int32(loc), cnt, &v[0])
	case 3:
		gl.Uniform3uiv(int32(loc), cnt, &v[0])
	case 4:
		gl.Uniform4uiv(int32(loc), cnt, &v[0])
	}
}

// GL names matrices by columns then rows, so a matrix with
// R rows and C columns is a matCxR.
// Data is row-major, hence transpose is set.

func (p *program) UniformMatf(loc, rows, cols int, v []float32) {
	if len(v) == 0 {
		return
	}
	l, cnt := int32(loc), int32(len(v)/(rows*cols))
	switch [2]int{cols, rows} {
	case [2]int{2, 2}:
		gl.UniformMatrix2fv(l, cnt, true, &v[0])
	case [2]int{3, 3}:
		gl.UniformMatrix3fv(l, cnt, true, &v[0])
	case [2]int{4, 4}:
		gl.UniformMatrix4fv(l, cnt, true, &v[0])
	case [2]int{2, 3}:
		gl.UniformMatrix2x3fv(l, cnt, true, &v[0])
	case [2]int{3, 2}:
		gl.UniformMatrix3x2fv(l, cnt, true, &v[0])
	case [2]int{2, 4}:
		gl.UniformMatrix2x4fv(l, cnt, true, &v[0])
	case [2]int{4, 2}:
		gl.UniformMatrix4x2fv(l, cnt, true, &v[0])
	case [2]int{3, 4}:
		gl.UniformMatrix3x4fv(l, cnt, true, &v[0])
	case [2]int{4, 3}:
		gl.UniformMatrix4x3fv(l, cnt, true, &v[0])
	}
}

func (p *program) UniformMatd(loc, rows, cols int, v []float64) {
	if len(v) == 0 {
		return
	}
	l, cnt := int32(loc), int32(len(v)/(rows*cols))
	switch [2]int{cols, rows} {
	case [2]int{2, 2}:
		gl.UniformMatrix2dv(l, cnt, true, &v[0])
	case [2]int{3, 3}:
		gl.UniformMatrix3dv(l, cnt, true, &v[0])
	case [2]int{4, 4}:
		gl.UniformMatrix4dv(l, cnt, true, &v[0])
	case [2]int{2, 3}:
		gl.UniformMatrix2x3dv(l, cnt, true, &v[0])
	case [2]int{3, 2}:
		gl.UniformMatrix3x2dv(l, cnt, true, &v[0])
	case [2]int{2, 4}:
		gl.UniformMatrix2x4dv(l, cnt, true, &v[0])
	case [2]int{4, 2}:
		gl.UniformMatrix4x2dv(l, cnt, true, &v[0])
	case [2]int{3, 4}:
		gl.UniformMatrix3x4dv(l, cnt, true, &v[0])
	case [2]int{4, 3}:
		gl.UniformMatrix4x3dv(l, cnt, true, &v[0])
	}
}
