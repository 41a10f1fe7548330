// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"testing"
)

func BenchmarkMul(b *testing.B) {
	l := Rotate3(0.5, Vec3[float32]{1, 1, 0})
	r := Translate3(Vec3[float32]{1, 2, 3})
	var m, n M4[float32]
	b.Run("M4.Mul", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			m = l.Mul(r)
		}
	})
	b.Run("M4.bMulPtr", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			n.bMulPtr(&l, &r)
		}
	})
	b.Log(m, n)
}

// l and r passed by reference.
func (m *M4[T]) bMulPtr(l, r *M4[T]) {
	for i := range m {
		for j := range m[i] {
			var s T
			for k := range l[i] {
				s += l[i][k] * r[k][j]
			}
			m[i][j] = s
		}
	}
}

func BenchmarkMulVec(b *testing.B) {
	m := LookAt(Vec3[float32]{1, 2, 3}, Vec3[float32]{}, Vec3[float32]{0, 1, 0})
	v := Vec4[float32]{1, 1, 1, 1}
	var u, w Vec4[float32]
	b.Run("M4.MulVec", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			u = m.MulVec(v)
		}
	})
	b.Run("Vec4.MulM", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			w = v.MulM(m)
		}
	})
	b.Log(u, w)
}

func BenchmarkRotate3(b *testing.B) {
	axis := Vec3[float32]{1, -2, 0.5}
	var m M4[float32]
	for i := 0; i < b.N; i++ {
		m = Rotate3(float32(i), axis)
	}
	b.Log(m)
}
