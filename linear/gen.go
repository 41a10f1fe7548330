// Copyright 2024 Gustavo C. Viegas. All rights reserved.

//go:build ignore

// gen generates the shape-specific matrix code.
// Run with `go generate` from the linear directory.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"
)

var dims = []int{2, 3, 4}

var fields = []string{"X", "Y", "Z", "W"}

// shape returns the type name of a r-by-c matrix.
func shape(r, c int) string {
	if r == c {
		return fmt.Sprintf("M%d", r)
	}
	return fmt.Sprintf("M%dx%d", r, c)
}

func main() {
	var b bytes.Buffer
	b.WriteString("// Copyright 2024 Gustavo C. Viegas. All rights reserved.\n\n")
	b.WriteString("// Code generated by gen.go; DO NOT EDIT.\n\n")
	b.WriteString("package linear\n\nimport (\n\t\"math\"\n)\n")
	for _, r := range dims {
		for _, c := range dims {
			genShape(&b, r, c)
		}
	}
	for _, n := range dims {
		genSquare(&b, n)
	}
	for _, r := range dims {
		for _, k := range dims {
			for _, c := range dims {
				genMul(&b, r, k, c)
			}
		}
	}
	src, err := format.Source(b.Bytes())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile("matrix_gen.go", src, 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func genShape(b *bytes.Buffer, r, c int) {
	m := shape(r, c)
	t := shape(c, r)
	fmt.Fprintf(b, "\n// %s is a row-major %dx%d matrix.\n", m, r, c)
	fmt.Fprintf(b, "type %s[T Number] [%d][%d]T\n", m, r, c)
	for _, op := range []struct{ name, doc, sym string }{
		{"Add", "m + n", "+"},
		{"Sub", "m - n", "-"},
	} {
		fmt.Fprintf(b, "\n// %s returns %s.\n", op.name, op.doc)
		fmt.Fprintf(b, "func (m %s[T]) %s(n %s[T]) (p %s[T]) {\n", m, op.name, m, m)
		fmt.Fprintf(b, "\tfor i := range p {\n\t\tfor j := range p[i] {\n")
		fmt.Fprintf(b, "\t\t\tp[i][j] = m[i][j] %s n[i][j]\n", op.sym)
		fmt.Fprintf(b, "\t\t}\n\t}\n\treturn\n}\n")
	}
	for _, op := range []struct{ name, doc, sym string }{
		{"Scale", "s ⋅ m", "*"},
		{"Div", "m / s", "/"},
	} {
		fmt.Fprintf(b, "\n// %s returns %s.\n", op.name, op.doc)
		fmt.Fprintf(b, "func (m %s[T]) %s(s T) (p %s[T]) {\n", m, op.name, m)
		fmt.Fprintf(b, "\tfor i := range p {\n\t\tfor j := range p[i] {\n")
		fmt.Fprintf(b, "\t\t\tp[i][j] = m[i][j] %s s\n", op.sym)
		fmt.Fprintf(b, "\t\t}\n\t}\n\treturn\n}\n")
	}
	fmt.Fprintf(b, "\n// Transpose returns the transpose of m.\n")
	fmt.Fprintf(b, "func (m %s[T]) Transpose() (p %s[T]) {\n", m, t)
	fmt.Fprintf(b, "\tfor i := range m {\n\t\tfor j := range m[i] {\n")
	fmt.Fprintf(b, "\t\t\tp[j][i] = m[i][j]\n")
	fmt.Fprintf(b, "\t\t}\n\t}\n\treturn\n}\n")
	fmt.Fprintf(b, "\n// Equal reports whether every element of m is\n// within eps of the same element of n.\n")
	fmt.Fprintf(b, "func (m %s[T]) Equal(n %s[T], eps float64) bool {\n", m, m)
	fmt.Fprintf(b, "\tfor i := range m {\n\t\tfor j := range m[i] {\n")
	fmt.Fprintf(b, "\t\t\tif math.Abs(float64(m[i][j])-float64(n[i][j])) > eps {\n\t\t\t\treturn false\n\t\t\t}\n")
	fmt.Fprintf(b, "\t\t}\n\t}\n\treturn true\n}\n")
}

func genSquare(b *bytes.Buffer, n int) {
	m := shape(n, n)
	v := fmt.Sprintf("Vec%d", n)
	fmt.Fprintf(b, "\n// I%d returns the %dx%d identity matrix.\n", n, n, n)
	fmt.Fprintf(b, "func I%d[T Number]() (m %s[T]) {\n", n, m)
	fmt.Fprintf(b, "\tfor i := range m {\n\t\tm[i][i] = 1\n\t}\n\treturn\n}\n")
	fmt.Fprintf(b, "\n// I makes m an identity matrix.\n")
	fmt.Fprintf(b, "func (m *%s[T]) I() { *m = I%d[T]() }\n", m, n)
	fmt.Fprintf(b, "\n// Mul returns m ⋅ n.\n")
	fmt.Fprintf(b, "func (m %s[T]) Mul(n %s[T]) %s[T] { return Mul%d%d%d(m, n) }\n", m, m, m, n, n, n)
	fmt.Fprintf(b, "\n// MulVec returns m ⋅ v, v taken as a column vector.\n")
	fmt.Fprintf(b, "func (m %s[T]) MulVec(v %s[T]) %s[T] {\n\treturn %s[T]{\n", m, v, v, v)
	for i := 0; i < n; i++ {
		terms := make([]string, n)
		for j := 0; j < n; j++ {
			terms[j] = fmt.Sprintf("m[%d][%d]*v.%s", i, j, fields[j])
		}
		fmt.Fprintf(b, "\t\t%s,\n", strings.Join(terms, " + "))
	}
	fmt.Fprintf(b, "\t}\n}\n")
	fmt.Fprintf(b, "\n// MulM returns v ⋅ m, v taken as a row vector.\n")
	fmt.Fprintf(b, "func (v %s[T]) MulM(m %s[T]) %s[T] {\n\treturn %s[T]{\n", v, m, v, v)
	for j := 0; j < n; j++ {
		terms := make([]string, n)
		for i := 0; i < n; i++ {
			terms[i] = fmt.Sprintf("v.%s*m[%d][%d]", fields[i], i, j)
		}
		fmt.Fprintf(b, "\t\t%s,\n", strings.Join(terms, " + "))
	}
	fmt.Fprintf(b, "\t}\n}\n")
}

func genMul(b *bytes.Buffer, r, k, c int) {
	fmt.Fprintf(b, "\n// Mul%d%d%d returns l ⋅ r for a %dx%d l and a %dx%d r.\n", r, k, c, r, k, k, c)
	fmt.Fprintf(b, "func Mul%d%d%d[T Number](l %s[T], r %s[T]) (m %s[T]) {\n", r, k, c, shape(r, k), shape(k, c), shape(r, c))
	fmt.Fprintf(b, "\tfor i := range m {\n\t\tfor j := range m[i] {\n\t\t\tfor k := range r {\n")
	fmt.Fprintf(b, "\t\t\t\tm[i][j] += l[i][k] * r[k][j]\n")
	fmt.Fprintf(b, "\t\t\t}\n\t\t}\n\t}\n\treturn\n}\n")
}
