// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package model

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/gviegas/craft/driver"
)

// Attr is one token of a layout description.
type Attr struct {
	Format driver.VertexFmt
	Count  int
	// Pad is set for placeholder bytes. Count is then
	// the number of bytes and Format is ignored.
	Pad bool
}

// Layout describes interleaved per-vertex data.
type Layout struct {
	Attrs []Attr
	// Vertex inputs, one per non-padding Attr.
	In []driver.VertexIn
	// Size in bytes of one vertex.
	Stride int
	// Number of source values consumed per vertex.
	Values int
}

// ParseLayout parses a layout description.
// A description is a list of semicolon-separated
// <count><type> tokens, where type is one of:
//
//	f	32-bit float
//	i	32-bit signed integer
//	u	32-bit unsigned integer
//	b	8-bit unsigned integer
//	_	placeholder byte (not an attribute)
//
// Attribute counts must be in the range [1, 4].
// Attribute locations are assigned in order, skipping
// placeholders. For example, "3f;3f;2f" describes a
// position, a color and a texture coordinate.
func ParseLayout(desc string) (*Layout, error) {
	if strings.TrimSpace(desc) == "" {
		return nil, newModelErr("empty layout description")
	}
	var l Layout
	for _, tok := range strings.Split(desc, ";") {
		tok = strings.TrimSpace(tok)
		if len(tok) < 2 {
			return nil, newModelErr("invalid layout token: " + strconv.Quote(tok))
		}
		n, err := strconv.Atoi(tok[:len(tok)-1])
		if err != nil || n < 1 {
			return nil, newModelErr("invalid layout count: " + strconv.Quote(tok))
		}
		var a Attr
		switch tok[len(tok)-1] {
		case 'f':
			a.Format = driver.Float32
		case 'i':
			a.Format = driver.Int32
		case 'u':
			a.Format = driver.UInt32
		case 'b':
			a.Format = driver.UInt8
		case '_':
			a.Pad = true
		default:
			return nil, newModelErr("invalid layout type: " + strconv.Quote(tok))
		}
		a.Count = n
		if a.Pad {
			l.Stride += n
		} else {
			if n > 4 {
				return nil, newModelErr("layout count out of range: " + strconv.Quote(tok))
			}
			l.In = append(l.In, driver.VertexIn{
				Format: a.Format,
				Count:  n,
				Offset: l.Stride,
				Nr:     len(l.In),
			})
			l.Stride += n * a.Format.Size()
			l.Values += n
		}
		l.Attrs = append(l.Attrs, a)
	}
	if l.Values == 0 {
		return nil, newModelErr("layout has no attributes")
	}
	return &l, nil
}

// Pack converts vertices to the layout's binary format.
// len(vertices) must be a non-zero multiple of l.Values.
// It returns the packed data and the number of vertices.
func (l *Layout) Pack(vertices []float32) ([]byte, int, error) {
	if len(vertices) == 0 {
		return nil, 0, newModelErr("no vertex data")
	}
	if len(vertices)%l.Values != 0 {
		return nil, 0, newModelErr("vertex data does not match layout: " +
			strconv.Itoa(len(vertices)) + " values, " +
			strconv.Itoa(l.Values) + " per vertex")
	}
	n := len(vertices) / l.Values
	data := make([]byte, n*l.Stride)
	var src, dst int
	for range n {
		for _, a := range l.Attrs {
			if a.Pad {
				dst += a.Count
				continue
			}
			for _, v := range vertices[src : src+a.Count] {
				switch a.Format {
				case driver.Float32:
					binary.NativeEndian.PutUint32(data[dst:], math.Float32bits(v))
				case driver.Int32:
					binary.NativeEndian.PutUint32(data[dst:], uint32(int32(v)))
				case driver.UInt32:
					binary.NativeEndian.PutUint32(data[dst:], uint32(v))
				case driver.UInt8:
					data[dst] = uint8(v)
				}
				dst += a.Format.Size()
			}
			src += a.Count
		}
	}
	return data, n, nil
}
