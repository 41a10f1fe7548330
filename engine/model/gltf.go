// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package model

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"io/fs"
	"math"
	"net/url"
	"path"
	"strconv"
	"strings"
)

// Vertex layout of models imported from glTF:
// position followed by texture coordinates.
const gltfLayout = "3f;2f"

// glTF 2.0 subset needed to import triangle meshes.
type gltfDoc struct {
	Asset struct {
		Version string `json:"version"`
	} `json:"asset"`
	Accessors   []gltfAccessor   `json:"accessors"`
	BufferViews []gltfBufferView `json:"bufferViews"`
	Buffers     []gltfBuffer     `json:"buffers"`
	Meshes      []gltfMesh       `json:"meshes"`
}

type gltfAccessor struct {
	BufferView    *int            `json:"bufferView"`
	ByteOffset    int             `json:"byteOffset"`
	ComponentType int             `json:"componentType"`
	Count         int             `json:"count"`
	Type          string          `json:"type"`
	Sparse        json.RawMessage `json:"sparse"`
}

type gltfBufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
	ByteStride int `json:"byteStride"`
}

type gltfBuffer struct {
	URI        string `json:"uri"`
	ByteLength int    `json:"byteLength"`
}

type gltfMesh struct {
	Name       string          `json:"name"`
	Primitives []gltfPrimitive `json:"primitives"`
}

type gltfPrimitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    *int           `json:"indices"`
	Mode       *int           `json:"mode"`
}

// accessor.componentType values.
const (
	gltfByte          = 5120
	gltfUnsignedByte  = 5121
	gltfShort         = 5122
	gltfUnsignedShort = 5123
	gltfUnsignedInt   = 5125
	gltfFloat         = 5126
)

// Largest element count of an accessor that has no
// buffer view (and thus reads as zeros).
const maxZeroCount = 1 << 20

// primitive.mode value for triangle lists.
const gltfTriangles = 4

const (
	glbMagic = 0x46546c67
	glbJSON  = 0x4e4f534a
	glbBIN   = 0x004e4942
)

func componentSize(ct int) int {
	switch ct {
	case gltfByte, gltfUnsignedByte:
		return 1
	case gltfShort, gltfUnsignedShort:
		return 2
	case gltfUnsignedInt, gltfFloat:
		return 4
	}
	return 0
}

func componentCount(typ string) int {
	switch typ {
	case "SCALAR":
		return 1
	case "VEC2":
		return 2
	case "VEC3":
		return 3
	case "VEC4":
		return 4
	}
	return 0
}

// isGLB reports whether b starts with a binary glTF header.
func isGLB(b []byte) bool {
	return len(b) >= 4 && binary.LittleEndian.Uint32(b) == glbMagic
}

// splitGLB returns the JSON and BIN chunks of a GLB blob.
// bin is nil if the blob has no BIN chunk.
func splitGLB(b []byte) (js, bin []byte, err error) {
	if len(b) < 12 || !isGLB(b) {
		return nil, nil, newModelErr("not a GLB blob")
	}
	if v := binary.LittleEndian.Uint32(b[4:]); v != 2 {
		return nil, nil, newModelErr("unsupported GLB version " + strconv.FormatUint(uint64(v), 10))
	}
	n := int(binary.LittleEndian.Uint32(b[8:]))
	if n < 12 || n > len(b) {
		return nil, nil, newModelErr("truncated GLB blob")
	}
	b = b[12:n]
	for len(b) >= 8 {
		cl := int(binary.LittleEndian.Uint32(b))
		ct := binary.LittleEndian.Uint32(b[4:])
		b = b[8:]
		if cl > len(b) {
			return nil, nil, newModelErr("truncated GLB chunk")
		}
		switch {
		case ct == glbJSON && js == nil:
			js = b[:cl]
		case ct == glbBIN && bin == nil:
			bin = b[:cl]
		}
		b = b[cl:]
	}
	if js == nil {
		return nil, nil, newModelErr("missing GLB JSON chunk")
	}
	return
}

// gltfMeshData is a single imported primitive.
type gltfMeshData struct {
	name     string
	vertices []float32
	indices  []uint32
}

// decodeGLTF imports every triangle primitive of the glTF
// asset in data. External buffers are resolved relative to
// dir in fsys.
func decodeGLTF(data []byte, fsys fs.FS, dir, stem string) ([]gltfMeshData, error) {
	js := data
	var bin []byte
	if isGLB(data) {
		var err error
		if js, bin, err = splitGLB(data); err != nil {
			return nil, err
		}
	}
	var doc gltfDoc
	if err := json.NewDecoder(bytes.NewReader(js)).Decode(&doc); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(doc.Asset.Version, "2.") {
		return nil, newModelErr("unsupported glTF version " + strconv.Quote(doc.Asset.Version))
	}
	bufs := make([][]byte, len(doc.Buffers))
	for i, b := range doc.Buffers {
		var err error
		if bufs[i], err = loadBuffer(b, i, bin, fsys, dir); err != nil {
			return nil, err
		}
	}

	var nprim int
	for _, m := range doc.Meshes {
		nprim += len(m.Primitives)
	}
	if nprim == 0 {
		return nil, newModelErr("glTF asset has no meshes")
	}
	var out []gltfMeshData
	for mi, m := range doc.Meshes {
		for pi, p := range m.Primitives {
			name := stem
			if nprim > 1 {
				if m.Name != "" {
					name += "." + m.Name
				} else {
					name += "." + strconv.Itoa(mi)
				}
				if pi > 0 {
					name += "." + strconv.Itoa(pi)
				}
			}
			md, err := doc.primitive(p, bufs)
			if err != nil {
				return nil, newModelErr(name + ": " + strings.TrimPrefix(err.Error(), prefix))
			}
			md.name = name
			out = append(out, md)
		}
	}
	return out, nil
}

func loadBuffer(b gltfBuffer, i int, bin []byte, fsys fs.FS, dir string) (data []byte, err error) {
	switch {
	case b.URI == "":
		if i != 0 || bin == nil {
			return nil, newModelErr("buffer " + strconv.Itoa(i) + " has no data")
		}
		data = bin
	case strings.HasPrefix(b.URI, "data:"):
		comma := strings.IndexByte(b.URI, ',')
		if comma < 0 || !strings.HasSuffix(b.URI[:comma], ";base64") {
			return nil, newModelErr("unsupported data URI")
		}
		data, err = base64.StdEncoding.DecodeString(b.URI[comma+1:])
	default:
		var name string
		if name, err = url.PathUnescape(b.URI); err == nil {
			data, err = fs.ReadFile(fsys, path.Join(dir, name))
		}
	}
	if err == nil && len(data) < b.ByteLength {
		err = newModelErr("buffer " + strconv.Itoa(i) + " is shorter than its byteLength")
	}
	return
}

// view returns the bytes backing accessor i along with the
// distance between consecutive elements.
func (d *gltfDoc) view(bufs [][]byte, i int) (b []byte, stride int, a *gltfAccessor, err error) {
	if i < 0 || i >= len(d.Accessors) {
		return nil, 0, nil, newModelErr("invalid accessor index " + strconv.Itoa(i))
	}
	a = &d.Accessors[i]
	cs, cc := componentSize(a.ComponentType), componentCount(a.Type)
	switch {
	case cs == 0:
		return nil, 0, nil, newModelErr("invalid accessor component type")
	case cc == 0:
		return nil, 0, nil, newModelErr("unsupported accessor type " + strconv.Quote(a.Type))
	case a.Count < 1:
		return nil, 0, nil, newModelErr("invalid accessor count")
	case a.ByteOffset < 0:
		return nil, 0, nil, newModelErr("invalid accessor byte offset")
	case len(a.Sparse) != 0:
		return nil, 0, nil, newModelErr("sparse accessors are not supported")
	}
	size := cs * cc
	if a.BufferView == nil {
		if a.Count > maxZeroCount {
			return nil, 0, nil, newModelErr("accessor count too large")
		}
		return make([]byte, size*a.Count), size, a, nil
	}
	v := *a.BufferView
	if v < 0 || v >= len(d.BufferViews) {
		return nil, 0, nil, newModelErr("invalid buffer view index " + strconv.Itoa(v))
	}
	bv := d.BufferViews[v]
	if bv.Buffer < 0 || bv.Buffer >= len(bufs) {
		return nil, 0, nil, newModelErr("invalid buffer index " + strconv.Itoa(bv.Buffer))
	}
	buf := bufs[bv.Buffer]
	if bv.ByteOffset < 0 || bv.ByteLength < 0 || bv.ByteOffset > len(buf) || bv.ByteLength > len(buf)-bv.ByteOffset {
		return nil, 0, nil, newModelErr("buffer view out of range")
	}
	b = buf[bv.ByteOffset : bv.ByteOffset+bv.ByteLength]
	stride = bv.ByteStride
	switch {
	case stride == 0:
		stride = size
	case stride < size:
		return nil, 0, nil, newModelErr("invalid buffer view byte stride " + strconv.Itoa(stride))
	}
	// Count elements need (Count-1)*stride+size bytes
	// past ByteOffset.
	if a.ByteOffset > len(b) || len(b)-a.ByteOffset < size ||
		a.Count-1 > (len(b)-a.ByteOffset-size)/stride {
		return nil, 0, nil, newModelErr("accessor out of range")
	}
	return b[a.ByteOffset:], stride, a, nil
}

// floats reads accessor i as n-component float vectors.
func (d *gltfDoc) floats(bufs [][]byte, i, n int) ([]float32, int, error) {
	b, stride, a, err := d.view(bufs, i)
	if err != nil {
		return nil, 0, err
	}
	if a.ComponentType != gltfFloat || componentCount(a.Type) != n {
		return nil, 0, newModelErr("expected float VEC" + strconv.Itoa(n) + " accessor")
	}
	s := make([]float32, 0, a.Count*n)
	for e := range a.Count {
		for c := range n {
			bits := binary.LittleEndian.Uint32(b[e*stride+c*4:])
			s = append(s, math.Float32frombits(bits))
		}
	}
	return s, a.Count, nil
}

// uints reads accessor i as scalar indices.
func (d *gltfDoc) uints(bufs [][]byte, i int) ([]uint32, error) {
	b, stride, a, err := d.view(bufs, i)
	if err != nil {
		return nil, err
	}
	if a.Type != "SCALAR" {
		return nil, newModelErr("expected scalar index accessor")
	}
	s := make([]uint32, a.Count)
	for e := range s {
		p := b[e*stride:]
		switch a.ComponentType {
		case gltfUnsignedByte:
			s[e] = uint32(p[0])
		case gltfUnsignedShort:
			s[e] = uint32(binary.LittleEndian.Uint16(p))
		case gltfUnsignedInt:
			s[e] = binary.LittleEndian.Uint32(p)
		default:
			return nil, newModelErr("invalid index component type")
		}
	}
	return s, nil
}

// primitive interleaves the position and texture
// coordinates of p (see gltfLayout).
func (d *gltfDoc) primitive(p gltfPrimitive, bufs [][]byte) (md gltfMeshData, err error) {
	if p.Mode != nil && *p.Mode != gltfTriangles {
		return md, newModelErr("only triangle primitives are supported")
	}
	pi, ok := p.Attributes["POSITION"]
	if !ok {
		return md, newModelErr("primitive has no POSITION")
	}
	pos, n, err := d.floats(bufs, pi, 3)
	if err != nil {
		return
	}
	var uv []float32
	if ti, ok := p.Attributes["TEXCOORD_0"]; ok {
		var m int
		if uv, m, err = d.floats(bufs, ti, 2); err != nil {
			return
		}
		if m != n {
			return md, newModelErr("TEXCOORD_0 count differs from POSITION count")
		}
	}
	md.vertices = make([]float32, 0, n*5)
	for i := range n {
		md.vertices = append(md.vertices, pos[i*3:i*3+3]...)
		if uv != nil {
			md.vertices = append(md.vertices, uv[i*2:i*2+2]...)
		} else {
			md.vertices = append(md.vertices, 0, 0)
		}
	}
	if p.Indices != nil {
		md.indices, err = d.uints(bufs, *p.Indices)
	}
	return
}
