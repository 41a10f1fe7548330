// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package drivertest provides a driver.GPU that records
// calls instead of rendering.
package drivertest

import (
	"errors"
	"image"
	"strings"
	"sync"

	"github.com/gviegas/craft/driver"
)

// CompileErrMarker makes NewShaderCode fail when present
// in the source.
const CompileErrMarker = "#error"

// Uniform is a recorded uniform upload.
type Uniform struct {
	Loc  int
	Kind string
	N    int
	Rows int
	Cols int
	F32  []float32
	F64  []float64
	I32  []int32
	U32  []uint32
}

// GPU is a fake driver.GPU.
// It is safe for concurrent use.
type GPU struct {
	mu sync.Mutex
	// Locations maps uniform names to locations.
	// Names not present have location -1.
	Locations map[string]int
	// Errs is returned, in order, by Err.
	Errs []error
	// OpenErr is returned by Open.
	OpenErr error
	// UniformErr, if not nil, is queued in Errs by
	// every uniform upload.
	UniformErr error

	opened    int
	closed    int
	viewports [][4]int
	clears    int
	depth     bool
	used      *Program
	uniforms  []Uniform
	draws     []*Mesh
	binds     map[int]*Texture
	programs  int
	destroyed int
}

// New creates a new GPU.
func New() *GPU { return &GPU{Locations: map[string]int{}, binds: map[int]*Texture{}} }

// Open implements driver.Driver.
func (g *GPU) Open() (driver.GPU, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.OpenErr != nil {
		return nil, g.OpenErr
	}
	g.opened++
	return g, nil
}

// Name implements driver.Driver.
func (g *GPU) Name() string { return "drivertest" }

// Close implements driver.Driver.
func (g *GPU) Close() {
	g.mu.Lock()
	g.closed++
	g.mu.Unlock()
}

// Driver implements driver.GPU.
func (g *GPU) Driver() driver.Driver { return g }

// Viewport implements driver.GPU.
func (g *GPU) Viewport(x, y, width, height int) {
	g.mu.Lock()
	g.viewports = append(g.viewports, [4]int{x, y, width, height})
	g.mu.Unlock()
}

// Clear implements driver.GPU.
func (g *GPU) Clear(r, gr, b, a float32) {
	g.mu.Lock()
	g.clears++
	g.mu.Unlock()
}

// SetDepthTest implements driver.GPU.
func (g *GPU) SetDepthTest(enabled bool) {
	g.mu.Lock()
	g.depth = enabled
	g.mu.Unlock()
}

// Err implements driver.GPU.
func (g *GPU) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.Errs) == 0 {
		return nil
	}
	err := g.Errs[0]
	g.Errs = g.Errs[1:]
	return err
}

// ShaderCode is a fake driver.ShaderCode.
type ShaderCode struct {
	stage     driver.Stage
	Src       string
	Destroyed bool
}

func (s *ShaderCode) Stage() driver.Stage { return s.stage }
func (s *ShaderCode) Destroy()            { s.Destroyed = true }

// NewShaderCode implements driver.GPU.
func (g *GPU) NewShaderCode(stage driver.Stage, src string) (driver.ShaderCode, error) {
	if strings.Contains(src, CompileErrMarker) {
		return nil, errors.New("drivertest: compile error")
	}
	return &ShaderCode{stage: stage, Src: src}, nil
}

// Program is a fake driver.Program.
type Program struct {
	g         *GPU
	Vert      *ShaderCode
	Frag      *ShaderCode
	Destroyed bool
}

// NewProgram implements driver.GPU.
// It fails if either shader source contains "#nolink".
func (g *GPU) NewProgram(vert, frag driver.ShaderCode) (driver.Program, error) {
	vs, _ := vert.(*ShaderCode)
	fs, _ := frag.(*ShaderCode)
	if vs == nil || fs == nil || vs.stage != driver.SVertex || fs.stage != driver.SFragment {
		return nil, errors.New("drivertest: invalid shaders")
	}
	if strings.Contains(vs.Src, "#nolink") || strings.Contains(fs.Src, "#nolink") {
		return nil, errors.New("drivertest: link error")
	}
	g.mu.Lock()
	g.programs++
	g.mu.Unlock()
	return &Program{g: g, Vert: vs, Frag: fs}, nil
}

func (p *Program) Use() {
	p.g.mu.Lock()
	p.g.used = p
	p.g.mu.Unlock()
}

func (p *Program) Location(name string) int {
	p.g.mu.Lock()
	defer p.g.mu.Unlock()
	if loc, ok := p.g.Locations[name]; ok {
		return loc
	}
	return -1
}

func (p *Program) record(u Uniform) {
	p.g.mu.Lock()
	p.g.uniforms = append(p.g.uniforms, u)
	if p.g.UniformErr != nil {
		p.g.Errs = append(p.g.Errs, p.g.UniformErr)
	}
	p.g.mu.Unlock()
}

func (p *Program) Uniformf(loc, n int, v []float32) {
	p.record(Uniform{Loc: loc, Kind: "f", N: n, F32: append([]float32(nil), v...)})
}

func (p *Program) Uniformd(loc, n int, v []float64) {
	p.record(Uniform{Loc: loc, Kind: "d", N: n, F64: append([]float64(nil), v...)})
}

func (p *Program) Uniformi(loc, n int, v []int32) {
	p.record(Uniform{Loc: loc, Kind: "i", N: n, I32: append([]int32(nil), v...)})
}

func (p *Program) Uniformu(loc, n int, v []uint32) {
	p.record(Uniform{Loc: loc, Kind: "u", N: n, U32: append([]uint32(nil), v...)})
}

func (p *Program) UniformMatf(loc, rows, cols int, v []float32) {
	p.record(Uniform{Loc: loc, Kind: "mf", Rows: rows, Cols: cols, F32: append([]float32(nil), v...)})
}

func (p *Program) UniformMatd(loc, rows, cols int, v []float64) {
	p.record(Uniform{Loc: loc, Kind: "md", Rows: rows, Cols: cols, F64: append([]float64(nil), v...)})
}

func (p *Program) Destroy() {
	p.g.mu.Lock()
	if !p.Destroyed {
		p.g.destroyed++
	}
	p.Destroyed = true
	p.g.mu.Unlock()
}

// Texture is a fake driver.Texture.
type Texture struct {
	g         *GPU
	Img       *image.NRGBA
	Sampling  driver.Sampling
	Destroyed bool
}

// NewTexture implements driver.GPU.
func (g *GPU) NewTexture(img *image.NRGBA, spln *driver.Sampling) (driver.Texture, error) {
	if img.Rect.Empty() {
		return nil, errors.New("drivertest: empty image")
	}
	if spln == nil {
		spln = &driver.DefaultSampling
	}
	return &Texture{g: g, Img: img, Sampling: *spln}, nil
}

func (t *Texture) Bind(unit int) {
	t.g.mu.Lock()
	t.g.binds[unit] = t
	t.g.mu.Unlock()
}

func (t *Texture) Size() (width, height int) { return t.Img.Rect.Dx(), t.Img.Rect.Dy() }

func (t *Texture) Destroy() {
	t.g.mu.Lock()
	if !t.Destroyed {
		t.g.destroyed++
	}
	t.Destroyed = true
	t.g.mu.Unlock()
}

// Mesh is a fake driver.Mesh.
type Mesh struct {
	g         *GPU
	Data      []byte
	Stride    int
	In        []driver.VertexIn
	Index     []uint32
	N         int
	Destroyed bool
}

// NewMesh implements driver.GPU.
func (g *GPU) NewMesh(data []byte, stride int, in []driver.VertexIn, index []uint32, count int) (driver.Mesh, error) {
	if len(data) == 0 || stride <= 0 || count <= 0 {
		return nil, errors.New("drivertest: empty mesh")
	}
	return &Mesh{g: g, Data: data, Stride: stride, In: in, Index: index, N: count}, nil
}

func (m *Mesh) Draw() {
	m.g.mu.Lock()
	m.g.draws = append(m.g.draws, m)
	m.g.mu.Unlock()
}

func (m *Mesh) Count() int    { return m.N }
func (m *Mesh) Indexed() bool { return m.Index != nil }

func (m *Mesh) Destroy() {
	m.g.mu.Lock()
	if !m.Destroyed {
		m.g.destroyed++
	}
	m.Destroyed = true
	m.g.mu.Unlock()
}

// Opened returns the number of calls to Open.
func (g *GPU) Opened() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.opened
}

// Closed returns the number of calls to Close.
func (g *GPU) Closed() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.closed
}

// Viewports returns the recorded viewports.
func (g *GPU) Viewports() [][4]int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([][4]int(nil), g.viewports...)
}

// Clears returns the number of calls to Clear.
func (g *GPU) Clears() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.clears
}

// DepthTest returns whether depth testing is enabled.
func (g *GPU) DepthTest() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.depth
}

// Used returns the current program.
func (g *GPU) Used() *Program {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.used
}

// Uniforms returns the recorded uniform uploads.
func (g *GPU) Uniforms() []Uniform {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Uniform(nil), g.uniforms...)
}

// Draws returns the meshes drawn, in order.
func (g *GPU) Draws() []*Mesh {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]*Mesh(nil), g.draws...)
}

// Bound returns the texture bound to unit.
func (g *GPU) Bound(unit int) *Texture {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.binds[unit]
}

// Programs returns the number of programs linked.
func (g *GPU) Programs() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.programs
}

// Destroyed returns the number of programs, textures and
// meshes destroyed.
func (g *GPU) Destroyed() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.destroyed
}
