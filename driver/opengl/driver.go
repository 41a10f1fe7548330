// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package opengl implements driver interfaces using
// OpenGL 4.1 core.
package opengl

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gviegas/craft/driver"
	"github.com/gviegas/craft/internal/logging"
)

func init() { driver.Register(&Driver{}) }

// Driver implements driver.Driver.
type Driver struct {
	open bool
}

const driverName = "opengl"

// Open initializes the OpenGL function pointers for the
// context current on the calling thread.
func (d *Driver) Open() (driver.GPU, error) {
	if d.open {
		return d, nil
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", driver.ErrNotInstalled, err)
	}
	d.open = true
	logging.For(driverName).Info("opened",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return d, nil
}

// Name returns the driver's name.
func (d *Driver) Name() string { return driverName }

// Close deinitializes the driver.
func (d *Driver) Close() { d.open = false }

// Driver implements driver.GPU.
func (d *Driver) Driver() driver.Driver { return d }

// Viewport implements driver.GPU.
func (d *Driver) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// Clear implements driver.GPU.
func (d *Driver) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetDepthTest implements driver.GPU.
func (d *Driver) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

// Err implements driver.GPU.
func (d *Driver) Err() error {
	switch e := gl.GetError(); e {
	case gl.NO_ERROR:
		return nil
	case gl.INVALID_ENUM:
		return errors.New("opengl: invalid enum")
	case gl.INVALID_VALUE:
		return errors.New("opengl: invalid value")
	case gl.INVALID_OPERATION:
		return errors.New("opengl: invalid operation")
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return errors.New("opengl: invalid framebuffer operation")
	case gl.OUT_OF_MEMORY:
		return errors.New("opengl: out of memory")
	default:
		return fmt.Errorf("opengl: error 0x%x", e)
	}
}

// shaderCode implements driver.ShaderCode.
type shaderCode struct {
	id    uint32
	stage driver.Stage
}

// NewShaderCode implements driver.GPU.
func (d *Driver) NewShaderCode(stage driver.Stage, src string) (driver.ShaderCode, error) {
	var typ uint32
	switch stage {
	case driver.SVertex:
		typ = gl.VERTEX_SHADER
	case driver.SFragment:
		typ = gl.FRAGMENT_SHADER
	default:
		return nil, errors.New("opengl: invalid shader stage")
	}
	id := gl.CreateShader(typ)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(id, 1, csrc, nil)
	free()
	gl.CompileShader(id)
	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(id, n, nil, gl.Str(log))
		gl.DeleteShader(id)
		return nil, fmt.Errorf("opengl: %s shader: %s", stage, strings.TrimRight(log, "\x00\n"))
	}
	return &shaderCode{id: id, stage: stage}, nil
}

func (s *shaderCode) Stage() driver.Stage { return s.stage }

func (s *shaderCode) Destroy() {
	if s.id != 0 {
		gl.DeleteShader(s.id)
		s.id = 0
	}
}

// program implements driver.Program.
type program struct {
	id uint32
}

// NewProgram implements driver.GPU.
func (d *Driver) NewProgram(vert, frag driver.ShaderCode) (driver.Program, error) {
	vs, ok := vert.(*shaderCode)
	if !ok || vs.stage != driver.SVertex || vs.id == 0 {
		return nil, errors.New("opengl: invalid vertex shader")
	}
	fs, ok := frag.(*shaderCode)
	if !ok || fs.stage != driver.SFragment || fs.id == 0 {
		return nil, errors.New("opengl: invalid fragment shader")
	}
	id := gl.CreateProgram()
	gl.AttachShader(id, vs.id)
	gl.AttachShader(id, fs.id)
	gl.LinkProgram(id)
	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(id, n, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("opengl: link: %s", strings.TrimRight(log, "\x00\n"))
	}
	gl.DetachShader(id, vs.id)
	gl.DetachShader(id, fs.id)
	return &program{id: id}, nil
}

func (p *program) Use() { gl.UseProgram(p.id) }

func (p *program) Location(name string) int {
	return int(gl.GetUniformLocation(p.id, gl.Str(name+"\x00")))
}

func (p *program) Destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// texture implements driver.Texture.
type texture struct {
	id     uint32
	width  int
	height int
}

func glAddr(a driver.AddrMode) int32 {
	switch a {
	case driver.AMirror:
		return gl.MIRRORED_REPEAT
	case driver.AClamp:
		return gl.CLAMP_TO_EDGE
	}
	return gl.REPEAT
}

func glMin(min, mip driver.Filter) int32 {
	switch {
	case mip == driver.FNoMipmap && min == driver.FNearest:
		return gl.NEAREST
	case mip == driver.FNoMipmap:
		return gl.LINEAR
	case min == driver.FNearest && mip == driver.FNearest:
		return gl.NEAREST_MIPMAP_NEAREST
	case min == driver.FNearest:
		return gl.NEAREST_MIPMAP_LINEAR
	case mip == driver.FNearest:
		return gl.LINEAR_MIPMAP_NEAREST
	}
	return gl.LINEAR_MIPMAP_LINEAR
}

func glMag(mag driver.Filter) int32 {
	if mag == driver.FNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

// NewTexture implements driver.GPU.
// img must be tightly packed.
func (d *Driver) NewTexture(img *image.NRGBA, spln *driver.Sampling) (driver.Texture, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w <= 0 || h <= 0 || img.Stride != w*4 {
		return nil, errors.New("opengl: invalid texture image")
	}
	if spln == nil {
		spln = &driver.DefaultSampling
	}
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glAddr(spln.AddrU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glAddr(spln.AddrV))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glMin(spln.Min, spln.Mipmap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glMag(spln.Mag))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	if spln.Mipmap != driver.FNoMipmap {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &texture{id: id, width: w, height: h}, nil
}

func (t *texture) Bind(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

func (t *texture) Size() (width, height int) { return t.width, t.height }

func (t *texture) Destroy() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

// mesh implements driver.Mesh.
type mesh struct {
	vao, vbo, ebo uint32
	count         int
}

func glFmt(f driver.VertexFmt) (typ uint32, integer bool) {
	switch f {
	case driver.Int32:
		return gl.INT, true
	case driver.UInt32:
		return gl.UNSIGNED_INT, true
	case driver.UInt8:
		return gl.UNSIGNED_BYTE, true
	}
	return gl.FLOAT, false
}

// NewMesh implements driver.GPU.
func (d *Driver) NewMesh(data []byte, stride int, in []driver.VertexIn, index []uint32, count int) (driver.Mesh, error) {
	if len(data) == 0 || stride <= 0 || count <= 0 {
		return nil, errors.New("opengl: empty mesh")
	}
	m := &mesh{count: count}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	if index != nil {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(index)*4, gl.Ptr(index), gl.STATIC_DRAW)
	}
	for _, a := range in {
		typ, integer := glFmt(a.Format)
		if integer {
			gl.VertexAttribIPointerWithOffset(uint32(a.Nr), int32(a.Count), typ, int32(stride), uintptr(a.Offset))
		} else {
			gl.VertexAttribPointerWithOffset(uint32(a.Nr), int32(a.Count), typ, false, int32(stride), uintptr(a.Offset))
		}
		gl.EnableVertexAttribArray(uint32(a.Nr))
	}
	gl.BindVertexArray(0)
	return m, nil
}

func (m *mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.ebo != 0 {
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(m.count), gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, int32(m.count))
	}
}

func (m *mesh) Count() int { return m.count }

func (m *mesh) Indexed() bool { return m.ebo != 0 }

func (m *mesh) Destroy() {
	if m.vao == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	*m = mesh{}
}
