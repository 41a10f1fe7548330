// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package texture

import (
	"image"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/gviegas/craft/driver"
	"github.com/gviegas/craft/internal/warnonce"
)

// Manager owns a set of named textures.
// Its methods must be called from the thread on which the
// graphics context is current.
type Manager struct {
	gpu     driver.GPU
	spln    driver.Sampling
	texs    map[string]driver.Texture
	missing warnonce.Set
}

// NewManager creates a new Manager that uploads textures
// to gpu using driver.DefaultSampling.
func NewManager(gpu driver.GPU) *Manager {
	return &Manager{
		gpu:  gpu,
		spln: driver.DefaultSampling,
		texs: make(map[string]driver.Texture),
	}
}

// SetSampling sets the sampler state of textures added
// from now on.
func (m *Manager) SetSampling(spln driver.Sampling) { m.spln = spln }

// LoadFrom loads every image found in dir.
// It is equivalent to LoadFS(os.DirFS(dir)).
func (m *Manager) LoadFrom(dir string) error { return m.LoadFS(os.DirFS(dir)) }

// LoadFS loads every image in the root of fsys, naming
// each texture after its file stem.
// Files that cannot be decoded are logged and skipped,
// as are files whose stem is already taken.
// It fails only if fsys cannot be read.
func (m *Manager) LoadFS(fsys fs.FS) error {
	ents, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return err
	}
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		file := e.Name()
		name := strings.TrimSuffix(file, path.Ext(file))
		if _, ok := m.texs[name]; ok {
			logger().Warn("texture name already in use", "file", file, "name", name)
			continue
		}
		img, err := decodeFile(fsys, file)
		if err != nil {
			logger().Warn("cannot decode image", "file", file, "err", err)
			continue
		}
		if err := m.Add(name, img); err != nil {
			logger().Warn("cannot create texture", "file", file, "err", err)
		}
	}
	return nil
}

func decodeFile(fsys fs.FS, file string) (*image.NRGBA, error) {
	f, err := fsys.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := Decode(f)
	return img, err
}

// Add uploads img as the texture named name.
// img must have been flipped already (see Decode).
// If name already exists, the old texture is replaced.
func (m *Manager) Add(name string, img *image.NRGBA) error {
	if name == "" {
		return newTexErr("empty texture name")
	}
	tex, err := m.gpu.NewTexture(img, &m.spln)
	if err != nil {
		return err
	}
	if old, ok := m.texs[name]; ok {
		old.Destroy()
	}
	m.texs[name] = tex
	m.missing.Forget(name)
	w, h := tex.Size()
	logger().Debug("texture added", "name", name, "width", w, "height", h)
	return nil
}

// Has reports whether there is a texture named name.
func (m *Manager) Has(name string) bool {
	_, ok := m.texs[name]
	return ok
}

// Bind binds the texture named name to a texture unit.
// A missing texture is reported once per name and
// nothing is bound.
func (m *Manager) Bind(name string, unit int) bool {
	tex, ok := m.texs[name]
	if !ok {
		if m.missing.First(name) {
			logger().Warn("texture not found", "name", name)
		}
		return false
	}
	tex.Bind(unit)
	return true
}

// Names returns the sorted texture names.
func (m *Manager) Names() []string {
	s := make([]string, 0, len(m.texs))
	for k := range m.texs {
		s = append(s, k)
	}
	slices.Sort(s)
	return s
}

// Remove destroys the texture named name.
func (m *Manager) Remove(name string) bool {
	tex, ok := m.texs[name]
	if ok {
		tex.Destroy()
		delete(m.texs, name)
	}
	return ok
}

// Close destroys every texture.
func (m *Manager) Close() {
	for k, tex := range m.texs {
		tex.Destroy()
		delete(m.texs, k)
	}
}
