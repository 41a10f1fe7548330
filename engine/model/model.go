// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package model manages named vertex data ready to be
// drawn as triangle lists.
package model

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/gviegas/craft/driver"
	"github.com/gviegas/craft/internal/logging"
	"github.com/gviegas/craft/internal/warnonce"
)

const prefix = "model: "

func newModelErr(reason string) error { return errors.New(prefix + reason) }

func logger() *slog.Logger { return logging.For("model") }

// Manager owns a set of named models.
// Its methods must be called from the thread on which the
// graphics context is current.
type Manager struct {
	gpu     driver.GPU
	meshes  map[string]driver.Mesh
	missing warnonce.Set
}

// NewManager creates a new Manager that creates meshes
// on gpu.
func NewManager(gpu driver.GPU) *Manager {
	return &Manager{
		gpu:    gpu,
		meshes: make(map[string]driver.Mesh),
	}
}

// Add adds an indexed model named name.
// desc describes the vertex layout (see ParseLayout).
// Every index must refer to an existing vertex.
// If name already exists, the old model is replaced.
func (m *Manager) Add(name string, vertices []float32, indices []uint32, desc string) error {
	if len(indices) == 0 {
		return newModelErr("no indices")
	}
	return m.add(name, vertices, indices, desc)
}

// AddArray adds a non-indexed model named name.
// Its vertices are drawn in order.
func (m *Manager) AddArray(name string, vertices []float32, desc string) error {
	return m.add(name, vertices, nil, desc)
}

func (m *Manager) add(name string, vertices []float32, indices []uint32, desc string) error {
	if name == "" {
		return newModelErr("empty model name")
	}
	l, err := ParseLayout(desc)
	if err != nil {
		return err
	}
	data, n, err := l.Pack(vertices)
	if err != nil {
		return err
	}
	count := n
	if indices != nil {
		for _, x := range indices {
			if int(x) >= n {
				return newModelErr("index out of range: " + strconv.FormatUint(uint64(x), 10))
			}
		}
		count = len(indices)
	}
	mesh, err := m.gpu.NewMesh(data, l.Stride, l.In, indices, count)
	if err != nil {
		return err
	}
	if old, ok := m.meshes[name]; ok {
		old.Destroy()
	}
	m.meshes[name] = mesh
	m.missing.Forget(name)
	logger().Debug("model added", "name", name, "vertices", n, "count", count)
	return nil
}

// LoadFile adds the model described by the JSON file at
// file (see ParseFile), or the meshes of a glTF asset if
// file has the .gltf or .glb extension.
// Failures are logged as well.
func (m *Manager) LoadFile(file string) error {
	if isGLTFExt(file) {
		return m.LoadGLTF(os.DirFS(filepath.Dir(file)), filepath.Base(file))
	}
	f, err := os.Open(file)
	if err != nil {
		logger().Warn("cannot open model file", "file", file, "err", err)
		return err
	}
	defer f.Close()
	return m.load(file, f)
}

func isGLTFExt(name string) bool {
	switch path.Ext(name) {
	case ".gltf", ".glb":
		return true
	}
	return false
}

// LoadGLTF adds every triangle mesh of the glTF 2.0 asset
// named name in fsys. Models are named after the file stem,
// suffixed by mesh name (or index) when the asset holds
// more than one primitive. Vertices are laid out as "3f;2f"
// (position, texture coordinates).
// Failures are logged as well.
func (m *Manager) LoadGLTF(fsys fs.FS, name string) error {
	data, err := fs.ReadFile(fsys, name)
	if err == nil {
		stem := strings.TrimSuffix(path.Base(name), path.Ext(name))
		var meshes []gltfMeshData
		if meshes, err = decodeGLTF(data, fsys, path.Dir(name), stem); err == nil {
			for _, md := range meshes {
				var e error
				if md.indices != nil {
					e = m.Add(md.name, md.vertices, md.indices, gltfLayout)
				} else {
					e = m.AddArray(md.name, md.vertices, gltfLayout)
				}
				if e != nil {
					logger().Warn("cannot add glTF mesh", "file", name, "model", md.name, "err", e)
					err = errors.Join(err, e)
				}
			}
			return err
		}
	}
	logger().Warn("cannot load glTF asset", "file", name, "err", err)
	return err
}

func (m *Manager) load(file string, r io.Reader) error {
	mf, err := ParseFile(r)
	if err == nil {
		if mf.Type == TypeElement {
			err = m.Add(mf.Name, mf.Vertices, mf.Indices, mf.Description)
		} else {
			err = m.AddArray(mf.Name, mf.Vertices, mf.Description)
		}
	}
	if err != nil {
		logger().Warn("cannot load model", "file", file, "err", err)
	}
	return err
}

// LoadFrom loads every model file found in dir.
// It is equivalent to LoadFS(os.DirFS(dir)).
func (m *Manager) LoadFrom(dir string) error { return m.LoadFS(os.DirFS(dir)) }

// LoadFS loads every .json, .gltf and .glb file in the
// root of fsys.
// Files that fail to load are logged and skipped.
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
		if isGLTFExt(e.Name()) {
			m.LoadGLTF(fsys, e.Name())
			continue
		}
		if path.Ext(e.Name()) != ".json" {
			continue
		}
		f, err := fsys.Open(e.Name())
		if err != nil {
			logger().Warn("cannot open model file", "file", e.Name(), "err", err)
			continue
		}
		m.load(e.Name(), f)
		f.Close()
	}
	return nil
}

// Has reports whether there is a model named name.
func (m *Manager) Has(name string) bool {
	_, ok := m.meshes[name]
	return ok
}

// Draw draws the model named name.
// A missing model is reported once per name and nothing
// is drawn.
func (m *Manager) Draw(name string) bool {
	mesh, ok := m.meshes[name]
	if !ok {
		if m.missing.First(name) {
			logger().Warn("model not found", "name", name)
		}
		return false
	}
	mesh.Draw()
	return true
}

// Names returns the sorted model names.
func (m *Manager) Names() []string {
	s := make([]string, 0, len(m.meshes))
	for k := range m.meshes {
		s = append(s, k)
	}
	slices.Sort(s)
	return s
}

// Remove destroys the model named name.
func (m *Manager) Remove(name string) bool {
	mesh, ok := m.meshes[name]
	if ok {
		mesh.Destroy()
		delete(m.meshes, name)
	}
	return ok
}

// Close destroys every model.
func (m *Manager) Close() {
	for k, mesh := range m.meshes {
		mesh.Destroy()
		delete(m.meshes, k)
	}
}
