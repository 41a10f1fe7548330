// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package shader manages named shader programs built from
// vertex/fragment source pairs.
package shader

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/gviegas/craft/driver"
	"github.com/gviegas/craft/internal/logging"
	"github.com/gviegas/craft/internal/warnonce"
)

const prefix = "shader: "

func newShaderErr(reason string) error { return errors.New(prefix + reason) }

func logger() *slog.Logger { return logging.For("shader") }

// Program is a linked shader program.
type Program struct {
	name    string
	gpu     driver.GPU
	prog    driver.Program
	missing warnonce.Set
	failed  warnonce.Set
}

// Name returns the program's name.
func (p *Program) Name() string { return p.name }

// Use makes p the current program.
func (p *Program) Use() { p.prog.Use() }

// Manager owns a set of named programs.
// Its methods must be called from the thread on which the
// graphics context is current.
type Manager struct {
	gpu     driver.GPU
	progs   map[string]*Program
	missing warnonce.Set
}

// NewManager creates a new Manager that builds programs
// on gpu.
func NewManager(gpu driver.GPU) *Manager {
	return &Manager{
		gpu:   gpu,
		progs: make(map[string]*Program),
	}
}

// Stage extensions.
var (
	vertExt = []string{".vert", ".vs"}
	fragExt = []string{".frag", ".fs"}
)

// Pair is a vertex/fragment source file pair sharing the
// same stem.
type Pair struct {
	Name string
	Vert string
	Frag string
}

// Match pairs vertex and fragment shader files by stem.
// Files with other extensions are ignored. Files lacking
// a counterpart are returned in unpaired.
// Results are sorted by name.
func Match(files []string) (pairs []Pair, unpaired []string) {
	type entry struct{ vert, frag string }
	m := make(map[string]*entry)
	for _, f := range files {
		ext := path.Ext(f)
		stem := strings.TrimSuffix(path.Base(f), ext)
		var isVert bool
		switch {
		case slices.Contains(vertExt, ext):
			isVert = true
		case slices.Contains(fragExt, ext):
		default:
			continue
		}
		e := m[stem]
		if e == nil {
			e = new(entry)
			m[stem] = e
		}
		if isVert {
			e.vert = f
		} else {
			e.frag = f
		}
	}
	for stem, e := range m {
		switch {
		case e.vert != "" && e.frag != "":
			pairs = append(pairs, Pair{stem, e.vert, e.frag})
		case e.vert != "":
			unpaired = append(unpaired, e.vert)
		default:
			unpaired = append(unpaired, e.frag)
		}
	}
	slices.SortFunc(pairs, func(a, b Pair) int { return strings.Compare(a.Name, b.Name) })
	slices.Sort(unpaired)
	return
}

// LoadFrom loads every shader pair found in dir.
// It is equivalent to LoadFS(os.DirFS(dir)).
func (m *Manager) LoadFrom(dir string) error { return m.LoadFS(os.DirFS(dir)) }

// LoadFS loads every shader pair found in the root of
// fsys. Unpaired files and pairs that fail to build are
// logged and skipped. It fails only if fsys cannot be
// read.
func (m *Manager) LoadFS(fsys fs.FS) error {
	ents, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return err
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}
	pairs, unpaired := Match(files)
	for _, f := range unpaired {
		logger().Warn("shader file has no counterpart", "file", f)
	}
	for _, p := range pairs {
		vs, err := fs.ReadFile(fsys, p.Vert)
		if err != nil {
			logger().Warn("cannot read shader", "file", p.Vert, "err", err)
			continue
		}
		fsrc, err := fs.ReadFile(fsys, p.Frag)
		if err != nil {
			logger().Warn("cannot read shader", "file", p.Frag, "err", err)
			continue
		}
		if err := m.Add(p.Name, string(vs), string(fsrc)); err != nil {
			logger().Warn("cannot build program", "name", p.Name, "err", err)
		}
	}
	return nil
}

// Add compiles and links a program named name.
// If name already exists, the old program is replaced.
func (m *Manager) Add(name, vertSrc, fragSrc string) error {
	if name == "" {
		return newShaderErr("empty program name")
	}
	vs, err := m.gpu.NewShaderCode(driver.SVertex, vertSrc)
	if err != nil {
		return err
	}
	defer vs.Destroy()
	frag, err := m.gpu.NewShaderCode(driver.SFragment, fragSrc)
	if err != nil {
		return err
	}
	defer frag.Destroy()
	prog, err := m.gpu.NewProgram(vs, frag)
	if err != nil {
		return err
	}
	if old, ok := m.progs[name]; ok {
		old.prog.Destroy()
		logger().Warn("program replaced", "name", name)
	}
	m.progs[name] = &Program{name: name, gpu: m.gpu, prog: prog}
	m.missing.Forget(name)
	logger().Debug("program added", "name", name)
	return nil
}

// Get returns the program named name.
// A missing program is reported once per name.
func (m *Manager) Get(name string) (*Program, bool) {
	p, ok := m.progs[name]
	if !ok && m.missing.First(name) {
		logger().Warn("program not found", "name", name)
	}
	return p, ok
}

// Use makes the program named name current and returns it.
// It returns nil if there is no such program.
func (m *Manager) Use(name string) *Program {
	p, ok := m.Get(name)
	if !ok {
		return nil
	}
	p.Use()
	return p
}

// Programs returns the sorted program names.
func (m *Manager) Programs() []string {
	s := make([]string, 0, len(m.progs))
	for k := range m.progs {
		s = append(s, k)
	}
	slices.Sort(s)
	return s
}

// Close destroys every program.
func (m *Manager) Close() {
	for k, p := range m.progs {
		p.prog.Destroy()
		delete(m.progs, k)
	}
}
