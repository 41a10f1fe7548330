// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package shader

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gviegas/craft/driver/drivertest"
	"github.com/gviegas/craft/internal/logging"
	"github.com/gviegas/craft/linear"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	logging.SetLogger(slog.New(logging.NewHandler(&buf, &logging.Options{Level: slog.LevelDebug})))
	t.Cleanup(func() { logging.SetLogger(nil) })
	return &buf
}

func TestMatch(t *testing.T) {
	files := []string{
		"basic.vert", "basic.frag",
		"light.vs", "light.fs",
		"lonely.vert",
		"orphan.frag",
		"readme.txt",
	}
	pairs, unpaired := Match(files)
	want := []Pair{
		{"basic", "basic.vert", "basic.frag"},
		{"light", "light.vs", "light.fs"},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("Match: pairs\nhave %v\nwant %v", pairs, want)
	}
	if x := []string{"lonely.vert", "orphan.frag"}; !reflect.DeepEqual(unpaired, x) {
		t.Fatalf("Match: unpaired\nhave %v\nwant %v", unpaired, x)
	}
}

func TestManagerAdd(t *testing.T) {
	gpu := drivertest.New()
	m := NewManager(gpu)
	if err := m.Add("a", "void main(){}", "void main(){}"); err != nil {
		t.Fatalf("Manager.Add:\nhave %v\nwant nil", err)
	}
	if err := m.Add("b", "#error", "void main(){}"); err == nil {
		t.Fatal("Manager.Add: compile error\nhave nil\nwant non-nil")
	}
	if err := m.Add("c", "void main(){}", "#nolink"); err == nil {
		t.Fatal("Manager.Add: link error\nhave nil\nwant non-nil")
	}
	if err := m.Add("", "", ""); err == nil {
		t.Fatal("Manager.Add: empty name\nhave nil\nwant non-nil")
	}
	if x := m.Programs(); !reflect.DeepEqual(x, []string{"a"}) {
		t.Fatalf("Manager.Programs:\nhave %v\nwant [a]", x)
	}
	p := m.Use("a")
	if p == nil || p.Name() != "a" {
		t.Fatalf("Manager.Use:\nhave %v\nwant program a", p)
	}
	if gpu.Used() == nil {
		t.Fatal("Manager.Use: no program in use")
	}
	// Replacing destroys the old program.
	if err := m.Add("a", "void main(){}", "void main(){}"); err != nil {
		t.Fatalf("Manager.Add: replace\nhave %v\nwant nil", err)
	}
	if x := gpu.Destroyed(); x != 1 {
		t.Fatalf("Manager.Add: replace: Destroyed\nhave %d\nwant 1", x)
	}
	m.Close()
	if x := gpu.Destroyed(); x != 2 {
		t.Fatalf("Manager.Close: Destroyed\nhave %d\nwant 2", x)
	}
	if x := m.Programs(); len(x) != 0 {
		t.Fatalf("Manager.Close: Programs\nhave %v\nwant []", x)
	}
}

func TestManagerLoadFS(t *testing.T) {
	buf := captureLog(t)
	fsys := fstest.MapFS{
		"basic.vert":  {Data: []byte("void main(){}")},
		"basic.frag":  {Data: []byte("void main(){}")},
		"broken.vert": {Data: []byte("#error")},
		"broken.frag": {Data: []byte("void main(){}")},
		"alone.vs":    {Data: []byte("void main(){}")},
		"sub/x.vert":  {Data: []byte("void main(){}")},
	}
	m := NewManager(drivertest.New())
	if err := m.LoadFS(fsys); err != nil {
		t.Fatalf("Manager.LoadFS:\nhave %v\nwant nil", err)
	}
	if x := m.Programs(); !reflect.DeepEqual(x, []string{"basic"}) {
		t.Fatalf("Manager.LoadFS: Programs\nhave %v\nwant [basic]", x)
	}
	s := buf.String()
	for _, x := range []string{"alone.vs", "broken"} {
		if !strings.Contains(s, x) {
			t.Fatalf("Manager.LoadFS: log does not mention %q:\n%s", x, s)
		}
	}
	if err := m.LoadFrom(t.TempDir() + "/missing"); err == nil {
		t.Fatal("Manager.LoadFrom: missing dir\nhave nil\nwant non-nil")
	}
}

func TestManagerGetMissing(t *testing.T) {
	buf := captureLog(t)
	m := NewManager(drivertest.New())
	for range 3 {
		if p, ok := m.Get("nope"); ok || p != nil {
			t.Fatalf("Manager.Get:\nhave %v, %t\nwant nil, false", p, ok)
		}
	}
	if n := strings.Count(buf.String(), "program not found"); n != 1 {
		t.Fatalf("Manager.Get: warnings\nhave %d\nwant 1", n)
	}
	if m.Use("nope") != nil {
		t.Fatal("Manager.Use: missing program\nhave non-nil\nwant nil")
	}
}

func newProgram(t *testing.T, gpu *drivertest.GPU) *Program {
	m := NewManager(gpu)
	if err := m.Add("p", "void main(){}", "void main(){}"); err != nil {
		t.Fatal(err)
	}
	p, _ := m.Get("p")
	return p
}

func TestSet(t *testing.T) {
	gpu := drivertest.New()
	gpu.Locations["f"] = 0
	gpu.Locations["v3"] = 1
	gpu.Locations["iv2"] = 2
	gpu.Locations["m4"] = 3
	gpu.Locations["m2x3"] = 4
	gpu.Locations["u"] = 5
	gpu.Locations["dv4"] = 6
	p := newProgram(t, gpu)

	Set(p, "f", float32(1.5))
	Set(p, "v3", linear.Vec3[float32]{1, 2, 3})
	Set(p, "iv2", linear.Vec2[int32]{-1, 7})
	m4 := linear.I4[float32]()
	m4[0][3] = 5
	Set(p, "m4", m4)
	Set(p, "m2x3", linear.M2x3[float32]{{1, 2, 3}, {4, 5, 6}})
	Set(p, "u", uint32(9))
	Set(p, "dv4", linear.Vec4[float64]{1, 2, 3, 4})

	us := gpu.Uniforms()
	want := []drivertest.Uniform{
		{Loc: 0, Kind: "f", N: 1, F32: []float32{1.5}},
		{Loc: 1, Kind: "f", N: 3, F32: []float32{1, 2, 3}},
		{Loc: 2, Kind: "i", N: 2, I32: []int32{-1, 7}},
		{Loc: 3, Kind: "mf", Rows: 4, Cols: 4, F32: []float32{1, 0, 0, 5, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}},
		{Loc: 4, Kind: "mf", Rows: 2, Cols: 3, F32: []float32{1, 2, 3, 4, 5, 6}},
		{Loc: 5, Kind: "u", N: 1, U32: []uint32{9}},
		{Loc: 6, Kind: "d", N: 4, F64: []float64{1, 2, 3, 4}},
	}
	if !reflect.DeepEqual(us, want) {
		t.Fatalf("Set:\nhave %+v\nwant %+v", us, want)
	}
	if gpu.Used() == nil {
		t.Fatal("Set: program not in use")
	}
}

func TestSetMissing(t *testing.T) {
	buf := captureLog(t)
	gpu := drivertest.New()
	p := newProgram(t, gpu)
	for range 4 {
		Set(p, "nope", float32(1))
	}
	Set(p, "other", int32(1))
	if n := len(gpu.Uniforms()); n != 0 {
		t.Fatalf("Set: missing uniform: uploads\nhave %d\nwant 0", n)
	}
	s := buf.String()
	if n := strings.Count(s, "uniform not found"); n != 2 {
		t.Fatalf("Set: warnings\nhave %d\nwant 2\n%s", n, s)
	}
}

func TestSetDeviceErr(t *testing.T) {
	buf := captureLog(t)
	gpu := drivertest.New()
	gpu.Locations["x"] = 0
	gpu.Locations["y"] = 1
	p := newProgram(t, gpu)

	// A stale error is not blamed on the upload.
	gpu.Errs = []error{errors.New("stale error")}
	Set(p, "y", float32(1))
	if s := buf.String(); strings.Contains(s, "stale error") {
		t.Fatalf("Set: stale device error logged:\n%s", s)
	}

	gpu.UniformErr = errors.New("invalid operation")
	for range 5 {
		Set(p, "x", linear.M3[float64]{})
	}
	if n := strings.Count(buf.String(), "invalid operation"); n != 1 {
		t.Fatalf("Set: device error warnings\nhave %d\nwant 1\n%s", n, buf.String())
	}
	x := gpu.Uniforms()
	if len(x) != 6 || x[1].Kind != "md" || x[1].Rows != 3 {
		t.Fatalf("Set: M3[float64]\nhave %+v", x)
	}

	// Reported again after a successful upload.
	gpu.UniformErr = nil
	Set(p, "x", linear.M3[float64]{})
	gpu.UniformErr = errors.New("invalid operation")
	Set(p, "x", linear.M3[float64]{})
	if n := strings.Count(buf.String(), "invalid operation"); n != 2 {
		t.Fatalf("Set: device error warnings\nhave %d\nwant 2\n%s", n, buf.String())
	}
}

func TestSetNilProgram(t *testing.T) {
	captureLog(t)
	gpu := drivertest.New()
	gpu.Locations["x"] = 0
	m := NewManager(gpu)
	Set(m.Use("missing"), "x", float32(1))
	Set[linear.M4[float32]](nil, "x", linear.I4[float32]())
	if n := len(gpu.Uniforms()); n != 0 {
		t.Fatalf("Set: nil program: uploads\nhave %d\nwant 0", n)
	}
}
