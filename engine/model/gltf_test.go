// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package model

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gviegas/craft/driver/drivertest"
)

// triangle returns a buffer holding three positions,
// three texture coordinates and three uint16 indices,
// in this order.
func triangle() []byte {
	var b bytes.Buffer
	for _, x := range [...]float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1} {
		binary.Write(&b, binary.LittleEndian, x)
	}
	binary.Write(&b, binary.LittleEndian, [3]uint16{0, 1, 2})
	// Pad to a multiple of 4 bytes.
	b.Write([]byte{0, 0})
	return b.Bytes()
}

// triangleJSON describes triangle with the given buffer URI.
// An empty uri omits the property.
func triangleJSON(uri string, meshes string) string {
	u := ""
	if uri != "" {
		u = `"uri":"` + uri + `",`
	}
	if meshes == "" {
		meshes = `[{"name":"tri","primitives":[{"attributes":{"POSITION":0,"TEXCOORD_0":1},"indices":2}]}]`
	}
	return `{
	"asset":{"version":"2.0"},
	"buffers":[{` + u + `"byteLength":68}],
	"bufferViews":[
		{"buffer":0,"byteOffset":0,"byteLength":36},
		{"buffer":0,"byteOffset":36,"byteLength":24},
		{"buffer":0,"byteOffset":60,"byteLength":6}
	],
	"accessors":[
		{"bufferView":0,"componentType":5126,"count":3,"type":"VEC3"},
		{"bufferView":1,"componentType":5126,"count":3,"type":"VEC2"},
		{"bufferView":2,"componentType":5123,"count":3,"type":"SCALAR"}
	],
	"meshes":` + meshes + `
}`
}

func glb(js string, bin []byte) []byte {
	for len(js)%4 != 0 {
		js += " "
	}
	var b bytes.Buffer
	n := 12 + 8 + len(js)
	if bin != nil {
		n += 8 + len(bin)
	}
	binary.Write(&b, binary.LittleEndian, [3]uint32{glbMagic, 2, uint32(n)})
	binary.Write(&b, binary.LittleEndian, [2]uint32{uint32(len(js)), glbJSON})
	b.WriteString(js)
	if bin != nil {
		binary.Write(&b, binary.LittleEndian, [2]uint32{uint32(len(bin)), glbBIN})
		b.Write(bin)
	}
	return b.Bytes()
}

func meshVertices(m *drivertest.Mesh) []float32 {
	s := make([]float32, len(m.Data)/4)
	for i := range s {
		s[i] = math.Float32frombits(binary.NativeEndian.Uint32(m.Data[i*4:]))
	}
	return s
}

func TestSplitGLB(t *testing.T) {
	js, bin, err := splitGLB(glb(`{}`, []byte{1, 2, 3, 4}))
	if err != nil {
		t.Fatalf("splitGLB:\nhave %v\nwant nil", err)
	}
	if string(js) != "{}  " || !bytes.Equal(bin, []byte{1, 2, 3, 4}) {
		t.Fatalf("splitGLB:\nhave %q, %v\nwant %q, [1 2 3 4]", js, bin, "{}  ")
	}
	if _, bin, _ = splitGLB(glb(`{}`, nil)); bin != nil {
		t.Fatalf("splitGLB: bin\nhave %v\nwant nil", bin)
	}

	bad := glb(`{}`, nil)
	binary.LittleEndian.PutUint32(bad[4:], 1)
	for _, x := range [][]byte{
		nil,
		[]byte("glTF"),
		bad,
		glb(`{}`, nil)[:16],
		glb(`{}`, nil)[:12],
	} {
		if _, _, err := splitGLB(x); err == nil {
			t.Fatalf("splitGLB(%v):\nhave nil\nwant non-nil", x)
		}
	}
}

func TestLoadGLTF(t *testing.T) {
	buf := captureLog(t)
	gpu := drivertest.New()
	m := NewManager(gpu)
	data := triangle()
	uri := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(data)
	fsys := fstest.MapFS{
		"embedded.gltf":     {Data: []byte(triangleJSON(uri, ""))},
		"binary.glb":        {Data: glb(triangleJSON("", ""), data)},
		"external.gltf":     {Data: []byte(triangleJSON("tri%20angle.bin", ""))},
		"tri angle.bin":     {Data: data},
		"lost.gltf":         {Data: []byte(triangleJSON("lost.bin", ""))},
		"old.gltf":          {Data: []byte(`{"asset":{"version":"1.0"}}`)},
		"empty.gltf":        {Data: []byte(`{"asset":{"version":"2.0"}}`)},
		"dir/readme.gltf":   {Data: []byte("not loaded")},
		"notes.txt":         {Data: []byte("ignored")},
		"trianglejson.json": {Data: []byte(`{"type":"array","name":"flat","vertices":[0,0,0,1,1,1],"description":"2f"}`)},
	}
	if err := m.LoadFS(fsys); err != nil {
		t.Fatalf("Manager.LoadFS:\nhave %v\nwant nil", err)
	}
	want := []string{"binary", "embedded", "external", "flat"}
	if x := m.Names(); !reflect.DeepEqual(x, want) {
		t.Fatalf("Manager.LoadFS: Names\nhave %v\nwant %v", x, want)
	}
	s := buf.String()
	for _, x := range [...]string{"lost.gltf", "old.gltf", "empty.gltf"} {
		if !strings.Contains(s, x) {
			t.Fatalf("Manager.LoadFS: %s not logged:\n%s", x, s)
		}
	}

	m.Draw("binary")
	draws := gpu.Draws()
	if len(draws) != 1 {
		t.Fatalf("Manager.Draw: draws\nhave %d\nwant 1", len(draws))
	}
	mesh := draws[0]
	if !reflect.DeepEqual(mesh.Index, []uint32{0, 1, 2}) || mesh.N != 3 || mesh.Stride != 20 {
		t.Fatalf("Manager.LoadGLTF: mesh\nhave %v, %d, %d\nwant [0 1 2], 3, 20", mesh.Index, mesh.N, mesh.Stride)
	}
	wantv := []float32{0, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1}
	if x := meshVertices(mesh); !reflect.DeepEqual(x, wantv) {
		t.Fatalf("Manager.LoadGLTF: vertices\nhave %v\nwant %v", x, wantv)
	}
}

func TestLoadGLTFMeshes(t *testing.T) {
	captureLog(t)
	m := NewManager(drivertest.New())
	data := triangle()
	uri := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(data)
	meshes := `[
		{"name":"a","primitives":[
			{"attributes":{"POSITION":0,"TEXCOORD_0":1},"indices":2},
			{"attributes":{"POSITION":0}}
		]},
		{"primitives":[{"attributes":{"POSITION":0},"mode":4}]}
	]`
	fsys := fstest.MapFS{"set.gltf": {Data: []byte(triangleJSON(uri, meshes))}}
	if err := m.LoadGLTF(fsys, "set.gltf"); err != nil {
		t.Fatalf("Manager.LoadGLTF:\nhave %v\nwant nil", err)
	}
	want := []string{"set.1", "set.a", "set.a.1"}
	if x := m.Names(); !reflect.DeepEqual(x, want) {
		t.Fatalf("Manager.LoadGLTF: Names\nhave %v\nwant %v", x, want)
	}

	for _, x := range [...]string{
		`[{"primitives":[{"attributes":{"TEXCOORD_0":1}}]}]`,
		`[{"primitives":[{"attributes":{"POSITION":1}}]}]`,
		`[{"primitives":[{"attributes":{"POSITION":0,"TEXCOORD_0":0}}]}]`,
		`[{"primitives":[{"attributes":{"POSITION":0},"indices":0}]}]`,
		`[{"primitives":[{"attributes":{"POSITION":0},"mode":1}]}]`,
		`[{"primitives":[{"attributes":{"POSITION":7}}]}]`,
	} {
		fsys := fstest.MapFS{"bad.gltf": {Data: []byte(triangleJSON(uri, x))}}
		if err := m.LoadGLTF(fsys, "bad.gltf"); err == nil {
			t.Fatalf("Manager.LoadGLTF(%s):\nhave nil\nwant non-nil", x)
		}
	}
	if m.Has("bad") {
		t.Fatal("Manager.LoadGLTF: invalid mesh added")
	}
}

func TestLoadFileGLTF(t *testing.T) {
	captureLog(t)
	m := NewManager(drivertest.New())
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tri.bin"), triangle(), 0o644); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(dir, "tri.gltf")
	if err := os.WriteFile(file, []byte(triangleJSON("tri.bin", "")), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := m.LoadFile(file); err != nil {
		t.Fatalf("Manager.LoadFile:\nhave %v\nwant nil", err)
	}
	if !m.Has("tri") {
		t.Fatal("Manager.LoadFile: glTF model not added")
	}
}

func TestLoadGLTFAccessors(t *testing.T) {
	buf := captureLog(t)
	m := NewManager(drivertest.New())
	uri := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(triangle())
	valid := triangleJSON(uri, "")
	posView := `{"buffer":0,"byteOffset":0,"byteLength":36}`
	posAcc := `{"bufferView":0,"componentType":5126,"count":3,"type":"VEC3"}`
	for _, x := range [...]struct{ old, new string }{
		{posView, `{"buffer":0,"byteOffset":0,"byteLength":36,"byteStride":-12}`},
		{posView, `{"buffer":0,"byteOffset":0,"byteLength":36,"byteStride":4}`},
		{posView, `{"buffer":0,"byteOffset":9223372036854775800,"byteLength":36}`},
		{posView, `{"buffer":0,"byteOffset":0,"byteLength":9223372036854775800}`},
		{posAcc, `{"bufferView":0,"componentType":5126,"count":9223372036854775800,"type":"VEC3"}`},
		{posAcc, `{"bufferView":0,"componentType":5126,"count":4,"type":"VEC3"}`},
		{posAcc, `{"bufferView":0,"byteOffset":9223372036854775800,"componentType":5126,"count":3,"type":"VEC3"}`},
		{posAcc, `{"bufferView":0,"byteOffset":28,"componentType":5126,"count":1,"type":"VEC3"}`},
		{posAcc, `{"componentType":5126,"count":9223372036854775800,"type":"VEC3"}`},
		{posAcc, `{"componentType":5126,"count":2000000,"type":"VEC3"}`},
	} {
		js := strings.Replace(valid, x.old, x.new, 1)
		if js == valid {
			t.Fatalf("fixture does not contain %s", x.old)
		}
		fsys := fstest.MapFS{"bad.gltf": {Data: []byte(js)}}
		if err := m.LoadGLTF(fsys, "bad.gltf"); err == nil {
			t.Fatalf("Manager.LoadGLTF(%s):\nhave nil\nwant non-nil", x.new)
		}
	}
	if m.Has("bad") {
		t.Fatal("Manager.LoadGLTF: invalid mesh added")
	}
	if s := buf.String(); strings.Count(s, "cannot load glTF asset") != 10 {
		t.Fatalf("Manager.LoadGLTF: expected 10 warnings:\n%s", s)
	}

	// An interleaved view with a stride larger than the element.
	interleaved := strings.Replace(valid, posView, `{"buffer":0,"byteOffset":0,"byteLength":36,"byteStride":24}`, 1)
	interleaved = strings.Replace(interleaved, posAcc, `{"bufferView":0,"componentType":5126,"count":2,"type":"VEC3"}`, 1)
	interleaved = strings.Replace(interleaved, `"TEXCOORD_0":1},"indices":2`, `"TEXCOORD_0":3}`, 1)
	interleaved = strings.Replace(interleaved, `"type":"SCALAR"}`, `"type":"SCALAR"},
		{"bufferView":1,"componentType":5126,"count":2,"type":"VEC2"}`, 1)
	fsys := fstest.MapFS{"strided.gltf": {Data: []byte(interleaved)}}
	if err := m.LoadGLTF(fsys, "strided.gltf"); err != nil {
		t.Fatalf("Manager.LoadGLTF: strided\nhave %v\nwant nil", err)
	}
	if !m.Has("strided") {
		t.Fatal("Manager.LoadGLTF: strided model not added")
	}
}
