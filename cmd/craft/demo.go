// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package main

import (
	"embed"
	"image"
	"image/color"
	"io/fs"
	"log/slog"

	"github.com/gviegas/craft/app"
	"github.com/gviegas/craft/camera"
	"github.com/gviegas/craft/driver"
	"github.com/gviegas/craft/engine/model"
	"github.com/gviegas/craft/engine/shader"
	"github.com/gviegas/craft/engine/texture"
	"github.com/gviegas/craft/internal/guard"
	"github.com/gviegas/craft/internal/logging"
	"github.com/gviegas/craft/linear"
	"github.com/gviegas/craft/node"
	"github.com/gviegas/craft/wsi"
)

//go:embed assets
var assets embed.FS

func logger() *slog.Logger { return logging.For("craft") }

// demo draws a spinning cube, orbited by a smaller one,
// over a floor.
type demo struct {
	s settings
	// Set after app.Build; only read by input callbacks.
	app      *app.App
	shaders  *shader.Manager
	textures *texture.Manager
	models   *model.Manager

	// Render thread only.
	graph node.Graph
	cube  node.Node
	moon  node.Node
}

// loadDir loads resources from dir, or from the built-in
// assets under sub if dir is empty.
func loadDir(dir, sub string, from func(string) error, fsys func(fs.FS) error) {
	var err error
	if dir != "" {
		err = from(dir)
	} else {
		var sfs fs.FS
		if sfs, err = fs.Sub(assets, sub); err == nil {
			err = fsys(sfs)
		}
	}
	if err != nil {
		logger().Warn("cannot load resources", "dir", dir, "err", err)
	}
}

// checker returns an n×n image of 8-pixel squares.
func checker(n int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	for y := range n {
		for x := range n {
			c := color.NRGBA{200, 200, 200, 255}
			if (x/8+y/8)%2 == 0 {
				c = color.NRGBA{60, 60, 70, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func (d *demo) init(_ *app.App, gpu driver.GPU) {
	gpu.SetDepthTest(true)

	d.shaders = shader.NewManager(gpu)
	loadDir(d.s.Shaders, "assets/shaders", d.shaders.LoadFrom, d.shaders.LoadFS)

	d.textures = texture.NewManager(gpu)
	if d.s.Textures != "" {
		if err := d.textures.LoadFrom(d.s.Textures); err != nil {
			logger().Warn("cannot load textures", "dir", d.s.Textures, "err", err)
		}
	}
	if !d.textures.Has("checker") {
		if err := d.textures.Add("checker", checker(64)); err != nil {
			logger().Warn("cannot create texture", "err", err)
		}
	}

	d.models = model.NewManager(gpu)
	loadDir(d.s.Models, "assets/models", d.models.LoadFrom, d.models.LoadFS)

	d.cube = d.graph.Insert(linear.I4[float32](), node.Nil)
	d.moon = d.graph.Insert(linear.Translate3(linear.Vec3[float32]{1.5, 0, 0}).
		Mul(linear.Scale3(linear.Vec3[float32]{0.3, 0.3, 0.3})), d.cube)

	logger().Info("resources loaded",
		"programs", len(d.shaders.Programs()),
		"textures", len(d.textures.Names()),
		"models", len(d.models.Names()))
}

func (d *demo) render(a *app.App, gpu driver.GPU) {
	gpu.Clear(0.1, 0.1, 0.12, 1)
	p := d.shaders.Use("basic")
	if p == nil {
		return
	}
	w, h := a.WindowSize()
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}
	view := guard.Get(a.Cameras(), func(s *camera.System) linear.M4[float32] { return s.ViewMatrix() })
	shader.Set(p, "view", view)
	shader.Set(p, "projection", linear.Perspective(linear.Radian[float32](45), aspect, 0.1, 100))
	shader.Set(p, "tex", int32(0))
	d.textures.Bind("checker", 0)

	shader.Set(p, "model", linear.I4[float32]())
	shader.Set(p, "tint", linear.Vec4[float32]{1, 1, 1, 1})
	d.models.Draw("floor")

	d.graph.SetLocal(d.cube, linear.Rotate3(a.Time(), linear.Vec3[float32]{0.5, 1, 0}))
	d.graph.Update()
	shader.Set(p, "model", d.graph.World(d.cube))
	shader.Set(p, "tint", linear.Vec4[float32]{1, 0.8, 0.6, 1})
	d.models.Draw("cube")
	shader.Set(p, "model", d.graph.World(d.moon))
	shader.Set(p, "tint", linear.Vec4[float32]{0.6, 0.8, 1, 1})
	d.models.Draw("cube")
}

func (d *demo) exit(*app.App, driver.GPU) {
	d.models.Close()
	d.textures.Close()
	d.shaders.Close()
}

func (d *demo) cameras(s *camera.System) {
	s.Add("free", camera.NewFree(linear.Vec3[float32]{0, 0, 3}, 2.5, 0.1))
	s.Add("orbit", camera.NewOrbit(2, 0.3, 1))
	s.SetActive(d.s.Camera)
}

// key handles Escape (quit), C (switch camera) and
// M (toggle mouse-look).
func (d *demo) key(win wsi.Window, key wsi.Key, action wsi.Action, mods wsi.Modifier) {
	app.CloseOnEscape(win, key, action, mods)
	if action != wsi.Press {
		return
	}
	switch key {
	case wsi.KeyC:
		d.app.Cameras().Apply(func(s *camera.System) {
			next := "orbit"
			if name, _ := s.Active(); name == "orbit" {
				next = "free"
			}
			s.SetActive(next)
			logger().Info("camera switched", "camera", next)
		})
	case wsi.KeyM:
		on := guard.Get(d.app.Cameras(), func(s *camera.System) bool {
			s.EnableMouse(!s.MouseEnabled())
			return s.MouseEnabled()
		})
		if on && d.s.DisableCursor {
			win.SetCursorMode(wsi.CursorDisabled)
		} else {
			win.SetCursorMode(wsi.CursorNormal)
		}
	}
}
