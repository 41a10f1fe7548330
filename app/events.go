// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package app

import (
	"github.com/gviegas/craft/camera"
	"github.com/gviegas/craft/wsi"
)

// events forwards window events to the App's state and
// then to the user callbacks.
type events struct{ a *App }

func (e *events) WindowClose(wsi.Window) { logger().Debug("close requested") }

func (e *events) WindowResize(_ wsi.Window, w, h int) {
	e.a.timing.Apply(func(t *timing) { t.width, t.height = w, h })
}

func (e *events) FramebufferResize(_ wsi.Window, w, h int) {
	e.a.timing.Apply(func(t *timing) { t.fbWidth, t.fbHeight = w, h })
	// Keep only the latest size.
	for {
		select {
		case e.a.resize <- [2]int{w, h}:
			return
		default:
		}
		select {
		case <-e.a.resize:
		default:
		}
	}
}

func (e *events) KeyboardKey(win wsi.Window, key wsi.Key, action wsi.Action, mods wsi.Modifier) {
	if e.a.cfg.Key != nil {
		e.a.cfg.Key(win, key, action, mods)
	}
}

func (e *events) PointerMotion(win wsi.Window, x, y float64) {
	e.a.cams.Apply(func(s *camera.System) { s.MouseMove(x, y) })
	if e.a.cfg.Cursor != nil {
		e.a.cfg.Cursor(win, x, y)
	}
}

func (e *events) PointerButton(win wsi.Window, btn wsi.Button, action wsi.Action, mods wsi.Modifier) {
	if e.a.cfg.Button != nil {
		e.a.cfg.Button(win, btn, action, mods)
	}
}

func (e *events) Scroll(win wsi.Window, dx, dy float64) {
	e.a.cams.Apply(func(s *camera.System) { s.MouseScroll(dx, dy) })
	if e.a.cfg.Scroll != nil {
		e.a.cfg.Scroll(win, dx, dy)
	}
}
