// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package app

import (
	"runtime"
	"time"

	"github.com/gviegas/craft/driver"
	"github.com/gviegas/craft/internal/guard"
	"github.com/gviegas/craft/wsi"
)

// render runs on its own locked thread for the life of
// the App. It owns win except while lending it through
// loan/back.
func (a *App) render(win wsi.Window, loan chan<- wsi.Window, back <-chan wsi.Window) {
	runtime.LockOSThread()
	defer close(a.done)

	win.MakeCurrent()
	gpu, err := a.drv.Open()
	if err != nil {
		logger().Error("cannot open driver", "err", err)
		close(loan)
		return
	}
	if a.cfg.VSync {
		a.platform.SwapInterval(1)
	}
	// Window queries are main-thread only, so the
	// framebuffer size comes from the published state.
	fb := guard.Get(a.timing, func(t *timing) [2]int { return [2]int{t.fbWidth, t.fbHeight} })
	gpu.Viewport(0, 0, fb[0], fb[1])
	if a.cfg.RenderInit != nil {
		a.cfg.RenderInit(a, gpu)
	}
	logger().Debug("render init done")

	loan <- win
	win = <-back

	a.loop(win, gpu)
	if a.cfg.RenderExit != nil {
		a.cfg.RenderExit(a, gpu)
	}
	a.drv.Close()
	logger().Debug("render loop exited")
}

func (a *App) loop(win wsi.Window, gpu driver.GPU) {
	defer close(a.permit)
	last := time.Now()
	var frame uint64
	for !win.ShouldClose() {
		frame++
		select {
		case a.permit <- frame:
			a.sent.Add(1)
		default:
		}

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now
		a.timing.Apply(func(t *timing) { t.render = dt })

		select {
		case s := <-a.resize:
			gpu.Viewport(0, 0, s[0], s[1])
		default:
		}

		if a.cfg.RenderLoop != nil {
			a.cfg.RenderLoop(a, gpu)
		}
		win.SwapBuffers()
	}
}
