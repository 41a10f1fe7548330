// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"errors"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFW returns the Platform implemented on top of GLFW.
// Windows are created with an OpenGL 4.1 core profile,
// forward-compatible context.
func GLFW() Platform { return glfwPlatform{} }

type glfwPlatform struct{}

func (glfwPlatform) Name() string { return "glfw" }

func (glfwPlatform) Init() error { return glfw.Init() }

func (glfwPlatform) Terminate() { glfw.Terminate() }

func (glfwPlatform) NewWindow(width, height int, title string) (Window, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("wsi: invalid window size")
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}
	win := &glfwWindow{w: w}
	win.setCallbacks()
	return win, nil
}

func (glfwPlatform) PollEvents() { glfw.PollEvents() }

func (glfwPlatform) SwapInterval(n int) { glfw.SwapInterval(n) }

func (glfwPlatform) DisplaySize() (width, height int) {
	mon := glfw.GetPrimaryMonitor()
	if mon == nil {
		return 0, 0
	}
	mode := mon.GetVideoMode()
	if mode == nil {
		return 0, 0
	}
	return mode.Width, mode.Height
}

// glfwWindow implements Window.
// h is only accessed from the main thread, which is
// where GLFW calls back.
type glfwWindow struct {
	w *glfw.Window
	h any
}

func (w *glfwWindow) setCallbacks() {
	w.w.SetCloseCallback(func(*glfw.Window) {
		if h, ok := w.h.(WindowHandler); ok {
			h.WindowClose(w)
		}
	})
	w.w.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		if h, ok := w.h.(WindowHandler); ok {
			h.WindowResize(w, width, height)
		}
	})
	w.w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if h, ok := w.h.(FramebufferHandler); ok {
			h.FramebufferResize(w, width, height)
		}
	})
	w.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if h, ok := w.h.(KeyboardHandler); ok {
			h.KeyboardKey(w, keyFrom(int(key)), actionFrom(action), modFrom(mods))
		}
	})
	w.w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if h, ok := w.h.(PointerHandler); ok {
			h.PointerMotion(w, x, y)
		}
	})
	w.w.SetMouseButtonCallback(func(_ *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if h, ok := w.h.(PointerHandler); ok {
			h.PointerButton(w, buttonFrom(btn), actionFrom(action), modFrom(mods))
		}
	})
	w.w.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		if h, ok := w.h.(ScrollHandler); ok {
			h.Scroll(w, dx, dy)
		}
	})
}

func (w *glfwWindow) Show() { w.w.Show() }

func (w *glfwWindow) Size() (width, height int) { return w.w.GetSize() }

func (w *glfwWindow) FramebufferSize() (width, height int) { return w.w.GetFramebufferSize() }

func (w *glfwWindow) SetPos(x, y int) { w.w.SetPos(x, y) }

func (w *glfwWindow) ShouldClose() bool { return w.w.ShouldClose() }

func (w *glfwWindow) SetShouldClose(close bool) { w.w.SetShouldClose(close) }

func (w *glfwWindow) MakeCurrent() { w.w.MakeContextCurrent() }

func (w *glfwWindow) SwapBuffers() { w.w.SwapBuffers() }

func (w *glfwWindow) KeyPressed(key Key) bool {
	code := codeFrom(key)
	if code < 0 {
		return false
	}
	return w.w.GetKey(glfw.Key(code)) != glfw.Release
}

func (w *glfwWindow) ButtonPressed(btn Button) bool {
	b, ok := glfwButton(btn)
	if !ok {
		return false
	}
	return w.w.GetMouseButton(b) != glfw.Release
}

func (w *glfwWindow) SetCursorMode(mode CursorMode) {
	var v int
	switch mode {
	case CursorHidden:
		v = glfw.CursorHidden
	case CursorDisabled:
		v = glfw.CursorDisabled
	default:
		v = glfw.CursorNormal
	}
	w.w.SetInputMode(glfw.CursorMode, v)
}

func (w *glfwWindow) SetHandler(h any) { w.h = h }

func (w *glfwWindow) Destroy() {
	w.h = nil
	w.w.Destroy()
}
