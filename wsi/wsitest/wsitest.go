// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package wsitest provides an in-memory wsi.Platform for
// tests that cannot open real windows.
package wsitest

import (
	"errors"
	"sync"

	"github.com/gviegas/craft/wsi"
)

// Platform is a fake wsi.Platform.
// Events queued on its windows are delivered by PollEvents.
type Platform struct {
	mu sync.Mutex
	// InitErr is returned by Init.
	InitErr error
	// WindowErr is returned by NewWindow.
	WindowErr error
	// Display is the size reported by DisplaySize.
	Display [2]int
	// Scale is the number of framebuffer pixels per
	// screen coordinate of new windows. Zero means 1.
	Scale int

	inited     bool
	terminated bool
	polls      int
	interval   int
	windows    []*Window
}

// New creates a new Platform with a 1920x1080 display.
func New() *Platform { return &Platform{Display: [2]int{1920, 1080}} }

func (p *Platform) Name() string { return "wsitest" }

func (p *Platform) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.InitErr != nil {
		return p.InitErr
	}
	p.inited = true
	return nil
}

func (p *Platform) Terminate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.terminated = true
	for _, w := range p.windows {
		w.destroy()
	}
}

func (p *Platform) NewWindow(width, height int, title string) (wsi.Window, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.inited {
		return nil, errors.New("wsitest: platform not initialized")
	}
	if p.WindowErr != nil {
		return nil, p.WindowErr
	}
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	w := &Window{width: width, height: height, scale: scale, title: title}
	p.windows = append(p.windows, w)
	return w, nil
}

func (p *Platform) PollEvents() {
	p.mu.Lock()
	p.polls++
	ws := append([]*Window(nil), p.windows...)
	p.mu.Unlock()
	for _, w := range ws {
		w.flush()
	}
}

func (p *Platform) SwapInterval(n int) {
	p.mu.Lock()
	p.interval = n
	p.mu.Unlock()
}

func (p *Platform) DisplaySize() (width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Display[0], p.Display[1]
}

// Polls returns the number of calls to PollEvents.
func (p *Platform) Polls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.polls
}

// Interval returns the last swap interval set.
func (p *Platform) Interval() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interval
}

// Terminated returns whether Terminate was called.
func (p *Platform) Terminated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.terminated
}

// Windows returns the windows created so far.
func (p *Platform) Windows() []*Window {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*Window(nil), p.windows...)
}

// Window is a fake wsi.Window.
type Window struct {
	mu        sync.Mutex
	width     int
	height    int
	scale     int
	title     string
	x, y      int
	visible   bool
	close     bool
	destroyed bool
	cursor    wsi.CursorMode
	current   int
	swaps     int
	keys      map[wsi.Key]bool
	buttons   map[wsi.Button]bool
	h         any
	queue     []func(h any)
}

func (w *Window) Show() {
	w.mu.Lock()
	w.visible = true
	w.mu.Unlock()
}

func (w *Window) Size() (width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

func (w *Window) FramebufferSize() (width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width * w.scale, w.height * w.scale
}

func (w *Window) SetPos(x, y int) {
	w.mu.Lock()
	w.x, w.y = x, y
	w.mu.Unlock()
}

func (w *Window) ShouldClose() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.close
}

func (w *Window) SetShouldClose(close bool) {
	w.mu.Lock()
	w.close = close
	w.mu.Unlock()
}

func (w *Window) MakeCurrent() {
	w.mu.Lock()
	w.current++
	w.mu.Unlock()
}

func (w *Window) SwapBuffers() {
	w.mu.Lock()
	w.swaps++
	w.mu.Unlock()
}

func (w *Window) KeyPressed(key wsi.Key) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.keys[key]
}

func (w *Window) ButtonPressed(btn wsi.Button) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buttons[btn]
}

func (w *Window) SetCursorMode(mode wsi.CursorMode) {
	w.mu.Lock()
	w.cursor = mode
	w.mu.Unlock()
}

func (w *Window) SetHandler(h any) {
	w.mu.Lock()
	w.h = h
	w.mu.Unlock()
}

func (w *Window) Destroy() { w.destroy() }

func (w *Window) destroy() {
	w.mu.Lock()
	w.destroyed = true
	w.h = nil
	w.queue = nil
	w.mu.Unlock()
}

func (w *Window) flush() {
	w.mu.Lock()
	q, h := w.queue, w.h
	w.queue = nil
	w.mu.Unlock()
	for _, f := range q {
		f(h)
	}
}

func (w *Window) enqueue(f func(h any)) {
	w.mu.Lock()
	w.queue = append(w.queue, f)
	w.mu.Unlock()
}

// Key queues a key event and updates the key state.
func (w *Window) Key(key wsi.Key, action wsi.Action, mods wsi.Modifier) {
	w.mu.Lock()
	if w.keys == nil {
		w.keys = make(map[wsi.Key]bool)
	}
	w.keys[key] = action != wsi.Release
	w.mu.Unlock()
	w.enqueue(func(h any) {
		if h, ok := h.(wsi.KeyboardHandler); ok {
			h.KeyboardKey(w, key, action, mods)
		}
	})
}

// Button queues a button event and updates the button state.
func (w *Window) Button(btn wsi.Button, action wsi.Action, mods wsi.Modifier) {
	w.mu.Lock()
	if w.buttons == nil {
		w.buttons = make(map[wsi.Button]bool)
	}
	w.buttons[btn] = action != wsi.Release
	w.mu.Unlock()
	w.enqueue(func(h any) {
		if h, ok := h.(wsi.PointerHandler); ok {
			h.PointerButton(w, btn, action, mods)
		}
	})
}

// Move queues a pointer motion event.
func (w *Window) Move(x, y float64) {
	w.enqueue(func(h any) {
		if h, ok := h.(wsi.PointerHandler); ok {
			h.PointerMotion(w, x, y)
		}
	})
}

// Scroll queues a scroll event.
func (w *Window) Scroll(dx, dy float64) {
	w.enqueue(func(h any) {
		if h, ok := h.(wsi.ScrollHandler); ok {
			h.Scroll(w, dx, dy)
		}
	})
}

// Resize queues a resize event followed by a framebuffer
// resize event, and updates the size.
func (w *Window) Resize(width, height int) {
	w.mu.Lock()
	w.width, w.height = width, height
	fw, fh := width*w.scale, height*w.scale
	w.mu.Unlock()
	w.enqueue(func(h any) {
		if h, ok := h.(wsi.WindowHandler); ok {
			h.WindowResize(w, width, height)
		}
	})
	w.enqueue(func(h any) {
		if h, ok := h.(wsi.FramebufferHandler); ok {
			h.FramebufferResize(w, fw, fh)
		}
	})
}

// Close queues a close request and sets the close flag.
func (w *Window) Close() {
	w.SetShouldClose(true)
	w.enqueue(func(h any) {
		if h, ok := h.(wsi.WindowHandler); ok {
			h.WindowClose(w)
		}
	})
}

// Visible returns whether Show was called.
func (w *Window) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// Pos returns the last position set.
func (w *Window) Pos() (x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.x, w.y
}

// Title returns the window's title.
func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

// CursorMode returns the last cursor mode set.
func (w *Window) CursorMode() wsi.CursorMode {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cursor
}

// Swaps returns the number of calls to SwapBuffers.
func (w *Window) Swaps() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.swaps
}

// Current returns the number of calls to MakeCurrent.
func (w *Window) Current() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Destroyed returns whether the window was destroyed.
func (w *Window) Destroyed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.destroyed
}
