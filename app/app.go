// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package app runs a windowed application on two loops:
// a render loop on a dedicated thread that owns the
// graphics context, and a poll loop on the calling thread
// that dispatches input events.
package app

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gviegas/craft/camera"
	"github.com/gviegas/craft/driver"
	"github.com/gviegas/craft/internal/guard"
	"github.com/gviegas/craft/internal/logging"
	"github.com/gviegas/craft/wsi"
)

func logger() *slog.Logger { return logging.For("app") }

// Config is used to configure an App.
// Every callback is optional.
type Config struct {
	// Initial window size.
	//
	// Default is 800x600.
	Width  int
	Height int

	// Window title.
	//
	// Default is "craft".
	Title string

	// Wait for one screen update between buffer swaps.
	//
	// Default is false.
	VSync bool

	// Capture the pointer, hiding it and providing
	// unbounded motion for mouse-look.
	//
	// Default is false.
	DisableCursor bool

	// RenderInit is called once on the render thread,
	// after the graphics context becomes current and
	// before the window is shown. Graphics resources
	// must be created here or in RenderLoop.
	RenderInit func(a *App, gpu driver.GPU)

	// RenderLoop is called on the render thread once
	// per frame, before buffers are swapped.
	// It may run before Build returns.
	RenderLoop func(a *App, gpu driver.GPU)

	// RenderExit is called once on the render thread
	// after the last frame, while the graphics context
	// is still current.
	RenderExit func(a *App, gpu driver.GPU)

	// Event is called on the polling thread once per
	// poll cycle, after input events are dispatched and
	// the active camera is updated.
	Event func(win wsi.Window)

	// Input callbacks, called on the polling thread
	// while events are dispatched.
	Key    func(win wsi.Window, key wsi.Key, action wsi.Action, mods wsi.Modifier)
	Cursor func(win wsi.Window, x, y float64)
	Scroll func(win wsi.Window, dx, dy float64)
	Button func(win wsi.Window, btn wsi.Button, action wsi.Action, mods wsi.Modifier)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,
		Title:  "craft",
	}
}

// TimeKind identifies which loop a delta time refers to.
type TimeKind int

// Time kinds.
const (
	Render TimeKind = iota
	Poll
)

// timing is the state published by both loops.
type timing struct {
	render float32
	poll   float32
	width  int
	height int
	// Framebuffer size in pixels.
	fbWidth  int
	fbHeight int
}

// App is a running application.
// There can be only one App per process.
type App struct {
	cfg      Config
	platform wsi.Platform
	win      wsi.Window
	drv      driver.Driver
	start    time.Time

	timing *guard.Guard[timing]
	cams   *guard.Guard[camera.System]

	// One permit per render frame, carrying the frame
	// number; closed when the render loop exits.
	permit chan uint64
	// Latest pending resize.
	resize chan [2]int
	// Closed when the render thread is done.
	done chan struct{}

	sent     atomic.Int64
	received atomic.Int64
	// Frame of the last permit received.
	frame uint64
}

var built atomic.Bool

func fatal(msg string, args ...any) {
	logger().Error(msg, args...)
	panic("app: " + msg)
}

// Build creates the App.
// It initializes platform, creates a hidden window
// centered on the primary display and starts the render
// thread, which opens drv and calls cfg.RenderInit.
// It returns after the window is shown.
//
// Build must be called from the main thread, and only
// once. Calling it again, or failing to initialize the
// platform, the window or the driver, panics.
func Build(cfg Config, platform wsi.Platform, drv driver.Driver) *App {
	if built.Swap(true) {
		fatal("Build called more than once")
	}
	dfl := DefaultConfig()
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = dfl.Width, dfl.Height
	}
	if cfg.Title == "" {
		cfg.Title = dfl.Title
	}

	logger().Info("starting", "platform", platform.Name(), "driver", drv.Name())
	if err := platform.Init(); err != nil {
		fatal("cannot initialize platform", "err", err)
	}
	win, err := platform.NewWindow(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		platform.Terminate()
		fatal("cannot create window", "err", err)
	}
	w, h := win.Size()
	if dw, dh := platform.DisplaySize(); dw > 0 && dh > 0 {
		win.SetPos((dw-w)/2, (dh-h)/2)
	}

	fw, fh := win.FramebufferSize()
	a := &App{
		cfg:      cfg,
		platform: platform,
		win:      win,
		drv:      drv,
		start:    time.Now(),
		timing:   guard.New(timing{width: w, height: h, fbWidth: fw, fbHeight: fh}),
		cams:     guard.New(*camera.NewSystem()),
		permit:   make(chan uint64, 1),
		resize:   make(chan [2]int, 1),
		done:     make(chan struct{}),
	}
	win.SetHandler(&events{a})
	if cfg.DisableCursor {
		win.SetCursorMode(wsi.CursorDisabled)
	}

	loan := make(chan wsi.Window)
	back := make(chan wsi.Window)
	go a.render(win, loan, back)

	// The render thread lends the window back once
	// RenderInit is done.
	lent, ok := <-loan
	if !ok {
		platform.Terminate()
		fatal("cannot open driver", "driver", drv.Name())
	}
	lent.Show()
	back <- lent
	logger().Info("initialized")
	return a
}

// Exec runs the poll loop on the calling thread, which
// must be the thread that called Build.
// Each cycle waits for a permit from the render loop, so
// that polling never outruns rendering, then dispatches
// input events, updates the active camera and calls
// Config.Event.
// Exec returns when the window is closed, after the
// render thread is done and the platform terminated.
func (a *App) Exec() {
	logger().Debug("poll loop started")
	last := time.Now()
	for f := range a.permit {
		a.received.Add(1)
		a.frame = f
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now
		a.timing.Apply(func(t *timing) { t.poll = dt })

		a.platform.PollEvents()
		a.cams.Apply(func(s *camera.System) { s.Update(a.win, dt) })
		if a.cfg.Event != nil {
			a.cfg.Event(a.win)
		}
		if a.win.ShouldClose() {
			break
		}
	}
	<-a.done
	a.win.Destroy()
	a.platform.Terminate()
	logger().Info("exiting")
}

// FPS returns the frame rate derived from the last render
// delta time, or 0 if no frame was rendered yet.
func (a *App) FPS() float32 {
	dt := a.DeltaTime(Render)
	if dt <= 0 {
		return 0
	}
	return 1 / dt
}

// DeltaTime returns the duration, in seconds, of the last
// cycle of the given loop.
func (a *App) DeltaTime(kind TimeKind) float32 {
	return guard.Get(a.timing, func(t *timing) float32 {
		if kind == Poll {
			return t.poll
		}
		return t.render
	})
}

// Time returns the number of seconds elapsed since the
// App was built.
func (a *App) Time() float32 { return float32(time.Since(a.start).Seconds()) }

// WindowSize returns the latest window size.
func (a *App) WindowSize() (width, height int) {
	s := guard.Get(a.timing, func(t *timing) [2]int { return [2]int{t.width, t.height} })
	return s[0], s[1]
}

// Window returns the App's window.
// Only methods that are safe to call from any thread may
// be used outside of callbacks.
func (a *App) Window() wsi.Window { return a.win }

// Cameras returns the camera system.
// Its active camera receives pointer input and is updated
// once per poll cycle.
func (a *App) Cameras() *guard.Guard[camera.System] { return a.cams }

// CloseOnEscape is a key callback that requests the window
// to close when Escape is pressed.
func CloseOnEscape(win wsi.Window, key wsi.Key, action wsi.Action, _ wsi.Modifier) {
	if key == wsi.KeyEsc && action == wsi.Press {
		win.SetShouldClose(true)
	}
}
