// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Craft is a small 3D demo: a textured cube spinning over
// a floor, viewed through a free or an orbit camera.
//
// Usage:
//
//	craft [flags]
//
// Flags override the settings of the -config file.
// Press Escape to quit, C to switch cameras and M to
// toggle mouse-look.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/gviegas/craft/app"
	"github.com/gviegas/craft/driver"
	_ "github.com/gviegas/craft/driver/opengl"
	"github.com/gviegas/craft/internal/logging"
	"github.com/gviegas/craft/wsi"
)

// The window system must be driven from the main thread.
func init() { runtime.LockOSThread() }

func main() {
	s, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "craft:", err)
		os.Exit(2)
	}
	done, err := logging.Setup(s.LogLevel, s.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "craft:", err)
		os.Exit(2)
	}
	defer done()

	drv, ok := driver.Lookup("opengl")
	if !ok {
		logger().Error("driver not registered", "driver", "opengl")
		return
	}

	d := &demo{s: s}
	cfg := app.DefaultConfig()
	cfg.Width = s.Width
	cfg.Height = s.Height
	cfg.Title = s.Title
	cfg.VSync = s.VSync
	cfg.DisableCursor = s.DisableCursor
	cfg.RenderInit = d.init
	cfg.RenderLoop = d.render
	cfg.RenderExit = d.exit
	cfg.Key = d.key

	d.app = app.Build(cfg, wsi.GLFW(), drv)
	d.app.Cameras().Apply(d.cameras)
	d.app.Exec()
}
