// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package wsi provides window system integration (WSI)
// for OpenGL rendering.
// A Platform creates windows and pumps their events.
// Platform methods and Window methods other than
// MakeCurrent and SwapBuffers must be called from the
// main thread.
package wsi

import (
	"errors"
)

// Window is the interface that defines a drawable window
// with an OpenGL context.
type Window interface {
	// Show makes the window visible.
	Show()

	// Size returns the window's size in screen coordinates.
	Size() (width, height int)

	// FramebufferSize returns the size of the window's
	// framebuffer in pixels. It differs from Size on
	// displays that scale screen coordinates.
	FramebufferSize() (width, height int)

	// SetPos moves the window's upper-left corner.
	SetPos(x, y int)

	// ShouldClose returns the window's close flag.
	ShouldClose() bool

	// SetShouldClose sets the window's close flag.
	SetShouldClose(close bool)

	// MakeCurrent makes the window's context current on
	// the calling thread.
	MakeCurrent()

	// SwapBuffers swaps the front and back buffers.
	SwapBuffers()

	// KeyPressed returns whether key is currently held.
	KeyPressed(key Key) bool

	// ButtonPressed returns whether btn is currently held.
	ButtonPressed(btn Button) bool

	// SetCursorMode sets how the cursor behaves over the
	// window.
	SetCursorMode(mode CursorMode)

	// SetHandler sets the window's event handler.
	// h may implement any of WindowHandler,
	// FramebufferHandler, KeyboardHandler,
	// PointerHandler and ScrollHandler. Events are only delivered
	// during Platform.PollEvents.
	SetHandler(h any)

	// Destroy destroys the window and its context.
	Destroy()
}

// Platform is the interface that defines a window system.
type Platform interface {
	// Name identifies the platform.
	Name() string

	// Init initializes the platform.
	Init() error

	// Terminate releases every resource held by the
	// platform, including windows.
	Terminate()

	// NewWindow creates a new hidden window.
	NewWindow(width, height int, title string) (Window, error)

	// PollEvents dispatches queued events.
	PollEvents()

	// SwapInterval sets the number of screen updates to
	// wait before swapping buffers. It applies to the
	// context current on the calling thread.
	SwapInterval(n int)

	// DisplaySize returns the primary display's size.
	DisplaySize() (width, height int)
}

// ErrNoDisplay means that the platform has no display to
// create windows on.
var ErrNoDisplay = errors.New("wsi: no display")

// Key is the type of keyboard keys.
type Key int

// Keyboard keys.
const (
	KeyUnknown Key = iota
	KeyGrave
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyMinus
	KeyEqual
	KeyBackspace
	KeyTab
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT
	KeyY
	KeyU
	KeyI
	KeyO
	KeyP
	KeyLBracket
	KeyRBracket
	KeyBackslash
	KeyCapsLock
	KeyA
	KeyS
	KeyD
	KeyF
	KeyG
	KeyH
	KeyJ
	KeyK
	KeyL
	KeySemicolon
	KeyApostrophe
	KeyReturn
	KeyLShift
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyB
	KeyN
	KeyM
	KeyComma
	KeyDot
	KeySlash
	KeyRShift
	KeyLCtrl
	KeyLAlt
	KeyLMeta
	KeySpace
	KeyRMeta
	KeyRAlt
	KeyRCtrl
	KeyEsc
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySysrq
	KeyScrollLock
	KeyPause
	KeyPadNumLock
	KeyPadSlash
	KeyPadStar
	KeyPadMinus
	KeyPadPlus
	KeyPad1
	KeyPad2
	KeyPad3
	KeyPad4
	KeyPad5
	KeyPad6
	KeyPad7
	KeyPad8
	KeyPad9
	KeyPad0
	KeyPadDot
	KeyPadEnter
	KeyPadEqual
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
)

// Modifier is the type of modifier flags.
type Modifier int

// Modifier flags.
const (
	ModCapsLock Modifier = 1 << iota
	ModShift
	ModCtrl
	ModAlt
	ModSuper
)

// Button is the type of pointer buttons.
type Button int

// Pointer buttons.
const (
	BtnUnknown Button = iota
	BtnLeft
	BtnRight
	BtnMiddle
	BtnSide
	BtnForward
	BtnBackward
)

// Action is the type of key and button state transitions.
type Action int

// Actions.
const (
	Release Action = iota
	Press
	Repeat
)

// CursorMode is the type of cursor modes.
type CursorMode int

// Cursor modes.
const (
	// The cursor is visible and behaves normally.
	CursorNormal CursorMode = iota
	// The cursor is hidden when over the window.
	CursorHidden
	// The cursor is hidden and locked to the window,
	// providing unbounded virtual motion.
	CursorDisabled
)

// WindowHandler is the interface that defines the methods
// for handling window events.
type WindowHandler interface {
	// WindowClose is called when the user requests that
	// the window be closed. The close flag is already set.
	WindowClose(win Window)

	// WindowResize is called when a window is resized.
	WindowResize(win Window, newWidth, newHeight int)
}

// FramebufferHandler is the interface that defines the
// method for handling framebuffer size changes.
type FramebufferHandler interface {
	// FramebufferResize is called when the framebuffer of
	// a window is resized. Sizes are in pixels.
	FramebufferResize(win Window, newWidth, newHeight int)
}

// KeyboardHandler is the interface that defines the methods
// for handling keyboard events.
type KeyboardHandler interface {
	// KeyboardKey is called when a key is pressed,
	// repeated or released.
	KeyboardKey(win Window, key Key, action Action, modMask Modifier)
}

// PointerHandler is the interface that defines the methods
// for handling pointer events.
type PointerHandler interface {
	// PointerMotion is called when the pointer changes position.
	PointerMotion(win Window, newX, newY float64)

	// PointerButton is called when a button is pressed/released.
	PointerButton(win Window, btn Button, action Action, modMask Modifier)
}

// ScrollHandler is the interface that defines the method
// for handling scroll events.
type ScrollHandler interface {
	// Scroll is called when the scroll wheel or touchpad
	// scrolls.
	Scroll(win Window, dx, dy float64)
}
