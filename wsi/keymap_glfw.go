// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

var keymap = [...]Key{
	glfw.KeyGraveAccent:  KeyGrave,
	glfw.Key1:            Key1,
	glfw.Key2:            Key2,
	glfw.Key3:            Key3,
	glfw.Key4:            Key4,
	glfw.Key5:            Key5,
	glfw.Key6:            Key6,
	glfw.Key7:            Key7,
	glfw.Key8:            Key8,
	glfw.Key9:            Key9,
	glfw.Key0:            Key0,
	glfw.KeyMinus:        KeyMinus,
	glfw.KeyEqual:        KeyEqual,
	glfw.KeyBackspace:    KeyBackspace,
	glfw.KeyTab:          KeyTab,
	glfw.KeyQ:            KeyQ,
	glfw.KeyW:            KeyW,
	glfw.KeyE:            KeyE,
	glfw.KeyR:            KeyR,
	glfw.KeyT:            KeyT,
	glfw.KeyY:            KeyY,
	glfw.KeyU:            KeyU,
	glfw.KeyI:            KeyI,
	glfw.KeyO:            KeyO,
	glfw.KeyP:            KeyP,
	glfw.KeyLeftBracket:  KeyLBracket,
	glfw.KeyRightBracket: KeyRBracket,
	glfw.KeyBackslash:    KeyBackslash,
	glfw.KeyCapsLock:     KeyCapsLock,
	glfw.KeyA:            KeyA,
	glfw.KeyS:            KeyS,
	glfw.KeyD:            KeyD,
	glfw.KeyF:            KeyF,
	glfw.KeyG:            KeyG,
	glfw.KeyH:            KeyH,
	glfw.KeyJ:            KeyJ,
	glfw.KeyK:            KeyK,
	glfw.KeyL:            KeyL,
	glfw.KeySemicolon:    KeySemicolon,
	glfw.KeyApostrophe:   KeyApostrophe,
	glfw.KeyEnter:        KeyReturn,
	glfw.KeyLeftShift:    KeyLShift,
	glfw.KeyZ:            KeyZ,
	glfw.KeyX:            KeyX,
	glfw.KeyC:            KeyC,
	glfw.KeyV:            KeyV,
	glfw.KeyB:            KeyB,
	glfw.KeyN:            KeyN,
	glfw.KeyM:            KeyM,
	glfw.KeyComma:        KeyComma,
	glfw.KeyPeriod:       KeyDot,
	glfw.KeySlash:        KeySlash,
	glfw.KeyRightShift:   KeyRShift,
	glfw.KeyLeftControl:  KeyLCtrl,
	glfw.KeyLeftAlt:      KeyLAlt,
	glfw.KeyLeftSuper:    KeyLMeta,
	glfw.KeySpace:        KeySpace,
	glfw.KeyRightSuper:   KeyRMeta,
	glfw.KeyRightAlt:     KeyRAlt,
	glfw.KeyRightControl: KeyRCtrl,
	glfw.KeyEscape:       KeyEsc,
	glfw.KeyF1:           KeyF1,
	glfw.KeyF2:           KeyF2,
	glfw.KeyF3:           KeyF3,
	glfw.KeyF4:           KeyF4,
	glfw.KeyF5:           KeyF5,
	glfw.KeyF6:           KeyF6,
	glfw.KeyF7:           KeyF7,
	glfw.KeyF8:           KeyF8,
	glfw.KeyF9:           KeyF9,
	glfw.KeyF10:          KeyF10,
	glfw.KeyF11:          KeyF11,
	glfw.KeyF12:          KeyF12,
	glfw.KeyInsert:       KeyInsert,
	glfw.KeyDelete:       KeyDelete,
	glfw.KeyHome:         KeyHome,
	glfw.KeyEnd:          KeyEnd,
	glfw.KeyPageUp:       KeyPageUp,
	glfw.KeyPageDown:     KeyPageDown,
	glfw.KeyUp:           KeyUp,
	glfw.KeyDown:         KeyDown,
	glfw.KeyLeft:         KeyLeft,
	glfw.KeyRight:        KeyRight,
	glfw.KeyPrintScreen:  KeySysrq,
	glfw.KeyScrollLock:   KeyScrollLock,
	glfw.KeyPause:        KeyPause,
	glfw.KeyNumLock:      KeyPadNumLock,
	glfw.KeyKPDivide:     KeyPadSlash,
	glfw.KeyKPMultiply:   KeyPadStar,
	glfw.KeyKPSubtract:   KeyPadMinus,
	glfw.KeyKPAdd:        KeyPadPlus,
	glfw.KeyKP1:          KeyPad1,
	glfw.KeyKP2:          KeyPad2,
	glfw.KeyKP3:          KeyPad3,
	glfw.KeyKP4:          KeyPad4,
	glfw.KeyKP5:          KeyPad5,
	glfw.KeyKP6:          KeyPad6,
	glfw.KeyKP7:          KeyPad7,
	glfw.KeyKP8:          KeyPad8,
	glfw.KeyKP9:          KeyPad9,
	glfw.KeyKP0:          KeyPad0,
	glfw.KeyKPDecimal:    KeyPadDot,
	glfw.KeyKPEnter:      KeyPadEnter,
	glfw.KeyKPEqual:      KeyPadEqual,
	glfw.KeyF13:          KeyF13,
	glfw.KeyF14:          KeyF14,
	glfw.KeyF15:          KeyF15,
	glfw.KeyF16:          KeyF16,
	glfw.KeyF17:          KeyF17,
	glfw.KeyF18:          KeyF18,
	glfw.KeyF19:          KeyF19,
	glfw.KeyF20:          KeyF20,
	glfw.KeyF21:          KeyF21,
	glfw.KeyF22:          KeyF22,
	glfw.KeyF23:          KeyF23,
	glfw.KeyF24:          KeyF24,
	glfw.KeyLast:         KeyUnknown,
}

var buttonmap = [...]Button{
	glfw.MouseButtonLeft:   BtnLeft,
	glfw.MouseButtonRight:  BtnRight,
	glfw.MouseButtonMiddle: BtnMiddle,
	glfw.MouseButton4:      BtnSide,
	glfw.MouseButton5:      BtnForward,
	glfw.MouseButton6:      BtnBackward,
	glfw.MouseButtonLast:   BtnUnknown,
}

func buttonFrom(b glfw.MouseButton) Button {
	if b < 0 || int(b) >= len(buttonmap) {
		return BtnUnknown
	}
	return buttonmap[b]
}

func glfwButton(btn Button) (glfw.MouseButton, bool) {
	for i, b := range buttonmap {
		if b == btn && btn != BtnUnknown {
			return glfw.MouseButton(i), true
		}
	}
	return 0, false
}

func modFrom(m glfw.ModifierKey) (mod Modifier) {
	if m&glfw.ModShift != 0 {
		mod |= ModShift
	}
	if m&glfw.ModControl != 0 {
		mod |= ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&glfw.ModSuper != 0 {
		mod |= ModSuper
	}
	if m&glfw.ModCapsLock != 0 {
		mod |= ModCapsLock
	}
	return
}

func actionFrom(a glfw.Action) Action {
	switch a {
	case glfw.Press:
		return Press
	case glfw.Repeat:
		return Repeat
	}
	return Release
}
