// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package wsi

// keyFrom returns the Key value that represents a
// platform-specific key code.
// Every supported platform must provide an indexable
// var named keymap that contains Key values.
//
// Note: Do not implement keymap as a map type.
func keyFrom(code int) Key {
	if code < 0 || code >= len(keymap) {
		return KeyUnknown
	}
	return keymap[code]
}

// codeFrom is the inverse of keyFrom.
// It returns -1 for keys that keymap does not contain.
func codeFrom(key Key) int {
	if key <= KeyUnknown || int(key) >= len(codemap) {
		return -1
	}
	return codemap[key]
}

var codemap = func() (m [KeyF24 + 1]int) {
	for i := range m {
		m[i] = -1
	}
	for code, key := range keymap {
		if key != KeyUnknown {
			m[key] = code
		}
	}
	return
}()
