// Package keymaps holds the compiled-in key layouts.
package keymaps

import "daudboard/core"

// row binds codes to consecutive columns of matrix row r. KeyNone leaves
// the cell unbound.
func row(r int, codes ...core.Keycode) core.Layout {
	var l core.Layout
	for c, code := range codes {
		if code == core.KeyNone {
			continue
		}
		l = append(l, core.Binding{Pos: core.Pos(r, c), Code: code})
	}
	return l
}

func join(rows ...core.Layout) core.Layout {
	var l core.Layout
	for _, r := range rows {
		l = append(l, r...)
	}
	return l
}

// Basic is the stock 5x15 layout.
var Basic = join(
	row(0, core.KeyEscape, core.Key1, core.Key2, core.Key3, core.Key4, core.Key5, core.Key6, core.Key7, core.Key8, core.Key9, core.Key0, core.KeyMinus, core.KeyEqual, core.KeyBackslash, core.KeyGrave),
	row(1, core.KeyTab, core.KeyQ, core.KeyW, core.KeyE, core.KeyR, core.KeyT, core.KeyY, core.KeyU, core.KeyI, core.KeyO, core.KeyP, core.KeyLeftBrace, core.KeyRightBrace, core.KeyBackspace, core.KeyDelete),
	row(2, core.KeyCapsLock, core.KeyA, core.KeyS, core.KeyD, core.KeyF, core.KeyG, core.KeyH, core.KeyJ, core.KeyK, core.KeyL, core.KeySemicolon, core.KeyQuote, core.KeyNone, core.KeyEnter, core.KeyPageUp),
	row(3, core.KeyLeftShift, core.KeyZ, core.KeyX, core.KeyC, core.KeyV, core.KeyB, core.KeyN, core.KeyM, core.KeyComma, core.KeyPeriod, core.KeySlash, core.KeyRightShift, core.KeyNone, core.KeyUp, core.KeyPageDown),
	row(4, core.KeyLeftCtrl, core.KeyLeftGUI, core.KeyLeftAlt, core.KeyNone, core.KeyNone, core.KeySpace, core.KeyNone, core.KeyNone, core.KeyNone, core.KeyRightAlt, core.KeyFn, core.KeyRightCtrl, core.KeyLeft, core.KeyDown, core.KeyRight),
)
