//go:build rp2040

package main

import (
	"machine/usb/hid/keyboard"

	"daudboard/core"
)

// hidKeyboard is the subset of TinyGo's HID keyboard used here.
type hidKeyboard interface {
	Down(c keyboard.Keycode) error
	Up(c keyboard.Keycode) error
	NumLockLed() bool
	CapsLockLed() bool
	ScrollLockLed() bool
}

// usbKeyboard adapts TinyGo's press/release keyboard to core.HIDDevice by
// diffing each full report against what the host has already seen.
type usbKeyboard struct {
	kb   hidKeyboard
	host core.KeyReport // keys the host currently holds down
}

func newUSBKeyboard() *usbKeyboard {
	return &usbKeyboard{kb: keyboard.Port()}
}

// tinygoKeycode maps a HID usage to TinyGo's keycode encoding.
func tinygoKeycode(k core.Keycode) keyboard.Keycode {
	if k.IsModifier() {
		return keyboard.Keycode(0xE000 | 1<<(k-core.KeyLeftCtrl))
	}
	return keyboard.Keycode(0xF000 | uint16(k))
}

// WriteReport sends releases first, then presses. A key whose transfer
// fails stays pending and is retried with the next report.
func (u *usbKeyboard) WriteReport(r *core.KeyReport) error {
	if *r == u.host {
		return core.ErrDuplicate
	}

	for usage := 1; usage < 256; usage++ {
		k := core.Keycode(usage)
		if u.host.Has(k) && !r.Has(k) {
			if err := u.kb.Up(tinygoKeycode(k)); err != nil {
				return core.ErrWouldBlock
			}
			u.release(k)
		}
	}
	for usage := 1; usage < 256; usage++ {
		k := core.Keycode(usage)
		if r.Has(k) && !u.host.Has(k) {
			if err := u.kb.Down(tinygoKeycode(k)); err != nil {
				return core.ErrWouldBlock
			}
			u.host.Add(k)
		}
	}
	return nil
}

func (u *usbKeyboard) release(k core.Keycode) {
	if k.IsModifier() {
		u.host.Modifiers &^= 1 << (k - core.KeyLeftCtrl)
		return
	}
	u.host.Keys[k>>3] &^= 1 << (k & 7)
}

// Tick is a no-op: TinyGo's USB stack services the endpoint from its
// interrupt handler.
func (u *usbKeyboard) Tick() error {
	return nil
}

// PollTransport reads the host LED output report.
func (u *usbKeyboard) PollTransport() (core.HostLEDs, error) {
	var leds core.HostLEDs
	if u.kb.NumLockLed() {
		leds |= core.HostNumLock
	}
	if u.kb.CapsLockLed() {
		leds |= core.HostCapsLock
	}
	if u.kb.ScrollLockLed() {
		leds |= core.HostScrollLock
	}
	return leds, nil
}
