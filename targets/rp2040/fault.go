//go:build rp2040

package main

import (
	"machine"
	"strconv"

	"daudboard/core"
)

// enterBootloader is the fault policy: dump the event ring, turn the strip
// off and reboot into the USB mass-storage bootloader so the board can be
// reflashed.
func enterBootloader(reason string) {
	core.SetDebugEnabled(true)
	core.DumpTimingRing()
	core.DebugPrintln("[FAULT] " + reason)
	core.DebugPrintln("[FAULT] uptime=" + strconv.FormatUint(GetHardwareUptime()/1000, 10) + "ms, entering bootloader")
	core.FlushTelemetry()

	machine.Pin(ledEnablePin).Configure(machine.PinConfig{Mode: machine.PinOutput})
	machine.Pin(ledEnablePin).High()

	machine.EnterBootloader()
}
