//go:build rp2040

package main

import (
	"device/rp"

	"daudboard/core"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

const debugBaud = 115200

// InitDebugUART brings up UART0 on GPIO16/17 through uartx and sends
// telemetry frames over it. Debug text travels inside those frames and
// is only produced when enabled at build time.
func InitDebugUART() {
	err := uartx.UART0.Configure(uartx.UARTConfig{
		BaudRate: debugBaud,
		TX:       debugTXPin,
		RX:       debugRXPin,
	})
	if err != nil {
		return
	}

	core.SetTelemetryWriter(writeTxFIFO)
	if debugText == "1" {
		core.SetDebugEnabled(true)
	}
}

// writeTxFIFO loads bytes into the UART0 TX FIFO until it is full. uartx's
// Write waits for the line to drain, which would stall the scan loop.
func writeTxFIFO(b []byte) int {
	n := 0
	for n < len(b) && !rp.UART0.UARTFR.HasBits(rp.UART0_UARTFR_TXFF) {
		rp.UART0.UARTDR.Set(uint32(b[n]))
		n++
	}
	return n
}
