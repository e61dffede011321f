package serial

import (
	"io"
)

// Port is the byte stream the console reads telemetry from. Tests
// substitute an in-memory implementation.
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate of the keyboard's debug UART
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultBaud matches the firmware's debug UART.
const DefaultBaud = 115200

// DefaultConfig returns the configuration for a USB-UART adapter wired
// to the keyboard's debug header.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        DefaultBaud,
		ReadTimeout: 100,
	}
}
