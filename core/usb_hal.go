package core

// HostLEDs is the LED output report sent by the host (caps lock etc.).
type HostLEDs uint8

const (
	HostNumLock HostLEDs = 1 << iota
	HostCapsLock
	HostScrollLock
	HostCompose
	HostKana
)

// HIDDevice is the USB keyboard endpoint seen by the scheduler. All
// methods must return promptly; ErrWouldBlock means try again later.
type HIDDevice interface {
	// WriteReport queues a key report. It returns ErrDuplicate when the
	// report equals the last one sent.
	WriteReport(r *KeyReport) error

	// Tick services the HID class at its 1 ms cadence.
	Tick() error

	// PollTransport services the USB transport and returns the most
	// recent host LED state.
	PollTransport() (HostLEDs, error)
}
