package core

import "errors"

var (
	// ErrWouldBlock reports that a peripheral is not ready; retry next iteration.
	ErrWouldBlock = errors.New("operation would block")

	// ErrDuplicate reports that a HID report matched the previous one and was not sent.
	ErrDuplicate = errors.New("duplicate report")

	ErrPinInvalid     = errors.New("invalid pin")
	ErrDMAUnavailable = errors.New("no free DMA channel")
	ErrBadConfig      = errors.New("invalid configuration")
)
