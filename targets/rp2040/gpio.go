//go:build rp2040

package main

import (
	"machine"

	"daudboard/core"
)

const numGPIO = 30

// RPGPIODriver implements core.GPIODriver for the RP2040 bank 0 pins.
type RPGPIODriver struct {
	// configured has bit n set once GPIOn has been set up
	configured uint32
}

// NewRPGPIODriver creates a new RP2040 GPIO driver
func NewRPGPIODriver() *RPGPIODriver {
	return &RPGPIODriver{}
}

func (d *RPGPIODriver) configure(pin core.GPIOPin, mode machine.PinMode) error {
	if pin >= numGPIO {
		return core.ErrPinInvalid
	}
	machine.Pin(pin).Configure(machine.PinConfig{Mode: mode})
	d.configured |= 1 << pin
	return nil
}

// ConfigureOutput configures a pin as a digital output
func (d *RPGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	return d.configure(pin, machine.PinOutput)
}

func (d *RPGPIODriver) ConfigureInputPullUp(pin core.GPIOPin) error {
	return d.configure(pin, machine.PinInputPullup)
}

func (d *RPGPIODriver) ConfigureInputPullDown(pin core.GPIOPin) error {
	return d.configure(pin, machine.PinInputPulldown)
}

// SetPin sets the pin to high (true) or low (false)
func (d *RPGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	if pin >= numGPIO || d.configured&(1<<pin) == 0 {
		return core.ErrPinInvalid
	}
	machine.Pin(pin).Set(value)
	return nil
}

// GetPin reads the current pin state
func (d *RPGPIODriver) GetPin(pin core.GPIOPin) (bool, error) {
	if pin >= numGPIO || d.configured&(1<<pin) == 0 {
		return false, core.ErrPinInvalid
	}
	return machine.Pin(pin).Get(), nil
}
