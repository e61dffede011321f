package core

import "testing"

func TestGPIODriverRegistry(t *testing.T) {
	saved := gpioDriver
	defer func() { gpioDriver = saved }()

	gpioDriver = nil
	expectPanic(t, "MustGPIO without driver", func() { MustGPIO() })

	g := newFakeGPIO()
	SetGPIODriver(g)
	if MustGPIO() != GPIODriver(g) {
		t.Error("MustGPIO returned a different driver")
	}
}
