//go:build rp2040

package main

import (
	"strconv"
	"time"

	"daudboard/core"
	"daudboard/keymaps"
	ledpio "daudboard/targets/pio"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
	"tinygo.org/x/drivers/delay"
)

// Time for the strip supply to settle after the enable switch closes.
const ledPowerSettle = 200 * time.Microsecond

// must routes a startup failure to the fault policy.
func must(err error, what string) {
	if err != nil {
		core.Fault(what + ": " + err.Error())
	}
}

func main() {
	InitDebugUART()
	core.SetFaultHandler(enterBootloader)
	UpdateSystemTime()

	cfg, err := loadConfig()
	must(err, "config")

	core.SetGPIODriver(NewRPGPIODriver())
	gpio := core.MustGPIO()

	matrix, err := core.NewMatrixScanner(gpio, rowPins, colPins, cfg.ActiveLow)
	must(err, "matrix")
	keys := core.NewKeyTable(keymaps.Basic)

	ser, err := ledpio.NewWS2812(rp2pio.PIO0, 0, ledDataPin, cfg.Waveform())
	must(err, "ws2812")
	ctrl, err := core.NewLedController(ser, gpio, ledEnablePin)
	must(err, "led enable")
	ch, err := ledpio.ClaimDMA(ser)
	must(err, "dma")

	stalled, err := ctrl.Start(ch)
	must(err, "led start")
	delay.Sleep(ledPowerSettle)

	effect, err := core.EffectByName(cfg.Effect)
	must(err, "effect")

	sched := core.NewScheduler(cfg, matrix, keys, newUSBKeyboard(), effect)
	UpdateSystemTime()
	sched.Start(stalled, core.NewFrameBuffer(cfg.NumLEDs))

	core.EmitBoot(cfg.NumLEDs)
	core.DebugPrintln("[BOOT] effect=" + cfg.Effect + " leds=" + strconv.Itoa(cfg.NumLEDs))

	// A panic is an invariant violation; hand it to the fault policy.
	defer func() {
		if r := recover(); r != nil {
			reason := "panic"
			switch v := r.(type) {
			case string:
				reason = v
			case error:
				reason = v.Error()
			}
			core.Fault(reason)
		}
	}()
	sched.Run(UpdateSystemTime)
}
