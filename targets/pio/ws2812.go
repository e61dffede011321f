//go:build rp2040

package pio

// WS2812 serializer: one PIO state machine turns 24-bit GRB words from
// its TX FIFO into the LED one-wire waveform on a side-set pin.

import (
	"errors"
	"machine"
	"unsafe"

	"daudboard/core"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

var ErrStateMachineBusy = errors.New("PIO state machine already claimed")

// ws2812Origin lets the loader place the program anywhere; jumps are
// relocated on load.
const ws2812Origin = -1

// WS2812 implements core.Serializer on a PIO state machine.
type WS2812 struct {
	pio    *rp2pio.PIO
	sm     rp2pio.StateMachine
	pin    machine.Pin
	offset uint8
	div    core.ClockDivisor
}

// NewWS2812 claims state machine smNum of pio and loads the waveform
// program. The state machine is left disabled with the data pin low.
func NewWS2812(pio *rp2pio.PIO, smNum uint8, pin machine.Pin, wave core.Waveform) (*WS2812, error) {
	s := &WS2812{
		pio: pio,
		sm:  pio.StateMachine(smNum),
		pin: pin,
	}
	if !s.sm.TryClaim() {
		return nil, ErrStateMachineBusy
	}

	program := wave.Program()
	offset, err := pio.AddProgram(program[:], ws2812Origin)
	if err != nil {
		return nil, err
	}
	s.offset = offset

	pin.Configure(machine.PinConfig{Mode: pio.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSidesetParams(1, false, false)
	cfg.SetSidesetPins(pin)

	// Shift left so bit 31 goes first; pull a new word every 24 bits so
	// the low pad byte of each color is dropped.
	cfg.SetOutShift(false, true, 24)
	cfg.SetFIFOJoin(rp2pio.FifoJoinTx)

	s.div = wave.ClockDivisor(machine.CPUFrequency())
	cfg.SetClkDivIntFrac(s.div.Int, s.div.Frac)
	cfg.SetWrap(offset+core.WaveformWrapTarget, offset+core.WaveformWrap)

	s.sm.Init(offset, cfg)

	// Pin direction must be set after Init.
	s.sm.SetPindirsConsecutive(pin, 1, true)
	s.sm.SetPinsConsecutive(pin, 1, false)
	return s, nil
}

// Enable starts the state machine.
func (s *WS2812) Enable() {
	s.sm.SetEnabled(true)
}

// Disable stops the state machine, drops queued words and resets its PC.
func (s *WS2812) Disable() {
	s.sm.SetEnabled(false)
	s.sm.ClearFIFOs()
	s.sm.Restart()
	s.sm.SetPinsConsecutive(s.pin, 1, false)
}

// TxDrained reports whether the TX FIFO is empty.
func (s *WS2812) TxDrained() bool {
	return s.sm.IsTxFIFOEmpty()
}

// Divisor returns the clock divider in use.
func (s *WS2812) Divisor() core.ClockDivisor {
	return s.div
}

// txAddr is the TX FIFO address DMA writes to.
func (s *WS2812) txAddr() uint32 {
	return uint32(uintptr(unsafe.Pointer(s.sm.TxReg())))
}

// txDREQ is the data request line that paces DMA to the TX FIFO.
func (s *WS2812) txDREQ() uint32 {
	return dreqPIO0TX0 + uint32(s.pio.BlockIndex())*8 + uint32(s.sm.StateMachineIndex())
}
