package core

// WaveformTiming splits one LED bit into three PIO cycle slices:
// T3 low lead-in, T1 high for both bit values, T2 high for a one or low
// for a zero.
type WaveformTiming struct {
	T1, T2, T3 uint8
}

// WS2812Timing is the 10-cycle split for WS2812 style LEDs.
var WS2812Timing = WaveformTiming{T1: 2, T2: 5, T3: 3}

// CyclesPerBit returns the PIO cycles needed per data bit.
func (t WaveformTiming) CyclesPerBit() uint32 {
	return uint32(t.T1) + uint32(t.T2) + uint32(t.T3)
}

// Waveform describes the one-wire bit stream for an LED strip.
type Waveform struct {
	Timing  WaveformTiming
	BitRate uint32 // bits per second
}

// Program instruction layout used by Program. Addresses are relative to
// the program start; the loader relocates jumps.
const (
	WaveformWrapTarget = 0
	WaveformWrap       = 3
	waveformZeroLabel  = 3
)

const (
	pioOpJmp     = 0x0000
	pioOpOut     = 0x6000
	pioOpMov     = 0xa000
	pioJmpNotX   = 1 << 5
	pioOutDestX  = 1 << 5
	pioMovYtoY   = 0x42
	pioSideShift = 12
	pioDelayMask = 0x0f
)

// pioSide encodes one side-set bit and a delay. With a single non-optional
// side-set bit the delay field is four bits wide.
func pioSide(side bool, delay uint8) uint16 {
	v := uint16(delay&pioDelayMask) << 8
	if side {
		v |= 1 << pioSideShift
	}
	return v
}

// Program returns the PIO instruction words:
//
//	bitloop: out x, 1       side 0 [T3-1]
//	         jmp !x do_zero side 1 [T1-1]
//	         jmp bitloop    side 1 [T2-1]
//	do_zero: nop            side 0 [T2-1]
func (w Waveform) Program() [4]uint16 {
	t := w.Timing
	return [4]uint16{
		pioOpOut | pioOutDestX | 1 | pioSide(false, t.T3-1),
		pioOpJmp | pioJmpNotX | waveformZeroLabel | pioSide(true, t.T1-1),
		pioOpJmp | WaveformWrapTarget | pioSide(true, t.T2-1),
		pioOpMov | pioMovYtoY | pioSide(false, t.T2-1),
	}
}

// ClockDivisor returns the state machine divider for sysClockHz.
func (w Waveform) ClockDivisor(sysClockHz uint32) ClockDivisor {
	return FixedPointDiv(sysClockHz, w.BitRate*w.Timing.CyclesPerBit())
}

// ResetDelayUS is the latch gap needed after a frame of n LEDs.
func ResetDelayUS(n int) uint32 {
	return 60 * uint32(n)
}
