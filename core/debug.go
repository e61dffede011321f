package core

import "daudboard/protocol"

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// TelemetryWriter takes as many leading bytes of b as the link accepts
// without waiting and returns the count.
type TelemetryWriter func(b []byte) int

// TimingEvent captures an event for post-mortem analysis
type TimingEvent struct {
	EventType uint8  // Event type code
	OID       uint8  // Source object, 0 when unused
	Clock     uint32 // System clock at event
	Value1    uint32 // Context-dependent value
	Value2    uint32 // Context-dependent value
}

// Event type codes
const (
	EvtReportSent  = 1 // HID report accepted, v1 = modifiers
	EvtReportDrop  = 2 // HID report not sent, v1 = 1 busy
	EvtFrameStart  = 3 // LED DMA started, v1 = words
	EvtFrameDone   = 4 // LED DMA finished, v1 = words
	EvtEffectStep  = 5 // effect applied, v1 = step count
	EvtHostLEDs    = 6 // host LED report changed, v1 = new state
	EvtFault       = 7 // fault raised
	EvtLoopOverrun = 8 // Step took longer than v1 us
)

const (
	TimingRingSize     = 32   // Keep last 32 events for post-mortem
	TelemetryQueueSize = 1024 // Room for a full timing ring dump
)

var (
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled gates DebugPrintln. Off by default so text does not
	// crowd stats out of the telemetry queue.
	debugEnabled bool = false

	timingRing     [TimingRingSize]TimingEvent
	timingRingHead uint8
	timingEnabled  bool = true

	telemetryOut     TelemetryWriter
	telemetryFrame   protocol.FrameWriter
	telemetryBuf     protocol.ScratchOutput
	telemetryDropped uint32
)

var telemetryQueue = protocol.NewFifoBuffer(TelemetryQueueSize)

// SetDebugWriter sets the platform-specific debug output function
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetTelemetryWriter sets the link for framed telemetry and discards
// anything still queued. nil disables telemetry.
func SetTelemetryWriter(w TelemetryWriter) {
	telemetryOut = w
	telemetryQueue.Reset()
	telemetryDropped = 0
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln queues a debug message as a text frame when telemetry is
// set, otherwise passes it to the plain debug writer. Raw text never
// shares a link with frames.
func DebugPrintln(msg string) {
	if !debugEnabled {
		return
	}
	if telemetryOut != nil {
		emit(func(o protocol.OutputBuffer) { protocol.EncodeText(o, msg) })
		return
	}
	if debugPrintln != nil {
		debugPrintln(msg)
	}
}

// emit encodes one frame into the telemetry queue. A frame that does not
// fit is dropped whole; the host sees the gap in the sequence numbers.
func emit(body func(protocol.OutputBuffer)) {
	if telemetryOut == nil {
		return
	}
	telemetryBuf.Reset()
	if err := telemetryFrame.Encode(&telemetryBuf, body); err != nil {
		return
	}
	frame := telemetryBuf.Result()
	if telemetryQueue.Free() < len(frame) {
		telemetryDropped++
		return
	}
	telemetryQueue.Write(frame)
}

// DrainTelemetry hands queued bytes to the writer until it stops
// accepting. It never waits; the scheduler calls it every Step.
func DrainTelemetry() {
	if telemetryOut == nil {
		return
	}
	for telemetryQueue.Available() > 0 {
		head := telemetryQueue.Head()
		n := telemetryOut(head)
		telemetryQueue.Pop(n)
		if n < len(head) {
			return
		}
	}
}

// FlushTelemetry spins until the queue is empty. Only the fault path may
// block like this.
func FlushTelemetry() {
	for telemetryOut != nil && telemetryQueue.Available() > 0 {
		DrainTelemetry()
	}
}

// TelemetryPending returns the number of queued bytes.
func TelemetryPending() int {
	return telemetryQueue.Available()
}

// TelemetryDropped returns how many frames were dropped on a full queue.
func TelemetryDropped() uint32 {
	return telemetryDropped
}

// EmitBoot sends the boot banner frame.
func EmitBoot(leds int) {
	emit(func(o protocol.OutputBuffer) { protocol.EncodeBoot(o, uint32(leds)) })
}

// RecordTiming captures a timing event in the ring buffer
func RecordTiming(eventType, oid uint8, clock, value1, value2 uint32) {
	if !timingEnabled {
		return
	}
	idx := timingRingHead
	timingRing[idx] = TimingEvent{
		EventType: eventType,
		OID:       oid,
		Clock:     clock,
		Value1:    value1,
		Value2:    value2,
	}
	timingRingHead = (idx + 1) % TimingRingSize
}

// EventName returns a short label for an event code.
func EventName(code uint8) string {
	switch code {
	case EvtReportSent:
		return "REPORT"
	case EvtReportDrop:
		return "REPORT_DROP"
	case EvtFrameStart:
		return "FRAME_START"
	case EvtFrameDone:
		return "FRAME_DONE"
	case EvtEffectStep:
		return "EFFECT"
	case EvtHostLEDs:
		return "HOST_LEDS"
	case EvtFault:
		return "FAULT!"
	case EvtLoopOverrun:
		return "OVERRUN"
	default:
		return "UNKNOWN"
	}
}

// DumpTimingRing outputs the ring oldest first: timing frames when
// telemetry is set, text lines through the debug writer otherwise. Call
// on fault, then FlushTelemetry.
func DumpTimingRing() {
	framed := telemetryOut != nil
	if !framed && debugPrintln != nil {
		debugPrintln("[TIMING] === Timing Ring Dump ===")
	}

	start := timingRingHead
	for i := uint8(0); i < TimingRingSize; i++ {
		idx := (start + i) % TimingRingSize
		evt := &timingRing[idx]
		if evt.EventType == 0 {
			continue
		}

		if framed {
			emit(func(o protocol.OutputBuffer) {
				protocol.EncodeValues(o, protocol.MsgTiming,
					uint32(evt.EventType), evt.Clock, evt.Value1, evt.Value2)
			})
		} else if debugPrintln != nil {
			debugPrintln("[TIMING] " + EventName(evt.EventType) +
				" clock=" + utoa(evt.Clock) +
				" v1=" + utoa(evt.Value1) +
				" v2=" + utoa(evt.Value2))
		}
	}

	if !framed && debugPrintln != nil {
		debugPrintln("[TIMING] === End Dump ===")
	}
}

// ClearTimingRing clears the timing buffer
func ClearTimingRing() {
	for i := range timingRing {
		timingRing[i] = TimingEvent{}
	}
	timingRingHead = 0
}
