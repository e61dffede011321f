package core

import (
	"errors"

	"daudboard/protocol"
)

// StatsPeriodUS is the interval between telemetry stats frames.
const StatsPeriodUS = 1000000

// Stats counts scheduler activity since boot.
type Stats struct {
	Iterations     uint32
	Sweeps         uint32
	ReportsSent    uint32
	ReportsDropped uint32
	Frames         uint32
	EffectSteps    uint32
}

type ledPhase uint8

const (
	ledIdle    ledPhase = iota // not started
	ledRunning                 // DMA in flight
	ledLatch                   // waiting out the reset gap
)

// Scheduler runs the keyboard and LED pipelines from one loop. Each Step
// services every due task once and never blocks.
type Scheduler struct {
	cfg    Config
	matrix *MatrixScanner
	keys   *KeyTable
	hid    HIDDevice
	effect Effect

	matrixTimer CountDown
	hidTimer    CountDown
	effectTimer CountDown
	resetTimer  CountDown
	statsTimer  CountDown

	report   KeyReport
	hostLEDs HostLEDs
	lastStep uint32

	phase   ledPhase
	stalled Stalled
	running Running
	buf     FrameBuffer

	stats Stats
}

// NewScheduler wires the pipelines. cfg is expected to be validated.
func NewScheduler(cfg Config, matrix *MatrixScanner, keys *KeyTable, hid HIDDevice, effect Effect) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		matrix: matrix,
		keys:   keys,
		hid:    hid,
		effect: effect,
	}
}

// Start arms the timers, renders the first effect step and starts the
// first LED frame.
func (s *Scheduler) Start(stalled Stalled, buf FrameBuffer) {
	s.matrixTimer.StartPeriodic(s.cfg.MatrixPollUS)
	s.hidTimer.StartPeriodic(s.cfg.HIDTickUS)
	s.effectTimer.StartPeriodic(s.cfg.EffectPeriodUS)
	s.statsTimer.StartPeriodic(StatsPeriodUS)
	s.lastStep = GetTime()

	s.applyEffect(buf)
	s.running = stalled.StartPattern(buf)
	s.phase = ledRunning
}

// Step runs one loop iteration: matrix, HID tick, USB transport, LEDs,
// then telemetry. Any returned error is unrecoverable.
func (s *Scheduler) Step() error {
	now := GetTime()
	if gap := now - s.lastStep; gap > s.cfg.HIDTickUS {
		RecordTiming(EvtLoopOverrun, 0, now, gap, 0)
	}
	s.lastStep = now
	s.stats.Iterations++

	if s.matrixTimer.Expired() {
		if err := s.scanMatrix(); err != nil {
			return err
		}
	}

	if s.hidTimer.Expired() {
		if err := s.hid.Tick(); err != nil && !errors.Is(err, ErrWouldBlock) {
			return err
		}
	}

	leds, err := s.hid.PollTransport()
	switch {
	case err == nil:
		if leds != s.hostLEDs {
			RecordTiming(EvtHostLEDs, 0, now, uint32(leds), uint32(s.hostLEDs))
			s.hostLEDs = leds
		}
	case !errors.Is(err, ErrWouldBlock):
		return err
	}

	s.stepLEDs()

	if s.statsTimer.Expired() {
		s.EmitStats()
	}
	DrainTelemetry()
	return nil
}

func (s *Scheduler) scanMatrix() error {
	states, ok, err := s.matrix.Poll()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	s.stats.Sweeps++

	BuildReport(s.keys.Transform(states), &s.report)
	err = s.hid.WriteReport(&s.report)
	switch {
	case err == nil:
		s.stats.ReportsSent++
		RecordTiming(EvtReportSent, 0, GetTime(), uint32(s.report.Modifiers), 0)
	case errors.Is(err, ErrDuplicate):
	case errors.Is(err, ErrWouldBlock):
		s.stats.ReportsDropped++
		RecordTiming(EvtReportDrop, 0, GetTime(), 1, 0)
	default:
		return err
	}
	return nil
}

func (s *Scheduler) stepLEDs() {
	switch s.phase {
	case ledRunning:
		res := s.running.Poll()
		if r, busy := res.ShouldBlock(); busy {
			s.running = r
			return
		}
		s.stalled, s.buf, _ = res.Finished()
		s.stats.Frames++
		s.resetTimer.Start(s.cfg.ResetDelayUS)
		s.phase = ledLatch

	case ledLatch:
		if !s.resetTimer.Expired() {
			return
		}
		if s.effectTimer.Expired() {
			s.applyEffect(s.buf)
		}
		s.running = s.stalled.StartPattern(s.buf)
		s.phase = ledRunning
	}
}

func (s *Scheduler) applyEffect(buf FrameBuffer) {
	s.effect.Apply(buf)
	s.stats.EffectSteps++
	RecordTiming(EvtEffectStep, 0, GetTime(), s.stats.EffectSteps, 0)
}

// HostLEDs returns the last LED state reported by the host.
func (s *Scheduler) HostLEDs() HostLEDs {
	return s.hostLEDs
}

// Stats returns the activity counters.
func (s *Scheduler) Stats() Stats {
	return s.stats
}

// EmitStats queues the counters as a telemetry frame.
func (s *Scheduler) EmitStats() {
	st := s.stats
	emit(func(o protocol.OutputBuffer) {
		protocol.EncodeValues(o, protocol.MsgStats,
			st.Iterations, st.Sweeps, st.ReportsSent, st.Frames, st.EffectSteps)
	})
}

// Run loops forever. tick refreshes the system clock before each Step.
// An error from Step is passed to Fault.
func (s *Scheduler) Run(tick func()) {
	for {
		tick()
		if err := s.Step(); err != nil {
			Fault(err.Error())
			return
		}
	}
}
