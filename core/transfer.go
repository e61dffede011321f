package core

// Serializer is the bit-stream generator fed by DMA (a PIO state machine
// on the RP2040).
type Serializer interface {
	// Enable starts clocking bits out of the TX FIFO.
	Enable()
	// Disable stops the generator and clears its FIFO.
	Disable()
	// TxDrained reports whether the TX FIFO is empty.
	TxDrained() bool
}

// DMAChannel copies a frame into the serializer FIFO.
type DMAChannel interface {
	// Start begins a transfer of words. The slice must stay untouched
	// until Busy reports false.
	Start(words []uint32)
	Busy() bool
	Abort()
}

// ledLink is the hardware shared by the transfer states. gen identifies
// the one live state token; each transition bumps it.
type ledLink struct {
	ser    Serializer
	gpio   GPIODriver
	enable GPIOPin
	ch     DMAChannel
	store  *frameStore
	gen    uint32
}

func (l *ledLink) next() uint32 {
	l.gen++
	return l.gen
}

func (l *ledLink) check(gen uint32) {
	if l == nil || l.gen != gen {
		panic("led: transfer state used after transition")
	}
}

// LedController is the idle state: serializer stopped, strip powered off.
type LedController struct {
	l   *ledLink
	gen uint32
}

// Stalled is the ready state: strip powered, serializer running, no
// transfer in flight.
type Stalled struct {
	l   *ledLink
	gen uint32
}

// Running owns the frame buffer while DMA feeds it to the serializer.
type Running struct {
	l   *ledLink
	gen uint32
}

// NewLedController takes the serializer and the strip enable line. The
// enable line is active low and starts high (strip off).
func NewLedController(ser Serializer, gpio GPIODriver, enable GPIOPin) (LedController, error) {
	if err := gpio.ConfigureOutput(enable); err != nil {
		return LedController{}, err
	}
	if err := gpio.SetPin(enable, true); err != nil {
		return LedController{}, err
	}
	l := &ledLink{ser: ser, gpio: gpio, enable: enable}
	return LedController{l: l, gen: l.next()}, nil
}

// Start powers the strip and starts the serializer with ch as its feed.
func (c LedController) Start(ch DMAChannel) (Stalled, error) {
	c.l.check(c.gen)
	if err := c.l.gpio.SetPin(c.l.enable, false); err != nil {
		return Stalled{}, err
	}
	c.l.ch = ch
	c.l.ser.Enable()
	return Stalled{l: c.l, gen: c.l.next()}, nil
}

// StartPattern hands buf to DMA. buf must not be used again until Poll
// returns it.
func (s Stalled) StartPattern(buf FrameBuffer) Running {
	s.l.check(s.gen)
	store := buf.lease()
	s.l.store = store
	s.l.ch.Start(store.words)
	RecordTiming(EvtFrameStart, 0, GetTime(), uint32(len(store.words)), 0)
	return Running{l: s.l, gen: s.l.next()}
}

// Cancel stops the serializer, powers the strip off and releases the
// DMA channel.
func (s Stalled) Cancel() (LedController, DMAChannel, error) {
	s.l.check(s.gen)
	s.l.ser.Disable()
	ch := s.l.ch
	s.l.ch = nil
	err := s.l.gpio.SetPin(s.l.enable, true)
	return LedController{l: s.l, gen: s.l.next()}, ch, err
}

// PollResult is the outcome of Running.Poll.
type PollResult struct {
	running Running
	stalled Stalled
	buf     FrameBuffer
	done    bool
}

// ShouldBlock returns the still-running transfer when it has not finished.
func (p PollResult) ShouldBlock() (Running, bool) {
	return p.running, !p.done
}

// Finished returns the ready state and the frame buffer once the frame
// has been fully handed to the serializer.
func (p PollResult) Finished() (Stalled, FrameBuffer, bool) {
	return p.stalled, p.buf, p.done
}

// Poll checks for completion without blocking. While busy it returns the
// same Running token. Completion is reported exactly once: afterwards r
// is consumed.
func (r Running) Poll() PollResult {
	r.l.check(r.gen)
	if r.l.ch.Busy() || !r.l.ser.TxDrained() {
		return PollResult{running: r}
	}
	store := r.l.store
	r.l.store = nil
	s := Stalled{l: r.l, gen: r.l.next()}
	RecordTiming(EvtFrameDone, 0, GetTime(), uint32(len(store.words)), 0)
	return PollResult{stalled: s, buf: store.reclaim(), done: true}
}

// Abort cancels an in-flight transfer and returns the buffer. The strip
// receives a truncated frame.
func (r Running) Abort() (Stalled, FrameBuffer) {
	r.l.check(r.gen)
	r.l.ch.Abort()
	store := r.l.store
	r.l.store = nil
	return Stalled{l: r.l, gen: r.l.next()}, store.reclaim()
}
