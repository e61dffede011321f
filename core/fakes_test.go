package core

import "errors"

// fakeGPIO records pin levels. When matrix is set, reads of row pins
// simulate the switch matrix: a row reads low if a pressed switch joins it
// to a column currently driven low.
type fakeGPIO struct {
	levels  map[GPIOPin]bool
	outputs map[GPIOPin]bool
	pullups map[GPIOPin]bool
	matrix  *fakeMatrix
	failSet GPIOPin
	failGet GPIOPin
	writes  int
}

type fakeMatrix struct {
	rows    [MatrixRows]GPIOPin
	cols    [MatrixCols]GPIOPin
	pressed map[Position]bool
}

var errFakePin = errors.New("fake pin failure")

func newFakeGPIO() *fakeGPIO {
	return &fakeGPIO{
		levels:  make(map[GPIOPin]bool),
		outputs: make(map[GPIOPin]bool),
		pullups: make(map[GPIOPin]bool),
		failSet: 0xFFFF,
		failGet: 0xFFFF,
	}
}

func (f *fakeGPIO) ConfigureOutput(pin GPIOPin) error {
	f.outputs[pin] = true
	return nil
}

func (f *fakeGPIO) ConfigureInputPullUp(pin GPIOPin) error {
	f.pullups[pin] = true
	return nil
}

func (f *fakeGPIO) ConfigureInputPullDown(pin GPIOPin) error {
	f.pullups[pin] = false
	return nil
}

func (f *fakeGPIO) SetPin(pin GPIOPin, value bool) error {
	if pin == f.failSet {
		return errFakePin
	}
	f.writes++
	f.levels[pin] = value
	return nil
}

func (f *fakeGPIO) GetPin(pin GPIOPin) (bool, error) {
	if pin == f.failGet {
		return false, errFakePin
	}
	return f.level(pin), nil
}

func (f *fakeGPIO) level(pin GPIOPin) bool {
	if f.matrix == nil {
		return f.levels[pin]
	}
	for r, rp := range f.matrix.rows {
		if rp != pin {
			continue
		}
		for c, cp := range f.matrix.cols {
			if !f.levels[cp] && f.matrix.pressed[Position{Row: uint8(r), Col: uint8(c)}] {
				return false
			}
		}
		return true
	}
	return f.levels[pin]
}

// activeColumns returns the columns currently driven low.
func (f *fakeGPIO) activeColumns(cols [MatrixCols]GPIOPin) []int {
	var active []int
	for c, pin := range cols {
		if !f.levels[pin] {
			active = append(active, c)
		}
	}
	return active
}

var (
	testRows = [MatrixRows]GPIOPin{24, 27, 23, 14, 15}
	testCols = [MatrixCols]GPIOPin{22, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 13, 12}
)

const testEnablePin GPIOPin = 26

func newTestMatrix(pressed ...Position) (*fakeGPIO, *MatrixScanner) {
	g := newFakeGPIO()
	g.matrix = &fakeMatrix{rows: testRows, cols: testCols, pressed: make(map[Position]bool)}
	for _, p := range pressed {
		g.matrix.pressed[p] = true
	}
	m, err := NewMatrixScanner(g, testRows, testCols, true)
	if err != nil {
		panic(err)
	}
	return g, m
}

// sweep polls until a full sweep completes.
func sweep(m *MatrixScanner) *KeyStates {
	for {
		states, ok, err := m.Poll()
		if err != nil {
			panic(err)
		}
		if ok {
			return states
		}
	}
}

type fakeSerializer struct {
	enabled  bool
	pending  int // words still in the FIFO
	disables int
}

func (s *fakeSerializer) Enable()         { s.enabled = true }
func (s *fakeSerializer) Disable()        { s.enabled = false; s.pending = 0; s.disables++ }
func (s *fakeSerializer) TxDrained() bool { return s.pending == 0 }

// fakeDMA stays busy for busyPolls calls to Busy after each Start.
type fakeDMA struct {
	busyPolls int
	remaining int
	started   int
	aborted   int
	last      []uint32
	snapshot  []uint32
}

func (d *fakeDMA) Start(words []uint32) {
	d.started++
	d.remaining = d.busyPolls
	d.last = words
	d.snapshot = append(d.snapshot[:0], words...)
}

func (d *fakeDMA) Busy() bool {
	if d.remaining > 0 {
		d.remaining--
		return true
	}
	return false
}

func (d *fakeDMA) Abort() {
	d.aborted++
	d.remaining = 0
}

type fakeHID struct {
	reports  []KeyReport
	last     KeyReport
	sent     bool
	busy     bool
	ticks    int
	leds     HostLEDs
	tickErr  error
	pollErr  error
	writeErr error
}

func (h *fakeHID) WriteReport(r *KeyReport) error {
	if h.writeErr != nil {
		return h.writeErr
	}
	if h.busy {
		return ErrWouldBlock
	}
	if h.sent && *r == h.last {
		return ErrDuplicate
	}
	h.sent = true
	h.last = *r
	h.reports = append(h.reports, *r)
	return nil
}

func (h *fakeHID) Tick() error {
	h.ticks++
	return h.tickErr
}

func (h *fakeHID) PollTransport() (HostLEDs, error) {
	return h.leds, h.pollErr
}
