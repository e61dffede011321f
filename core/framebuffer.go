package core

// frameStore is the single backing array for LED frame data. gen changes
// every time ownership moves, which invalidates any FrameBuffer copy that
// was not handed back.
type frameStore struct {
	words []uint32
	gen   uint32
}

// FrameBuffer is an ownership token for the LED frame. Only the most
// recently issued token is usable; copies kept across StartPattern panic.
type FrameBuffer struct {
	s   *frameStore
	gen uint32
}

const errStaleFrame = "led: frame buffer used after hand-off"

// NewFrameBuffer allocates the frame storage. Call once at startup.
func NewFrameBuffer(leds int) FrameBuffer {
	s := &frameStore{words: make([]uint32, leds), gen: 1}
	return FrameBuffer{s: s, gen: s.gen}
}

func (b FrameBuffer) owned() *frameStore {
	if b.s == nil || b.s.gen != b.gen {
		panic(errStaleFrame)
	}
	return b.s
}

// Len returns the number of LEDs in the frame.
func (b FrameBuffer) Len() int {
	return len(b.owned().words)
}

// Set writes one LED. Out of range indices are ignored.
func (b FrameBuffer) Set(i int, c Color) {
	s := b.owned()
	if i < 0 || i >= len(s.words) {
		return
	}
	s.words[i] = c.Word()
}

// At reads one LED.
func (b FrameBuffer) At(i int) Color {
	return Color(b.owned().words[i])
}

// Fill sets every LED to c.
func (b FrameBuffer) Fill(c Color) {
	s := b.owned()
	w := c.Word()
	for i := range s.words {
		s.words[i] = w
	}
}

// lease transfers the storage to the caller and invalidates b.
func (b FrameBuffer) lease() *frameStore {
	s := b.owned()
	s.gen++
	return s
}

// reclaim issues a fresh token for storage previously leased.
func (s *frameStore) reclaim() FrameBuffer {
	s.gen++
	return FrameBuffer{s: s, gen: s.gen}
}
