package core

// Effect renders one animation step into the frame buffer.
type Effect interface {
	Apply(buf FrameBuffer)
}

// StaticEffect fills the strip with a single color.
type StaticEffect struct {
	Color Color
}

func (e *StaticEffect) Apply(buf FrameBuffer) {
	buf.Fill(e.Color)
}

// CycleEffect fills the strip with the next color of a fixed palette on
// every step.
type CycleEffect struct {
	colors   []Color
	selector int
}

// NewCycleEffect returns a CycleEffect over colors. At least one color is required.
func NewCycleEffect(colors ...Color) *CycleEffect {
	if len(colors) == 0 {
		panic("led: cycle effect needs at least one color")
	}
	return &CycleEffect{colors: colors}
}

func (e *CycleEffect) Apply(buf FrameBuffer) {
	buf.Fill(e.colors[e.selector])
	e.selector = (e.selector + 1) % len(e.colors)
}

// HueRotateEffect fills the strip with one hue that advances by Step per frame.
type HueRotateEffect struct {
	Saturation uint8
	Lightness  uint8
	Step       uint16

	hue uint16
}

func (e *HueRotateEffect) Apply(buf FrameBuffer) {
	buf.Fill(HSL(e.hue, e.Saturation, e.Lightness))
	e.hue += e.Step
}

// waveIndex ramps up then down so adjacent LEDs differ by one hue unit
// and the pattern tiles every 32 LEDs without a seam.
var waveIndex = [32]uint16{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
}

// HueWaveEffect spreads a hue gradient along the strip and shifts it by
// Step per frame. SubDivisions narrows the gradient: the full wave covers
// 1/SubDivisions of the hue circle.
type HueWaveEffect struct {
	SubDivisions uint16
	Saturation   uint8
	Lightness    uint8
	Step         uint16

	hue uint16
}

func (e *HueWaveEffect) Apply(buf FrameBuffer) {
	sub := uint32(e.SubDivisions)
	if sub == 0 {
		sub = 1
	}
	unit := uint16(65536 / (16 * sub))
	n := buf.Len()
	for i := 0; i < n; i++ {
		h := e.hue + waveIndex[i%len(waveIndex)]*unit
		buf.Set(i, HSL(h, e.Saturation, e.Lightness))
	}
	e.hue += e.Step
}
