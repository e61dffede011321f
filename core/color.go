package core

// Color is a packed LED color word.
//
// The layout is G<<24 | R<<16 | B<<8 with the low byte unused. The serializer
// shifts words out MSB first and pulls a new word every 24 bits, so the wire
// order is green, red, blue and the pad byte never leaves the FIFO.
type Color uint32

// Common colors.
const (
	Off   Color = 0
	White Color = 0xFFFFFF00
)

// RGB packs 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(g)<<24 | uint32(r)<<16 | uint32(b)<<8)
}

// Hex converts a 0xRRGGBB literal to a Color.
func Hex(rgb uint32) Color {
	return RGB(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 24) }
func (c Color) B() uint8 { return uint8(c >> 8) }

// Word returns the value written to the serializer FIFO.
func (c Color) Word() uint32 { return uint32(c) }

// HSL converts hue/saturation/lightness to a Color using integer math.
// Hue spans the full uint16 range (65536 = 360 degrees); saturation and
// lightness are 0..255.
func HSL(h uint16, s, l uint8) Color {
	li := int32(l)
	d := 2*li - 255
	if d < 0 {
		d = -d
	}
	chroma := (255 - d) * int32(s) / 255

	h6 := uint32(h) * 6
	sector := h6 >> 16
	t := int32(h6%131072) - 65536
	if t < 0 {
		t = -t
	}
	x := chroma * (65536 - t) / 65536

	m := li - chroma/2
	if m < 0 {
		m = 0
	}

	var r, g, b int32
	switch sector {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return RGB(sat8(r+m), sat8(g+m), sat8(b+m))
}

func sat8(v int32) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
