package core

import "testing"

func TestStaticEffect(t *testing.T) {
	buf := NewFrameBuffer(68)
	e := &StaticEffect{Color: RGB(10, 20, 30)}
	e.Apply(buf)

	for i := 0; i < buf.Len(); i++ {
		c := buf.At(i)
		if c.R() != 10 || c.G() != 20 || c.B() != 30 {
			t.Fatalf("LED %d = (%d,%d,%d), expected (10,20,30)", i, c.R(), c.G(), c.B())
		}
	}
}

func TestCycleEffect(t *testing.T) {
	a, b, c := Hex(0xFF0000), Hex(0x00FF00), Hex(0x0000FF)
	e := NewCycleEffect(a, b, c)
	buf := NewFrameBuffer(3)

	expected := []Color{a, b, c, a, b, c, a}
	for i, want := range expected {
		e.Apply(buf)
		if buf.At(0) != want || buf.At(2) != want {
			t.Errorf("Step %d: got 0x%08X, expected 0x%08X", i, uint32(buf.At(0)), uint32(want))
		}
	}
}

func TestCycleEffectEmpty(t *testing.T) {
	expectPanic(t, "NewCycleEffect()", func() { NewCycleEffect() })
}

func TestHueRotateEffect(t *testing.T) {
	e := &HueRotateEffect{Saturation: 255, Lightness: 0x0A, Step: 0x8000}
	buf := NewFrameBuffer(5)

	e.Apply(buf)
	if buf.At(4) != HSL(0, 255, 0x0A) {
		t.Errorf("First step should use hue 0")
	}
	e.Apply(buf)
	if buf.At(0) != HSL(0x8000, 255, 0x0A) {
		t.Errorf("Second step should use hue 0x8000")
	}
	e.Apply(buf)
	if buf.At(0) != HSL(0, 255, 0x0A) {
		t.Errorf("Hue should wrap to 0 after 0x10000")
	}
}

func TestHueWaveEffect(t *testing.T) {
	e := &HueWaveEffect{SubDivisions: 1, Saturation: 255, Lightness: 128, Step: 100}
	buf := NewFrameBuffer(68)
	e.Apply(buf)

	const unit = 65536 / 16
	for i := 0; i < buf.Len(); i++ {
		want := HSL(uint16(waveIndex[i%32]*unit), 255, 128)
		if buf.At(i) != want {
			t.Errorf("LED %d: got 0x%08X, expected 0x%08X", i, uint32(buf.At(i)), uint32(want))
		}
	}
	// The wave tiles every 32 LEDs and mirrors within a tile.
	if buf.At(0) != buf.At(31) || buf.At(15) != buf.At(16) || buf.At(1) != buf.At(33) {
		t.Errorf("Wave pattern does not tile")
	}

	e.Apply(buf)
	if buf.At(0) != HSL(100, 255, 128) {
		t.Errorf("Second step should shift hue by Step")
	}
}

func TestEffectByName(t *testing.T) {
	for _, name := range []string{"off", "static", "rgb-cycle", "hue-rotate", "hue-wave"} {
		e, err := EffectByName(name)
		if err != nil || e == nil {
			t.Errorf("EffectByName(%q) failed: %v", name, err)
		}
	}
	if _, err := EffectByName("plasma"); err != ErrBadConfig {
		t.Errorf("Expected ErrBadConfig for unknown effect, got %v", err)
	}
}
