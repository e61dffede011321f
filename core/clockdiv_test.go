package core

import "testing"

func TestFixedPointDiv(t *testing.T) {
	testCases := []struct {
		dividend, divisor uint32
		intPart           uint16
		frac              uint8
	}{
		{125000000, 8000000, 15, 160}, // 15.625
		{100, 10, 10, 0},
		{1, 2, 0, 128},
		{7, 3, 2, 85},
		{133000000, 8000000, 16, 160},
	}

	for _, tc := range testCases {
		d := FixedPointDiv(tc.dividend, tc.divisor)
		if d.Int != tc.intPart || d.Frac != tc.frac {
			t.Errorf("FixedPointDiv(%d, %d) = %d+%d/256, expected %d+%d/256",
				tc.dividend, tc.divisor, d.Int, d.Frac, tc.intPart, tc.frac)
		}
	}
}

func TestFixedPointDivError(t *testing.T) {
	inputs := [][2]uint32{
		{125000000, 8000000},
		{125000000, 7999999},
		{133000000, 9600000},
		{48000000, 1234567},
		{0xFFFFFFFF, 65537},
	}

	for _, in := range inputs {
		d := FixedPointDiv(in[0], in[1])
		exact := float64(in[0]) / float64(in[1])
		got := float64(d.Int) + float64(d.Frac)/256
		if diff := exact - got; diff < 0 || diff >= 1.0/256 {
			t.Errorf("FixedPointDiv(%d, %d) = %f, exact %f, error %g", in[0], in[1], got, exact, diff)
		}
	}
}

func TestClockDivisorRegister(t *testing.T) {
	d := ClockDivisor{Int: 15, Frac: 160}
	if got := d.Register(); got != 0x000FA000 {
		t.Errorf("Register() = 0x%08X, expected 0x000FA000", got)
	}
	if got := d.Ratio(); got != 15*256+160 {
		t.Errorf("Ratio() = %d", got)
	}
}
