package core

// ClockDivisor is a 16.8 fixed-point clock divider as used by the PIO
// state machine CLKDIV register.
type ClockDivisor struct {
	Int  uint16
	Frac uint8
}

// FixedPointDiv computes dividend/divisor as a 16.8 fixed-point value.
// divisor must be non-zero and the integer quotient must fit in 16 bits.
func FixedPointDiv(dividend, divisor uint32) ClockDivisor {
	whole := dividend / divisor
	rem := dividend - whole*divisor
	frac := (uint64(rem) << 8) / uint64(divisor)
	return ClockDivisor{Int: uint16(whole), Frac: uint8(frac)}
}

// Register returns the divisor in CLKDIV register layout.
func (d ClockDivisor) Register() uint32 {
	return uint32(d.Int)<<16 | uint32(d.Frac)<<8
}

// Ratio returns the divisor scaled by 256 (Int*256 + Frac).
func (d ClockDivisor) Ratio() uint32 {
	return uint32(d.Int)<<8 | uint32(d.Frac)
}
