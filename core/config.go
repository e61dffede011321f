package core

// Config holds the firmware tunables. Zero fields take their defaults.
type Config struct {
	NumLEDs        int
	ResetDelayUS   uint32 // latch gap after each frame
	BitRate        uint32 // LED data rate, bits per second
	MatrixPollUS   uint32 // time per matrix column
	HIDTickUS      uint32
	EffectPeriodUS uint32 // minimum time between effect steps
	ActiveLow      bool   // matrix column polarity
	Effect         string // built-in effect name, see EffectByName
}

// Board defaults.
const (
	DefaultNumLEDs        = 68
	DefaultBitRate        = 800000
	DefaultMatrixPollUS   = 50
	DefaultHIDTickUS      = 1000
	DefaultEffectPeriodUS = 10000
	DefaultEffect         = "hue-rotate"
)

// DefaultConfig returns the configuration for the stock board.
func DefaultConfig() Config {
	c := Config{ActiveLow: true}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills zero fields.
func (c *Config) ApplyDefaults() {
	if c.NumLEDs == 0 {
		c.NumLEDs = DefaultNumLEDs
	}
	if c.ResetDelayUS == 0 {
		c.ResetDelayUS = ResetDelayUS(c.NumLEDs)
	}
	if c.BitRate == 0 {
		c.BitRate = DefaultBitRate
	}
	if c.MatrixPollUS == 0 {
		c.MatrixPollUS = DefaultMatrixPollUS
	}
	if c.HIDTickUS == 0 {
		c.HIDTickUS = DefaultHIDTickUS
	}
	if c.EffectPeriodUS == 0 {
		c.EffectPeriodUS = DefaultEffectPeriodUS
	}
	if c.Effect == "" {
		c.Effect = DefaultEffect
	}
}

// Validate rejects configurations the scheduler cannot run.
func (c *Config) Validate() error {
	if c.NumLEDs <= 0 || c.BitRate == 0 || c.MatrixPollUS == 0 ||
		c.HIDTickUS == 0 || c.EffectPeriodUS == 0 {
		return ErrBadConfig
	}
	return nil
}

// Waveform returns the LED bit stream parameters for this configuration.
func (c *Config) Waveform() Waveform {
	return Waveform{Timing: WS2812Timing, BitRate: c.BitRate}
}

// EffectByName returns a fresh instance of a built-in effect.
func EffectByName(name string) (Effect, error) {
	switch name {
	case "off":
		return &StaticEffect{Color: Off}, nil
	case "static":
		return &StaticEffect{Color: Hex(0x0A0A0A)}, nil
	case "rgb-cycle":
		return NewCycleEffect(Hex(0x0F0000), Hex(0x000F00), Hex(0x00000F)), nil
	case "hue-rotate":
		return &HueRotateEffect{Saturation: 255, Lightness: 0x0A, Step: 0x0F}, nil
	case "hue-wave":
		return &HueWaveEffect{SubDivisions: 1, Saturation: 255, Lightness: 0x0A, Step: 0x0F}, nil
	}
	return nil, ErrBadConfig
}
