package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	if c.NumLEDs != 68 || c.ResetDelayUS != 4080 || c.BitRate != 800000 {
		t.Errorf("Unexpected LED defaults: %+v", c)
	}
	if !c.ActiveLow || c.Effect != "hue-rotate" {
		t.Errorf("Unexpected board defaults: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestConfigScalesResetDelay(t *testing.T) {
	c := Config{NumLEDs: 10}
	c.ApplyDefaults()
	if c.ResetDelayUS != 600 {
		t.Errorf("ResetDelayUS = %d, expected 600 for 10 LEDs", c.ResetDelayUS)
	}

	c = Config{NumLEDs: 10, ResetDelayUS: 80}
	c.ApplyDefaults()
	if c.ResetDelayUS != 80 {
		t.Errorf("Explicit reset delay overwritten: %d", c.ResetDelayUS)
	}
}

func TestConfigValidate(t *testing.T) {
	bad := []Config{
		{},
		{NumLEDs: -1, BitRate: 1, MatrixPollUS: 1, HIDTickUS: 1, EffectPeriodUS: 1},
		{NumLEDs: 1, BitRate: 1, MatrixPollUS: 0, HIDTickUS: 1, EffectPeriodUS: 1},
	}
	for i, c := range bad {
		if err := c.Validate(); err != ErrBadConfig {
			t.Errorf("Config %d: expected ErrBadConfig, got %v", i, err)
		}
	}
}
