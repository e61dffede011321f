//go:build rp2040

package main

import (
	"strconv"

	"daudboard/core"
)

// Build-time settings, set with
//
//	tinygo flash -target=pico -ldflags="-X main.effectName=hue-wave -X main.ledCount=68" ./targets/rp2040
var (
	effectName string
	ledCount   string
	debugText  string
)

// loadConfig applies the build-time overrides to the board defaults.
func loadConfig() (core.Config, error) {
	cfg := core.Config{ActiveLow: true, Effect: effectName}
	if ledCount != "" {
		n, err := strconv.Atoi(ledCount)
		if err != nil {
			return cfg, core.ErrBadConfig
		}
		cfg.NumLEDs = n
	}
	cfg.ApplyDefaults()
	return cfg, cfg.Validate()
}
