//go:build rp2040

package main

import (
	"machine"

	"daudboard/core"
)

// Pin map of the Daudboard PCB.
var (
	rowPins = [core.MatrixRows]core.GPIOPin{24, 27, 23, 14, 15}
	colPins = [core.MatrixCols]core.GPIOPin{22, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 13, 12}
)

const (
	ledDataPin   = machine.GPIO25
	ledEnablePin = core.GPIOPin(26) // active low strip power switch

	debugTXPin = machine.GPIO16
	debugRXPin = machine.GPIO17
)
