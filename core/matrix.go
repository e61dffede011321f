package core

// Matrix dimensions of the board.
const (
	MatrixRows = 5
	MatrixCols = 15
	KeySlots   = MatrixRows * MatrixCols
)

// KeyStates holds one full sweep of switch states, row-major
// (index = row*MatrixCols + col).
type KeyStates [KeySlots]bool

// Pressed reports whether the switch at (row, col) was closed.
func (k *KeyStates) Pressed(row, col int) bool {
	return k[row*MatrixCols+col]
}

// MatrixScanner walks the key matrix one column per Poll. Exactly one
// column is driven active between calls.
type MatrixScanner struct {
	gpio      GPIODriver
	rows      [MatrixRows]GPIOPin
	cols      [MatrixCols]GPIOPin
	activeLow bool

	col    int
	states KeyStates
}

// NewMatrixScanner configures the pins and activates column 0.
// With activeLow set, columns idle high, rows are pulled up, and a closed
// switch reads low. Otherwise the polarities are inverted.
func NewMatrixScanner(gpio GPIODriver, rows [MatrixRows]GPIOPin, cols [MatrixCols]GPIOPin, activeLow bool) (*MatrixScanner, error) {
	m := &MatrixScanner{
		gpio:      gpio,
		rows:      rows,
		cols:      cols,
		activeLow: activeLow,
	}

	for _, pin := range rows {
		var err error
		if activeLow {
			err = gpio.ConfigureInputPullUp(pin)
		} else {
			err = gpio.ConfigureInputPullDown(pin)
		}
		if err != nil {
			return nil, err
		}
	}
	for _, pin := range cols {
		if err := gpio.ConfigureOutput(pin); err != nil {
			return nil, err
		}
		if err := gpio.SetPin(pin, activeLow); err != nil {
			return nil, err
		}
	}
	if err := m.drive(0, true); err != nil {
		return nil, err
	}
	return m, nil
}

// drive sets column c to its active or idle level.
func (m *MatrixScanner) drive(c int, active bool) error {
	return m.gpio.SetPin(m.cols[c], active != m.activeLow)
}

// Poll samples the active column and advances to the next one. The
// returned states are valid, and ok is true, only on the call that
// completes a sweep. The states are overwritten by the next sweep. A row
// read error is returned rather than reported as a key.
func (m *MatrixScanner) Poll() (states *KeyStates, ok bool, err error) {
	c := m.col
	for r, pin := range m.rows {
		level, err := m.gpio.GetPin(pin)
		if err != nil {
			return nil, false, err
		}
		m.states[r*MatrixCols+c] = level != m.activeLow
	}

	if err := m.drive(c, false); err != nil {
		return nil, false, err
	}
	m.col = (c + 1) % MatrixCols
	if err := m.drive(m.col, true); err != nil {
		return nil, false, err
	}

	if m.col == 0 {
		return &m.states, true, nil
	}
	return nil, false, nil
}

// Column returns the currently active column.
func (m *MatrixScanner) Column() int {
	return m.col
}
