package core

// Position is a (row, col) cell of the key matrix.
type Position struct {
	Row uint8
	Col uint8
}

// Pos returns a matrix position. It panics when the cell lies outside the
// matrix, so a bad layout fails at package initialisation.
func Pos(row, col int) Position {
	if row < 0 || row >= MatrixRows || col < 0 || col >= MatrixCols {
		panic("keymap: position " + itoa(row) + "," + itoa(col) + " outside matrix")
	}
	return Position{Row: uint8(row), Col: uint8(col)}
}

func (p Position) index() int {
	return int(p.Row)*MatrixCols + int(p.Col)
}

// Binding maps one matrix position to a key code.
type Binding struct {
	Pos  Position
	Code Keycode
}

// Layout is a declarative keymap. Unlisted positions produce no key.
type Layout []Binding

// KeyTable is the immutable, dense form of a Layout.
type KeyTable struct {
	codes [KeySlots]Keycode
}

// NewKeyTable builds the lookup table. A position bound twice panics.
func NewKeyTable(layout Layout) *KeyTable {
	t := &KeyTable{}
	var seen [KeySlots]bool
	for _, b := range layout {
		i := b.Pos.index()
		if seen[i] {
			panic("keymap: position " + itoa(int(b.Pos.Row)) + "," + itoa(int(b.Pos.Col)) + " bound twice")
		}
		seen[i] = true
		t.codes[i] = b.Code
	}
	return t
}

// Lookup returns the code bound at p.
func (t *KeyTable) Lookup(p Position) Keycode {
	return t.codes[p.index()]
}

// Transform returns a lazy view of states translated through the table.
// The view reads states on access and can be walked any number of times.
func (t *KeyTable) Transform(states *KeyStates) KeySeq {
	return KeySeq{table: t, states: states}
}

// KeySeq is the translated view of one sweep: one entry per matrix slot,
// KeyNone where the switch is open.
type KeySeq struct {
	table  *KeyTable
	states *KeyStates
}

// Len is always KeySlots.
func (s KeySeq) Len() int { return KeySlots }

// At returns the code for slot i.
func (s KeySeq) At(i int) Keycode {
	if !s.states[i] {
		return KeyNone
	}
	return s.table.codes[i]
}
