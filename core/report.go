package core

// KeyReport is an NKRO keyboard report: a modifier byte followed by a
// bitmap indexed by HID usage ID.
type KeyReport struct {
	Modifiers uint8
	Keys      [32]uint8
}

// Reset clears the report.
func (r *KeyReport) Reset() {
	*r = KeyReport{}
}

// Add marks k pressed. KeyNone and KeyFn are ignored.
func (r *KeyReport) Add(k Keycode) {
	switch {
	case k == KeyNone || k == KeyFn:
	case k.IsModifier():
		r.Modifiers |= 1 << (k - KeyLeftCtrl)
	default:
		r.Keys[k>>3] |= 1 << (k & 7)
	}
}

// Has reports whether k is marked pressed.
func (r *KeyReport) Has(k Keycode) bool {
	if k.IsModifier() {
		return r.Modifiers&(1<<(k-KeyLeftCtrl)) != 0
	}
	return r.Keys[k>>3]&(1<<(k&7)) != 0
}

// Empty reports whether no key is pressed.
func (r *KeyReport) Empty() bool {
	return *r == (KeyReport{})
}

// BuildReport folds a translated sweep into r.
func BuildReport(seq KeySeq, r *KeyReport) {
	r.Reset()
	for i := 0; i < seq.Len(); i++ {
		r.Add(seq.At(i))
	}
}
