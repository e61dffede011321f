package core

var faultHandler = func(reason string) {
	panic("fault: " + reason)
}

// SetFaultHandler installs the unrecoverable-error policy. The target
// handler is expected not to return.
func SetFaultHandler(h func(reason string)) {
	faultHandler = h
}

// Fault records the event and hands control to the fault handler.
func Fault(reason string) {
	RecordTiming(EvtFault, 0, GetTime(), 0, 0)
	if debugPrintln != nil {
		debugPrintln("[FAULT] " + reason)
	}
	faultHandler(reason)
}
