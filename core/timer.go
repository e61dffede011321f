package core

// TimerFreq is the system tick rate. The RP2040 timer counts microseconds.
const TimerFreq = 1000000

var systemTicks uint32

// GetTime returns the current system time in ticks
func GetTime() uint32 {
	return systemTicks
}

// SetTime sets the current system time. Targets call it from the main loop
// with the hardware counter; tests call it directly.
func SetTime(ticks uint32) {
	systemTicks = ticks
}

// TimerFromUS converts microseconds to timer ticks
func TimerFromUS(us uint32) uint32 {
	return us * (TimerFreq / 1000000)
}

// TimerToUS converts timer ticks to microseconds
func TimerToUS(ticks uint32) uint32 {
	return ticks / (TimerFreq / 1000000)
}

// TimeAfter reports whether a is later than b, tolerating counter wrap.
func TimeAfter(a, b uint32) bool {
	return int32(a-b) > 0
}
