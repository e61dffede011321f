package core

// CountDown is a non-blocking timer over the system clock.
type CountDown struct {
	deadline uint32
	period   uint32
	periodic bool
	armed    bool
}

// Start arms a one-shot timer that expires us microseconds from now.
func (c *CountDown) Start(us uint32) {
	c.period = TimerFromUS(us)
	c.deadline = GetTime() + c.period
	c.periodic = false
	c.armed = true
}

// StartPeriodic arms a timer that re-arms itself each time it expires.
func (c *CountDown) StartPeriodic(us uint32) {
	c.Start(us)
	c.periodic = true
}

// Armed reports whether the timer is waiting to expire.
func (c *CountDown) Armed() bool {
	return c.armed
}

// Cancel disarms the timer.
func (c *CountDown) Cancel() {
	c.armed = false
}

// Expired reports whether the deadline has passed. A one-shot timer
// reports true once and is then disarmed. A periodic timer advances its
// deadline by whole periods so missed expiries collapse into one.
func (c *CountDown) Expired() bool {
	if !c.armed {
		return false
	}
	now := GetTime()
	if int32(now-c.deadline) < 0 {
		return false
	}
	if !c.periodic {
		c.armed = false
		return true
	}
	c.deadline += c.period
	if int32(now-c.deadline) >= 0 {
		c.deadline = now + c.period
	}
	return true
}
