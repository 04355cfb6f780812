package core

// RepeatingTimer fires every Duration seconds of accumulated frame time.
type RepeatingTimer struct {
	Duration float64
	Elapsed  float64
}

// NewRepeatingTimer creates a timer with the given period in seconds.
func NewRepeatingTimer(seconds float64) RepeatingTimer {
	return RepeatingTimer{Duration: seconds}
}

// Tick advances the timer by dt and reports whether it fired.
// Overshoot carries into the next period.
func (t *RepeatingTimer) Tick(dt float64) bool {
	if t.Duration <= 0 {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		return false
	}
	for t.Elapsed >= t.Duration {
		t.Elapsed -= t.Duration
	}
	return true
}

// Reset rewinds the timer to zero.
func (t *RepeatingTimer) Reset() {
	t.Elapsed = 0
}
