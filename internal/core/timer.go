package core

import "time"

// FixedStep accumulates elapsed time and reports when a full interval has
// passed. The accumulator restarts from zero after every reported step so a
// long frame never triggers a burst of catch-up steps.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedStep constructs a FixedStep firing every interval. Non-positive
// intervals fall back to 100ms.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the step length. Non-positive values are ignored.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		if f.step > 0 {
			return
		}
		interval = 100 * time.Millisecond
	}
	f.step = interval
}

// Interval returns the configured step length.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Advance adds delta to the accumulator and reports whether the simulation
// should advance by one tick.
func (f *FixedStep) Advance(delta time.Duration) bool {
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator = 0
		return true
	}
	return false
}

// Reset drops any accumulated time.
func (f *FixedStep) Reset() { f.accumulator = 0 }
