package testutil

import (
	"sync"
	"time"
)

// StepClock is a deterministic wall clock for timing tests.
//
// Each call to Now advances the clock by the next step and returns the new
// time. Steps cycle, so a single step gives a constant cadence and several
// steps model jitter. With no steps the clock never moves.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type StepClock struct {
	mu    sync.Mutex
	now   time.Time
	steps []time.Duration
	next  int
	calls int
}

// NewStepClock creates a clock starting at the Unix epoch.
func NewStepClock(steps ...time.Duration) *StepClock {
	return &StepClock{now: time.Unix(0, 0), steps: steps}
}

// Now advances by the next step and returns the current time.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if len(c.steps) > 0 {
		c.now = c.now.Add(c.steps[c.next])
		c.next = (c.next + 1) % len(c.steps)
	}
	return c.now
}

// Calls returns how many times Now has been called.
func (c *StepClock) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Reset rewinds the clock to the epoch and the first step.
func (c *StepClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = time.Unix(0, 0)
	c.next = 0
	c.calls = 0
}
