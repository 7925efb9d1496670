package animation

import (
	"sync"
	"time"
)

// Clock provides time for animations. The default implementation uses
// system time. Tests can inject a fake clock via SetClock to control
// animation timing deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// mediaEpoch is the reference instant for media time.
var mediaEpoch = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }

// MediaTime returns the global animation time: the active clock's reading
// expressed as a duration since a fixed epoch. Surfaces convert this value
// into their own local time before scheduling animations against it.
func MediaTime() time.Duration { return clock.Now().Sub(mediaEpoch) }

// StepClock is a Clock that only moves when told to. It starts at the media
// epoch, so MediaTime reads zero until the clock is advanced. Offline
// renderers use it to sample animations at exact frame times.
// All methods are safe for concurrent use.
type StepClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewStepClock returns a StepClock reading MediaTime zero.
func NewStepClock() *StepClock {
	return &StepClock{now: mediaEpoch}
}

// Now returns the current step time.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *StepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// SetMediaTime moves the clock so that MediaTime returns d.
func (c *StepClock) SetMediaTime(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = mediaEpoch.Add(d)
}
