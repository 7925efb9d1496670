package testing

import (
	"testing"
	"time"

	"github.com/go-drift/radiobutton/pkg/animation"
)

// FakeClock drives animation time in tests. It starts at media time zero
// and moves only through Advance, SetMediaTime or Set.
type FakeClock struct {
	*animation.StepClock
}

// NewFakeClock returns a FakeClock reading media time zero.
func NewFakeClock() *FakeClock {
	return &FakeClock{StepClock: animation.NewStepClock()}
}

// Install makes c the animation clock until tb finishes.
func (c *FakeClock) Install(tb testing.TB) *FakeClock {
	tb.Helper()
	prev := animation.SetClock(c)
	tb.Cleanup(func() { animation.SetClock(prev) })
	return c
}

// Set sets the clock to an exact wall time.
func (c *FakeClock) Set(t time.Time) {
	c.Advance(t.Sub(c.Now()))
}
