// Package testing provides helpers for deterministic radio control tests.
//
// Animations are scheduled against the global media time returned by
// animation.MediaTime. Install a [FakeClock] to freeze and step that time:
//
//	clk := drifttest.NewFakeClock().Install(t)
//
//	c.Select(true)
//	clk.Advance(250 * time.Millisecond)
//	state := c.Presentation(radio.SurfaceWave)
package testing
