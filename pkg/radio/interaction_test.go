package radio

import (
	"testing"

	"github.com/go-drift/radiobutton/pkg/graphics"
	drifttest "github.com/go-drift/radiobutton/pkg/testing"
	"github.com/stretchr/testify/assert"
)

func tap(c *Control, x, y float64) {
	drifttest.TapAt(c, graphics.Offset{X: x, Y: y})
}

func TestInteraction_NotAttachedByDefault(t *testing.T) {
	c := newDefault(t)

	assert.True(t, c.UseInteractionToggle())
	assert.Empty(t, c.GestureRecognizers())

	tap(c, 9, 9)
	assert.False(t, c.IsSelected())
}

func TestInteraction_ToggleFlagAttachesOnce(t *testing.T) {
	c := newDefault(t)

	c.SetUseInteractionToggle(true)
	assert.Len(t, c.GestureRecognizers(), 1)

	c.SetUseInteractionToggle(true)
	c.OnSelect(func() {})
	c.OnDeselect(func() {})
	assert.Len(t, c.GestureRecognizers(), 1)

	c.SetUseInteractionToggle(false)
	assert.Empty(t, c.GestureRecognizers())
	assert.False(t, c.UseInteractionToggle())

	c.SetUseInteractionToggle(false)
	assert.Empty(t, c.GestureRecognizers())
}

func TestInteraction_CallbackAttachesLazily(t *testing.T) {
	c := newDefault(t)

	c.OnSelect(func() {})

	assert.Len(t, c.GestureRecognizers(), 1)
}

func TestInteraction_CallbackRespectsDisabledFlag(t *testing.T) {
	c := newDefault(t)
	c.SetUseInteractionToggle(false)

	c.OnSelect(func() {})
	c.OnDeselect(func() {})

	assert.Empty(t, c.GestureRecognizers())
}

func TestInteraction_TapToggles(t *testing.T) {
	useFakeClock(t)
	c := newDefault(t)
	selects, deselects := 0, 0
	c.OnSelect(func() { selects++ })
	c.OnDeselect(func() { deselects++ })

	tap(c, 9, 9)
	assert.True(t, c.IsSelected())
	assert.True(t, c.IsAnimating())

	tap(c, 2, 16)
	assert.False(t, c.IsSelected())

	assert.Equal(t, 1, selects)
	assert.Equal(t, 1, deselects)
}

func TestInteraction_TapOutsideIgnored(t *testing.T) {
	c := newDefault(t)
	c.SetUseInteractionToggle(true)

	tap(c, 30, 9)

	assert.False(t, c.IsSelected())
}

func TestInteraction_DetachedStopsToggling(t *testing.T) {
	useFakeClock(t)
	c := newDefault(t)
	c.SetUseInteractionToggle(true)
	tap(c, 9, 9)
	assert.True(t, c.IsSelected())

	c.SetUseInteractionToggle(false)
	tap(c, 9, 9)

	assert.True(t, c.IsSelected())
}

func TestInteraction_DragAndCancelDoNotToggle(t *testing.T) {
	c := newDefault(t)
	c.SetUseInteractionToggle(true)

	drifttest.DragFrom(c, graphics.Offset{X: 9, Y: 9}, graphics.Offset{X: 40})
	assert.False(t, c.IsSelected())

	drifttest.CancelAt(c, graphics.Offset{X: 9, Y: 9})
	assert.False(t, c.IsSelected())
}

func TestHitTest(t *testing.T) {
	c := newDefault(t)

	assert.True(t, c.HitTest(graphics.Offset{X: 0, Y: 0}))
	assert.True(t, c.HitTest(graphics.Offset{X: 17, Y: 17}))
	assert.False(t, c.HitTest(graphics.Offset{X: 18, Y: 5}))
	assert.False(t, c.HitTest(graphics.Offset{X: -1, Y: 5}))
}
