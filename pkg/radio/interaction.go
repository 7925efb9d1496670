package radio

import (
	"slices"

	"github.com/go-drift/radiobutton/pkg/gestures"
	"github.com/go-drift/radiobutton/pkg/graphics"
)

// OnSelect sets the callback fired when the control becomes selected.
// Unless UseInteractionToggle is off, this also attaches the tap handler.
func (c *Control) OnSelect(fn func()) {
	c.onSelect = fn
	c.attachTap()
}

// OnDeselect sets the callback fired when the control becomes deselected.
// Unless UseInteractionToggle is off, this also attaches the tap handler.
func (c *Control) OnDeselect(fn func()) {
	c.onDeselect = fn
	c.attachTap()
}

// UseInteractionToggle reports whether taps are allowed to toggle the control.
func (c *Control) UseInteractionToggle() bool { return c.useInteractionToggle }

// SetUseInteractionToggle enables or disables tap-to-toggle. Enabling attaches
// the tap handler; disabling detaches it.
//
// The flag defaults to true, but the handler is only attached once this is
// set or a callback is registered.
func (c *Control) SetUseInteractionToggle(on bool) {
	c.useInteractionToggle = on
	if on {
		c.attachTap()
		return
	}
	c.detachTap()
}

func (c *Control) attachTap() {
	if !c.useInteractionToggle || c.tapAttached() {
		return
	}
	c.recognizers = append(c.recognizers, c.tap)
}

func (c *Control) detachTap() {
	c.recognizers = slices.DeleteFunc(c.recognizers, func(r gestures.Recognizer) bool {
		return r == gestures.Recognizer(c.tap)
	})
}

func (c *Control) tapAttached() bool {
	return slices.Contains(c.recognizers, gestures.Recognizer(c.tap))
}

// GestureRecognizers returns the attached recognizers.
func (c *Control) GestureRecognizers() []gestures.Recognizer {
	return slices.Clone(c.recognizers)
}

// HitTest reports whether position, in the control's coordinates, falls
// inside its bounds.
func (c *Control) HitTest(position graphics.Offset) bool {
	return c.Bounds().Contains(position)
}

// HandlePointer routes a pointer event to the attached recognizers. Down
// events outside the control are ignored.
func (c *Control) HandlePointer(event gestures.PointerEvent) {
	recognizers := slices.Clone(c.recognizers)
	if event.Phase == gestures.PointerPhaseDown {
		if !c.HitTest(event.Position) {
			return
		}
		for _, r := range recognizers {
			r.AddPointer(event)
		}
		return
	}
	for _, r := range recognizers {
		r.HandleEvent(event)
	}
}
