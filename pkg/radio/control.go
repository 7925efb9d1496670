package radio

import (
	"fmt"
	"time"

	"github.com/go-drift/radiobutton/pkg/animation"
	"github.com/go-drift/radiobutton/pkg/errors"
	"github.com/go-drift/radiobutton/pkg/gestures"
	"github.com/go-drift/radiobutton/pkg/graphics"
	"github.com/go-drift/radiobutton/pkg/layer"
)

// SurfaceID names one of the three surfaces of a Control.
type SurfaceID int

const (
	// SurfaceOuter is the always-visible ring.
	SurfaceOuter SurfaceID = iota
	// SurfaceInner is the fill that thickens on selection.
	SurfaceInner
	// SurfaceWave is the transient ripple.
	SurfaceWave
)

// Surfaces lists every SurfaceID in paint order.
var Surfaces = []SurfaceID{SurfaceOuter, SurfaceInner, SurfaceWave}

func (id SurfaceID) String() string {
	switch id {
	case SurfaceOuter:
		return "outer"
	case SurfaceInner:
		return "inner"
	case SurfaceWave:
		return "wave"
	default:
		return fmt.Sprintf("SurfaceID(%d)", int(id))
	}
}

// Control is an animated radio button. It is not safe for concurrent use;
// drive it from the UI thread.
type Control struct {
	diameter        float64
	selectedColor   graphics.Color
	deselectedColor graphics.Color

	selected             bool
	useInteractionToggle bool
	onSelect             func()
	onDeselect           func()

	outer *layer.Surface
	inner *layer.Surface
	wave  *layer.Surface

	tap         *gestures.TapGestureRecognizer
	recognizers []gestures.Recognizer
}

// New builds a deselected control from cfg.
func New(cfg Config) (*Control, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.New("radio.New", errors.KindConfig, err)
	}

	c := &Control{
		diameter:             cfg.Diameter,
		selectedColor:        cfg.SelectedColor,
		deselectedColor:      cfg.DeselectedColor,
		useInteractionToggle: true,
		outer:                layer.NewSurface(SurfaceOuter.String()),
		inner:                layer.NewSurface(SurfaceInner.String()),
		wave:                 layer.NewSurface(SurfaceWave.String()),
	}
	c.tap = gestures.NewTapGestureRecognizer()
	c.tap.OnTap = c.Toggle
	c.layoutSurfaces()
	return c, nil
}

// layoutSurfaces sets the resting geometry and colors of all three surfaces.
func (c *Control) layoutSurfaces() {
	d := c.diameter
	inner := c.InnerDiameter()
	center := graphics.Offset{X: d / 2, Y: d / 2}

	c.outer.SetCenter(center)
	c.outer.SetBounds(graphics.Square(d))
	c.outer.SetCornerRadius(d / 2)
	c.outer.SetBorderColor(c.deselectedColor)
	c.outer.SetBorderWidth(d * outerBorderRatio)

	c.inner.SetCenter(center)
	c.inner.SetBounds(graphics.Square(inner))
	c.inner.SetCornerRadius(inner / 2)
	c.inner.SetBorderColor(c.selectedColor)
	c.inner.SetBorderWidth(0)

	c.wave.SetCenter(center)
	c.wave.SetBounds(graphics.Square(inner))
	c.wave.SetCornerRadius(inner / 2)
	c.wave.SetBorderColor(c.selectedColor)
	c.wave.SetBorderWidth(0)
	c.wave.SetOpacity(0)
}

// Diameter returns the outer diameter.
func (c *Control) Diameter() float64 { return c.diameter }

// InnerDiameter returns the diameter shared by the inner and wave surfaces.
func (c *Control) InnerDiameter() float64 { return c.diameter / innerDiameterDivisor }

// Size returns the control's square size.
func (c *Control) Size() graphics.Size { return graphics.Square(c.diameter) }

// Bounds returns the control's rectangle in its own coordinates.
func (c *Control) Bounds() graphics.Rect {
	return graphics.RectFromLTWH(0, 0, c.diameter, c.diameter)
}

// IsSelected reports the current selection state.
func (c *Control) IsSelected() bool { return c.selected }

// SelectedColor returns the color used for the selected state.
func (c *Control) SelectedColor() graphics.Color { return c.selectedColor }

// SetSelectedColor recolors the inner and wave surfaces, and the outer ring
// when selected, using the incoming color, then stores it.
func (c *Control) SetSelectedColor(color graphics.Color) {
	c.inner.SetBorderColor(color)
	c.wave.SetBorderColor(color)
	if c.selected {
		c.outer.SetBorderColor(color)
	}
	c.selectedColor = color
}

// DeselectedColor returns the color used for the deselected state.
func (c *Control) DeselectedColor() graphics.Color { return c.deselectedColor }

// SetDeselectedColor recolors the outer ring when deselected using the
// incoming color, then stores it.
func (c *Control) SetDeselectedColor(color graphics.Color) {
	if !c.selected {
		c.outer.SetBorderColor(color)
	}
	c.deselectedColor = color
}

// Select moves the control to the selected state. It does nothing when the
// control is already selected. Otherwise it removes every in-flight
// animation first, so a running deselect is cut off and the selection starts
// from the resting deselected look.
//
// The resting values are applied and OnSelect fires before Select schedules
// the animation, so callers never observe intermediate values.
func (c *Control) Select(animated bool) {
	if c.selected {
		return
	}
	c.selected = true

	c.removeAnimations()
	c.setSelectedEndValues()

	if c.onSelect != nil {
		c.onSelect()
	}
	if !animated || !c.selected {
		return
	}
	c.schedule(c.SelectChoreography())
}

// Deselect moves the control to the deselected state, interrupting any
// running selection animation. It does nothing when the control is already
// deselected.
func (c *Control) Deselect(animated bool) {
	if !c.selected {
		return
	}
	c.selected = false

	c.removeAnimations()
	c.setDeselectedEndValues()

	if c.onDeselect != nil {
		c.onDeselect()
	}
	if !animated || c.selected {
		return
	}
	c.schedule(c.DeselectChoreography())
}

// Toggle deselects a selected control and selects a deselected one, animated.
func (c *Control) Toggle() {
	if c.selected {
		c.Deselect(true)
		return
	}
	c.Select(true)
}

func (c *Control) setSelectedEndValues() {
	c.inner.SetBorderWidth(c.innerFillWidth())
	c.outer.SetBorderColor(c.selectedColor)
}

func (c *Control) setDeselectedEndValues() {
	c.inner.SetBorderWidth(0)
	c.outer.SetBorderColor(c.deselectedColor)
}

func (c *Control) removeAnimations() {
	c.wave.RemoveAllAnimations()
	c.outer.RemoveAllAnimations()
	c.inner.RemoveAllAnimations()
}

// innerFillWidth is the inner border width that fills the ring.
func (c *Control) innerFillWidth() float64 {
	return c.InnerDiameter() * innerFillRatio
}

func (c *Control) surface(id SurfaceID) *layer.Surface {
	switch id {
	case SurfaceOuter:
		return c.outer
	case SurfaceInner:
		return c.inner
	case SurfaceWave:
		return c.wave
	default:
		panic(fmt.Sprintf("radio: unknown surface %d", int(id)))
	}
}

// Attach records the global media time at which the control joined a host
// hierarchy. Each surface's local clock starts there.
func (c *Control) Attach(at time.Duration) {
	for _, id := range Surfaces {
		c.surface(id).SetTiming(layer.Timing{BeginTime: at, Speed: 1})
	}
}

// Surface returns the resting state of a surface.
func (c *Control) Surface(id SurfaceID) layer.State {
	return c.surface(id).Model()
}

// Presentation returns how a surface appears now, animations included.
func (c *Control) Presentation(id SurfaceID) layer.State {
	return c.PresentationAt(id, animation.MediaTime())
}

// PresentationAt returns how a surface appears at the given global media time.
func (c *Control) PresentationAt(id SurfaceID, global time.Duration) layer.State {
	return c.surface(id).Presentation(global)
}

// Animations returns the animations attached to a surface in insertion order.
func (c *Control) Animations(id SurfaceID) []layer.Animation {
	return c.surface(id).Animations()
}

// AnimationKeys returns the keys of the animations attached to a surface.
func (c *Control) AnimationKeys(id SurfaceID) []string {
	return c.surface(id).AnimationKeys()
}

// IsAnimating reports whether any surface still has an animation to play.
func (c *Control) IsAnimating() bool {
	now := animation.MediaTime()
	for _, id := range Surfaces {
		if c.surface(id).IsAnimating(now) {
			return true
		}
	}
	return false
}

// Prune detaches finished animations from every surface.
func (c *Control) Prune() {
	now := animation.MediaTime()
	for _, id := range Surfaces {
		c.surface(id).Prune(now)
	}
}
