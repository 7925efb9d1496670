package layer

import (
	"slices"
	"time"

	"github.com/go-drift/radiobutton/pkg/graphics"
)

// State is the set of visual properties of a surface.
// Borders are drawn inside Bounds.
type State struct {
	Center          graphics.Offset
	Bounds          graphics.Size
	CornerRadius    float64
	BorderWidth     float64
	BorderColor     graphics.Color
	BackgroundColor graphics.Color
	Opacity         float64
}

// Frame returns the surface rectangle in its parent's coordinates.
func (s State) Frame() graphics.Rect {
	return graphics.RectFromCenter(s.Center, s.Bounds)
}

// Timing maps global media time into a surface's local time:
//
//	local = (global - BeginTime) * Speed + TimeOffset
type Timing struct {
	BeginTime  time.Duration
	Speed      float64
	TimeOffset time.Duration
}

type keyedAnimation struct {
	key  string
	anim Animation
}

// Surface is a circular visual layer with animatable properties.
type Surface struct {
	name       string
	model      State
	timing     Timing
	animations []keyedAnimation
}

// NewSurface returns an empty, fully opaque surface with a transparent
// background and an identity clock.
func NewSurface(name string) *Surface {
	return &Surface{
		name: name,
		model: State{
			BackgroundColor: graphics.ColorTransparent,
			Opacity:         1,
		},
		timing: Timing{Speed: 1},
	}
}

// Name returns the surface's debug name.
func (s *Surface) Name() string { return s.name }

// Model returns the values at rest.
func (s *Surface) Model() State { return s.model }

// SetCenter sets the surface center in its parent's coordinates.
func (s *Surface) SetCenter(c graphics.Offset) { s.model.Center = c }

// SetBounds sets the surface size; the center stays put.
func (s *Surface) SetBounds(size graphics.Size) { s.model.Bounds = size }

// SetCornerRadius sets the corner radius.
func (s *Surface) SetCornerRadius(r float64) { s.model.CornerRadius = r }

// SetBorderWidth sets the border width.
func (s *Surface) SetBorderWidth(w float64) { s.model.BorderWidth = w }

// SetBorderColor sets the border color.
func (s *Surface) SetBorderColor(c graphics.Color) { s.model.BorderColor = c }

// SetBackgroundColor sets the fill color.
func (s *Surface) SetBackgroundColor(c graphics.Color) { s.model.BackgroundColor = c }

// SetOpacity sets the opacity (0-1).
func (s *Surface) SetOpacity(o float64) { s.model.Opacity = o }

// Timing returns the surface's local clock parameters.
func (s *Surface) Timing() Timing { return s.timing }

// SetTiming replaces the surface's local clock parameters. A non-positive
// Speed is treated as 1.
func (s *Surface) SetTiming(t Timing) {
	if t.Speed <= 0 {
		t.Speed = 1
	}
	s.timing = t
}

// ConvertTime converts a global media time into this surface's local time.
func (s *Surface) ConvertTime(global time.Duration) time.Duration {
	elapsed := float64(global-s.timing.BeginTime) * s.timing.Speed
	return time.Duration(elapsed) + s.timing.TimeOffset
}

// AddAnimation attaches a under key. An animation already stored under the
// same key is replaced in place; otherwise a is appended and takes precedence
// over earlier animations of the same property.
func (s *Surface) AddAnimation(key string, a Animation) {
	for i := range s.animations {
		if s.animations[i].key == key {
			s.animations[i].anim = a
			return
		}
	}
	s.animations = append(s.animations, keyedAnimation{key: key, anim: a})
}

// Animation returns the animation stored under key.
func (s *Surface) Animation(key string) (Animation, bool) {
	for _, ka := range s.animations {
		if ka.key == key {
			return ka.anim, true
		}
	}
	return Animation{}, false
}

// RemoveAnimation detaches the animation stored under key, if any.
func (s *Surface) RemoveAnimation(key string) {
	s.animations = slices.DeleteFunc(s.animations, func(ka keyedAnimation) bool {
		return ka.key == key
	})
}

// RemoveAllAnimations detaches every animation.
func (s *Surface) RemoveAllAnimations() {
	s.animations = nil
}

// Animations returns the attached animations in insertion order.
func (s *Surface) Animations() []Animation {
	out := make([]Animation, len(s.animations))
	for i, ka := range s.animations {
		out[i] = ka.anim
	}
	return out
}

// AnimationKeys returns the keys of the attached animations in insertion order.
func (s *Surface) AnimationKeys() []string {
	out := make([]string, len(s.animations))
	for i, ka := range s.animations {
		out[i] = ka.key
	}
	return out
}

// Presentation returns the state as it appears at the given global media time.
func (s *Surface) Presentation(global time.Duration) State {
	local := s.ConvertTime(global)
	st := s.model
	for _, ka := range s.animations {
		ka.anim.apply(&st, local)
	}
	return st
}

// IsAnimating reports whether any attached animation has yet to finish at the
// given global media time.
func (s *Surface) IsAnimating(global time.Duration) bool {
	local := s.ConvertTime(global)
	for _, ka := range s.animations {
		if !ka.anim.Finished(local) {
			return true
		}
	}
	return false
}

// Prune detaches animations that have finished at the given global media
// time and returns how many were removed.
func (s *Surface) Prune(global time.Duration) int {
	local := s.ConvertTime(global)
	before := len(s.animations)
	s.animations = slices.DeleteFunc(s.animations, func(ka keyedAnimation) bool {
		return ka.anim.Finished(local)
	})
	return before - len(s.animations)
}
