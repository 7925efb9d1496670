package layer

import (
	"fmt"
	"time"

	"github.com/go-drift/radiobutton/pkg/animation"
	"github.com/go-drift/radiobutton/pkg/graphics"
)

// Property identifies an animatable surface property.
type Property int

const (
	// PropertyBorderWidth animates State.BorderWidth.
	PropertyBorderWidth Property = iota
	// PropertyBorderColor animates State.BorderColor.
	PropertyBorderColor
	// PropertyCornerRadius animates State.CornerRadius.
	PropertyCornerRadius
	// PropertyBounds animates State.Bounds around a fixed center.
	PropertyBounds
	// PropertyOpacity animates State.Opacity.
	PropertyOpacity
)

func (p Property) String() string {
	switch p {
	case PropertyBorderWidth:
		return "borderWidth"
	case PropertyBorderColor:
		return "borderColor"
	case PropertyCornerRadius:
		return "cornerRadius"
	case PropertyBounds:
		return "bounds"
	case PropertyOpacity:
		return "opacity"
	default:
		return fmt.Sprintf("Property(%d)", int(p))
	}
}

// FillMode controls what an animation contributes outside its active interval.
type FillMode int

const (
	// FillNone applies the animation only while it runs.
	FillNone FillMode = iota
	// FillBackwards holds the From value from the moment the animation is
	// added until its begin time.
	FillBackwards
)

func (f FillMode) String() string {
	if f == FillBackwards {
		return "backwards"
	}
	return "none"
}

// Value is an animation endpoint. Only the field matching the animated
// Property is read.
type Value struct {
	Scalar float64
	Size   graphics.Size
	Color  graphics.Color
}

// Scalar returns a Value for width, radius and opacity properties.
func Scalar(v float64) Value { return Value{Scalar: v} }

// SizeValue returns a Value for PropertyBounds.
func SizeValue(s graphics.Size) Value { return Value{Size: s} }

// ColorValue returns a Value for PropertyBorderColor.
func ColorValue(c graphics.Color) Value { return Value{Color: c} }

// Animation interpolates one property of a surface between two values.
//
// BeginTime is in the owning surface's local time. Once BeginTime+Duration has
// passed the animation no longer contributes and the model value shows.
type Animation struct {
	Property  Property
	From      Value
	To        Value
	BeginTime time.Duration
	Duration  time.Duration
	// Curve eases progress. Nil means linear.
	Curve func(float64) float64
	Fill  FillMode
}

// EndTime returns the local time at which the animation stops contributing.
func (a Animation) EndTime() time.Duration {
	return a.BeginTime + a.Duration
}

// Finished reports whether the animation has completed at local time t.
func (a Animation) Finished(t time.Duration) bool {
	return t >= a.EndTime()
}

// apply writes the animation's value at local time t into s. It reports
// whether the animation contributed.
func (a Animation) apply(s *State, t time.Duration) bool {
	if t < a.BeginTime {
		if a.Fill != FillBackwards {
			return false
		}
		a.set(s, 0)
		return true
	}
	if a.Finished(t) {
		return false
	}

	progress := float64(t-a.BeginTime) / float64(a.Duration)
	if a.Curve != nil {
		progress = a.Curve(progress)
	}
	a.set(s, progress)
	return true
}

func (a Animation) set(s *State, progress float64) {
	switch a.Property {
	case PropertyBorderWidth:
		s.BorderWidth = animation.LerpFloat64(a.From.Scalar, a.To.Scalar, progress)
	case PropertyBorderColor:
		s.BorderColor = animation.LerpColor(a.From.Color, a.To.Color, progress)
	case PropertyCornerRadius:
		s.CornerRadius = animation.LerpFloat64(a.From.Scalar, a.To.Scalar, progress)
	case PropertyBounds:
		s.Bounds = animation.LerpSize(a.From.Size, a.To.Size, progress)
	case PropertyOpacity:
		s.Opacity = animation.LerpFloat64(a.From.Scalar, a.To.Scalar, progress)
	}
}
