package radio

import (
	"time"

	"github.com/go-drift/radiobutton/pkg/animation"
	"github.com/go-drift/radiobutton/pkg/graphics"
	"github.com/go-drift/radiobutton/pkg/layer"
)

const ms = time.Millisecond

// Descriptor is one row of an animation table. Offset is relative to the
// shared start timestamp of the choreography it belongs to.
type Descriptor struct {
	Key      string
	Surface  SurfaceID
	Property layer.Property
	From     layer.Value
	To       layer.Value
	Duration time.Duration
	Offset   time.Duration
	Curve    func(float64) float64
	Fill     layer.FillMode
}

// deselectDuration is the length of both parts of the deselect animation.
const deselectDuration = 200 * ms

// SelectChoreography returns the selection animation table for the control's
// current geometry and colors.
func (c *Control) SelectChoreography() []Descriptor {
	innerSize := graphics.Square(c.InnerDiameter())
	innerRadius := c.inner.Model().CornerRadius
	grownSize := innerSize.Scale(innerIncreaseDelta)
	grownRadius := innerRadius * innerIncreaseDelta

	waveSize := c.wave.Model().Bounds
	waveRadius := c.wave.Model().CornerRadius

	return []Descriptor{
		{
			Key: "innerBorderWidth", Surface: SurfaceInner, Property: layer.PropertyBorderWidth,
			From: layer.Scalar(0), To: layer.Scalar(c.innerFillWidth()),
			Duration: 200 * ms, Offset: 0, Curve: animation.EaseIn, Fill: layer.FillBackwards,
		},
		{
			Key: "innerIncrease.bounds", Surface: SurfaceInner, Property: layer.PropertyBounds,
			From: layer.SizeValue(innerSize), To: layer.SizeValue(grownSize),
			Duration: 100 * ms, Offset: 230 * ms, Curve: animation.EaseOut,
		},
		{
			Key: "innerIncrease.cornerRadius", Surface: SurfaceInner, Property: layer.PropertyCornerRadius,
			From: layer.Scalar(innerRadius), To: layer.Scalar(grownRadius),
			Duration: 100 * ms, Offset: 230 * ms, Curve: animation.EaseOut,
		},
		{
			Key: "innerDecrease.bounds", Surface: SurfaceInner, Property: layer.PropertyBounds,
			From: layer.SizeValue(grownSize), To: layer.SizeValue(innerSize),
			Duration: 150 * ms, Offset: 310 * ms, Curve: animation.EaseOut,
		},
		{
			Key: "innerDecrease.cornerRadius", Surface: SurfaceInner, Property: layer.PropertyCornerRadius,
			From: layer.Scalar(grownRadius), To: layer.Scalar(innerRadius),
			Duration: 150 * ms, Offset: 310 * ms, Curve: animation.EaseOut,
		},
		{
			Key: "circleBorderColor", Surface: SurfaceOuter, Property: layer.PropertyBorderColor,
			From: layer.ColorValue(c.deselectedColor), To: layer.ColorValue(c.selectedColor),
			Duration: 150 * ms, Offset: 280 * ms, Curve: animation.Linear, Fill: layer.FillBackwards,
		},
		{
			Key: "waveIncrease.bounds", Surface: SurfaceWave, Property: layer.PropertyBounds,
			From: layer.SizeValue(waveSize), To: layer.SizeValue(waveSize.Scale(waveIncreaseDelta)),
			Duration: 250 * ms, Offset: 210 * ms, Curve: animation.EaseOut,
		},
		{
			Key: "waveIncrease.cornerRadius", Surface: SurfaceWave, Property: layer.PropertyCornerRadius,
			From: layer.Scalar(waveRadius), To: layer.Scalar(waveRadius * waveIncreaseDelta),
			Duration: 250 * ms, Offset: 210 * ms, Curve: animation.EaseOut,
		},
		{
			Key: "waveAlphaDecrease", Surface: SurfaceWave, Property: layer.PropertyOpacity,
			From: layer.Scalar(waveStartOpacity), To: layer.Scalar(0),
			Duration: 310 * ms, Offset: 260 * ms, Curve: animation.EaseOut,
		},
		{
			Key: "waveBorderDecrease", Surface: SurfaceWave, Property: layer.PropertyBorderWidth,
			From: layer.Scalar(c.diameter * waveBorderRatio), To: layer.Scalar(0),
			Duration: 260 * ms, Offset: 290 * ms, Curve: animation.EaseOut,
		},
	}
}

// DeselectChoreography returns the deselection animation table for the
// control's current geometry and colors.
func (c *Control) DeselectChoreography() []Descriptor {
	return []Descriptor{
		{
			Key: "innerDecreaseReverse.borderWidth", Surface: SurfaceInner, Property: layer.PropertyBorderWidth,
			From: layer.Scalar(c.innerFillWidth()), To: layer.Scalar(0),
			Duration: deselectDuration, Curve: animation.EaseIn,
		},
		{
			Key: "innerDecreaseReverse.opacity", Surface: SurfaceInner, Property: layer.PropertyOpacity,
			From: layer.Scalar(1), To: layer.Scalar(0),
			Duration: deselectDuration, Curve: animation.EaseIn,
		},
		{
			Key: "circleBorderColorReverse", Surface: SurfaceOuter, Property: layer.PropertyBorderColor,
			From: layer.ColorValue(c.selectedColor), To: layer.ColorValue(c.deselectedColor),
			Duration: deselectDuration, Curve: animation.EaseInOut,
		},
	}
}

// schedule samples the media time once and attaches every descriptor to its
// surface, converting the shared start into that surface's local time.
func (c *Control) schedule(table []Descriptor) {
	start := animation.MediaTime()
	for _, d := range table {
		s := c.surface(d.Surface)
		s.AddAnimation(d.Key, layer.Animation{
			Property:  d.Property,
			From:      d.From,
			To:        d.To,
			BeginTime: s.ConvertTime(start) + d.Offset,
			Duration:  d.Duration,
			Curve:     d.Curve,
			Fill:      d.Fill,
		})
	}
}
