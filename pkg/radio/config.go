package radio

import (
	"math"

	"github.com/go-drift/radiobutton/pkg/errors"
	"github.com/go-drift/radiobutton/pkg/graphics"
)

// DefaultDiameter is the outer diameter used by DefaultConfig.
const DefaultDiameter = 18.0

// DefaultDeselectedColor is the outer ring color while deselected.
const DefaultDeselectedColor = graphics.ColorLightGray

// DefaultSelectedColor is the fill and ring color while selected.
var DefaultSelectedColor = graphics.RGBF(0.29, 0.56, 0.88)

// Geometry ratios, all relative to the outer diameter unless noted.
const (
	innerDiameterDivisor = 1.6
	outerBorderRatio     = 0.1
	// innerFillRatio is relative to the inner diameter.
	innerFillRatio     = 0.6
	innerIncreaseDelta = 1.1
	waveIncreaseDelta  = 2.15
	waveBorderRatio    = 0.3
	waveStartOpacity   = 0.3
)

// Config holds construction parameters for a Control.
//
// Config is explicit: every field is used as given. Start from DefaultConfig
// and override only what differs:
//
//	radio.DefaultConfig().WithDiameter(24).WithSelectedColor(graphics.ColorWhite)
type Config struct {
	// Diameter is the outer diameter. Must be positive and finite.
	Diameter float64
	// SelectedColor colors the inner fill, the wave and, while selected, the
	// outer ring.
	SelectedColor graphics.Color
	// DeselectedColor colors the outer ring while deselected.
	DeselectedColor graphics.Color
}

// DefaultConfig returns a diameter of 18 with the default blue and light gray.
func DefaultConfig() Config {
	return Config{
		Diameter:        DefaultDiameter,
		SelectedColor:   DefaultSelectedColor,
		DeselectedColor: DefaultDeselectedColor,
	}
}

// WithDiameter returns a copy of the config with the given outer diameter.
func (c Config) WithDiameter(d float64) Config {
	c.Diameter = d
	return c
}

// WithSelectedColor returns a copy of the config with the given selected color.
func (c Config) WithSelectedColor(color graphics.Color) Config {
	c.SelectedColor = color
	return c
}

// WithDeselectedColor returns a copy of the config with the given deselected color.
func (c Config) WithDeselectedColor(color graphics.Color) Config {
	c.DeselectedColor = color
	return c
}

// WithColors returns a copy of the config with both state colors replaced.
func (c Config) WithColors(selected, deselected graphics.Color) Config {
	c.SelectedColor = selected
	c.DeselectedColor = deselected
	return c
}

// Validate reports whether the config can produce a well-formed control.
func (c Config) Validate() error {
	if math.IsNaN(c.Diameter) || math.IsInf(c.Diameter, 0) {
		return &errors.ConfigError{Field: "diameter", Value: c.Diameter, Reason: "must be finite"}
	}
	if c.Diameter <= 0 {
		return &errors.ConfigError{Field: "diameter", Value: c.Diameter, Reason: "must be positive"}
	}
	return nil
}
