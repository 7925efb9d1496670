package animation

import (
	"math"

	"github.com/go-drift/radiobutton/pkg/graphics"
)

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpSize linearly interpolates between two Size values.
func LerpSize(a, b graphics.Size, t float64) graphics.Size {
	return graphics.Size{
		Width:  LerpFloat64(a.Width, b.Width, t),
		Height: LerpFloat64(a.Height, b.Height, t),
	}
}

// LerpColor linearly interpolates between two Color values channel by channel.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	aR, aG, aB, aA := a.RGBA8()
	bR, bG, bB, bA := b.RGBA8()

	lerp8 := func(x, y uint8) uint8 {
		return uint8(math.Round(LerpFloat64(float64(x), float64(y), t)))
	}
	return graphics.RGBA8(lerp8(aR, bR), lerp8(aG, bG), lerp8(aB, bB), lerp8(aA, bA))
}
