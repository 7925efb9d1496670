// Package raster paints radio controls into RGBA images.
//
// Each surface is drawn the way a compositor would draw a rounded layer:
// background fill first, then the border as a ring inside the bounds, all
// multiplied by the surface opacity. Surfaces paint back to front in
// radio.Surfaces order.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"time"

	"golang.org/x/image/vector"

	"github.com/go-drift/radiobutton/pkg/errors"
	"github.com/go-drift/radiobutton/pkg/graphics"
	"github.com/go-drift/radiobutton/pkg/layer"
	"github.com/go-drift/radiobutton/pkg/radio"
)

// MaxDimension bounds the width and height of a rendered image in pixels.
const MaxDimension = 4096

// Options controls rasterization.
type Options struct {
	// Scale is the number of pixels per point. Zero means 1.
	Scale float64
	// Padding is extra space around the control in points, so that the
	// expanding wave is not clipped.
	Padding float64
	// Background fills the image before painting. Zero leaves it transparent.
	Background graphics.Color
}

// DefaultOptions renders at 4x with room for the full wave.
func DefaultOptions() Options {
	return Options{Scale: 4, Padding: 12}
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

// Render paints the control's current presentation.
func Render(c *radio.Control, opts Options) (*image.RGBA, error) {
	states := make([]layer.State, 0, len(radio.Surfaces))
	for _, id := range radio.Surfaces {
		states = append(states, c.Presentation(id))
	}
	return paint(c.Bounds(), states, opts)
}

// RenderAt paints the control's presentation at a global media time.
func RenderAt(c *radio.Control, global time.Duration, opts Options) (*image.RGBA, error) {
	states := make([]layer.State, 0, len(radio.Surfaces))
	for _, id := range radio.Surfaces {
		states = append(states, c.PresentationAt(id, global))
	}
	return paint(c.Bounds(), states, opts)
}

// Canvas accumulates surfaces into a single image.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
	tr  transform
}

// NewCanvas returns a canvas covering area, padded on every side.
func NewCanvas(area graphics.Rect, opts Options) (*Canvas, error) {
	s := opts.scale()
	w := int(math.Ceil((area.Width() + 2*opts.Padding) * s))
	h := int(math.Ceil((area.Height() + 2*opts.Padding) * s))
	if w <= 0 || h <= 0 || w > MaxDimension || h > MaxDimension {
		return nil, errors.New("raster.NewCanvas", errors.KindRender,
			&errors.ConfigError{Field: "image size", Value: image.Pt(w, h), Reason: "out of range"})
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background != 0 {
		draw.Draw(img, img.Bounds(), image.NewUniform(toNRGBA(opts.Background)), image.Point{}, draw.Src)
	}
	return &Canvas{
		img: img,
		z:   vector.NewRasterizer(w, h),
		tr: transform{
			origin: graphics.Offset{X: area.Left - opts.Padding, Y: area.Top - opts.Padding},
			scale:  s,
		},
	}, nil
}

// Image returns the painted image.
func (cv *Canvas) Image() *image.RGBA { return cv.img }

// DrawSurface paints one surface state.
func (cv *Canvas) DrawSurface(s layer.State) {
	if s.Opacity <= 0 {
		return
	}
	frame := s.Frame()

	if s.BackgroundColor.Alpha() > 0 {
		var p Path
		p.AddRRect(frame, s.CornerRadius, false)
		cv.fill(&p, s.BackgroundColor.MultiplyAlpha(s.Opacity))
	}

	bw := min(s.BorderWidth, frame.Width()/2, frame.Height()/2)
	if bw > 0 && s.BorderColor.Alpha() > 0 {
		var p Path
		p.AddRRect(frame, s.CornerRadius, false)
		inset := graphics.Rect{
			Left:   frame.Left + bw,
			Top:    frame.Top + bw,
			Right:  frame.Right - bw,
			Bottom: frame.Bottom - bw,
		}
		p.AddRRect(inset, s.CornerRadius-bw, true)
		cv.fill(&p, s.BorderColor.MultiplyAlpha(s.Opacity))
	}
}

// fill composites a path in color over the image.
func (cv *Canvas) fill(p *Path, c graphics.Color) {
	if p.IsEmpty() {
		return
	}
	b := cv.img.Bounds()
	cv.z.Reset(b.Dx(), b.Dy())
	cv.z.DrawOp = draw.Over
	p.rasterize(cv.z, cv.tr)
	cv.z.Draw(cv.img, b, image.NewUniform(toNRGBA(c)), image.Point{})
}

func paint(area graphics.Rect, states []layer.State, opts Options) (*image.RGBA, error) {
	cv, err := NewCanvas(area, opts)
	if err != nil {
		return nil, err
	}
	for _, s := range states {
		cv.DrawSurface(s)
	}
	return cv.Image(), nil
}

func toNRGBA(c graphics.Color) color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
