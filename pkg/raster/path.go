package raster

import (
	"fmt"

	"golang.org/x/image/vector"

	"github.com/go-drift/radiobutton/pkg/graphics"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path is a vector outline in control coordinates.
//
// Paths fill with the nonzero rule, so a subpath wound in the opposite
// direction cuts a hole. Rings are built that way.
type Path struct {
	Commands []PathCommand
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{x, y}})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Args: []float64{x, y}})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpCubicTo, Args: []float64{x1, y1, x2, y2, x3, y3}})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// AddRRect appends a rounded rectangle as a closed subpath. The radius is
// clamped to half the shorter side. Reversed subpaths wind counter-clockwise.
func (p *Path) AddRRect(rect graphics.Rect, radius float64, reversed bool) {
	w, h := rect.Width(), rect.Height()
	if w <= 0 || h <= 0 {
		return
	}
	r := max(0, min(radius, w/2, h/2))
	c := r * kappa
	l, t, rt, b := rect.Left, rect.Top, rect.Right, rect.Bottom

	if !reversed {
		p.MoveTo(l+r, t)
		p.LineTo(rt-r, t)
		p.CubicTo(rt-r+c, t, rt, t+r-c, rt, t+r)
		p.LineTo(rt, b-r)
		p.CubicTo(rt, b-r+c, rt-r+c, b, rt-r, b)
		p.LineTo(l+r, b)
		p.CubicTo(l+r-c, b, l, b-r+c, l, b-r)
		p.LineTo(l, t+r)
		p.CubicTo(l, t+r-c, l+r-c, t, l+r, t)
	} else {
		p.MoveTo(l+r, t)
		p.CubicTo(l+r-c, t, l, t+r-c, l, t+r)
		p.LineTo(l, b-r)
		p.CubicTo(l, b-r+c, l+r-c, b, l+r, b)
		p.LineTo(rt-r, b)
		p.CubicTo(rt-r+c, b, rt, b-r+c, rt, b-r)
		p.LineTo(rt, t+r)
		p.CubicTo(rt, t+r-c, rt-r+c, t, rt-r, t)
	}
	p.Close()
}

// transform maps control coordinates to device pixels.
type transform struct {
	origin graphics.Offset
	scale  float64
}

func (tr transform) point(x, y float64) (float32, float32) {
	return float32((x - tr.origin.X) * tr.scale), float32((y - tr.origin.Y) * tr.scale)
}

// rasterize feeds the path to z in device space.
func (p *Path) rasterize(z *vector.Rasterizer, tr transform) {
	for _, cmd := range p.Commands {
		a := cmd.Args
		switch cmd.Op {
		case PathOpMoveTo:
			z.MoveTo(tr.point(a[0], a[1]))
		case PathOpLineTo:
			z.LineTo(tr.point(a[0], a[1]))
		case PathOpCubicTo:
			x1, y1 := tr.point(a[0], a[1])
			x2, y2 := tr.point(a[2], a[3])
			x3, y3 := tr.point(a[4], a[5])
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		case PathOpClose:
			z.ClosePath()
		}
	}
}
