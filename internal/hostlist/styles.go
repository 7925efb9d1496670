package hostlist

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/radiobutton/pkg/graphics"
	"github.com/go-drift/radiobutton/pkg/layer"
	"github.com/go-drift/radiobutton/pkg/radio"
)

// Palette colors.
const (
	colorTitle   lipgloss.Color = "7"
	colorMuted   lipgloss.Color = "8"
	colorCursor  lipgloss.Color = "4"
	colorDarkRow lipgloss.Color = "#2B2B2B"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(colorTitle).Bold(true).Padding(0, 0, 1, 0)
	cursorStyle  = lipgloss.NewStyle().Foreground(colorCursor).Bold(true)
	labelStyle   = lipgloss.NewStyle()
	darkRowStyle = lipgloss.NewStyle().Background(colorDarkRow).Foreground(lipgloss.Color("15"))
	helpStyle    = lipgloss.NewStyle().Foreground(colorMuted).Padding(1, 0, 0, 0)
)

// termColor converts c to a lipgloss color, dropping alpha.
func termColor(c graphics.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA8()
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r, g, b))
}

// innerGlyphs step from empty to fully filled.
var innerGlyphs = []string{" ", "·", "•", "●"}

// innerFill returns how much of the inner disc is painted, from 0 to 1.
func innerFill(s layer.State) float64 {
	radius := min(s.Bounds.Width, s.Bounds.Height) / 2
	if radius <= 0 {
		return 0
	}
	return min(s.BorderWidth/radius, 1) * s.Opacity
}

// glyph draws a control's presentation as a short colored string: the outer
// ring as parentheses, the inner disc as a dot and a visible wave as a
// trailing ring mark.
func glyph(outer, inner, wave layer.State) string {
	ring := lipgloss.NewStyle().Foreground(termColor(outer.BorderColor))

	fill := innerFill(inner)
	idx := int(fill*float64(len(innerGlyphs)-1) + 0.5)
	dot := lipgloss.NewStyle().Foreground(termColor(inner.BorderColor)).Render(innerGlyphs[idx])

	tail := " "
	if wave.Opacity > 0.02 && wave.BorderWidth > 0 {
		tail = lipgloss.NewStyle().Foreground(termColor(wave.BorderColor)).Render("◌")
	}
	return ring.Render("(") + dot + ring.Render(")") + tail
}

// controlGlyph samples a control's presentation and draws it.
func controlGlyph(c *radio.Control) string {
	return glyph(
		c.Presentation(radio.SurfaceOuter),
		c.Presentation(radio.SurfaceInner),
		c.Presentation(radio.SurfaceWave),
	)
}
