package graphics

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a color written as #RGB, #RRGGBB, #AARRGGBB or an SVG
// color keyword ("lightgray", "cornflowerblue", ...). Keywords are matched
// case-insensitively and may contain spaces, dashes or underscores.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty color")
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}

	name := strings.ToLower(s)
	name = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name)
	if name == "clear" {
		return ColorTransparent, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return RGBA8(c.R, c.G, c.B, c.A), nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

func parseHex(h string) (Color, error) {
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
		fallthrough
	case 6:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q: %w", h, err)
		}
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q: %w", h, err)
		}
		return Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("invalid hex color %q: want 3, 6 or 8 digits", h)
	}
}
