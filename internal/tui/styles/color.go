package styles

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex converts a #RRGGBB string to a color. Invalid input yields black,
// which is what theme literals want; use ParseColor for user input.
func ParseHex(hex string) color.Color {
	c, _, err := ParseColor(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// ParseColor parses #RRGGBB or #RRGGBBAA and returns the color together with
// its alpha in [0,1]. Colors without an alpha component are opaque.
func ParseColor(s string) (colorful.Color, float64, error) {
	s = strings.TrimSpace(s)
	switch len(s) {
	case 7:
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return c, 1, nil
	case 9:
		c, err := colorful.Hex(s[:7])
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		return c, float64(a) / 0xFF, nil
	}
	return colorful.Color{}, 0, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
}

// Blend mixes a toward b; t is clamped to [0,1].
func Blend(a, b colorful.Color, t float64) colorful.Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return a.BlendRgb(b, t).Clamped()
}

// Over composites top with the given alpha over an opaque base.
func Over(base, top colorful.Color, alpha float64) colorful.Color {
	return Blend(base, top, alpha)
}

func colorToHex(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}
