package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// RenderThemeGradient renders text with the current theme's primary gradient
func RenderThemeGradient(text string, bold bool) string {
	theme := CurrentTheme()
	return ApplyGradient(text, theme.Primary, theme.Secondary, bold)
}

// ApplyGradient renders text with a horizontal gradient, one color per
// grapheme cluster.
func ApplyGradient(text string, color1, color2 color.Color, bold bool) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	var output strings.Builder
	colors := blendColors(len(clusters), color1, color2)
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(colors[i]).Bold(bold)
		output.WriteString(style.Render(cluster))
	}

	return output.String()
}

// blendColors creates a gradient between colors
func blendColors(steps int, color1, color2 color.Color) []color.Color {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []color.Color{color1}
	}

	colors := make([]color.Color, steps)

	c1, _ := colorful.MakeColor(color1)
	c2, _ := colorful.MakeColor(color2)

	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		colors[i] = c1.BlendLab(c2, t).Clamped()
	}

	return colors
}
