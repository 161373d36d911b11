package styles

import (
	"strings"

	"github.com/charmbracelet/glamour/v2"
)

// GetMarkdownRenderer returns a glamour TermRenderer configured with the current theme
func GetMarkdownRenderer(width int) *glamour.TermRenderer {
	t := CurrentTheme()
	r, _ := glamour.NewTermRenderer(
		glamour.WithStyles(t.S().Markdown),
		glamour.WithWordWrap(width),
	)
	return r
}

// RenderMarkdown renders a page body for the given width. Rendering errors
// fall back to the raw text so a broken document still shows up.
func RenderMarkdown(body string, width int) string {
	if width <= 0 {
		return ""
	}
	r := GetMarkdownRenderer(width)
	if r == nil {
		return body
	}
	out, err := r.Render(body)
	if err != nil {
		return body
	}
	return strings.TrimSuffix(out, "\n")
}
