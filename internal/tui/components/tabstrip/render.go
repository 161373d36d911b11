package tabstrip

import (
	"strings"

	"github.com/billie-coop/swipetabs/internal/tui/paint"
	"github.com/billie-coop/swipetabs/internal/tui/styles"
)

const (
	lineFull = "█"
	lineHalf = "▀"
)

// View renders the strip at its current width and height.
func (m *Model) View() string {
	return m.paint().Render()
}

// paint draws every tab onto a fresh canvas. Tabs are painted in index order
// so a later tab covers an earlier one where they overlap mid-gesture.
func (m *Model) paint() *paint.Canvas {
	height := m.Height()
	c := paint.NewCanvas(m.width, height, m.pal.background)
	if m.width == 0 {
		return c
	}

	bold := m.cfg.TextSize >= BoldTextSize
	lineTop := height - m.cfg.LineHeight
	for _, t := range m.tabs {
		x := t.cell()
		if x >= m.width || x+t.width <= 0 {
			continue
		}
		amount := float64(t.highlight) / 100

		bg := m.pal.background
		if t.pressed {
			bg = styles.Over(bg, m.pal.pressed, m.pal.pressedAlpha)
		}
		c.FillRect(x, 0, t.width, height, bg)

		fg := styles.Blend(m.pal.text, m.pal.textCenter, amount)
		c.DrawText(x+m.cfg.TabPaddingLeft, m.cfg.TabPaddingTop, t.display, fg, bg, bold)

		length := roundPos(float64(t.width) * amount)
		if length == 0 || m.cfg.LineHeight == 0 {
			continue
		}
		lineColor := styles.Blend(m.pal.background, m.pal.line, amount)
		start := x + (t.width-length)/2
		for row := lineTop; row < height; row++ {
			glyph := lineFull
			if row == height-1 {
				glyph = lineHalf
			}
			c.DrawText(start, row, strings.Repeat(glyph, length), lineColor, bg, false)
		}
	}

	m.shade(c)
	return c
}

// shade darkens both strip edges toward the background, strongest at the
// edge and fading out ShadowWidth cells inward.
func (m *Model) shade(c *paint.Canvas) {
	sw := m.cfg.ShadowWidth
	for i := 0; i < sw && i < m.width; i++ {
		alpha := shadowAlpha * (1 - float64(i)/float64(sw))
		for y := 0; y < c.Height(); y++ {
			c.Shade(i, y, m.pal.background, alpha)
			if right := m.width - 1 - i; right != i {
				c.Shade(right, y, m.pal.background, alpha)
			}
		}
	}
}
