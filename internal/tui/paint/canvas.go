// Package paint is a small cell buffer for components that position content
// by column, clip it at the edges and blend colors per cell before turning
// the result into styled terminal lines.
package paint

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Cell is one terminal cell. A wide grapheme occupies its first cell; the
// cells it covers to the right are marked as continuations.
type Cell struct {
	Content string
	Fg      colorful.Color
	Bg      colorful.Color
	Bold    bool

	continuation bool
}

// Canvas is a fixed-size grid of cells.
type Canvas struct {
	width  int
	height int
	cells  []Cell
}

// NewCanvas creates a canvas filled with blank cells on bg.
func NewCanvas(width, height int, bg colorful.Color) *Canvas {
	width = max(0, width)
	height = max(0, height)
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	c.FillRect(0, 0, width, height, bg)
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// At returns the cell at x, y.
func (c *Canvas) At(x, y int) (Cell, bool) {
	if !c.inside(x, y) {
		return Cell{}, false
	}
	return c.cells[y*c.width+x], true
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *Canvas) cell(x, y int) *Cell {
	return &c.cells[y*c.width+x]
}

// FillRect blanks a rectangle with the given background. Parts outside the
// canvas are clipped.
func (c *Canvas) FillRect(x, y, w, h int, bg colorful.Color) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.width), min(y+h, c.height)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			c.breakWide(col, row)
			*c.cell(col, row) = Cell{Content: " ", Fg: bg, Bg: bg}
		}
	}
}

// DrawText writes text starting at column x on row y. Graphemes that would
// straddle either canvas edge are replaced by blanks.
func (c *Canvas) DrawText(x, y int, text string, fg, bg colorful.Color, bold bool) {
	if y < 0 || y >= c.height {
		return
	}
	col := x
	gr := uniseg.NewGraphemes(text)
	for gr.Next() && col < c.width {
		s := gr.Str()
		w := uniseg.StringWidth(s)
		if w == 0 {
			continue
		}
		if col < 0 || col+w > c.width {
			for i := max(col, 0); i < min(col+w, c.width); i++ {
				c.breakWide(i, y)
				*c.cell(i, y) = Cell{Content: " ", Fg: fg, Bg: bg, Bold: bold}
			}
			col += w
			continue
		}
		for i := 0; i < w; i++ {
			c.breakWide(col+i, y)
		}
		*c.cell(col, y) = Cell{Content: s, Fg: fg, Bg: bg, Bold: bold}
		for i := 1; i < w; i++ {
			*c.cell(col+i, y) = Cell{Fg: fg, Bg: bg, Bold: bold, continuation: true}
		}
		col += w
	}
}

// Shade blends the foreground and background of a cell toward color by alpha.
func (c *Canvas) Shade(x, y int, color colorful.Color, alpha float64) {
	if !c.inside(x, y) || alpha <= 0 {
		return
	}
	cell := c.cell(x, y)
	cell.Fg = cell.Fg.BlendRgb(color, min(alpha, 1)).Clamped()
	cell.Bg = cell.Bg.BlendRgb(color, min(alpha, 1)).Clamped()
}

// breakWide blanks the rest of a wide grapheme when one of its cells is
// about to be overwritten, so no half glyph survives.
func (c *Canvas) breakWide(x, y int) {
	cell := c.cell(x, y)
	if !cell.continuation && uniseg.StringWidth(cell.Content) <= 1 {
		return
	}
	start := x
	for start > 0 && c.cell(start, y).continuation {
		start--
	}
	end := start + 1
	for end < c.width && c.cell(end, y).continuation {
		end++
	}
	for i := start; i < end; i++ {
		cc := c.cell(i, y)
		cc.Content = " "
		cc.continuation = false
	}
}

// Render converts the canvas to lines of styled text. Adjacent cells with the
// same attributes are rendered as one run.
func (c *Canvas) Render() string {
	lines := make([]string, c.height)
	var run strings.Builder
	for y := 0; y < c.height; y++ {
		var line strings.Builder
		run.Reset()
		var cur Cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			line.WriteString(lipgloss.NewStyle().
				Foreground(cur.Fg).
				Background(cur.Bg).
				Bold(cur.Bold).
				Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if cell.continuation {
				continue
			}
			if run.Len() > 0 && !sameAttrs(cur, cell) {
				flush()
			}
			cur = cell
			run.WriteString(cell.Content)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

// Plain returns the canvas text without styling, one line per row.
func (c *Canvas) Plain() string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var line strings.Builder
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if !cell.continuation {
				line.WriteString(cell.Content)
			}
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func sameAttrs(a, b Cell) bool {
	return a.Fg == b.Fg && a.Bg == b.Bg && a.Bold == b.Bold
}
