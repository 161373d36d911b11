package tabstrip

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Tab is the view-model of one tab. Only the strip mutates it; everything
// outside the package reads it through the accessors.
type Tab struct {
	index int
	label string

	// display is label after truncation to MaxLabelWidth.
	display string
	width   int

	targets   Targets
	layoutPos float64
	highlight int
	pressed   bool
}

func newTab(index int, label string) *Tab {
	return &Tab{index: index, label: label}
}

func (t *Tab) Index() int         { return t.index }
func (t *Tab) Label() string      { return t.label }
func (t *Tab) Width() int         { return t.width }
func (t *Tab) Targets() Targets   { return t.targets }
func (t *Tab) LayoutPos() float64 { return t.layoutPos }
func (t *Tab) Highlight() int     { return t.highlight }
func (t *Tab) Pressed() bool      { return t.pressed }
func (t *Tab) PrevPos() int       { return t.targets.Prev }
func (t *Tab) CurrentPos() int    { return t.targets.Current }
func (t *Tab) NextPos() int       { return t.targets.Next }

// measure recomputes the tab's width for the given style.
func (t *Tab) measure(cfg StripConfig) {
	t.display = t.label
	if cfg.MaxLabelWidth > 0 && ansi.StringWidth(t.label) > cfg.MaxLabelWidth {
		t.display = runewidth.Truncate(t.label, cfg.MaxLabelWidth, "…")
	}
	t.width = cfg.TabPaddingLeft + ansi.StringWidth(t.display) + cfg.TabPaddingRight
}

// cell returns the rounded layout position used for painting and hit tests.
func (t *Tab) cell() int {
	return roundPos(t.layoutPos)
}
