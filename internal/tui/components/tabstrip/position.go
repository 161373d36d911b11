package tabstrip

import "math"

// Targets are the three resting offsets of a tab, in cells from the strip's
// left edge.
//
//	Current  where the tab rests while the selected page is shown
//	Prev     where it rests once the pager advances one page (selected+1)
//	Next     where it rests once the pager goes back one page (selected-1)
type Targets struct {
	Prev    int
	Current int
	Next    int
}

// Geometry is everything about the strip the slot positions depend on.
type Geometry struct {
	StripWidth    int
	OutsideOffset int
	PaddingLeft   int
	PaddingRight  int
}

// Slot values for a tab of width w. Left and right push the tab's padding
// past the strip edges so its label sits flush with them.
func (g Geometry) leftOutside(w int) int { return -w - g.OutsideOffset }
func (g Geometry) left(int) int          { return -g.PaddingLeft }
func (g Geometry) center(w int) int      { return g.StripWidth/2 - w/2 }
func (g Geometry) right(w int) int       { return g.StripWidth - w + g.PaddingRight }
func (g Geometry) rightOutside(int) int  { return g.StripWidth + g.OutsideOffset }

// ComputeTargets returns the targets of every tab for the given selection.
// widths are the measured tab widths in index order.
func ComputeTargets(selected int, widths []int, g Geometry) []Targets {
	out := make([]Targets, len(widths))
	computeTargets(out, selected, widths, g)
	return out
}

// computeTargets fills out, which must have len(widths) entries.
func computeTargets(out []Targets, selected int, widths []int, g Geometry) {
	for i, w := range widths {
		out[i] = slotTargets(i-selected, w, g)
	}

	// Each target set describes a resting layout with its own centered tab.
	correctOverlap(out, widths, selected, func(t *Targets) *int { return &t.Current })
	correctOverlap(out, widths, selected-1, func(t *Targets) *int { return &t.Next })
	correctOverlap(out, widths, selected+1, func(t *Targets) *int { return &t.Prev })
}

// slotTargets maps a distance from the selected tab to its targets.
func slotTargets(d, w int, g Geometry) Targets {
	switch {
	case d < -2:
		p := g.leftOutside(w)
		return Targets{Prev: p, Current: p, Next: p}
	case d == -2:
		p := g.leftOutside(w)
		return Targets{Prev: p, Current: p, Next: g.left(w)}
	case d == -1:
		return Targets{Prev: g.leftOutside(w), Current: g.left(w), Next: g.center(w)}
	case d == 0:
		return Targets{Prev: g.left(w), Current: g.center(w), Next: g.right(w)}
	case d == 1:
		return Targets{Prev: g.center(w), Current: g.right(w), Next: g.rightOutside(w)}
	case d == 2:
		p := g.rightOutside(w)
		return Targets{Prev: g.right(w), Current: p, Next: p}
	default:
		p := g.rightOutside(w)
		return Targets{Prev: p, Current: p, Next: p}
	}
}

// correctOverlap walks outward from the anchor (the centered tab of one
// target set) and pulls every neighbour back so that spans [pos, pos+width)
// of index-adjacent tabs never intersect. Tabs left of the anchor are only
// moved further left and tabs right of it only further right, so ordering is
// preserved. An anchor outside the tab range means that layout cannot occur
// and the set is left alone.
func correctOverlap(ts []Targets, widths []int, anchor int, field func(*Targets) *int) {
	if anchor < 0 || anchor >= len(ts) {
		return
	}
	for i := anchor - 1; i >= 0; i-- {
		pos, right := field(&ts[i]), *field(&ts[i+1])
		if *pos+widths[i] > right {
			*pos = right - widths[i]
		}
	}
	for i := anchor + 1; i < len(ts); i++ {
		pos, left := field(&ts[i]), *field(&ts[i-1])
		if *pos < left+widths[i-1] {
			*pos = left + widths[i-1]
		}
	}
}

// Highlight returns how strongly a tab at layoutPos should be drawn as
// selected: 100 when its midpoint is the strip's midpoint, falling linearly
// to 0 at a fifth of the strip width away.
func Highlight(layoutPos, width, stripWidth int) int {
	window := stripWidth / 5
	if window <= 0 {
		return 0
	}
	diff := stripWidth/2 - (layoutPos + width/2)
	if diff < 0 {
		diff = -diff
	}
	if diff >= window {
		return 0
	}
	return int(math.Round(100 - 100*float64(diff)/float64(window)))
}
