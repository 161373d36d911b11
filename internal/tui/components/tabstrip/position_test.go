package tabstrip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func uniform(n, w int) []int {
	widths := make([]int, n)
	for i := range widths {
		widths[i] = w
	}
	return widths
}

func geometry(stripWidth int) Geometry {
	return Geometry{
		StripWidth:    stripWidth,
		OutsideOffset: stripWidth,
		PaddingLeft:   2,
		PaddingRight:  2,
	}
}

func TestComputeTargets_FiveUniformTabs(t *testing.T) {
	g := geometry(300)
	ts := ComputeTargets(2, uniform(5, 60), g)

	require.Equal(t, 120, ts[2].Current, "center slot")
	require.Equal(t, -2, ts[1].Current, "left slot")
	require.Equal(t, 300-60+2, ts[3].Current, "right slot")
	require.Equal(t, -60-300, ts[0].Current)
	require.Equal(t, 300+300, ts[4].Current)

	// The selected tab moves to the left slot when the pager advances and
	// to the right slot when it goes back.
	require.Equal(t, -2, ts[2].Prev)
	require.Equal(t, 242, ts[2].Next)

	// Anticipating neighbours.
	require.Equal(t, -2, ts[0].Next)
	require.Equal(t, 242, ts[4].Prev)
}

func TestComputeTargets_FarTabsStayOffscreen(t *testing.T) {
	const strip, width = 100, 10
	ts := ComputeTargets(4, uniform(9, width), geometry(strip))

	offscreen := func(pos int) bool { return pos+width <= 0 || pos >= strip }
	for _, i := range []int{0, 1, 7, 8} {
		require.True(t, offscreen(ts[i].Prev), "tab %d prev %d", i, ts[i].Prev)
		require.True(t, offscreen(ts[i].Current), "tab %d current %d", i, ts[i].Current)
		require.True(t, offscreen(ts[i].Next), "tab %d next %d", i, ts[i].Next)
	}
}

func TestComputeTargets_ExactlyOneCentered(t *testing.T) {
	widths := []int{7, 23, 11, 40, 5, 19, 31, 9, 14}
	for _, stripWidth := range []int{80, 120, 300} {
		g := geometry(stripWidth)
		for n := 1; n <= len(widths); n++ {
			for selected := 0; selected < n; selected++ {
				ts := ComputeTargets(selected, widths[:n], g)
				center := g.center(widths[selected])

				hits := 0
				for _, tt := range ts {
					if tt.Current == center {
						hits++
					}
				}
				require.Equal(t, center, ts[selected].Current)
				require.Equal(t, 1, hits, "strip=%d n=%d selected=%d", stripWidth, n, selected)
			}
		}
	}
}

func TestComputeTargets_NoOverlap(t *testing.T) {
	cases := []struct {
		name   string
		strip  int
		widths []int
	}{
		{"uniform", 300, uniform(7, 60)},
		{"long labels", 60, []int{50, 48, 52, 55, 49}},
		{"mixed", 100, []int{4, 90, 6, 70, 3, 88, 12}},
		{"wider than strip", 20, []int{30, 25, 40, 35}},
		{"single", 50, []int{10}},
		{"pair", 30, []int{25, 25}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := geometry(tc.strip)
			for selected := range tc.widths {
				ts := ComputeTargets(selected, tc.widths, g)
				for i := 0; i+1 < len(ts); i++ {
					require.LessOrEqual(t, ts[i].Current+tc.widths[i], ts[i+1].Current,
						"selected=%d tabs %d and %d overlap", selected, i, i+1)
				}
				// The layouts one page either side are corrected too.
				if selected > 0 {
					for i := 0; i+1 < len(ts); i++ {
						require.LessOrEqual(t, ts[i].Next+tc.widths[i], ts[i+1].Next)
					}
				}
				if selected+1 < len(ts) {
					for i := 0; i+1 < len(ts); i++ {
						require.LessOrEqual(t, ts[i].Prev+tc.widths[i], ts[i+1].Prev)
					}
				}
			}
		})
	}
}

func TestComputeTargets_AdjacentLayoutsAgree(t *testing.T) {
	// A tab's Next target is where it rests once the previous page is
	// selected, so it must equal its Current target in that layout.
	widths := []int{12, 30, 8, 22, 16, 9}
	g := geometry(90)
	for selected := 1; selected < len(widths); selected++ {
		here := ComputeTargets(selected, widths, g)
		before := ComputeTargets(selected-1, widths, g)
		for i := selected - 2; i <= selected+1; i++ {
			if i < 0 || i >= len(widths) {
				continue
			}
			require.Equal(t, before[i].Current, here[i].Next, "selected=%d tab=%d", selected, i)
			require.Equal(t, here[i].Current, before[i].Prev, "selected=%d tab=%d", selected, i)
		}
	}
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name      string
		pos       int
		width     int
		strip     int
		highlight int
	}{
		{"centered", 40, 20, 100, 100},
		{"half window", 30, 20, 100, 50},
		{"edge of window", 20, 20, 100, 0},
		{"outside window", 0, 20, 100, 0},
		{"right of center", 50, 20, 100, 50},
		{"zero width strip", 0, 0, 0, 0},
		{"tiny strip", 0, 1, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.highlight, Highlight(tt.pos, tt.width, tt.strip))
		})
	}
}

func TestHighlight_Monotonic(t *testing.T) {
	const strip, width = 300, 30
	window := strip / 5
	center := strip/2 - width/2

	prev := 101
	for d := 0; d <= window+20; d++ {
		left := Highlight(center-d, width, strip)
		right := Highlight(center+d, width, strip)
		require.Equal(t, left, right, "distance %d", d)
		require.LessOrEqual(t, left, prev, "distance %d", d)
		if d >= window {
			require.Zero(t, left, "distance %d", d)
		}
		prev = left
	}
	require.Equal(t, 100, Highlight(center, width, strip))
}
