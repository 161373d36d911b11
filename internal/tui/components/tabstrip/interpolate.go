package tabstrip

import "math"

// Direction is the way the pager is being dragged relative to the selected
// page.
type Direction int

const (
	// Center means the pager rests on the selected page.
	Center Direction = iota
	// Left means the content moves toward the previous page.
	Left
	// Right means the content moves toward the next page.
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "center"
	}
}

// ResolveDirection compares the pager's live scroll offset with the offset of
// the selected page and returns the direction together with the progress to
// feed to Step.
func ResolveDirection(scrollOffset, selected, viewportWidth int, fraction float64) (Direction, float64) {
	expected := selected * viewportWidth
	switch {
	case scrollOffset < expected:
		return Left, 1 - fraction
	case scrollOffset > expected:
		return Right, fraction
	default:
		return Center, 0
	}
}

// Step interpolates a tab's position between its current target (progress 0)
// and the target for the direction of travel (progress 1). Progress outside
// [0,1] extrapolates; a non-finite progress counts as 0.
func Step(t Targets, progress float64, dir Direction) float64 {
	if math.IsNaN(progress) || math.IsInf(progress, 0) {
		progress = 0
	}
	from := float64(t.Current)
	var to float64
	switch dir {
	case Left:
		to = float64(t.Next)
	case Right:
		to = float64(t.Prev)
	default:
		return from
	}
	return from + (to-from)*progress
}
