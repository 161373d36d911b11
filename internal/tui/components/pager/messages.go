package pager

// ScrolledMsg is emitted for every change of the horizontal scroll offset,
// whether from a drag or from a settle animation. Position is the index of
// the leftmost visible page and Fraction how far the next page has slid in.
// Offset and Width are the scroll offset and page width the message was
// computed from; messages arrive late, so listeners use these rather than the
// pager's live values.
type ScrolledMsg struct {
	Position int
	Fraction float64
	Offset   int
	Width    int
}

// SelectedMsg is emitted as soon as a new page becomes the target, before
// the scroll animation toward it has finished.
type SelectedMsg struct {
	Index int
}

// SettledMsg is emitted when scrolling stops with Index fully in view.
type SettledMsg struct {
	Index int
}

// RequestPageMsg asks the pager to scroll to a page. Tab taps and the jump
// dialog send it.
type RequestPageMsg struct {
	Index int
}
