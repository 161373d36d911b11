package state

import "github.com/billie-coop/swipetabs/internal/tui/components/tabstrip"

// StripStore persists the tab strip between runs.
type StripStore struct {
	*Store[tabstrip.SavedState]
}

// NewStripStore creates a store for the strip state at path.
func NewStripStore(path string) *StripStore {
	return &StripStore{
		Store: NewStore(path, tabstrip.DefaultSavedState(), tabstrip.StateCodec{}),
	}
}

// Position returns the saved page, clamped to a sequence of count pages.
func (s *StripStore) Position(count int) int {
	return max(0, min(s.Get().Position, count-1))
}
