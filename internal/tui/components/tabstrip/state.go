package tabstrip

import (
	"encoding/json"
	"fmt"
)

// SavedState is everything needed to restore the strip after a restart:
// the selected page and every style scalar.
type SavedState struct {
	Position               int     `json:"position" yaml:"position"`
	BackgroundColor        string  `json:"background_color" yaml:"background_color"`
	BackgroundColorPressed string  `json:"background_color_pressed" yaml:"background_color_pressed"`
	TextColor              string  `json:"text_color" yaml:"text_color"`
	TextColorCenter        string  `json:"text_color_center" yaml:"text_color_center"`
	LineColor              string  `json:"line_color" yaml:"line_color"`
	LineHeight             int     `json:"line_height" yaml:"line_height"`
	TabPaddingLeft         int     `json:"tab_padding_left" yaml:"tab_padding_left"`
	TabPaddingTop          int     `json:"tab_padding_top" yaml:"tab_padding_top"`
	TabPaddingRight        int     `json:"tab_padding_right" yaml:"tab_padding_right"`
	TabPaddingBottom       int     `json:"tab_padding_bottom" yaml:"tab_padding_bottom"`
	TextSize               float64 `json:"text_size" yaml:"text_size"`
	OutsideOffset          int     `json:"outside_offset" yaml:"outside_offset"`
}

// DefaultSavedState is the state of a fresh strip on the first page.
func DefaultSavedState() SavedState {
	return stateFromConfig(0, DefaultStripConfig())
}

func stateFromConfig(position int, c StripConfig) SavedState {
	return SavedState{
		Position:               position,
		BackgroundColor:        c.BackgroundColor,
		BackgroundColorPressed: c.BackgroundColorPressed,
		TextColor:              c.TextColor,
		TextColorCenter:        c.TextColorCenter,
		LineColor:              c.LineColor,
		LineHeight:             c.LineHeight,
		TabPaddingLeft:         c.TabPaddingLeft,
		TabPaddingTop:          c.TabPaddingTop,
		TabPaddingRight:        c.TabPaddingRight,
		TabPaddingBottom:       c.TabPaddingBottom,
		TextSize:               c.TextSize,
		OutsideOffset:          c.OutsideOffset,
	}
}

// Config merges the saved style into base. Fields that are not part of the
// saved state (shadow width, label truncation) keep base's values.
func (s SavedState) Config(base StripConfig) StripConfig {
	base.BackgroundColor = s.BackgroundColor
	base.BackgroundColorPressed = s.BackgroundColorPressed
	base.TextColor = s.TextColor
	base.TextColorCenter = s.TextColorCenter
	base.LineColor = s.LineColor
	base.LineHeight = s.LineHeight
	base.TabPaddingLeft = s.TabPaddingLeft
	base.TabPaddingTop = s.TabPaddingTop
	base.TabPaddingRight = s.TabPaddingRight
	base.TabPaddingBottom = s.TabPaddingBottom
	base.TextSize = s.TextSize
	base.OutsideOffset = s.OutsideOffset
	return base
}

// EncodeState serializes s as indented JSON.
func EncodeState(s SavedState) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal strip state: %w", err)
	}
	return data, nil
}

// DecodeState parses and validates a state written by EncodeState.
func DecodeState(data []byte) (SavedState, error) {
	var s SavedState
	if err := json.Unmarshal(data, &s); err != nil {
		return SavedState{}, fmt.Errorf("failed to parse strip state: %w", err)
	}
	if s.Position < 0 {
		return SavedState{}, fmt.Errorf("invalid strip state: negative position %d", s.Position)
	}
	if err := s.Config(DefaultStripConfig()).Validate(); err != nil {
		return SavedState{}, fmt.Errorf("invalid strip state: %w", err)
	}
	return s, nil
}

// StateCodec encodes SavedState for a persistent store.
type StateCodec struct{}

func (StateCodec) Encode(s SavedState) ([]byte, error)    { return EncodeState(s) }
func (StateCodec) Decode(data []byte) (SavedState, error) { return DecodeState(data) }

// SaveState captures the selected page and the current style.
func (m *Model) SaveState() SavedState {
	return stateFromConfig(m.selected, m.cfg)
}

// RestoreState applies a saved style and, once bound, moves the selection to
// the saved page and snaps. A saved page beyond the current page count is
// ErrPrecondition and leaves the selection alone.
func (m *Model) RestoreState(s SavedState) error {
	if err := m.ApplyConfig(s.Config(m.cfg)); err != nil {
		return fmt.Errorf("restore state: %w", err)
	}
	if !m.bound {
		return nil
	}
	if err := m.checkIndex(s.Position); err != nil {
		return fmt.Errorf("restore state: %w", err)
	}
	m.selected = s.Position
	m.settle()
	m.recompute()
	m.relayout()
	return nil
}
