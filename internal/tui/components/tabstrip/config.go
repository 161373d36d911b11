package tabstrip

import (
	"errors"
	"fmt"

	"github.com/billie-coop/swipetabs/internal/tui/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// Defaults for StripConfig. Sizes are terminal cells.
const (
	DefaultBackgroundColor        = "#3B3B3B"
	DefaultBackgroundColorPressed = "#43797F99"
	DefaultTextColor              = "#999999"
	DefaultTextColorCenter        = "#91A438"
	DefaultLineColor              = "#91A438"
	DefaultLineHeight             = 1
	DefaultTabPaddingLeft         = 2
	DefaultTabPaddingTop          = 0
	DefaultTabPaddingRight        = 2
	DefaultTabPaddingBottom       = 0
	DefaultTextSize               = 14
	DefaultOutsideOffset          = -1
	DefaultShadowWidth            = 4

	// BoldTextSize is the text size from which labels are drawn bold;
	// terminal glyphs cannot be scaled.
	BoldTextSize = 16

	// shadowAlpha is the opacity of the edge shadows at the strip edges.
	shadowAlpha = float64(0xDD) / 0xFF
)

// StripConfig is the strip's whole styling surface. It is a value: setters on
// Model copy it, change one field and apply the copy.
type StripConfig struct {
	BackgroundColor        string  `toml:"background_color"`
	BackgroundColorPressed string  `toml:"background_color_pressed"`
	TextColor              string  `toml:"text_color"`
	TextColorCenter        string  `toml:"text_color_center"`
	LineColor              string  `toml:"line_color"`
	LineHeight             int     `toml:"line_height"`
	TabPaddingLeft         int     `toml:"tab_padding_left"`
	TabPaddingTop          int     `toml:"tab_padding_top"`
	TabPaddingRight        int     `toml:"tab_padding_right"`
	TabPaddingBottom       int     `toml:"tab_padding_bottom"`
	TextSize               float64 `toml:"text_size"`
	// OutsideOffset is how far past the strip edges off-screen tabs are
	// parked. Negative means the strip width.
	OutsideOffset int `toml:"outside_offset"`
	ShadowWidth   int `toml:"shadow_width"`
	// MaxLabelWidth truncates longer labels with an ellipsis; 0 disables.
	MaxLabelWidth int `toml:"max_label_width"`
}

// DefaultStripConfig returns the documented defaults.
func DefaultStripConfig() StripConfig {
	return StripConfig{
		BackgroundColor:        DefaultBackgroundColor,
		BackgroundColorPressed: DefaultBackgroundColorPressed,
		TextColor:              DefaultTextColor,
		TextColorCenter:        DefaultTextColorCenter,
		LineColor:              DefaultLineColor,
		LineHeight:             DefaultLineHeight,
		TabPaddingLeft:         DefaultTabPaddingLeft,
		TabPaddingTop:          DefaultTabPaddingTop,
		TabPaddingRight:        DefaultTabPaddingRight,
		TabPaddingBottom:       DefaultTabPaddingBottom,
		TextSize:               DefaultTextSize,
		OutsideOffset:          DefaultOutsideOffset,
		ShadowWidth:            DefaultShadowWidth,
	}
}

// Validate reports every invalid field.
func (c StripConfig) Validate() error {
	_, err := c.palette()
	var errs []error
	if err != nil {
		errs = append(errs, err)
	}
	for _, f := range []struct {
		name  string
		value int
	}{
		{"line_height", c.LineHeight},
		{"tab_padding_left", c.TabPaddingLeft},
		{"tab_padding_top", c.TabPaddingTop},
		{"tab_padding_right", c.TabPaddingRight},
		{"tab_padding_bottom", c.TabPaddingBottom},
		{"shadow_width", c.ShadowWidth},
		{"max_label_width", c.MaxLabelWidth},
	} {
		if f.value < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", f.name, f.value))
		}
	}
	if c.TextSize <= 0 {
		errs = append(errs, fmt.Errorf("text_size must be positive, got %g", c.TextSize))
	}
	return errors.Join(errs...)
}

// palette is the parsed form of the config's colors.
type palette struct {
	background   colorful.Color
	pressed      colorful.Color
	pressedAlpha float64
	text         colorful.Color
	textCenter   colorful.Color
	line         colorful.Color
}

func (c StripConfig) palette() (palette, error) {
	var (
		p    palette
		errs []error
	)
	parse := func(name, value string, dst *colorful.Color, alpha *float64) {
		col, a, err := styles.ParseColor(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			return
		}
		*dst = col
		if alpha != nil {
			*alpha = a
		}
	}
	parse("background_color", c.BackgroundColor, &p.background, nil)
	parse("background_color_pressed", c.BackgroundColorPressed, &p.pressed, &p.pressedAlpha)
	parse("text_color", c.TextColor, &p.text, nil)
	parse("text_color_center", c.TextColorCenter, &p.textCenter, nil)
	parse("line_color", c.LineColor, &p.line, nil)
	return p, errors.Join(errs...)
}

// height is the number of rows a tab occupies.
func (c StripConfig) height() int {
	return c.TabPaddingTop + 1 + c.TabPaddingBottom + c.LineHeight
}
