package styles

import (
	"github.com/alecthomas/chroma/v2"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
)

// registerChroma registers a syntax highlighting style built from the theme
// colors and returns its name, so code blocks in page bodies match the
// surrounding chrome.
func (t *Theme) registerChroma() string {
	name := "swipetabs-" + t.Name
	if _, ok := chromastyles.Registry[name]; ok {
		return name
	}
	style, err := chroma.NewStyle(name, t.chromaEntries())
	if err != nil {
		return ""
	}
	chromastyles.Register(style)
	return name
}

func (t *Theme) chromaEntries() chroma.StyleEntries {
	hex := colorToHex
	return chroma.StyleEntries{
		chroma.Background:      "bg:" + hex(t.BgSubtle),
		chroma.Text:            hex(t.FgBase),
		chroma.Error:           hex(t.Error),
		chroma.Comment:         hex(t.FgMuted) + " italic",
		chroma.CommentPreproc:  hex(t.Warning),
		chroma.Keyword:         hex(t.Primary) + " bold",
		chroma.KeywordType:     hex(t.Info),
		chroma.Operator:        hex(t.Accent),
		chroma.Punctuation:     hex(t.FgSubtle),
		chroma.NameFunction:    hex(t.Secondary),
		chroma.NameBuiltin:     hex(t.Warning),
		chroma.LiteralString:   hex(t.Success),
		chroma.LiteralNumber:   hex(t.Accent),
		chroma.GenericDeleted:  hex(t.Error),
		chroma.GenericInserted: hex(t.Success),
		chroma.GenericEmph:     "italic",
		chroma.GenericStrong:   "bold",
	}
}
