package dialog

import (
	"strings"

	"github.com/billie-coop/swipetabs/internal/tui/components/pager"
	"github.com/billie-coop/swipetabs/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/sahilm/fuzzy"
)

const maxJumpResults = 8

// JumpDialog finds a page by fuzzy-matching its title and requests it from
// the pager.
type JumpDialog struct {
	*BaseDialog

	input    textinput.Model
	titles   []string
	matches  fuzzy.Matches
	selected int
}

// NewJumpDialog creates a new jump dialog
func NewJumpDialog() *JumpDialog {
	input := textinput.New()
	input.Placeholder = "Page title..."
	input.Prompt = "> "
	input.CharLimit = 64

	return &JumpDialog{
		BaseDialog: NewBaseDialog("Go to page"),
		input:      input,
	}
}

// SetTitles replaces the searchable titles; index i is page i.
func (d *JumpDialog) SetTitles(titles []string) {
	d.titles = titles
	d.updateMatches()
}

// Open resets the query and focuses the input.
func (d *JumpDialog) Open() tea.Cmd {
	d.BaseDialog.Open()
	d.input.Reset()
	d.selected = 0
	d.updateMatches()
	return d.input.Focus()
}

// Close blurs the input and closes the dialog.
func (d *JumpDialog) Close() tea.Cmd {
	d.input.Blur()
	return d.BaseDialog.Close()
}

// Cancel closes the dialog without a result.
func (d *JumpDialog) Cancel() tea.Cmd {
	d.cancelled = true
	return d.Close()
}

// Init initializes the dialog
func (d *JumpDialog) Init() tea.Cmd {
	return nil
}

// Update handles input. Enter selects the highlighted match, sets the page
// index as the result and requests the page.
func (d *JumpDialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}

	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "esc", "ctrl+c":
			return d, d.Cancel()
		case "enter":
			index, ok := d.Selected()
			if !ok {
				return d, nil
			}
			d.SetResult(index)
			return d, tea.Batch(d.Close(), func() tea.Msg {
				return pager.RequestPageMsg{Index: index}
			})
		case "up", "ctrl+p":
			if d.selected > 0 {
				d.selected--
			}
			return d, nil
		case "down", "ctrl+n":
			if d.selected < min(len(d.matches), maxJumpResults)-1 {
				d.selected++
			}
			return d, nil
		}
	}

	before := d.input.Value()
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	if d.input.Value() != before {
		d.updateMatches()
		d.selected = 0
	}
	return d, cmd
}

// Selected returns the page index of the highlighted match.
func (d *JumpDialog) Selected() (int, bool) {
	if d.selected >= len(d.matches) {
		return 0, false
	}
	return d.matches[d.selected].Index, true
}

// Matches returns the current matches, best first.
func (d *JumpDialog) Matches() fuzzy.Matches {
	return d.matches
}

func (d *JumpDialog) updateMatches() {
	query := strings.TrimSpace(d.input.Value())
	if query == "" {
		d.matches = make(fuzzy.Matches, len(d.titles))
		for i, title := range d.titles {
			d.matches[i] = fuzzy.Match{Str: title, Index: i}
		}
		return
	}
	d.matches = fuzzy.Find(query, d.titles)
}

// View renders the dialog
func (d *JumpDialog) View() string {
	if !d.isOpen {
		return ""
	}
	s := styles.CurrentTheme().S()

	var b strings.Builder
	b.WriteString(d.input.View())
	b.WriteString("\n")
	for i, match := range d.matches {
		if i >= maxJumpResults {
			break
		}
		b.WriteString("\n")
		line := highlight(match, s.Bold, s.Text)
		if i == d.selected {
			b.WriteString(s.Selected.Render("> " + match.Str))
			continue
		}
		b.WriteString("  " + line)
	}
	if len(d.matches) == 0 {
		b.WriteString("\n" + s.Muted.Render("  No matching pages"))
	}
	return d.RenderDialog(b.String())
}

type renderer interface {
	Render(...string) string
}

// highlight renders the matched runes of match.Str with hit and the rest
// with miss.
func highlight(match fuzzy.Match, hit, miss renderer) string {
	if len(match.MatchedIndexes) == 0 {
		return miss.Render(match.Str)
	}
	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, i := range match.MatchedIndexes {
		matched[i] = true
	}
	var b strings.Builder
	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(hit.Render(string(r)))
		} else {
			b.WriteString(miss.Render(string(r)))
		}
	}
	return b.String()
}
