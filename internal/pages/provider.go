// Package pages loads a directory of markdown files as an ordered sequence
// of titled pages.
package pages

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/billie-coop/swipetabs/internal/files"
	"golang.org/x/sync/errgroup"
)

// ErrNoPages is returned when a directory holds no markdown files.
var ErrNoPages = errors.New("no markdown pages")

// Page is one markdown file.
type Page struct {
	Name  string
	Title string
	Body  string

	order    int
	hasOrder bool
}

// Change describes what a Reload found.
type Change int

const (
	// ChangeNone means nothing visible changed.
	ChangeNone Change = iota
	// ChangeBodies means only page contents changed.
	ChangeBodies
	// ChangeTitles means the same files are there but titles changed.
	ChangeTitles
	// ChangeSet means files were added, removed or reordered.
	ChangeSet
)

func (c Change) String() string {
	switch c {
	case ChangeBodies:
		return "bodies"
	case ChangeTitles:
		return "titles"
	case ChangeSet:
		return "set"
	default:
		return "none"
	}
}

// Directory is the page sequence of one directory. It is not safe for
// concurrent use.
type Directory struct {
	root  string
	pages []Page
}

// Open loads every markdown file directly inside root.
func Open(root string) (*Directory, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
	}
	d := &Directory{root: abs}
	pages, err := load(abs)
	if err != nil {
		return nil, err
	}
	d.pages = pages
	return d, nil
}

func (d *Directory) Root() string { return d.root }
func (d *Directory) Count() int   { return len(d.pages) }

// TitleAt returns the title of page i.
func (d *Directory) TitleAt(i int) string {
	return d.pages[i].Title
}

// Body returns the markdown of page i without its front matter.
func (d *Directory) Body(i int) string {
	return d.pages[i].Body
}

// Name returns the file name of page i.
func (d *Directory) Name(i int) string {
	return d.pages[i].Name
}

// Titles returns every title in page order.
func (d *Directory) Titles() []string {
	out := make([]string, len(d.pages))
	for i, p := range d.pages {
		out[i] = p.Title
	}
	return out
}

// Index returns the index of the page loaded from name, or -1.
func (d *Directory) Index(name string) int {
	return slices.IndexFunc(d.pages, func(p Page) bool { return p.Name == name })
}

// Reload reads the directory again. On error the previous pages are kept.
func (d *Directory) Reload() (Change, error) {
	pages, err := load(d.root)
	if err != nil {
		return ChangeNone, err
	}
	change := diff(d.pages, pages)
	d.pages = pages
	return change, nil
}

func diff(old, cur []Page) Change {
	if len(old) != len(cur) {
		return ChangeSet
	}
	change := ChangeNone
	for i := range cur {
		switch {
		case old[i].Name != cur[i].Name:
			return ChangeSet
		case old[i].Title != cur[i].Title:
			change = ChangeTitles
		case old[i].Body != cur[i].Body && change == ChangeNone:
			change = ChangeBodies
		}
	}
	return change
}

func load(root string) ([]Page, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read page directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && files.IsPage(e.Name()) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: %w", root, ErrNoPages)
	}

	pages := make([]Page, len(names))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		g.Go(func() error {
			p, err := readPage(filepath.Join(root, name))
			if err != nil {
				return err
			}
			pages[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(pages, comparePages)
	return pages, nil
}

// comparePages puts pages with an explicit order first, by order, and the
// rest by file name.
func comparePages(a, b Page) int {
	switch {
	case a.hasOrder && b.hasOrder && a.order != b.order:
		return a.order - b.order
	case a.hasOrder && !b.hasOrder:
		return -1
	case !a.hasOrder && b.hasOrder:
		return 1
	}
	return strings.Compare(a.Name, b.Name)
}

func readPage(path string) (Page, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Page{}, fmt.Errorf("failed to read page: %w", err)
	}
	fm, body, err := splitFrontMatter(src)
	if err != nil {
		return Page{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	p := Page{
		Name:  filepath.Base(path),
		Title: strings.TrimSpace(fm.Title),
		Body:  string(body),
	}
	if fm.Order != nil {
		p.order, p.hasOrder = *fm.Order, true
	}
	if p.Title == "" {
		p.Title = firstHeading(body)
	}
	if p.Title == "" {
		p.Title = titleFromName(p.Name)
	}
	return p, nil
}
