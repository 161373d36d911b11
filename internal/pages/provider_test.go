package pages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writePages(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestOpen_TitlesAndOrder(t *testing.T) {
	dir := t.TempDir()
	writePages(t, dir, map[string]string{
		"b.md":                  "# Beta\n\nsecond by name",
		"a.md":                  "plain text only",
		"z.md":                  "---\ntitle: Zulu First\norder: 1\n---\n# Ignored\n",
		"02-getting_started.md": "Setext Title\n============\n\nbody",
		"notes.txt":             "not a page",
		".hidden.md":            "# Hidden",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.md"), 0o755))

	d, err := Open(dir)
	require.NoError(t, err)

	require.Equal(t, []string{"Zulu First", "Setext Title", "A", "Beta"}, d.Titles())
	require.Equal(t, 4, d.Count())
	require.Equal(t, "z.md", d.Name(0))
	require.Equal(t, "# Ignored\n", d.Body(0))
	require.Equal(t, 3, d.Index("b.md"))
	require.Equal(t, -1, d.Index("notes.txt"))
}

func TestOpen_Empty(t *testing.T) {
	dir := t.TempDir()
	writePages(t, dir, map[string]string{"readme.txt": "x"})

	_, err := Open(dir)
	require.ErrorIs(t, err, ErrNoPages)

	_, err = Open(filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestOpen_BadFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writePages(t, dir, map[string]string{"a.md": "---\ntitle: [unclosed\n---\nbody"})

	_, err := Open(dir)
	require.ErrorContains(t, err, "a.md")
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	writePages(t, dir, map[string]string{
		"a.md": "# One\n",
		"b.md": "# Two\n",
	})
	d, err := Open(dir)
	require.NoError(t, err)

	change, err := d.Reload()
	require.NoError(t, err)
	require.Equal(t, ChangeNone, change)

	writePages(t, dir, map[string]string{"b.md": "# Two\n\nmore text"})
	change, err = d.Reload()
	require.NoError(t, err)
	require.Equal(t, ChangeBodies, change)

	writePages(t, dir, map[string]string{"a.md": "# Uno\n"})
	change, err = d.Reload()
	require.NoError(t, err)
	require.Equal(t, ChangeTitles, change)
	require.Equal(t, "Uno", d.TitleAt(0))

	writePages(t, dir, map[string]string{"c.md": "# Three\n"})
	change, err = d.Reload()
	require.NoError(t, err)
	require.Equal(t, ChangeSet, change)
	require.Equal(t, 3, d.Count())

	for _, name := range []string{"a.md", "b.md", "c.md"} {
		require.NoError(t, os.Remove(filepath.Join(dir, name)))
	}
	_, err = d.Reload()
	require.ErrorIs(t, err, ErrNoPages)
	require.Equal(t, 3, d.Count(), "previous pages are kept")
}

