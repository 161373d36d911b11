// Package files decides which files swipetabs reads and reacts to. It is
// the single source of truth shared by the page loader, the watcher and the
// interface.
package files

import (
	"path/filepath"
	"strings"
)

// Kind is what a changed path means to swipetabs.
type Kind int

const (
	// Other paths are ignored.
	Other Kind = iota
	// Page is a markdown file directly inside the page directory.
	Page
	// Config is the config file.
	Config
)

// pageExts are the extensions loaded as pages.
var pageExts = []string{".md", ".markdown"}

// IsPage reports whether a file name is loaded as a page. Hidden files and
// editor temporaries never are.
func IsPage(name string) bool {
	if strings.HasPrefix(name, ".") || IsEditorTemp(name) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range pageExts {
		if ext == e {
			return true
		}
	}
	return false
}

// IsEditorTemp reports whether path looks like a file an editor writes
// while saving: backups, swap files, lock files and the like.
func IsEditorTemp(path string) bool {
	base := filepath.Base(path)
	if strings.HasSuffix(base, "~") || strings.HasPrefix(base, ".#") {
		return true
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".log", ".tmp", ".swp", ".swo", ".swx", ".bak":
		return true
	}
	// 4913 is vim's write-permission probe.
	return base == ".DS_Store" || base == "4913"
}

// ShouldIgnore reports whether a path lies in a directory that never holds
// pages, such as version control metadata.
func ShouldIgnore(path string) bool {
	for _, component := range strings.Split(filepath.Clean(path), string(filepath.Separator)) {
		switch component {
		case ".git", ".svn", ".hg", "node_modules":
			return true
		}
	}
	return IsEditorTemp(path)
}

// Classify tells what path is for a page directory root and a config file.
func Classify(path, root, configPath string) Kind {
	path = filepath.Clean(path)
	switch {
	case path == filepath.Clean(configPath):
		return Config
	case filepath.Dir(path) == filepath.Clean(root) && IsPage(filepath.Base(path)):
		return Page
	}
	return Other
}
