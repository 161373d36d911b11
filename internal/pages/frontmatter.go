package pages

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// frontMatter is the optional YAML header of a page:
//
//	---
//	title: Getting started
//	order: 1
//	---
type frontMatter struct {
	Title string `yaml:"title"`
	Order *int   `yaml:"order"`
}

// splitFrontMatter separates a leading YAML block from the markdown body.
// Content without a complete block is returned unchanged as the body.
func splitFrontMatter(src []byte) (frontMatter, []byte, error) {
	var fm frontMatter
	rest, ok := cutLine(src, "---")
	if !ok {
		return fm, src, nil
	}

	for header := rest; len(header) > 0; {
		line, next := nextLine(header)
		if l := string(bytes.TrimRight(line, " \t")); l == "---" || l == "..." {
			block := rest[:len(rest)-len(header)]
			if err := yaml.Unmarshal(block, &fm); err != nil {
				return frontMatter{}, nil, fmt.Errorf("invalid front matter: %w", err)
			}
			return fm, next, nil
		}
		header = next
	}
	return frontMatter{}, src, nil
}

// cutLine removes a first line equal to want.
func cutLine(src []byte, want string) ([]byte, bool) {
	line, rest := nextLine(src)
	if string(bytes.TrimRight(line, " \t")) != want {
		return src, false
	}
	return rest, true
}

// nextLine splits off the first line without its line ending.
func nextLine(src []byte) (line, rest []byte) {
	i := bytes.IndexByte(src, '\n')
	if i < 0 {
		return src, nil
	}
	return bytes.TrimSuffix(src[:i], []byte("\r")), src[i+1:]
}
