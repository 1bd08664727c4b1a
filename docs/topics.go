// Package docs embeds the user documentation, one markdown file per
// topic, so the binary can explain itself without a network or an
// installed manual.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Topic returns the markdown content of one topic. The name "*" expands
// to every topic, concatenated in alphabetical order.
func Topic(name string) (string, error) {
	if name == "*" {
		names, err := Topics()
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for _, n := range names {
			content, err := Topic(n)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
		return b.String(), nil
	}

	content, err := docs.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics lists the available topic names in alphabetical order. The
// readme is the index of the others and is not itself a topic.
func Topics() ([]string, error) {
	var names []string
	err := fs.WalkDir(docs, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if name == "readme" {
			return nil
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}
