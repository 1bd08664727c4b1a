package docs

import (
	"bufio"
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopicsMatchReadme keeps the readme index and the topic files in
// sync, both ways: every topic the readme lists must load, and every
// topic file must be listed in the readme.
func TestTopicsMatchReadme(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			listed = append(listed, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	if len(listed) == 0 {
		t.Fatal("readme.md lists no topics")
	}

	for _, name := range listed {
		t.Run("load_"+name, func(t *testing.T) {
			if _, err := Topic(name); err != nil {
				t.Errorf("failed to get topic %q: %v", name, err)
			}
		})
	}

	names, err := Topics()
	if err != nil {
		t.Fatalf("Topics() error = %v", err)
	}
	for _, name := range names {
		if !slices.Contains(listed, name) {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

// TestTopicsStartWithTitle parses every topic as markdown and checks it
// opens with a level-1 heading, so concatenated output stays navigable.
func TestTopicsStartWithTitle(t *testing.T) {
	names, err := Topics()
	if err != nil {
		t.Fatalf("Topics() error = %v", err)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			content, err := Topic(name)
			if err != nil {
				t.Fatalf("Topic(%q) error = %v", name, err)
			}

			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			first := root.FirstChild()
			if first == nil {
				t.Fatalf("topic %q is empty", name)
			}
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("topic %q does not start with a heading, got %s", name, first.Kind())
			}
			if heading.Level != 1 {
				t.Errorf("topic %q opens with a level %d heading, want level 1", name, heading.Level)
			}
		})
	}
}

func TestTopicUnknown(t *testing.T) {
	if _, err := Topic("no-such-topic"); err == nil {
		t.Error("Topic() on an unknown name: err = nil, want an error")
	}
}

func TestTopicStarExpandsAll(t *testing.T) {
	all, err := Topic("*")
	if err != nil {
		t.Fatalf("Topic(*) error = %v", err)
	}
	names, err := Topics()
	if err != nil {
		t.Fatalf("Topics() error = %v", err)
	}
	for _, name := range names {
		content, err := Topic(name)
		if err != nil {
			t.Fatalf("Topic(%q) error = %v", name, err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("Topic(*) does not contain topic %q", name)
		}
	}
}
