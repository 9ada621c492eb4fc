package docs

import (
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics returns the topic names listed in readme.md, as the text
// before the colon of each top level list item.
func readmeTopics(t *testing.T) []string {
	t.Helper()

	content, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("failed to read readme.md: %v", err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var topics []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		item, ok := n.(*ast.ListItem)
		if !ok {
			return ast.WalkContinue, nil
		}
		var line strings.Builder
		for i := 0; i < item.FirstChild().Lines().Len(); i++ {
			seg := item.FirstChild().Lines().At(i)
			line.Write(seg.Value(content))
		}
		name, _, found := strings.Cut(line.String(), ":")
		if found {
			topics = append(topics, strings.TrimSpace(name))
		}
		return ast.WalkSkipChildren, nil
	})
	return topics
}

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md exists, and every topic is listed.
	listed := readmeTopics(t)
	if len(listed) == 0 {
		t.Fatal("no topic found in readme.md")
	}

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	if diff := cmp.Diff(all, slices.Sorted(slices.Values(listed))); diff != "" {
		t.Errorf("topics and readme.md list differ (-files +readme):\n%s", diff)
	}
}

func TestGetTopics(t *testing.T) {
	got, err := GetTopics("menu", "sorting")
	if err != nil {
		t.Fatalf("GetTopics() error = %v", err)
	}
	if !strings.Contains(got, "# Interactive menu") || !strings.Contains(got, "# Sorting") {
		t.Errorf("GetTopics() is missing a topic:\n%s", got)
	}

	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) error = %v", err)
	}
	if !strings.Contains(all, "# Configuration") {
		t.Errorf("GetTopic(*) is missing the config topic")
	}

	if _, err := GetTopic("nope"); err == nil {
		t.Error("expected error for unknown topic")
	}
}
