package tui

import (
	"strings"
	"testing"

	"github.com/inkform/galley/internal/model"
)

func TestRenderFooterFormats(t *testing.T) {
	m, err := NewModel(model.EditorConfig{WordsPerMinute: 250}, nil, "", "Hello world. Another line here.")
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	out := m.renderFooter()
	if out == "" {
		t.Fatalf("expected footer output")
	}
	if !containsAll(out, []string{"5 words", "31 chars", "1 para", "2 sent", "< 1 min read"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
}

func TestRenderHeaderShowsOverflow(t *testing.T) {
	m, err := NewModel(model.EditorConfig{LimitKind: "words", LimitValue: 2, WordsPerMinute: 250}, nil, "", "aaa bbb ccc")
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	out := m.renderHeader()
	if !containsAll(out, []string{"untitled", "limit 2 words", "over by 1"}) {
		t.Fatalf("header missing expected segments: %s", out)
	}
}

func TestRenderHeaderNoLimit(t *testing.T) {
	m, err := NewModel(model.EditorConfig{Title: "essay", WordsPerMinute: 250}, nil, "", "")
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	out := m.renderHeader()
	if !containsAll(out, []string{"essay", "no limit"}) {
		t.Fatalf("header missing expected segments: %s", out)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
