package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/inkform/galley/internal/metrics"
	"github.com/inkform/galley/internal/model"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	cols := []column{{name: "Word"}, {name: "Count", right: true}}
	rows := [][]string{
		{"dog", "12"},
		{"sleeps", "3"},
	}

	lines := formatTable(cols, rows)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Word   Count" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "dog       12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "sleeps     3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestRenderCounts(t *testing.T) {
	var buf bytes.Buffer
	counts := metrics.CountResult{Words: 12, Characters: 61, CharactersNoSpaces: 50, Paragraphs: 1, Sentences: 2}
	rt := metrics.ReadingTime{Minutes: 0, Label: "< 1 min read"}
	if err := RenderCounts(&buf, counts, rt); err != nil {
		t.Fatalf("render counts: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Words: 12", "Characters (no spaces): 50", "Reading time: < 1 min read"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderStatistics(t *testing.T) {
	var buf bytes.Buffer
	stats := metrics.TextStatistics{
		AvgWordLength:     3.92,
		AvgSentenceLength: 6,
		UniqueWords:       9,
		Longest:           metrics.LongestWord{Word: "sleeps", Length: 6},
		TopWords:          []metrics.WordCount{{Word: "dog", Count: 2}},
	}
	if err := RenderStatistics(&buf, stats); err != nil {
		t.Fatalf("render statistics: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Avg word length: 3.92", "Longest word: sleeps (6)", "Top Words", "dog"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderReadabilityAbsent(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderReadability(&buf, metrics.ReadabilityResult{}, false); err != nil {
		t.Fatalf("render readability: %v", err)
	}
	if !strings.Contains(buf.String(), "Not enough text to score.") {
		t.Fatalf("expected absent notice, got:\n%s", buf.String())
	}
}

func TestRenderSnapshotsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSnapshots(&buf, nil); err != nil {
		t.Fatalf("render snapshots: %v", err)
	}
	if !strings.Contains(buf.String(), "No snapshots found.") {
		t.Fatalf("expected empty notice, got:\n%s", buf.String())
	}
}

func TestRenderSnapshots(t *testing.T) {
	var buf bytes.Buffer
	snaps := []model.SnapshotSummary{
		{ID: 1, SavedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), Title: "draft", WordCount: 120},
		{ID: 2, SavedAt: time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC), Title: "draft", WordCount: 250},
	}
	if err := RenderSnapshots(&buf, snaps); err != nil {
		t.Fatalf("render snapshots: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"ID", "2024-03-01 09:30", "250", "draft"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
