package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/inkform/galley/internal/metrics"
	"github.com/inkform/galley/internal/model"
	"github.com/inkform/galley/internal/store"
)

func newTestModel(t *testing.T, cfg model.EditorConfig, initial string) *Model {
	t.Helper()
	if cfg.WordsPerMinute == 0 {
		cfg.WordsPerMinute = 250
	}
	m, err := NewModel(cfg, nil, "", initial)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func TestInsertAndDelete(t *testing.T) {
	m := newTestModel(t, model.EditorConfig{}, "")
	m.insertRunes([]rune("hello"))
	m.insertRunes([]rune{' '})
	m.insertRunes([]rune("world"))
	if got := string(m.content); got != "hello world" {
		t.Fatalf("expected %q, got %q", "hello world", got)
	}
	if m.cursor != 11 {
		t.Fatalf("expected cursor 11, got %d", m.cursor)
	}
	if m.counts.Words != 2 {
		t.Fatalf("expected 2 words, got %d", m.counts.Words)
	}
	if !m.dirty {
		t.Fatalf("expected dirty after edit")
	}

	m.deleteBeforeCursor()
	if got := string(m.content); got != "hello worl" {
		t.Fatalf("expected %q, got %q", "hello worl", got)
	}
	m.moveCursor(-100)
	if m.cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", m.cursor)
	}
	m.deleteAtCursor()
	if got := string(m.content); got != "ello worl" {
		t.Fatalf("expected %q, got %q", "ello worl", got)
	}
}

func TestInsertAtCursor(t *testing.T) {
	m := newTestModel(t, model.EditorConfig{}, "ac")
	m.cursor = 1
	m.insertRunes([]rune{'b'})
	if got := string(m.content); got != "abc" {
		t.Fatalf("expected %q, got %q", "abc", got)
	}
	if m.cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", m.cursor)
	}
}

func TestCursorStartsAtEnd(t *testing.T) {
	m := newTestModel(t, model.EditorConfig{}, "draft text")
	if m.cursor != len(m.content) {
		t.Fatalf("expected cursor at end, got %d", m.cursor)
	}
}

func TestNormalizesLineEndings(t *testing.T) {
	m := newTestModel(t, model.EditorConfig{}, "a\r\nb\rc")
	if got := string(m.content); got != "a\nb\nc" {
		t.Fatalf("expected normalized newlines, got %q", got)
	}
}

func TestVerticalMovement(t *testing.T) {
	m := newTestModel(t, model.EditorConfig{}, "one\ntwo three\nfour")
	m.width = 100

	m.cursor = 0
	m.moveVertical(1)
	if m.cursor != 4 {
		t.Fatalf("expected cursor 4 after down, got %d", m.cursor)
	}
	m.moveLineEnd()
	if m.cursor != 13 {
		t.Fatalf("expected cursor 13 at line end, got %d", m.cursor)
	}
	m.moveVertical(1)
	if m.cursor != 18 {
		t.Fatalf("expected cursor clamped to short line end, got %d", m.cursor)
	}
	m.moveVertical(-1)
	if m.cursor != 8 {
		t.Fatalf("expected cursor 8 after up, got %d", m.cursor)
	}
	m.moveLineStart()
	if m.cursor != 4 {
		t.Fatalf("expected cursor 4 at line start, got %d", m.cursor)
	}
}

func TestRenderRuneStylesOverflow(t *testing.T) {
	m := newTestModel(t, model.EditorConfig{LimitKind: "words", LimitValue: 1}, "aaa bbb")
	m.cursor = 0
	if m.overflow.Boundary != 4 {
		t.Fatalf("expected boundary 4, got %d", m.overflow.Boundary)
	}
	if got := m.renderRune(1); got != textStyle.Render("a") {
		t.Fatalf("expected within-limit style, got %q", got)
	}
	if got := m.renderRune(5); got != overStyle.Render("b") {
		t.Fatalf("expected over-limit style, got %q", got)
	}
}

func TestApplyLimitForm(t *testing.T) {
	m := newTestModel(t, model.EditorConfig{}, "")
	m.kindInput.SetValue("chars")
	m.valueInput.SetValue("120")
	if err := m.applyLimitForm(); err != nil {
		t.Fatalf("apply limit form: %v", err)
	}
	if !m.hasLimit || m.limitKind != metrics.LimitCharacters || m.limitValue != 120 {
		t.Fatalf("unexpected limit state: %v %v %d", m.hasLimit, m.limitKind, m.limitValue)
	}

	m.kindInput.SetValue("bogus")
	if err := m.applyLimitForm(); err == nil {
		t.Fatalf("expected error for unknown limit kind")
	}

	m.kindInput.SetValue("")
	if err := m.applyLimitForm(); err != nil {
		t.Fatalf("clear limit: %v", err)
	}
	if m.hasLimit {
		t.Fatalf("expected limit cleared")
	}
}

func TestNewModelRejectsUnknownLimitKind(t *testing.T) {
	_, err := NewModel(model.EditorConfig{LimitKind: "lines", WordsPerMinute: 250}, nil, "", "")
	if err == nil {
		t.Fatalf("expected error for unknown limit kind")
	}
}

func TestSaveDraftRecordsSnapshot(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "galley.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if cerr := st.Close(); cerr != nil {
			t.Errorf("close store: %v", cerr)
		}
	})

	path := filepath.Join(t.TempDir(), "draft.txt")
	m, err := NewModel(model.EditorConfig{Title: "essay", WordsPerMinute: 250}, st, path, "hello world")
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	m.insertRunes([]rune(" again"))
	m.saveDraft()
	if m.dirty {
		t.Fatalf("expected clean state after save")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read draft: %v", err)
	}
	if string(data) != "hello world again" {
		t.Fatalf("unexpected file content: %q", string(data))
	}

	snaps, err := st.ListSnapshots(context.Background(), model.SnapshotFilter{})
	if err != nil {
		t.Fatalf("list snapshots: %v", err)
	}
	if len(snaps) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(snaps))
	}
	if snaps[0].Title != "essay" || snaps[0].WordCount != 3 {
		t.Fatalf("unexpected snapshot: %+v", snaps[0])
	}
}
