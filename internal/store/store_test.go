package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/inkform/galley/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	st, err := Open(filepath.Join(dir, "galley.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestInsertAndGetSnapshot(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	snap := model.Snapshot{
		SavedAt:    time.Unix(1700000000, 0).UTC(),
		Title:      "draft",
		SourcePath: "/tmp/draft.txt",
		WordCount:  42,
		Content:    "Hello world.\n\nSecond paragraph.",
	}
	id, err := st.InsertSnapshot(ctx, snap)
	if err != nil {
		t.Fatalf("insert snapshot: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected non-zero id")
	}

	got, err := st.GetSnapshot(ctx, id)
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if got.Title != snap.Title || got.WordCount != snap.WordCount || got.Content != snap.Content {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
	if !got.SavedAt.Equal(snap.SavedAt) {
		t.Fatalf("expected saved_at %v, got %v", snap.SavedAt, got.SavedAt)
	}
}

func TestGetSnapshotMissing(t *testing.T) {
	st := openTestStore(t)
	if _, err := st.GetSnapshot(context.Background(), 99); err == nil {
		t.Fatalf("expected error for missing snapshot")
	}
}

func TestListSnapshotsFilters(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Unix(1700000000, 0).UTC()
	for i := 0; i < 4; i++ {
		title := "draft"
		if i%2 == 1 {
			title = "essay"
		}
		_, err := st.InsertSnapshot(ctx, model.Snapshot{
			SavedAt:   base.Add(time.Duration(i) * time.Hour),
			Title:     title,
			WordCount: 100 * (i + 1),
			Content:   "text",
		})
		if err != nil {
			t.Fatalf("insert snapshot %d: %v", i, err)
		}
	}

	all, err := st.ListSnapshots(ctx, model.SnapshotFilter{})
	if err != nil {
		t.Fatalf("list snapshots: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 snapshots, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].SavedAt.Before(all[i-1].SavedAt) {
			t.Fatalf("expected ascending order, got %+v", all)
		}
	}

	drafts, err := st.ListSnapshots(ctx, model.SnapshotFilter{Title: "draft"})
	if err != nil {
		t.Fatalf("list drafts: %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}

	since := base.Add(90 * time.Minute)
	recent, err := st.ListSnapshots(ctx, model.SnapshotFilter{Since: &since})
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent snapshots, got %d", len(recent))
	}
	if recent[0].WordCount != 300 {
		t.Fatalf("expected first recent word count 300, got %d", recent[0].WordCount)
	}
}
