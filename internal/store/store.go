// Package store handles SQLite persistence for draft snapshots.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/inkform/galley/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for snapshot data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY,
			saved_at TEXT NOT NULL,
			title TEXT NOT NULL,
			source_path TEXT NOT NULL,
			word_count INTEGER NOT NULL,
			content TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_saved_at ON snapshots(saved_at);`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_title ON snapshots(title);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSnapshot stores a saved draft and returns its id.
func (s *Store) InsertSnapshot(ctx context.Context, snap model.Snapshot) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (saved_at, title, source_path, word_count, content)
		 VALUES (?, ?, ?, ?, ?)`,
		snap.SavedAt.Format(time.RFC3339Nano),
		snap.Title,
		snap.SourcePath,
		snap.WordCount,
		snap.Content,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListSnapshots returns snapshot summaries matching the filter, oldest first.
func (s *Store) ListSnapshots(ctx context.Context, filter model.SnapshotFilter) ([]model.SnapshotSummary, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Title != "" {
		clauses = append(clauses, "title = ?")
		args = append(args, filter.Title)
	}
	if filter.Since != nil {
		clauses = append(clauses, "saved_at >= ?")
		args = append(args, filter.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, saved_at, title, word_count
		FROM snapshots
		WHERE %s
		ORDER BY saved_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var snapshots []model.SnapshotSummary
	for rows.Next() {
		var summary model.SnapshotSummary
		var savedAt string
		if err := rows.Scan(&summary.ID, &savedAt, &summary.Title, &summary.WordCount); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, savedAt)
		if err != nil {
			return nil, err
		}
		summary.SavedAt = parsed
		snapshots = append(snapshots, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return snapshots, nil
}

// GetSnapshot loads a full snapshot by id.
func (s *Store) GetSnapshot(ctx context.Context, id int64) (model.Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, saved_at, title, source_path, word_count, content
		 FROM snapshots
		 WHERE id = ?`, id)
	var snap model.Snapshot
	var savedAt string
	if err := row.Scan(&snap.ID, &savedAt, &snap.Title, &snap.SourcePath, &snap.WordCount, &snap.Content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Snapshot{}, fmt.Errorf("snapshot %d not found", id)
		}
		return model.Snapshot{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, savedAt)
	if err != nil {
		return model.Snapshot{}, err
	}
	snap.SavedAt = parsed
	return snap, nil
}
