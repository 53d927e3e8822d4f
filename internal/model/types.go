// Package model defines shared data structures.
package model

import "time"

// EditorConfig defines settings for an editing session.
type EditorConfig struct {
	LimitKind      string
	LimitValue     int
	WordsPerMinute int
	Title          string
}

// StatsConfig defines options for the statistics panel and report.
type StatsConfig struct {
	TopWords       int
	WordsPerMinute int
	StopWordsPath  string
}

// HistoryConfig defines filters and options for snapshot history output.
type HistoryConfig struct {
	Title  string
	Since  *time.Time
	Last   int
	Window int
}

// Snapshot captures a saved draft together with its word count.
type Snapshot struct {
	ID         int64
	SavedAt    time.Time
	Title      string
	SourcePath string
	WordCount  int
	Content    string
}

// SnapshotSummary summarizes a snapshot for listings and history.
type SnapshotSummary struct {
	ID        int64
	SavedAt   time.Time
	Title     string
	WordCount int
}

// SnapshotFilter selects snapshots for listings and history.
type SnapshotFilter struct {
	Title string
	Since *time.Time
	Last  int
}
