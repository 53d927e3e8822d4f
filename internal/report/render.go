// Package report renders analysis results and snapshot history as plain
// text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/inkform/galley/internal/metrics"
	"github.com/inkform/galley/internal/model"
)

const savedAtFormat = "2006-01-02 15:04"

// RenderCounts prints the basic counts and reading time for a text.
func RenderCounts(w io.Writer, counts metrics.CountResult, rt metrics.ReadingTime) error {
	lines := []string{
		fmt.Sprintf("Words: %d", counts.Words),
		fmt.Sprintf("Characters: %d", counts.Characters),
		fmt.Sprintf("Characters (no spaces): %d", counts.CharactersNoSpaces),
		fmt.Sprintf("Paragraphs: %d", counts.Paragraphs),
		fmt.Sprintf("Sentences: %d", counts.Sentences),
		fmt.Sprintf("Reading time: %s", rt.Label),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderStatistics prints word statistics and the top-frequency table.
func RenderStatistics(w io.Writer, stats metrics.TextStatistics) error {
	if _, err := fmt.Fprintln(w, "Statistics"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg word length: %.2f\n", stats.AvgWordLength); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg sentence length: %.2f\n", stats.AvgSentenceLength); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Unique words: %d\n", stats.UniqueWords); err != nil {
		return err
	}
	if stats.Longest.Word != "" {
		if _, err := fmt.Fprintf(w, "Longest word: %s (%d)\n", stats.Longest.Word, stats.Longest.Length); err != nil {
			return err
		}
	}
	if len(stats.TopWords) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Top Words"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(stats.TopWords))
	for _, wc := range stats.TopWords {
		rows = append(rows, []string{wc.Word, fmt.Sprintf("%d", wc.Count)})
	}
	cols := []column{{name: "Word"}, {name: "Count", right: true}}
	for _, line := range formatTable(cols, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderReadability prints the readability scores, or a short notice when
// the text is too small to score.
func RenderReadability(w io.Writer, res metrics.ReadabilityResult, ok bool) error {
	if _, err := fmt.Fprintln(w, "Readability"); err != nil {
		return err
	}
	if !ok {
		_, err := fmt.Fprintln(w, "Not enough text to score.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Flesch-Kincaid: %.1f (%s)\n", res.FleschKincaid.Grade, res.FleschKincaid.Label); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Coleman-Liau: %.1f (%s)\n", res.ColemanLiau.Grade, res.ColemanLiau.Label); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Reading ease: %.1f (%s)\n", res.FleschReadingEase.Score, res.FleschReadingEase.Label); err != nil {
		return err
	}
	return nil
}

// RenderSnapshots prints a table of stored snapshots.
func RenderSnapshots(w io.Writer, snapshots []model.SnapshotSummary) error {
	if len(snapshots) == 0 {
		_, err := fmt.Fprintln(w, "No snapshots found.")
		return err
	}
	rows := make([][]string, 0, len(snapshots))
	for _, snap := range snapshots {
		rows = append(rows, []string{
			fmt.Sprintf("%d", snap.ID),
			snap.SavedAt.Format(savedAtFormat),
			fmt.Sprintf("%d", snap.WordCount),
			snap.Title,
		})
	}
	cols := []column{
		{name: "ID", right: true},
		{name: "Saved"},
		{name: "Words", right: true},
		{name: "Title"},
	}
	for _, line := range formatTable(cols, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

type column struct {
	name  string
	right bool
}

// formatTable lays out rows under the column headers, sizing every column to
// its widest cell by display width.
func formatTable(cols []column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}
	widths := make([]int, len(cols))
	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = col.name
		widths[i] = runewidth.StringWidth(col.name)
	}
	for _, row := range rows {
		for i := range cols {
			if i >= len(row) {
				continue
			}
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(header, widths, cols))
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, cols))
	}
	return lines
}

func formatRow(row []string, widths []int, cols []column) string {
	var b strings.Builder
	for i := range cols {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(padCell(cell, widths[i], cols[i].right))
	}
	return b.String()
}

func padCell(value string, width int, rightAlign bool) string {
	padding := width - runewidth.StringWidth(value)
	if padding <= 0 {
		return value
	}
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}
