package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/inkform/galley/internal/model"
)

const (
	sparkChars          = " .:-=+*#%@"
	terminalWidthBackup = 80
)

// RenderHistory prints a word-count trend over snapshots: a summary, then a
// sparkline smoothed with a moving average of the given window. totalWidth
// caps the sparkline; 0 sizes it to the terminal.
func RenderHistory(w io.Writer, snapshots []model.SnapshotSummary, window, totalWidth int) error {
	if len(snapshots) == 0 {
		_, err := fmt.Fprintln(w, "No snapshots found.")
		return err
	}

	counts := make([]float64, len(snapshots))
	peak := snapshots[0]
	for i, snap := range snapshots {
		counts[i] = float64(snap.WordCount)
		if snap.WordCount > peak.WordCount {
			peak = snap
		}
	}
	first := snapshots[0]
	latest := snapshots[len(snapshots)-1]

	if _, err := fmt.Fprintln(w, "Word Count History"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Snapshots: %d\n", len(snapshots)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "First: %d words (%s)\n", first.WordCount, first.SavedAt.Format(savedAtFormat)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Latest: %d words (%s)\n", latest.WordCount, latest.SavedAt.Format(savedAtFormat)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Peak: %d words (%s)\n", peak.WordCount, peak.SavedAt.Format(savedAtFormat)); err != nil {
		return err
	}

	width := totalWidth
	if width <= 0 {
		width = terminalWidth()
	}
	values := fitValues(MovingAverage(counts, window), width)
	if _, err := fmt.Fprintln(w, Sparkline(values)); err != nil {
		return err
	}
	return nil
}

// LastN returns the trailing n summaries; n <= 0 keeps everything.
func LastN(snapshots []model.SnapshotSummary, n int) []model.SnapshotSummary {
	if n <= 0 || len(snapshots) <= n {
		return snapshots
	}
	return snapshots[len(snapshots)-n:]
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// fitValues keeps the trailing values when there are more than fit the
// width.
func fitValues(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		return values
	}
	return values[len(values)-width:]
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
