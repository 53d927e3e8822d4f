package metrics

import (
	"errors"
	"fmt"
	"math"
)

// DefaultWordsPerMinute is the reading pace assumed when no value is
// configured.
const DefaultWordsPerMinute = 250

// ErrInvalidPace reports a non-positive words-per-minute configuration.
var ErrInvalidPace = errors.New("words per minute must be positive")

// ReadingTime is a rounded-up reading duration with a display label.
type ReadingTime struct {
	Minutes int
	Label   string
}

// EstimateReadingTime converts a word count into whole minutes at the given
// pace. Estimates under a quarter of a minute collapse to the sub-minute
// label.
func EstimateReadingTime(wordCount, wordsPerMinute int) (ReadingTime, error) {
	if wordsPerMinute <= 0 {
		return ReadingTime{}, ErrInvalidPace
	}
	if wordCount <= 0 {
		return ReadingTime{Minutes: 0, Label: "< 1 min read"}, nil
	}
	raw := float64(wordCount) / float64(wordsPerMinute)
	if raw < 0.25 {
		return ReadingTime{Minutes: 0, Label: "< 1 min read"}, nil
	}
	minutes := int(math.Ceil(raw))
	return ReadingTime{Minutes: minutes, Label: fmt.Sprintf("~%d min read", minutes)}, nil
}
