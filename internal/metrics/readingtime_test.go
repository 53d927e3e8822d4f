package metrics

import (
	"errors"
	"testing"
)

func TestEstimateReadingTime(t *testing.T) {
	got, err := EstimateReadingTime(500, DefaultWordsPerMinute)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	want := ReadingTime{Minutes: 2, Label: "~2 min read"}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestEstimateReadingTimeRoundsUp(t *testing.T) {
	got, err := EstimateReadingTime(251, 250)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if got.Minutes != 2 || got.Label != "~2 min read" {
		t.Fatalf("expected 2 minutes, got %+v", got)
	}
}

func TestEstimateReadingTimeSubMinute(t *testing.T) {
	for _, wc := range []int{0, -5, 62} {
		got, err := EstimateReadingTime(wc, 250)
		if err != nil {
			t.Fatalf("estimate %d: %v", wc, err)
		}
		if got.Minutes != 0 || got.Label != "< 1 min read" {
			t.Fatalf("expected sub-minute label for %d words, got %+v", wc, got)
		}
	}
	// A quarter minute is the threshold for a whole-minute label.
	got, err := EstimateReadingTime(63, 250)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if got.Minutes != 1 || got.Label != "~1 min read" {
		t.Fatalf("expected 1 minute, got %+v", got)
	}
}

func TestEstimateReadingTimeInvalidPace(t *testing.T) {
	for _, wpm := range []int{0, -1} {
		if _, err := EstimateReadingTime(100, wpm); !errors.Is(err, ErrInvalidPace) {
			t.Fatalf("expected ErrInvalidPace for wpm %d, got %v", wpm, err)
		}
	}
}

func TestEstimateReadingTimeMonotonic(t *testing.T) {
	prev := -1
	for wc := 0; wc <= 2000; wc += 7 {
		got, err := EstimateReadingTime(wc, 180)
		if err != nil {
			t.Fatalf("estimate %d: %v", wc, err)
		}
		if got.Minutes < prev {
			t.Fatalf("minutes decreased at %d words: %d -> %d", wc, prev, got.Minutes)
		}
		prev = got.Minutes
	}
}
