package metrics

import (
	"reflect"
	"testing"
)

func TestAnalyzeStatistics(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. The dog sleeps."
	stats := AnalyzeStatistics(text, 3)

	if stats.AvgWordLength != 3.92 {
		t.Fatalf("expected avg word length 3.92, got %v", stats.AvgWordLength)
	}
	if stats.AvgSentenceLength != 6 {
		t.Fatalf("expected avg sentence length 6, got %v", stats.AvgSentenceLength)
	}
	if stats.UniqueWords != 9 {
		t.Fatalf("expected 9 unique words, got %d", stats.UniqueWords)
	}
	if stats.Longest != (LongestWord{Word: "sleeps", Length: 6}) {
		t.Fatalf("unexpected longest word: %+v", stats.Longest)
	}
	want := []WordCount{{Word: "dog", Count: 2}, {Word: "quick", Count: 1}, {Word: "brown", Count: 1}}
	if !reflect.DeepEqual(stats.TopWords, want) {
		t.Fatalf("expected top words %v, got %v", want, stats.TopWords)
	}
}

func TestAnalyzeStatisticsEmpty(t *testing.T) {
	for _, text := range []string{"", "  \n "} {
		stats := AnalyzeStatistics(text, 10)
		if stats.AvgWordLength != 0 || stats.AvgSentenceLength != 0 || stats.UniqueWords != 0 {
			t.Fatalf("expected zero stats for %q, got %+v", text, stats)
		}
		if stats.Longest != (LongestWord{}) {
			t.Fatalf("expected empty longest word, got %+v", stats.Longest)
		}
		if len(stats.TopWords) != 0 {
			t.Fatalf("expected no top words, got %v", stats.TopWords)
		}
	}
}

func TestAnalyzeStatisticsCleansTokens(t *testing.T) {
	stats := AnalyzeStatistics(`"Hello!" (world)`, 10)
	if stats.AvgWordLength != 5 {
		t.Fatalf("expected avg word length 5, got %v", stats.AvgWordLength)
	}
	if stats.UniqueWords != 2 {
		t.Fatalf("expected 2 unique words, got %d", stats.UniqueWords)
	}
	if stats.Longest.Word != "Hello" {
		t.Fatalf("expected longest word Hello, got %q", stats.Longest.Word)
	}
}

func TestAnalyzeStatisticsKeepsApostropheAndHyphen(t *testing.T) {
	stats := AnalyzeStatistics("don't well-known don't", 10)
	if stats.Longest != (LongestWord{Word: "well-known", Length: 10}) {
		t.Fatalf("unexpected longest word: %+v", stats.Longest)
	}
	want := []WordCount{{Word: "don't", Count: 2}, {Word: "well-known", Count: 1}}
	if !reflect.DeepEqual(stats.TopWords, want) {
		t.Fatalf("expected top words %v, got %v", want, stats.TopWords)
	}
}

func TestAnalyzeStatisticsTieBreakFirstOccurrence(t *testing.T) {
	stats := AnalyzeStatistics("beta alpha beta alpha gamma", 10)
	want := []WordCount{{Word: "beta", Count: 2}, {Word: "alpha", Count: 2}, {Word: "gamma", Count: 1}}
	if !reflect.DeepEqual(stats.TopWords, want) {
		t.Fatalf("expected top words %v, got %v", want, stats.TopWords)
	}
}

func TestAnalyzeStatisticsExcludesStopWords(t *testing.T) {
	stats := AnalyzeStatistics("the the the cat", 10)
	want := []WordCount{{Word: "cat", Count: 1}}
	if !reflect.DeepEqual(stats.TopWords, want) {
		t.Fatalf("expected top words %v, got %v", want, stats.TopWords)
	}
	// Stop words still count as unique words.
	if stats.UniqueWords != 2 {
		t.Fatalf("expected 2 unique words, got %d", stats.UniqueWords)
	}
}

func TestAnalyzeStatisticsCustomStopWords(t *testing.T) {
	stop := map[string]struct{}{"cat": {}}
	stats := AnalyzeStatisticsWithStopWords("the cat sat", 10, stop)
	want := []WordCount{{Word: "the", Count: 1}, {Word: "sat", Count: 1}}
	if !reflect.DeepEqual(stats.TopWords, want) {
		t.Fatalf("expected top words %v, got %v", want, stats.TopWords)
	}
}

func TestAnalyzeStatisticsTopNCap(t *testing.T) {
	stats := AnalyzeStatistics("one two three four five", 2)
	if len(stats.TopWords) != 2 {
		t.Fatalf("expected 2 top words, got %d", len(stats.TopWords))
	}
	if got := AnalyzeStatistics("one two", 0); len(got.TopWords) != 0 {
		t.Fatalf("expected no top words for topN=0, got %v", got.TopWords)
	}
}

func TestAnalyzeStatisticsIdempotent(t *testing.T) {
	text := "Repeat me. Repeat me again!"
	first := AnalyzeStatistics(text, 5)
	second := AnalyzeStatistics(text, 5)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}
