package metrics

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultTopWords is the top-frequency list length used by callers without
// an explicit preference.
const DefaultTopWords = 10

// WordCount pairs a case-folded word with its frequency.
type WordCount struct {
	Word  string
	Count int
}

// LongestWord is the longest clean word of a text, original casing kept.
type LongestWord struct {
	Word   string
	Length int
}

// TextStatistics aggregates word-level statistics for a text.
type TextStatistics struct {
	AvgWordLength     float64
	AvgSentenceLength float64
	UniqueWords       int
	Longest           LongestWord
	TopWords          []WordCount
}

// AnalyzeStatistics computes word statistics with the built-in stop-word
// set. topN caps the top-frequency list; a non-positive topN yields none.
func AnalyzeStatistics(text string, topN int) TextStatistics {
	return AnalyzeStatisticsWithStopWords(text, topN, nil)
}

// AnalyzeStatisticsWithStopWords computes word statistics, excluding the
// given stop words from the top-frequency list. A nil set falls back to the
// built-in English one.
func AnalyzeStatisticsWithStopWords(text string, topN int, stop map[string]struct{}) TextStatistics {
	stats := TextStatistics{TopWords: []WordCount{}}
	if strings.TrimSpace(text) == "" {
		return stats
	}
	if stop == nil {
		stop = stopWords
	}

	tokens := strings.Fields(text)
	clean := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if w := cleanWord(tok); w != "" {
			clean = append(clean, w)
		}
	}

	type freqEntry struct {
		count     int
		firstSeen int
	}
	totalLen := 0
	unique := make(map[string]struct{}, len(clean))
	freq := make(map[string]*freqEntry)
	for idx, w := range clean {
		length := utf8.RuneCountInString(w)
		totalLen += length
		if length > stats.Longest.Length {
			stats.Longest = LongestWord{Word: w, Length: length}
		}
		folded := strings.ToLower(w)
		unique[folded] = struct{}{}
		if _, skip := stop[folded]; skip {
			continue
		}
		entry, ok := freq[folded]
		if !ok {
			entry = &freqEntry{firstSeen: idx}
			freq[folded] = entry
		}
		entry.count++
	}

	if len(clean) > 0 {
		stats.AvgWordLength = round2(float64(totalLen) / float64(len(clean)))
	}
	if sentences := CountSentences(text); sentences > 0 {
		stats.AvgSentenceLength = round2(float64(CountWords(text)) / float64(sentences))
	}
	stats.UniqueWords = len(unique)

	if topN > 0 && len(freq) > 0 {
		entries := make([]WordCount, 0, len(freq))
		firstSeen := make(map[string]int, len(freq))
		for w, e := range freq {
			entries = append(entries, WordCount{Word: w, Count: e.count})
			firstSeen[w] = e.firstSeen
		}
		// Ties keep first-occurrence order.
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Count == entries[j].Count {
				return firstSeen[entries[i].Word] < firstSeen[entries[j].Word]
			}
			return entries[i].Count > entries[j].Count
		})
		if len(entries) > topN {
			entries = entries[:topN]
		}
		stats.TopWords = entries
	}
	return stats
}

// cleanWord strips every rune that is not a letter, digit, apostrophe, or
// hyphen, preserving case.
func cleanWord(token string) string {
	var b strings.Builder
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '’' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// stopWords holds common English function words excluded from top-frequency
// analysis.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"and": {}, "or": {}, "but": {}, "nor": {}, "so": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "to": {}, "from": {}, "by": {},
	"with": {}, "about": {}, "as": {}, "into": {}, "over": {}, "under": {},
	"after": {}, "before": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"me": {}, "him": {}, "her": {}, "us": {}, "them": {},
	"my": {}, "your": {}, "his": {}, "its": {}, "our": {}, "their": {},
	"this": {}, "that": {}, "these": {}, "those": {},
	"am": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "can": {}, "could": {}, "should": {},
}
