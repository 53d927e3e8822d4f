package metrics

import (
	"strings"
	"unicode"
)

// sentenceLookback bounds the backward scan for the token before a period so
// the classifier stays near-linear on texts full of dots.
const sentenceLookback = 20

// abbreviations never terminate a sentence when followed by a period.
// Entries that collide with ordinary English words are left out on purpose.
var abbreviations = map[string]struct{}{
	"mr":     {},
	"mrs":    {},
	"ms":     {},
	"dr":     {},
	"prof":   {},
	"rev":    {},
	"gen":    {},
	"hon":    {},
	"sr":     {},
	"jr":     {},
	"st":     {},
	"ave":    {},
	"blvd":   {},
	"dept":   {},
	"vs":     {},
	"etc":    {},
	"eg":     {},
	"ie":     {},
	"approx": {},
	"inc":    {},
	"ltd":    {},
	"co":     {},
	"corp":   {},
}

// CountSentences returns the number of sentences found by scanning for
// terminal punctuation with abbreviation, initialism, and ellipsis handling.
// A text with at least one word always counts at least one sentence, even
// without terminal punctuation.
func CountSentences(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	runes := []rune(text)
	n := len(runes)

	count := 0
	lastEnd := 0
	found := false

	i := 0
	for i < n {
		switch r := runes[i]; {
		case r == '.' && i+1 < n && runes[i+1] == '.':
			// Ellipsis. The dot run is one marker and only closes a sentence
			// when text follows it.
			j := i + 1
			for j < n && runes[j] == '.' {
				j++
			}
			for j < n && unicode.IsSpace(runes[j]) {
				j++
			}
			if j < n {
				count++
				found = true
				lastEnd = j
			}
			i = j
		case r == '.':
			if !periodTerminates(runes, i) {
				i++
				continue
			}
			j := i + 1
			for j < n && (isTerminalPunct(runes[j]) || unicode.IsSpace(runes[j])) {
				j++
			}
			count++
			found = true
			lastEnd = j
			i = j
		case r == '!' || r == '?':
			j := i
			for j < n && (runes[j] == '!' || runes[j] == '?') {
				j++
			}
			for j < n && unicode.IsSpace(runes[j]) {
				j++
			}
			count++
			found = true
			lastEnd = j
			i = j
		default:
			i++
		}
	}

	if !found {
		return 1
	}
	// An unterminated final clause still counts.
	for j := lastEnd; j < n; j++ {
		if !unicode.IsSpace(runes[j]) {
			count++
			break
		}
	}
	return count
}

func isTerminalPunct(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// periodTerminates classifies the period at index i. Periods after known
// abbreviations never terminate. A period after a single uppercase letter is
// an initial, unless nothing follows or the following text starts a new
// sentence, as in "... went to D.C.".
func periodTerminates(runes []rune, i int) bool {
	word := wordBefore(runes, i)
	if word == "" {
		return true
	}
	if _, ok := abbreviations[strings.ToLower(word)]; ok {
		return false
	}
	wr := []rune(word)
	if len(wr) != 1 || !unicode.IsUpper(wr[0]) {
		return true
	}
	j := i + 1
	for j < len(runes) && unicode.IsSpace(runes[j]) {
		j++
	}
	if j >= len(runes) {
		return true
	}
	if unicode.IsLetter(runes[j]) && j+1 < len(runes) && runes[j+1] == '.' {
		return false
	}
	return !unicode.IsLower(runes[j])
}

// wordBefore returns the run of letters immediately preceding index i,
// scanning back at most sentenceLookback runes.
func wordBefore(runes []rune, i int) string {
	start := i
	for start > 0 && i-start < sentenceLookback && unicode.IsLetter(runes[start-1]) {
		start--
	}
	return string(runes[start:i])
}
