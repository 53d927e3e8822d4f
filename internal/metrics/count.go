// Package metrics computes counts, overflow boundaries, statistics,
// readability scores, and reading-time estimates for raw text.
//
// Every function is pure and re-scans the full text on each call, so callers
// may invoke them per keystroke and from concurrent call sites without
// coordination. All positions and lengths are rune counts.
package metrics

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CountResult aggregates the basic counts for a text.
type CountResult struct {
	Words              int
	Characters         int
	CharactersNoSpaces int
	Paragraphs         int
	Sentences          int
}

// CountAll computes every basic count in one call.
func CountAll(text string) CountResult {
	return CountResult{
		Words:              CountWords(text),
		Characters:         CountCharacters(text, true),
		CharactersNoSpaces: CountCharacters(text, false),
		Paragraphs:         CountParagraphs(text),
		Sentences:          CountSentences(text),
	}
}

// CountWords returns the number of whitespace-delimited words. Hyphenated
// compounds and digit runs count as single words; whitespace classification
// is Unicode-aware.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountCharacters returns the rune length of the text, excluding whitespace
// runes when includeSpaces is false. Whitespace-only text counts as 0 in
// both modes.
func CountCharacters(text string, includeSpaces bool) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	if includeSpaces {
		return utf8.RuneCountInString(text)
	}
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}

// CountParagraphs returns the number of blocks separated by blank lines.
// Blocks that hold only whitespace are not counted.
func CountParagraphs(text string) int {
	return len(paragraphStarts([]rune(text)))
}

// paragraphStarts returns the index of the first visible rune of every
// counted paragraph. Paragraphs are separated by runs of two or more line
// breaks, where a break is "\n" or "\r\n" (mixed styles allowed); blocks
// without visible content are skipped. CountParagraphs and the paragraph
// overflow walk share this scan so they always agree on paragraph breaks.
func paragraphStarts(runes []rune) []int {
	var starts []int
	n := len(runes)
	blockStart := 0
	flush := func(end int) {
		for j := blockStart; j < end; j++ {
			if !unicode.IsSpace(runes[j]) {
				starts = append(starts, j)
				return
			}
		}
	}
	i := 0
	for i < n {
		breaks, next := lineBreakRun(runes, i)
		if breaks >= 2 {
			flush(i)
			blockStart = next
			i = next
			continue
		}
		if breaks == 1 {
			// Single break stays inside the block.
			i = next
			continue
		}
		i++
	}
	flush(n)
	return starts
}

// lineBreakRun counts consecutive line breaks starting at i and returns the
// count together with the index just past the run. A CRLF pair is one break.
func lineBreakRun(runes []rune, i int) (int, int) {
	count := 0
	for i < len(runes) {
		switch {
		case runes[i] == '\n':
			i++
			count++
		case runes[i] == '\r' && i+1 < len(runes) && runes[i+1] == '\n':
			i += 2
			count++
		default:
			return count, i
		}
	}
	return count, i
}
