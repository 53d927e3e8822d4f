// Package syllable estimates English syllable counts for readability
// scoring.
package syllable

import "strings"

// Estimate returns an estimated syllable count for a word using English
// vowel-group heuristics: short words count one, silent endings are trimmed,
// and every run of vowels counts once. Every non-empty token yields at
// least 1, including digit and symbol runs; only the empty string yields 0.
func Estimate(word string) int {
	if word == "" {
		return 0
	}
	w := letters(word)
	if len(w) <= 3 {
		return 1
	}
	w = trimSilentEnding(w)
	count := 0
	prevVowel := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if count < 1 {
		return 1
	}
	return count
}

// letters lowercases the word and keeps only ASCII letters, which is the
// alphabet the heuristics are tuned for.
func letters(word string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// trimSilentEnding drops silent -e, -es, and -ed endings. Words ending in
// "le" keep the ending, which is voiced in words like "table".
func trimSilentEnding(w string) string {
	if strings.HasSuffix(w, "le") || strings.HasSuffix(w, "les") {
		return w
	}
	for _, suffix := range []string{"es", "ed", "e"} {
		if strings.HasSuffix(w, suffix) {
			return w[:len(w)-len(suffix)]
		}
	}
	return w
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
