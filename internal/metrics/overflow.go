package metrics

import (
	"fmt"
	"strings"
	"unicode"
)

// LimitKind selects the unit a text limit is measured in.
type LimitKind int

// Limit kinds.
const (
	LimitWords LimitKind = iota
	LimitCharacters
	LimitParagraphs
)

// String implements fmt.Stringer.
func (k LimitKind) String() string {
	switch k {
	case LimitWords:
		return "words"
	case LimitCharacters:
		return "characters"
	case LimitParagraphs:
		return "paragraphs"
	default:
		return fmt.Sprintf("LimitKind(%d)", int(k))
	}
}

// ParseLimitKind parses a limit kind name as spelled in flags and config
// files.
func ParseLimitKind(s string) (LimitKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "words", "word":
		return LimitWords, nil
	case "characters", "chars", "char":
		return LimitCharacters, nil
	case "paragraphs", "paragraph":
		return LimitParagraphs, nil
	default:
		return 0, fmt.Errorf("unknown limit kind %q (want words, characters, or paragraphs)", s)
	}
}

// OverflowResult reports where a text starts exceeding a limit. Boundary is
// a rune index in [0, rune length]; the runes from Boundary onward are
// exactly the over-limit portion. When IsOver is false, Boundary equals the
// rune length and Amount is 0.
type OverflowResult struct {
	IsOver   bool
	Amount   int
	Boundary int
}

// Split divides text at the overflow boundary into its within-limit and
// over-limit portions.
func (r OverflowResult) Split(text string) (within, over string) {
	runes := []rune(text)
	b := r.Boundary
	if b < 0 {
		b = 0
	}
	if b > len(runes) {
		b = len(runes)
	}
	return string(runes[:b]), string(runes[b:])
}

// DetectOverflow finds the rune index at which text starts exceeding the
// limit. A negative limit is treated as zero. Text whose total is within
// the limit never reports over, even when the limit is zero.
func DetectOverflow(text string, kind LimitKind, limit int) OverflowResult {
	if limit < 0 {
		limit = 0
	}
	runes := []rune(text)
	switch kind {
	case LimitCharacters:
		return overflowByCharacters(runes, limit)
	case LimitParagraphs:
		return overflowByParagraphs(runes, limit)
	default:
		return overflowByWords(runes, limit)
	}
}

func noOverflow(runes []rune) OverflowResult {
	return OverflowResult{IsOver: false, Amount: 0, Boundary: len(runes)}
}

func overflowByWords(runes []rune, limit int) OverflowResult {
	total := countWordRuns(runes)
	if total <= limit {
		return noOverflow(runes)
	}
	if limit == 0 {
		return OverflowResult{IsOver: true, Amount: total, Boundary: 0}
	}
	n := len(runes)
	i := 0
	for consumed := 0; consumed < limit; consumed++ {
		for i < n && unicode.IsSpace(runes[i]) {
			i++
		}
		for i < n && !unicode.IsSpace(runes[i]) {
			i++
		}
	}
	// The boundary sits on the first rune of the next word, not on the
	// separating whitespace.
	for i < n && unicode.IsSpace(runes[i]) {
		i++
	}
	return OverflowResult{IsOver: true, Amount: total - limit, Boundary: i}
}

func overflowByCharacters(runes []rune, limit int) OverflowResult {
	if len(runes) <= limit {
		return noOverflow(runes)
	}
	return OverflowResult{IsOver: true, Amount: len(runes) - limit, Boundary: limit}
}

func overflowByParagraphs(runes []rune, limit int) OverflowResult {
	starts := paragraphStarts(runes)
	total := len(starts)
	if total <= limit {
		return noOverflow(runes)
	}
	if limit == 0 {
		return OverflowResult{IsOver: true, Amount: total, Boundary: 0}
	}
	return OverflowResult{IsOver: true, Amount: total - limit, Boundary: starts[limit]}
}

func countWordRuns(runes []rune) int {
	count := 0
	inWord := false
	for _, r := range runes {
		if unicode.IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			count++
			inWord = true
		}
	}
	return count
}
