package metrics

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// SyllableEstimator maps a word token to an estimated syllable count. The
// readability formulas take it as an injected capability so callers can swap
// heuristics.
type SyllableEstimator func(word string) int

// GradeResult is a school-grade readability score with a display label.
type GradeResult struct {
	Grade float64
	Label string
}

// EaseResult is a Flesch Reading Ease score with a display label.
type EaseResult struct {
	Score float64
	Label string
}

// ReadabilityResult carries the three readability scores for a text.
type ReadabilityResult struct {
	FleschKincaid     GradeResult
	ColemanLiau       GradeResult
	FleschReadingEase EaseResult
}

// AnalyzeReadability scores the text with Flesch-Kincaid, Coleman-Liau, and
// Flesch Reading Ease, rounded to one decimal. The second return value is
// false when the text has no words or sentences to score, or when no
// estimator is supplied.
func AnalyzeReadability(text string, estimate SyllableEstimator) (ReadabilityResult, bool) {
	if estimate == nil || strings.TrimSpace(text) == "" {
		return ReadabilityResult{}, false
	}
	words := CountWords(text)
	sentences := CountSentences(text)
	if words == 0 || sentences == 0 {
		return ReadabilityResult{}, false
	}

	totalSyllables := 0
	totalLetters := 0
	for _, tok := range strings.Fields(text) {
		totalSyllables += estimate(tok)
		for _, r := range tok {
			if unicode.Is(unicode.Latin, r) {
				totalLetters++
			}
		}
	}

	wordsPerSentence := float64(words) / float64(sentences)
	syllablesPerWord := float64(totalSyllables) / float64(words)
	lettersPerCent := float64(totalLetters) / float64(words) * 100
	sentencesPerCent := float64(sentences) / float64(words) * 100

	fk := round1(0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59)
	cl := round1(0.0588*lettersPerCent - 0.296*sentencesPerCent - 15.8)
	ease := round1(206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord)

	return ReadabilityResult{
		FleschKincaid:     GradeResult{Grade: fk, Label: gradeLabel(fk)},
		ColemanLiau:       GradeResult{Grade: cl, Label: gradeLabel(cl)},
		FleschReadingEase: EaseResult{Score: ease, Label: easeLabel(ease)},
	}, true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func gradeLabel(grade float64) string {
	g := int(math.Round(grade))
	var desc string
	switch {
	case g <= 1:
		desc = "very easy"
	case g <= 3:
		desc = "easy"
	case g <= 5:
		desc = "fairly easy"
	case g <= 8:
		desc = "plain language"
	case g <= 10:
		desc = "fairly difficult"
	case g <= 12:
		desc = "difficult"
	case g <= 16:
		desc = "college level"
	default:
		desc = "professional/academic"
	}
	return fmt.Sprintf("Grade %d — %s", g, desc)
}

func easeLabel(score float64) string {
	switch s := int(math.Round(score)); {
	case s >= 90:
		return "very easy"
	case s >= 80:
		return "easy"
	case s >= 70:
		return "fairly easy"
	case s >= 60:
		return "standard"
	case s >= 50:
		return "fairly difficult"
	case s >= 30:
		return "difficult"
	default:
		return "very difficult"
	}
}
