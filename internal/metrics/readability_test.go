package metrics

import (
	"reflect"
	"testing"
)

// oneSyllable keeps the formula checks hand-computable.
func oneSyllable(string) int { return 1 }

func TestAnalyzeReadabilityAbsent(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		if _, ok := AnalyzeReadability(text, oneSyllable); ok {
			t.Fatalf("expected absent result for %q", text)
		}
	}
	if _, ok := AnalyzeReadability("some text", nil); ok {
		t.Fatalf("expected absent result without an estimator")
	}
}

func TestAnalyzeReadabilityScores(t *testing.T) {
	// 3 words, 1 sentence, 3 syllables, 7 Latin letters.
	res, ok := AnalyzeReadability("Go is fun.", oneSyllable)
	if !ok {
		t.Fatalf("expected a result")
	}
	if res.FleschKincaid.Grade != -2.6 {
		t.Fatalf("expected Flesch-Kincaid -2.6, got %v", res.FleschKincaid.Grade)
	}
	if res.ColemanLiau.Grade != -11.9 {
		t.Fatalf("expected Coleman-Liau -11.9, got %v", res.ColemanLiau.Grade)
	}
	if res.FleschReadingEase.Score != 119.2 {
		t.Fatalf("expected Reading Ease 119.2, got %v", res.FleschReadingEase.Score)
	}
	if res.FleschReadingEase.Label != "very easy" {
		t.Fatalf("expected very easy, got %q", res.FleschReadingEase.Label)
	}
}

func TestAnalyzeReadabilityCountsLatinLettersOnly(t *testing.T) {
	// "héllo." has 5 letters once punctuation is dropped; the accented
	// vowel still counts as Latin.
	res, ok := AnalyzeReadability("héllo.", oneSyllable)
	if !ok {
		t.Fatalf("expected a result")
	}
	// letters=5, words=1, sentences=1:
	// 0.0588*500 - 0.296*100 - 15.8 = -16
	if res.ColemanLiau.Grade != -16 {
		t.Fatalf("expected Coleman-Liau -16, got %v", res.ColemanLiau.Grade)
	}
}

func TestGradeLabels(t *testing.T) {
	for grade, want := range map[float64]string{
		0.8:  "Grade 1 — very easy",
		2.4:  "Grade 2 — easy",
		4.6:  "Grade 5 — fairly easy",
		7.0:  "Grade 7 — plain language",
		9.5:  "Grade 10 — fairly difficult",
		11.2: "Grade 11 — difficult",
		14.9: "Grade 15 — college level",
		18.3: "Grade 18 — professional/academic",
	} {
		if got := gradeLabel(grade); got != want {
			t.Fatalf("expected %q for %v, got %q", want, grade, got)
		}
	}
}

func TestEaseLabels(t *testing.T) {
	for score, want := range map[float64]string{
		95: "very easy",
		85: "easy",
		75: "fairly easy",
		65: "standard",
		55: "fairly difficult",
		40: "difficult",
		10: "very difficult",
	} {
		if got := easeLabel(score); got != want {
			t.Fatalf("expected %q for %v, got %q", want, score, got)
		}
	}
}

func TestAnalyzeReadabilityIdempotent(t *testing.T) {
	text := "Readers come first. Write plainly for them."
	first, ok1 := AnalyzeReadability(text, oneSyllable)
	second, ok2 := AnalyzeReadability(text, oneSyllable)
	if !ok1 || !ok2 {
		t.Fatalf("expected results from both calls")
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}
