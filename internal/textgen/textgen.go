// Package textgen builds synthetic prose with known shape for tests.
package textgen

import (
	"math/rand"
	"strings"
	"unicode"
)

// Generator produces deterministic prose from a word pool.
type Generator struct {
	rnd  *rand.Rand
	pool []string
}

var defaultPool = []string{
	"harbor", "signal", "lantern", "meadow", "copper", "violet",
	"timber", "garnet", "russet", "marble", "cedar", "juniper",
	"ember", "willow", "granite", "clover", "saffron", "indigo",
}

// New returns a Generator over the pool, seeded for reproducible output.
// A nil or empty pool falls back to the built-in word pool.
func New(seed int64, pool []string) *Generator {
	if len(pool) == 0 {
		pool = defaultPool
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed)), pool: pool}
}

// Words picks count words uniformly from the pool.
func (g *Generator) Words(count int) []string {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, g.pool[g.rnd.Intn(len(g.pool))])
	}
	return out
}

// Sentence builds one sentence of wordCount words, capitalized and closed
// with the terminator.
func (g *Generator) Sentence(wordCount int, terminator rune) string {
	words := g.Words(wordCount)
	if len(words) == 0 {
		return ""
	}
	words[0] = capitalize(words[0])
	return strings.Join(words, " ") + string(terminator)
}

// Paragraph builds count sentences of wordsPer words each.
func (g *Generator) Paragraph(count, wordsPer int) string {
	parts := make([]string, 0, count)
	for i := 0; i < count; i++ {
		parts = append(parts, g.Sentence(wordsPer, '.'))
	}
	return strings.Join(parts, " ")
}

// Document builds count paragraphs separated by blank lines.
func (g *Generator) Document(count, sentencesPer, wordsPer int) string {
	parts := make([]string, 0, count)
	for i := 0; i < count; i++ {
		parts = append(parts, g.Paragraph(sentencesPer, wordsPer))
	}
	return strings.Join(parts, "\n\n")
}

func capitalize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
