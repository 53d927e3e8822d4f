// Package tui provides the Bubble Tea drafting editor.
package tui

import "github.com/mattn/go-runewidth"

// lineSpan is one display line holding content runes [start, end). hard
// marks a line terminated by a newline rune at end; the newline itself is
// consumed rather than displayed.
type lineSpan struct {
	start int
	end   int
	hard  bool
}

// layoutLines breaks content into display lines at most width cells wide.
// Lines soft-wrap after the last space and break mid-word when a single
// word exceeds the width. A trailing newline yields an empty final line so
// the cursor can sit below it.
func layoutLines(content []rune, width int) []lineSpan {
	if width < 1 {
		width = 1
	}
	spans := []lineSpan{}
	start := 0
	lineWidth := 0
	lastSpace := -1

	i := 0
	for i < len(content) {
		r := content[i]
		if r == '\n' {
			spans = append(spans, lineSpan{start: start, end: i, hard: true})
			i++
			start = i
			lineWidth = 0
			lastSpace = -1
			continue
		}
		w := cellWidth(r)
		if lineWidth+w > width && i > start {
			end := i
			if lastSpace >= start {
				end = lastSpace + 1
			}
			spans = append(spans, lineSpan{start: start, end: end})
			start = end
			lineWidth = 0
			lastSpace = -1
			for j := start; j < i; j++ {
				lineWidth += cellWidth(content[j])
				if content[j] == ' ' {
					lastSpace = j
				}
			}
			continue
		}
		lineWidth += w
		if r == ' ' {
			lastSpace = i
		}
		i++
	}
	return append(spans, lineSpan{start: start, end: len(content)})
}

// cursorLine returns the display line holding the cursor index. A cursor on
// a soft wrap boundary belongs to the following line; a cursor on a consumed
// newline stays at the end of its line.
func cursorLine(spans []lineSpan, cursor int) int {
	for i, sp := range spans {
		if cursor < sp.end {
			return i
		}
		if cursor == sp.end && (sp.hard || i == len(spans)-1) {
			return i
		}
	}
	return len(spans) - 1
}

// cellWidth treats tabs as single cells; the view renders them as spaces.
func cellWidth(r rune) int {
	if r == '\t' {
		return 1
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	return w
}
