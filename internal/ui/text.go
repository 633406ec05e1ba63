package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// tabWidth matches lipgloss, which draws a tab as four spaces.
const tabWidth = 4

const ellipsis = "..."

// FitWidth cuts s to at most width cells, marking the cut with an ellipsis
// when there is room for one.
func FitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	tail := ellipsis
	if width < len(ellipsis) {
		tail = ""
	}
	return ansi.Truncate(s, width, tail)
}

// Line is one wrapped line of a string. Start is the rune index of the
// line's first rune in the original string.
type Line struct {
	Start int
	Runes []rune
}

// End returns the rune index just past the line.
func (l Line) End() int { return l.Start + len(l.Runes) }

// Width returns the line's width in cells as drawn.
func (l Line) Width() int {
	return cellWidth(l.Runes)
}

// WrapRunes hard-wraps s at width cells, breaking on any rune. Newlines end
// a line and are not part of it. A width <= 0 disables wrapping.
func WrapRunes(s string, width int) []Line {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	var lines []Line
	start := 0
	cur := 0
	for i, r := range runes {
		if r == '\n' {
			lines = append(lines, Line{Start: start, Runes: runes[start:i]})
			start, cur = i+1, 0
			continue
		}
		w := runeCells(r)
		if width > 0 && cur+w > width && i > start {
			lines = append(lines, Line{Start: start, Runes: runes[start:i]})
			start, cur = i, 0
		}
		cur += w
	}
	lines = append(lines, Line{Start: start, Runes: runes[start:]})
	return lines
}

func runeCells(r rune) int {
	if r == '\t' {
		return tabWidth
	}
	return runewidth.RuneWidth(r)
}

// drawn returns runes as they are written to the terminal.
func drawn(runes []rune) string {
	return strings.ReplaceAll(string(runes), "\t", strings.Repeat(" ", tabWidth))
}

// cellWidth measures runes the way they are drawn, so hit rects line up
// with the rendered output.
func cellWidth(runes []rune) int {
	return ansi.StringWidth(drawn(runes))
}
