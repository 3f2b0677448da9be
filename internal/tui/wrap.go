package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText word-wraps plain text to the given display width. Words wider
// than a whole line are broken mid-word. Width is measured in terminal
// cells so double-width scripts wrap where they actually overflow.
func wrapText(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	var out strings.Builder
	lineWidth := 0
	for i, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		switch {
		case i == 0:
		case lineWidth+1+w <= width:
			out.WriteByte(' ')
			lineWidth++
		default:
			out.WriteByte('\n')
			lineWidth = 0
		}
		if w <= width {
			out.WriteString(word)
			lineWidth += w
			continue
		}
		for _, r := range word {
			rw := runewidth.RuneWidth(r)
			if lineWidth+rw > width {
				out.WriteByte('\n')
				lineWidth = 0
			}
			out.WriteRune(r)
			lineWidth += rw
		}
	}
	return out.String()
}
