package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap splits s into lines no wider than width display columns
// Words longer than width are truncated
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineW := 0
	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if ww > width {
			word = runewidth.Truncate(word, width, "…")
			ww = runewidth.StringWidth(word)
		}
		switch {
		case lineW == 0:
			line.WriteString(word)
			lineW = ww
		case lineW+1+ww <= width:
			line.WriteByte(' ')
			line.WriteString(word)
			lineW += 1 + ww
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			lineW = ww
		}
	}
	if lineW > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Width returns the display width of s
func Width(s string) int { return runewidth.StringWidth(s) }
