package runeutil

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// TabWidth is the number of columns a tab is expanded to on display.
const TabWidth = 4

// Width returns the number of terminal columns r occupies.
func Width(r rune) int {
	if r == '\t' {
		return TabWidth
	}
	return runewidth.RuneWidth(r)
}

// WidthAll is the summed Width of s.
func WidthAll(s []rune) (width int) {
	for _, r := range s {
		width += Width(r)
	}
	return
}

// ColorFilter drops SGR sequences (ESC [ ... m) from s so that styled
// prompts can be measured.
func ColorFilter(s []rune) []rune {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			if end := Index(s[i+2:], 'm'); end >= 0 {
				i += end + 2
				continue
			}
		}
		out = append(out, s[i])
	}
	return out
}

// Index returns the index of the first r in s, or -1.
func Index(s []rune, r rune) int {
	for i, c := range s {
		if c == r {
			return i
		}
	}
	return -1
}

// IsWordBreak reports whether r separates words for the word motion and
// kill commands.
func IsWordBreak(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
