package cssfmt

import (
	"strings"
	"unicode/utf8"
)

// DefaultIndentUnit is the string used for a single indent by Indent.
const DefaultIndentUnit = "    "

// Spaces returns a run of n spaces. Non-positive n yields "".
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// Indent prefixes s with depth copies of unit.
// An empty unit falls back to DefaultIndentUnit.
func Indent(s string, depth int, unit string) string {
	if unit == "" {
		unit = DefaultIndentUnit
	}
	if depth <= 0 {
		return s
	}
	return strings.Repeat(unit, depth) + s
}

// PadLeft prefixes s with n copies of ch (a space when ch is empty).
func PadLeft(s string, n int, ch string) string {
	if ch == "" {
		ch = " "
	}
	if n <= 0 {
		return s
	}
	return strings.Repeat(ch, n) + s
}

// MinLeft left-pads s with ch until it is at least width characters long.
func MinLeft(s string, width int, ch string) string {
	return PadLeft(s, width-utf8.RuneCountInString(s), ch)
}

// textWidth is the display width used for line length decisions.
func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}
