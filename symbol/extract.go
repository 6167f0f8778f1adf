package symbol

import (
	"strings"
	"unicode"
)

// ExpandedClass lists the extra runes included when extracting a qualified
// symbol, so names like map[string]Foo or pkg.Type::method survive as one
// candidate. The plain word extraction passes an empty extra set.
const ExpandedClass = "[]{}()<>:."

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ExpandAt grows a span around col in line, taking every rune that is a word
// character or a member of extra. col is a 0-based rune offset; a cursor
// sitting between two non-member runes yields the empty string.
func ExpandAt(line string, col int, extra string) string {
	runes := []rune(line)
	if col < 0 || col > len(runes) {
		return ""
	}
	member := func(r rune) bool {
		return isWordRune(r) || strings.ContainsRune(extra, r)
	}
	start := col
	for start > 0 && member(runes[start-1]) {
		start--
	}
	end := col
	for end < len(runes) && member(runes[end]) {
		end++
	}
	return string(runes[start:end])
}
