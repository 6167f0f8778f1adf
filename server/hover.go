package server

import (
	"fmt"
	"strings"

	"github.com/pableur/symnav/docblock"
	"github.com/pableur/symnav/symbol"
)

// Hoverable reports whether the position col in line is a spot where a
// definitions popup makes sense: not inside a comment and not inside a plain
// string literal. It is a lexical approximation of the host editor's scope
// query, good enough for hash- and slash-commented sources.
func Hoverable(line string, col int) bool {
	runes := []rune(line)
	if col < 0 || col > len(runes) {
		return false
	}
	var quote rune
	for i := 0; i < col && i < len(runes); i++ {
		r := runes[i]
		if quote != 0 {
			if r == quote {
				quote = 0
			}
			continue
		}
		switch r {
		case '\'', '"', '`':
			quote = r
		case '#':
			return false
		case '/':
			if i+1 < len(runes) && runes[i+1] == '/' {
				return false
			}
		}
	}
	return quote == 0
}

// HoverBody builds the Markdown popup payload: one link per location, then
// the formatted doc block of the primary location when one was extracted.
func HoverBody(sym string, locations []symbol.Location, docLines []string) string {
	var b strings.Builder
	plural := ""
	if len(locations) > 1 {
		plural = "s"
	}
	fmt.Fprintf(&b, "**Definition%s:**\n", plural)
	for _, loc := range locations {
		fmt.Fprintf(&b, "\n[%s](%s#L%d)", loc.Label(), pathToURI(loc.Path), loc.Row)
	}
	if doc := docblock.Markdown(docLines); doc != "" {
		b.WriteString("\n\n---\n\n")
		b.WriteString(doc)
	}
	return b.String()
}
