// Package docblock extracts and renders the structured comment blocks that
// precede a definition. The format is an informal convention, not a grammar:
// detection works by substring checks on fixed markers.
package docblock

import (
	"os"
	"strings"
)

// LineSource yields file text line by line. Line numbers are 0-based; the
// second return is false past either end of the file.
type LineSource interface {
	Line(n int) (string, bool)
}

// SliceSource adapts an in-memory line slice to a LineSource.
type SliceSource []string

func (s SliceSource) Line(n int) (string, bool) {
	if n < 0 || n >= len(s) {
		return "", false
	}
	return s[n], true
}

// LoadFile reads a file from disk as a LineSource.
func LoadFile(path string) (SliceSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return SliceSource(strings.Split(string(data), "\n")), nil
}

// Conventions holds the textual markers that delimit a doc block. They are
// tied to one documentation style and deliberately kept as configuration
// rather than logic.
type Conventions struct {
	Marker    string   `yaml:"marker"`
	Sentinel  string   `yaml:"sentinel"`
	Signature string   `yaml:"signature"`
	Dividers  []string `yaml:"dividers"`
}

// DefaultConventions matches the house style the extractor was written for:
// hash comments, FUNCTION/END FUNCTION framing, and a small set of
// decorative divider runs.
func DefaultConventions() Conventions {
	return Conventions{
		Marker:    "#",
		Sentinel:  "END FUNCTION",
		Signature: "FUNCTION",
		Dividers:  []string{"######", "======", "-----", "<><><"},
	}
}

func (c Conventions) withDefaults() Conventions {
	def := DefaultConventions()
	if c.Marker == "" {
		c.Marker = def.Marker
	}
	if c.Sentinel == "" {
		c.Sentinel = def.Sentinel
	}
	if c.Signature == "" {
		c.Signature = def.Signature
	}
	if len(c.Dividers) == 0 {
		c.Dividers = def.Dividers
	}
	return c
}

func (c Conventions) isDivider(line string) bool {
	for _, divider := range c.Dividers {
		if strings.Contains(line, divider) {
			return true
		}
	}
	return false
}

// Extract scans upward from the line above defLine and collects the comment
// block documenting the definition there. defLine is 0-based. Per line, in
// priority order: the sentinel stops the scan (excluded); a divider comment
// is skipped; any other comment contributes the text after the first marker;
// empty lines and signature lines are skipped; anything else stops the scan
// (excluded). Reaching the top of the file stops the scan. Collected lines
// come back in top-to-bottom order.
func Extract(src LineSource, defLine int, conv Conventions) []string {
	conv = conv.withDefaults()
	var collected []string
	for n := defLine - 1; n >= 0; n-- {
		line, ok := src.Line(n)
		if !ok {
			break
		}
		if strings.Contains(line, conv.Sentinel) {
			break
		}
		if pos := strings.Index(line, conv.Marker); pos != -1 {
			if conv.isDivider(line) {
				continue
			}
			collected = append(collected, line[pos+len(conv.Marker):])
			continue
		}
		if len(line) == 0 {
			continue
		}
		if strings.Contains(line, conv.Signature) {
			continue
		}
		break
	}
	for i, j := 0, len(collected)-1; i < j; i, j = i+1, j-1 {
		collected[i], collected[j] = collected[j], collected[i]
	}
	return collected
}
