package symbol

import "fmt"

// Location identifies a definition site inside the workspace. Path is the
// absolute path (or a synthetic buffer id for unsaved files), DisplayPath the
// shorter form shown to the user. Row is 1-based, Col is 0-based, mirroring
// how editors report symbol positions.
type Location struct {
	Path        string `json:"path"`
	DisplayPath string `json:"display"`
	Row         int    `json:"row"`
	Col         int    `json:"col"`
}

// Label returns the display form used in pickers and popup links.
func (l Location) Label() string {
	return fmt.Sprintf("%s:%d", l.DisplayPath, l.Row)
}

// Href encodes the location as a path:row:col target.
func (l Location) Href() string {
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Row, l.Col)
}

func containsPath(locations []Location, path string) bool {
	for _, l := range locations {
		if l.Path == path {
			return true
		}
	}
	return false
}

// Merge combines index results with open-file results. Open-file entries are
// fresher, so any path present in both lists is emitted from the open-file
// side, at the position the index gave it. Index order is preserved; open-file
// paths the index never mentioned are appended afterward in their own order.
// Substitution is tracked per path so an index list that repeats a path does
// not emit the same open-file entries twice.
func Merge(index, open []Location) []Location {
	merged := make([]Location, 0, len(index)+len(open))
	used := make(map[string]bool, len(open))
	for _, loc := range index {
		if !containsPath(open, loc.Path) {
			merged = append(merged, loc)
			continue
		}
		if used[loc.Path] {
			continue
		}
		for _, ofl := range open {
			if ofl.Path == loc.Path {
				merged = append(merged, ofl)
				used[ofl.Path] = true
			}
		}
	}
	for _, ofl := range open {
		if !used[ofl.Path] {
			merged = append(merged, ofl)
		}
	}
	return merged
}

// FilterSelf drops locations whose definition span covers the query point
// itself. Hovering a definition should not offer a jump back to it. Only the
// file the query came from is considered; definitions split across files
// (declaration vs implementation) survive the filter.
func FilterSelf(locations []Location, path, sym string, row, col int) []Location {
	filtered := make([]Location, 0, len(locations))
	for _, l := range locations {
		if l.Path == path && l.Row == row && col >= l.Col && col <= l.Col+len(sym) {
			continue
		}
		filtered = append(filtered, l)
	}
	return filtered
}
