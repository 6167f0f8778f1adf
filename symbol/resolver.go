package symbol

import "strings"

// minSymbolLength rejects lookups for fragments that are too short to be a
// meaningful identifier. Below the threshold the searchers are never invoked.
const minSymbolLength = 3

// IndexSearcher finds definitions in the persistent project-wide index.
type IndexSearcher interface {
	Lookup(name string) []Location
}

// OpenFileSearcher finds definitions in buffers currently open in the editor.
type OpenFileSearcher interface {
	Lookup(name string) []Location
}

// Resolver turns a symbol candidate into its merged definition list. Both
// search collaborators are injected; either may be nil, which simply yields
// no results from that side.
type Resolver struct {
	Index IndexSearcher
	Open  OpenFileSearcher

	// MinLength overrides the default symbol length gate when positive.
	MinLength int
}

func (r *Resolver) minLength() int {
	if r.MinLength > 0 {
		return r.MinLength
	}
	return minSymbolLength
}

// Lookup queries both searchers for the symbol and merges the results.
// Too-short symbols short-circuit to an empty list.
func (r *Resolver) Lookup(sym string) []Location {
	if len(strings.TrimSpace(sym)) < r.minLength() {
		return nil
	}
	var index, open []Location
	if r.Index != nil {
		index = r.Index.Lookup(sym)
	}
	if r.Open != nil {
		open = r.Open.Lookup(sym)
	}
	return Merge(index, open)
}

// Resolve tries the expanded-class candidate first, so qualified names like
// pkg.Type or bracketed forms win when the index knows them. The plain word
// is only tried when the expanded lookup comes back empty. Returns the
// winning symbol text and its locations, possibly none.
func (r *Resolver) Resolve(expanded, word string) (string, []Location) {
	if locations := r.Lookup(expanded); len(locations) > 0 {
		return expanded, locations
	}
	return word, r.Lookup(word)
}

// ResolveAt extracts both symbol candidates around col in line and resolves
// them with the usual fallback.
func (r *Resolver) ResolveAt(line string, col int) (string, []Location) {
	expanded := ExpandAt(line, col, ExpandedClass)
	word := ExpandAt(line, col, "")
	return r.Resolve(expanded, word)
}
