package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSearcher remembers every name it was asked about.
type recordingSearcher struct {
	calls   []string
	results map[string][]Location
}

func (s *recordingSearcher) Lookup(name string) []Location {
	s.calls = append(s.calls, name)
	return s.results[name]
}

func TestLookupShortSymbolSkipsSearchers(t *testing.T) {
	index := &recordingSearcher{}
	open := &recordingSearcher{}
	r := &Resolver{Index: index, Open: open}

	assert.Nil(t, r.Lookup("ab"))
	assert.Nil(t, r.Lookup("  a  "))
	assert.Nil(t, r.Lookup(""))
	assert.Empty(t, index.calls, "index searcher must not run for short symbols")
	assert.Empty(t, open.calls, "open-file searcher must not run for short symbols")
}

func TestLookupMergesBothSearchers(t *testing.T) {
	index := &recordingSearcher{results: map[string][]Location{
		"total": {loc("a.py", 4, 0)},
	}}
	open := &recordingSearcher{results: map[string][]Location{
		"total": {loc("a.py", 12, 0)},
	}}
	r := &Resolver{Index: index, Open: open}

	got := r.Lookup("total")
	require.Len(t, got, 1)
	assert.Equal(t, 12, got[0].Row, "open-file entry replaces the stale index row")
}

func TestLookupMinLengthOverride(t *testing.T) {
	index := &recordingSearcher{results: map[string][]Location{"go": {loc("a", 1, 0)}}}
	r := &Resolver{Index: index, MinLength: 2}

	require.Len(t, r.Lookup("go"), 1)
}

func TestResolvePrefersExpandedCandidate(t *testing.T) {
	index := &recordingSearcher{results: map[string][]Location{
		"pkg.Value": {loc("pkg.go", 3, 0)},
		"Value":     {loc("other.go", 8, 0)},
	}}
	r := &Resolver{Index: index}

	sym, locations := r.Resolve("pkg.Value", "Value")
	assert.Equal(t, "pkg.Value", sym)
	require.Len(t, locations, 1)
	assert.Equal(t, "pkg.go", locations[0].Path)
	assert.Equal(t, []string{"pkg.Value"}, index.calls, "word lookup must not run when expanded hits")
}

func TestResolveFallsBackToWord(t *testing.T) {
	index := &recordingSearcher{results: map[string][]Location{
		"Value": {loc("other.go", 8, 0)},
	}}
	r := &Resolver{Index: index}

	sym, locations := r.Resolve("pkg.Value", "Value")
	assert.Equal(t, "Value", sym)
	require.Len(t, locations, 1)
	assert.Equal(t, []string{"pkg.Value", "Value"}, index.calls)
}

func TestResolveAt(t *testing.T) {
	index := &recordingSearcher{results: map[string][]Location{
		"pkg.Value": {loc("pkg.go", 3, 0)},
	}}
	r := &Resolver{Index: index}

	line := "x := pkg.Value + 1"
	sym, locations := r.ResolveAt(line, 10)
	assert.Equal(t, "pkg.Value", sym)
	require.Len(t, locations, 1)
}
