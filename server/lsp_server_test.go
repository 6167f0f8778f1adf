package server

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"

	"github.com/pableur/symnav/docblock"
	"github.com/pableur/symnav/symbol"
)

type fakeIndex struct {
	results map[string][]symbol.Location
}

func (f fakeIndex) Lookup(name string) []symbol.Location {
	return f.results[name]
}

func newTestServer(index symbol.IndexSearcher) *Server {
	return New(index, "/ws", docblock.Conventions{}, log.New(io.Discard, "", 0))
}

func positionParams(uri string, line, character uint32) protocol.TextDocumentPositionParams {
	return protocol.TextDocumentPositionParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentURI(uri)},
		Position:     protocol.Position{Line: line, Character: character},
	}
}

const appSource = "# @desc adds things\ndef compute_total(items):\n    pass\n\nresult = compute_total(data)\n"

func TestInitializeCapabilities(t *testing.T) {
	s := newTestServer(fakeIndex{})
	result := s.initialize(protocol.InitializeParams{})

	sync, ok := result.Capabilities.TextDocumentSync.(protocol.TextDocumentSyncOptions)
	require.True(t, ok)
	assert.True(t, sync.OpenClose)
	assert.Equal(t, protocol.TextDocumentSyncKindFull, sync.Change)
	assert.Equal(t, true, result.Capabilities.DefinitionProvider)
	assert.Equal(t, true, result.Capabilities.HoverProvider)
	assert.Equal(t, "symnav", result.ServerInfo.Name)
}

func TestDefinitionFromOpenBuffer(t *testing.T) {
	s := newTestServer(fakeIndex{})
	s.Documents().Open("file:///ws/app.py", "python", 1, appSource)

	locations := s.definition(protocol.DefinitionParams{
		TextDocumentPositionParams: positionParams("file:///ws/app.py", 4, 12),
	})

	require.Len(t, locations, 1)
	assert.Equal(t, protocol.DocumentURI("file:///ws/app.py"), locations[0].URI)
	assert.Equal(t, uint32(1), locations[0].Range.Start.Line)
	assert.Equal(t, uint32(4), locations[0].Range.Start.Character)
}

func TestDefinitionPrefersOpenBufferOverIndex(t *testing.T) {
	index := fakeIndex{results: map[string][]symbol.Location{
		"compute_total": {{Path: "/ws/app.py", DisplayPath: "app.py", Row: 40, Col: 0}},
	}}
	s := newTestServer(index)
	s.Documents().Open("file:///ws/app.py", "python", 1, appSource)

	locations := s.definition(protocol.DefinitionParams{
		TextDocumentPositionParams: positionParams("file:///ws/app.py", 4, 12),
	})

	require.Len(t, locations, 1)
	assert.Equal(t, uint32(1), locations[0].Range.Start.Line, "live buffer row wins over the stale index row")
}

func TestDefinitionUnknownSymbol(t *testing.T) {
	s := newTestServer(fakeIndex{})
	s.Documents().Open("file:///ws/app.py", "python", 1, appSource)

	locations := s.definition(protocol.DefinitionParams{
		TextDocumentPositionParams: positionParams("file:///ws/app.py", 4, 0),
	})
	assert.Empty(t, locations, "\"result\" has no indexed definition")
}

func TestDefinitionMissingFile(t *testing.T) {
	s := newTestServer(fakeIndex{})
	locations := s.definition(protocol.DefinitionParams{
		TextDocumentPositionParams: positionParams("file:///ws/never-opened.py", 0, 0),
	})
	assert.Empty(t, locations)
}

func TestHoverShowsDefinitionAndDoc(t *testing.T) {
	s := newTestServer(fakeIndex{})
	s.Documents().Open("file:///ws/app.py", "python", 1, appSource)

	hover := s.hover(protocol.HoverParams{
		TextDocumentPositionParams: positionParams("file:///ws/app.py", 4, 12),
	})

	require.NotNil(t, hover)
	assert.Equal(t, protocol.Markdown, hover.Contents.Kind)
	assert.Contains(t, hover.Contents.Value, "**Definition:**")
	assert.Contains(t, hover.Contents.Value, "[app.py:2](file:///ws/app.py#L2)")
	assert.Contains(t, hover.Contents.Value, "**Description**\n- adds things")
}

func TestHoverOnDefinitionItselfIsSuppressed(t *testing.T) {
	s := newTestServer(fakeIndex{})
	s.Documents().Open("file:///ws/app.py", "python", 1, appSource)

	hover := s.hover(protocol.HoverParams{
		TextDocumentPositionParams: positionParams("file:///ws/app.py", 1, 6),
	})
	assert.Nil(t, hover, "the only definition is the hovered one")
}

func TestHoverInsideCommentIsSuppressed(t *testing.T) {
	s := newTestServer(fakeIndex{})
	s.Documents().Open("file:///ws/app.py", "python", 1, appSource)

	hover := s.hover(protocol.HoverParams{
		TextDocumentPositionParams: positionParams("file:///ws/app.py", 0, 10),
	})
	assert.Nil(t, hover)
}
