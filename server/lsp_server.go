// Package server exposes symbol resolution over the Language Server Protocol
// on stdio. Only the features the tool actually implements are advertised:
// goto definition, hover, and full-document synchronization.
package server

import (
	"context"
	"encoding/json"
	"io"
	"log"

	"github.com/sourcegraph/jsonrpc2"
	"go.lsp.dev/protocol"

	"github.com/pableur/symnav/docblock"
	"github.com/pableur/symnav/symbol"
)

// Server wires the resolver, the open-buffer overlay, and the doc extractor
// behind LSP request handlers.
type Server struct {
	resolver *symbol.Resolver
	docs     *DocumentStore
	conv     docblock.Conventions
	logger   *log.Logger

	name    string
	version string
}

// New builds a server. index provides the persistent search side; the
// open-buffer side is the server's own document overlay.
func New(index symbol.IndexSearcher, root string, conv docblock.Conventions, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	docs := NewDocumentStore(root)
	return &Server{
		resolver: &symbol.Resolver{Index: index, Open: docs},
		docs:     docs,
		conv:     conv,
		logger:   logger,
		name:     "symnav",
		version:  "0.1",
	}
}

// Documents exposes the overlay, mainly for tests and embedding hosts.
func (s *Server) Documents() *DocumentStore {
	return s.docs
}

// Run serves LSP over rwc until the client disconnects.
func (s *Server) Run(ctx context.Context, rwc io.ReadWriteCloser) error {
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{})
	conn := jsonrpc2.NewConn(ctx, stream, jsonrpc2.HandlerWithError(s.handle))
	select {
	case <-ctx.Done():
		_ = conn.Close()
		return ctx.Err()
	case <-conn.DisconnectNotify():
		return nil
	}
}

func (s *Server) handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (interface{}, error) {
	switch req.Method {
	case "initialize":
		var params protocol.InitializeParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		return s.initialize(params), nil
	case "initialized", "exit":
		return nil, nil
	case "shutdown":
		return nil, nil
	case "textDocument/didOpen":
		var params protocol.DidOpenTextDocumentParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		doc := params.TextDocument
		s.docs.Open(string(doc.URI), string(doc.LanguageID), doc.Version, doc.Text)
		return nil, nil
	case "textDocument/didChange":
		var params protocol.DidChangeTextDocumentParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		if n := len(params.ContentChanges); n > 0 {
			// full sync: the last change carries the whole document
			text := params.ContentChanges[n-1].Text
			if err := s.docs.Change(string(params.TextDocument.URI), params.TextDocument.Version, text); err != nil {
				s.logger.Printf("didChange: %v", err)
			}
		}
		return nil, nil
	case "textDocument/didClose":
		var params protocol.DidCloseTextDocumentParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		s.docs.Close(string(params.TextDocument.URI))
		return nil, nil
	case "textDocument/definition":
		var params protocol.DefinitionParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		return s.definition(params), nil
	case "textDocument/hover":
		var params protocol.HoverParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		return s.hover(params), nil
	default:
		if req.Notif {
			return nil, nil
		}
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: "method not handled: " + req.Method}
	}
}

func unmarshalParams(req *jsonrpc2.Request, dst interface{}) error {
	if req.Params == nil {
		return nil
	}
	return json.Unmarshal(*req.Params, dst)
}

func (s *Server) initialize(params protocol.InitializeParams) *protocol.InitializeResult {
	if params.ClientInfo != nil {
		s.logger.Printf("initialize from %s", params.ClientInfo.Name)
	}
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
			},
			DefinitionProvider: true,
			HoverProvider:      true,
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    s.name,
			Version: s.version,
		},
	}
}

// lineAt prefers the open-buffer overlay and falls back to disk, so requests
// against files the client never opened still work.
func (s *Server) lineAt(path string, n int) (string, bool) {
	if line, ok := s.docs.Line(path, n); ok {
		return line, true
	}
	src, err := docblock.LoadFile(path)
	if err != nil {
		return "", false
	}
	return src.Line(n)
}

func (s *Server) definition(params protocol.DefinitionParams) []protocol.Location {
	path := uriToPath(string(params.TextDocument.URI))
	line, ok := s.lineAt(path, int(params.Position.Line))
	if !ok {
		return nil
	}
	sym, locations := s.resolver.ResolveAt(line, int(params.Position.Character))
	if len(locations) == 0 {
		s.logger.Printf("definition: %q not found", sym)
		return nil
	}
	result := make([]protocol.Location, 0, len(locations))
	for _, loc := range locations {
		result = append(result, toProtocolLocation(loc))
	}
	return result
}

func (s *Server) hover(params protocol.HoverParams) *protocol.Hover {
	path := uriToPath(string(params.TextDocument.URI))
	row := int(params.Position.Line) + 1
	col := int(params.Position.Character)
	line, ok := s.lineAt(path, int(params.Position.Line))
	if !ok || !Hoverable(line, col) {
		return nil
	}
	sym, locations := s.resolver.ResolveAt(line, col)
	locations = symbol.FilterSelf(locations, path, sym, row, col)
	if len(locations) == 0 {
		return nil
	}
	body := HoverBody(sym, locations, s.extractDoc(locations[0]))
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: body,
		},
	}
}

// extractDoc pulls the comment block above the primary location. Files that
// are neither open nor readable just yield no documentation.
func (s *Server) extractDoc(primary symbol.Location) []string {
	src, ok := s.docs.Source(primary.Path)
	if !ok {
		loaded, err := docblock.LoadFile(primary.Path)
		if err != nil {
			return nil
		}
		src = loaded
	}
	return docblock.Extract(src, primary.Row-1, s.conv)
}

func toProtocolLocation(loc symbol.Location) protocol.Location {
	pos := protocol.Position{
		Line:      uint32(loc.Row - 1),
		Character: uint32(loc.Col),
	}
	return protocol.Location{
		URI:   protocol.DocumentURI(pathToURI(loc.Path)),
		Range: protocol.Range{Start: pos, End: pos},
	}
}
