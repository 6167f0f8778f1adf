package server

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pableur/symnav/docblock"
	"github.com/pableur/symnav/persistence"
	"github.com/pableur/symnav/symbol"
)

// Document tracks one file the editor has open. Lines hold the full buffer
// text, which may be newer than what is on disk or in the index.
type Document struct {
	Path       string
	URI        string
	LanguageID string
	Version    int32
	Lines      []string
}

// DocumentStore is the open-buffer overlay. It doubles as the open-files
// search collaborator and as the preferred line source for doc extraction.
type DocumentStore struct {
	mu   sync.RWMutex
	root string
	docs map[string]*Document
}

// NewDocumentStore returns an empty overlay. root is used to shorten display
// paths in results.
func NewDocumentStore(root string) *DocumentStore {
	return &DocumentStore{
		root: root,
		docs: make(map[string]*Document),
	}
}

// Open registers a buffer and its initial text.
func (ds *DocumentStore) Open(uri, languageID string, version int32, text string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	path := uriToPath(uri)
	ds.docs[path] = &Document{
		Path:       path,
		URI:        uri,
		LanguageID: languageID,
		Version:    version,
		Lines:      strings.Split(text, "\n"),
	}
}

// Change replaces the buffer text (full-document sync).
func (ds *DocumentStore) Change(uri string, version int32, text string) error {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	path := uriToPath(uri)
	doc, ok := ds.docs[path]
	if !ok {
		return fmt.Errorf("document %s not tracked", uri)
	}
	doc.Version = version
	doc.Lines = strings.Split(text, "\n")
	return nil
}

// Close drops the buffer from the overlay.
func (ds *DocumentStore) Close(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uriToPath(uri))
}

// Line returns the 0-based line n of an open buffer.
func (ds *DocumentStore) Line(path string, n int) (string, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	doc, ok := ds.docs[path]
	if !ok || n < 0 || n >= len(doc.Lines) {
		return "", false
	}
	return doc.Lines[n], true
}

// Source returns a snapshot line source for an open buffer, or false when the
// file is not open.
func (ds *DocumentStore) Source(path string) (docblock.LineSource, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	doc, ok := ds.docs[path]
	if !ok {
		return nil, false
	}
	lines := make([]string, len(doc.Lines))
	copy(lines, doc.Lines)
	return docblock.SliceSource(lines), true
}

// Lookup scans every open buffer for definition lines matching name. It
// satisfies symbol.OpenFileSearcher. Buffers are visited in path order so
// results are stable between calls.
func (ds *DocumentStore) Lookup(name string) []symbol.Location {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	paths := make([]string, 0, len(ds.docs))
	for path := range ds.docs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	var locations []symbol.Location
	for _, path := range paths {
		doc := ds.docs[path]
		for n, line := range doc.Lines {
			defName, col, ok := persistence.ParseDefinition(line)
			if !ok || defName != name {
				continue
			}
			locations = append(locations, symbol.Location{
				Path:        path,
				DisplayPath: ds.displayPath(path),
				Row:         n + 1,
				Col:         col,
			})
		}
	}
	return locations
}

func (ds *DocumentStore) displayPath(path string) string {
	if ds.root == "" {
		return path
	}
	rel, err := filepath.Rel(ds.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
