// Package persistence stores the project-wide symbol index in SQLite so
// lookups survive between invocations without rescanning the workspace.
package persistence

import (
	"context"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pableur/symnav/symbol"
)

// SymbolIndex coordinates workspace scanning and definition lookups.
type SymbolIndex struct {
	db       *sql.DB
	root     string
	skipDirs []string
	logger   *log.Logger
}

// OpenSymbolIndex opens or creates the index database. skipDirs lists
// directory names excluded from scans on top of the built-in set.
func OpenSymbolIndex(root, dbPath string, skipDirs []string, logger *log.Logger) (*SymbolIndex, error) {
	if root == "" {
		return nil, fmt.Errorf("workspace root required")
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace: %w", err)
	}
	if dbPath == "" {
		dbPath = filepath.Join(absRoot, ".symnav", "symbols.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	index := &SymbolIndex{
		db:       db,
		root:     absRoot,
		skipDirs: skipDirs,
		logger:   logger,
	}
	if err := index.initSchema(); err != nil {
		return nil, err
	}
	return index, nil
}

func (ix *SymbolIndex) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS files (
		path TEXT PRIMARY KEY,
		language TEXT,
		line_count INTEGER,
		content_hash TEXT,
		indexed_at TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS symbols (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		path TEXT NOT NULL,
		row INTEGER NOT NULL,
		col INTEGER NOT NULL,
		signature TEXT,
		FOREIGN KEY(path) REFERENCES files(path) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_symbols_name ON symbols(name);
	`
	_, err := ix.db.Exec(schema)
	return err
}

// Close releases the database handle.
func (ix *SymbolIndex) Close() error {
	if ix == nil || ix.db == nil {
		return nil
	}
	return ix.db.Close()
}

// Root returns the absolute workspace root the index was opened for.
func (ix *SymbolIndex) Root() string {
	return ix.root
}

func (ix *SymbolIndex) skipDir(name string) bool {
	switch name {
	case ".git", ".symnav", "node_modules", "vendor":
		return true
	}
	for _, dir := range ix.skipDirs {
		if name == dir {
			return true
		}
	}
	return false
}

// Build rescans the whole workspace and replaces the stored index.
func (ix *SymbolIndex) Build(ctx context.Context) error {
	tx, err := ix.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.Exec("DELETE FROM symbols"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM files"); err != nil {
		return err
	}
	err = filepath.WalkDir(ix.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if ix.skipDir(entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if inferLanguage(path) == "" {
			return nil
		}
		return ix.indexFile(tx, path)
	})
	if err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateFiles refreshes the index for the listed files only. Relative paths
// are resolved against the workspace root.
func (ix *SymbolIndex) UpdateFiles(files []string) error {
	tx, err := ix.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, file := range files {
		if !filepath.IsAbs(file) {
			file = filepath.Join(ix.root, file)
		}
		if _, err := tx.Exec("DELETE FROM symbols WHERE path = ?", file); err != nil {
			return err
		}
		if _, err := tx.Exec("DELETE FROM files WHERE path = ?", file); err != nil {
			return err
		}
		if err := ix.indexFile(tx, file); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (ix *SymbolIndex) indexFile(tx *sql.Tx, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		// unreadable files are skipped, not fatal
		ix.logger.Printf("index skip %s: %v", path, err)
		return nil
	}
	text := string(content)
	lines := strings.Split(text, "\n")
	if _, err := tx.Exec(
		"INSERT INTO files (path, language, line_count, content_hash, indexed_at) VALUES (?, ?, ?, ?, ?)",
		path, inferLanguage(path), len(lines), hashString(text), time.Now().UTC(),
	); err != nil {
		return err
	}
	for n, line := range lines {
		name, col, ok := ParseDefinition(line)
		if !ok {
			continue
		}
		if _, err := tx.Exec(
			"INSERT INTO symbols (name, path, row, col, signature) VALUES (?, ?, ?, ?, ?)",
			name, path, n+1, col, strings.TrimSpace(line),
		); err != nil {
			return err
		}
	}
	return nil
}

// Find returns every indexed definition of name, ordered by path then row.
func (ix *SymbolIndex) Find(name string) ([]symbol.Location, error) {
	rows, err := ix.db.Query(
		"SELECT path, row, col FROM symbols WHERE name = ? ORDER BY path, row", name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var locations []symbol.Location
	for rows.Next() {
		var loc symbol.Location
		if err := rows.Scan(&loc.Path, &loc.Row, &loc.Col); err != nil {
			return nil, err
		}
		if rel, err := filepath.Rel(ix.root, loc.Path); err == nil && !strings.HasPrefix(rel, "..") {
			loc.DisplayPath = rel
		} else {
			loc.DisplayPath = loc.Path
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

// Lookup satisfies symbol.IndexSearcher. Query failures degrade to an empty
// result; the resolver treats that the same as "not found".
func (ix *SymbolIndex) Lookup(name string) []symbol.Location {
	locations, err := ix.Find(name)
	if err != nil {
		ix.logger.Printf("index lookup %s: %v", name, err)
		return nil
	}
	return locations
}

// Stats reports how many files and definitions the index currently holds.
func (ix *SymbolIndex) Stats() (files, symbols int, err error) {
	if err = ix.db.QueryRow("SELECT COUNT(*) FROM files").Scan(&files); err != nil {
		return 0, 0, err
	}
	if err = ix.db.QueryRow("SELECT COUNT(*) FROM symbols").Scan(&symbols); err != nil {
		return 0, 0, err
	}
	return files, symbols, nil
}

var defKeywords = []string{"func ", "type ", "class ", "def ", "FUNCTION "}

// ParseDefinition recognizes a definition line and returns the symbol name
// and its 0-based column. Detection is a prefix heuristic over a handful of
// languages, matching what a project-wide ctags-less index can afford.
func ParseDefinition(line string) (string, int, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	for _, kw := range defKeywords {
		if !strings.HasPrefix(trimmed, kw) {
			continue
		}
		rest := strings.TrimLeft(trimmed[len(kw):], " \t")
		// Go methods carry a receiver before the name.
		if strings.HasPrefix(rest, "(") {
			closing := strings.Index(rest, ")")
			if closing == -1 {
				return "", 0, false
			}
			rest = strings.TrimLeft(rest[closing+1:], " \t")
		}
		name := rest
		if cut := strings.IndexAny(name, " \t([{:<"); cut != -1 {
			name = name[:cut]
		}
		if name == "" {
			return "", 0, false
		}
		col := strings.Index(line, rest)
		if col < 0 {
			col = 0
		}
		return name, col, true
	}
	return "", 0, false
}

func hashString(input string) string {
	sum := sha1.Sum([]byte(input))
	return hex.EncodeToString(sum[:])
}

func inferLanguage(path string) string {
	switch filepath.Ext(path) {
	case ".go":
		return "go"
	case ".js", ".jsx", ".ts", ".tsx":
		return "javascript"
	case ".py":
		return "python"
	case ".rb":
		return "ruby"
	case ".rs":
		return "rust"
	case ".java":
		return "java"
	case ".c", ".h", ".cc", ".cpp":
		return "c"
	case ".bas", ".vb", ".cls":
		return "basic"
	default:
		return ""
	}
}
