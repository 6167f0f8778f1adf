// Package config holds the knobs shared across the symnav CLI and LSP
// entry points.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pableur/symnav/docblock"
)

// Config is persisted as .symnav/config.yaml inside the workspace.
type Config struct {
	Workspace string `yaml:"workspace"`
	IndexPath string `yaml:"index_path"`

	// Editor is the command used to open locations, invoked as
	// `editor +row path`. Empty means print the target instead of opening.
	Editor string `yaml:"editor"`

	// MinSymbolLength overrides the resolver's length gate when positive.
	MinSymbolLength int `yaml:"min_symbol_length"`

	// SkipDirs lists directory names excluded from index scans.
	SkipDirs []string `yaml:"skip_dirs"`

	Conventions docblock.Conventions `yaml:"conventions"`
}

// Default infers defaults from the current working directory.
func Default() Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return Config{
		Workspace:   cwd,
		Conventions: docblock.DefaultConventions(),
	}
}

// Normalize makes every path absolute and fills missing defaults so callers
// never have to re-check the same invariants.
func (c *Config) Normalize() error {
	if c.Workspace == "" {
		return fmt.Errorf("workspace path required")
	}
	absWorkspace, err := filepath.Abs(c.Workspace)
	if err != nil {
		return fmt.Errorf("resolve workspace: %w", err)
	}
	c.Workspace = absWorkspace
	if c.IndexPath == "" {
		c.IndexPath = filepath.Join(c.Workspace, ".symnav", "symbols.db")
	}
	if !filepath.IsAbs(c.IndexPath) {
		c.IndexPath = filepath.Join(c.Workspace, c.IndexPath)
	}
	return nil
}

// DefaultPath returns the canonical config location for a workspace.
func DefaultPath(workspace string) string {
	return filepath.Join(workspace, ".symnav", "config.yaml")
}

// Load reads a config from disk.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("config path required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save persists the config for future sessions.
func Save(path string, cfg Config) error {
	if path == "" {
		return fmt.Errorf("config path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
