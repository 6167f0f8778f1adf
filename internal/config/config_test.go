package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	cfg := Config{Workspace: "/ws"}
	require.NoError(t, cfg.Normalize())
	assert.Equal(t, "/ws", cfg.Workspace)
	assert.Equal(t, filepath.Join("/ws", ".symnav", "symbols.db"), cfg.IndexPath)
}

func TestNormalizeResolvesRelativeIndexPath(t *testing.T) {
	cfg := Config{Workspace: "/ws", IndexPath: "cache/index.db"}
	require.NoError(t, cfg.Normalize())
	assert.Equal(t, filepath.Join("/ws", "cache", "index.db"), cfg.IndexPath)
}

func TestNormalizeRequiresWorkspace(t *testing.T) {
	cfg := Config{}
	require.Error(t, cfg.Normalize())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	workspace := t.TempDir()
	cfg := Default()
	cfg.Workspace = workspace
	cfg.Editor = "vim"
	cfg.MinSymbolLength = 2
	cfg.SkipDirs = []string{"generated"}
	require.NoError(t, cfg.Normalize())

	path := DefaultPath(workspace)
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Workspace, loaded.Workspace)
	assert.Equal(t, "vim", loaded.Editor)
	assert.Equal(t, 2, loaded.MinSymbolLength)
	assert.Equal(t, []string{"generated"}, loaded.SkipDirs)
	assert.Equal(t, cfg.Conventions, loaded.Conventions)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
