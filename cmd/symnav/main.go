package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pableur/symnav/docblock"
	"github.com/pableur/symnav/internal/config"
	"github.com/pableur/symnav/persistence"
	"github.com/pableur/symnav/symbol"
)

var (
	flagWorkspace string
	flagConfig    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "symnav",
		Short: "Symbol definition lookup and navigation for a workspace",
	}
	root.PersistentFlags().StringVar(&flagWorkspace, "workspace", ".", "Workspace root")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default <workspace>/.symnav/config.yaml)")

	root.AddCommand(newIndexCmd(), newLookupCmd(), newGotoCmd(), newDocCmd(), newServeCmd())
	return root
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	cfg.Workspace = flagWorkspace
	if err := cfg.Normalize(); err != nil {
		return config.Config{}, err
	}
	path := flagConfig
	if path == "" {
		path = config.DefaultPath(cfg.Workspace)
	}
	stored, err := config.Load(path)
	switch {
	case err == nil:
		if stored.Workspace == "" {
			stored.Workspace = cfg.Workspace
		}
		if stored.Conventions.Marker == "" {
			stored.Conventions = cfg.Conventions
		}
		cfg = stored
		if err := cfg.Normalize(); err != nil {
			return config.Config{}, err
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return config.Config{}, err
	}
	return cfg, nil
}

func openIndex(cfg config.Config, logger *log.Logger) (*persistence.SymbolIndex, error) {
	return persistence.OpenSymbolIndex(cfg.Workspace, cfg.IndexPath, cfg.SkipDirs, logger)
}

func newResolver(index symbol.IndexSearcher, cfg config.Config) *symbol.Resolver {
	return &symbol.Resolver{
		Index:     index,
		MinLength: cfg.MinSymbolLength,
	}
}

// resolveTarget handles both invocation styles: an explicit symbol argument,
// or --at path:row:col which extracts the symbol under that position the way
// a cursor lookup would, expanded class first.
func resolveTarget(r *symbol.Resolver, args []string, at string) (string, []symbol.Location, error) {
	if at != "" {
		path, row, col, err := parseTarget(at)
		if err != nil {
			return "", nil, err
		}
		src, err := docblock.LoadFile(path)
		if err != nil {
			return "", nil, err
		}
		line, ok := src.Line(row - 1)
		if !ok {
			return "", nil, fmt.Errorf("%s has no line %d", path, row)
		}
		sym, locations := r.ResolveAt(line, col)
		return sym, locations, nil
	}
	if len(args) == 0 {
		return "", nil, errors.New("symbol argument or --at target required")
	}
	sym := args[0]
	return sym, r.Lookup(sym), nil
}

func parseTarget(target string) (path string, row, col int, err error) {
	last := strings.LastIndex(target, ":")
	if last == -1 {
		return "", 0, 0, fmt.Errorf("target %q must be path:row:col", target)
	}
	mid := strings.LastIndex(target[:last], ":")
	if mid == -1 {
		return "", 0, 0, fmt.Errorf("target %q must be path:row:col", target)
	}
	row, err = strconv.Atoi(target[mid+1 : last])
	if err != nil {
		return "", 0, 0, fmt.Errorf("bad row in %q: %w", target, err)
	}
	col, err = strconv.Atoi(target[last+1:])
	if err != nil {
		return "", 0, 0, fmt.Errorf("bad col in %q: %w", target, err)
	}
	return target[:mid], row, col, nil
}
