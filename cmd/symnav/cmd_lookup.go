package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func newLookupCmd() *cobra.Command {
	var at string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "lookup [symbol]",
		Short: "Print every known definition of a symbol",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := log.New(os.Stderr, "lookup ", log.LstdFlags)
			index, err := openIndex(cfg, logger)
			if err != nil {
				return err
			}
			defer index.Close()
			sym, locations, err := resolveTarget(newResolver(index, cfg), args, at)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(locations)
			}
			if len(locations) == 0 {
				cmd.Printf("Unable to find %s\n", sym)
				return nil
			}
			for _, loc := range locations {
				cmd.Printf("%s:%d\n", loc.Label(), loc.Col)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Resolve the symbol under path:row:col instead of an argument")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit locations as JSON")
	return cmd
}
