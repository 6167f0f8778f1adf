package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func newIndexCmd() *cobra.Command {
	var files []string
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build or refresh the workspace symbol index",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := log.New(os.Stderr, "index ", log.LstdFlags)
			index, err := openIndex(cfg, logger)
			if err != nil {
				return err
			}
			defer index.Close()
			if len(files) > 0 {
				if err := index.UpdateFiles(files); err != nil {
					return err
				}
			} else if err := index.Build(cmd.Context()); err != nil {
				return err
			}
			fileCount, symbolCount, err := index.Stats()
			if err != nil {
				return err
			}
			cmd.Printf("Indexed %d symbols across %d files into %s\n", symbolCount, fileCount, cfg.IndexPath)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&files, "file", nil, "Refresh only the listed files instead of rescanning")
	return cmd
}
