package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/pableur/symnav/docblock"
)

func newDocCmd() *cobra.Command {
	var at string
	var asHTML bool
	cmd := &cobra.Command{
		Use:   "doc [symbol]",
		Short: "Show the comment block documenting a symbol's primary definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := log.New(os.Stderr, "doc ", log.LstdFlags)
			index, err := openIndex(cfg, logger)
			if err != nil {
				return err
			}
			defer index.Close()
			sym, locations, err := resolveTarget(newResolver(index, cfg), args, at)
			if err != nil {
				return err
			}
			if len(locations) == 0 {
				cmd.Printf("Unable to find %s\n", sym)
				return nil
			}
			primary := locations[0]
			src, err := docblock.LoadFile(primary.Path)
			if err != nil {
				return err
			}
			lines := docblock.Extract(src, primary.Row-1, cfg.Conventions)
			if len(lines) == 0 {
				cmd.Printf("No documentation block above %s\n", primary.Label())
				return nil
			}
			if asHTML {
				cmd.Println(docblock.Format(lines))
				return nil
			}
			cmd.Println(docblock.Markdown(lines))
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Resolve the symbol under path:row:col instead of an argument")
	cmd.Flags().BoolVar(&asHTML, "html", false, "Render the popup HTML form instead of Markdown")
	return cmd
}
