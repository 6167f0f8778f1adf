package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/pableur/symnav/navigate"
)

func newGotoCmd() *cobra.Command {
	var at string
	var printOnly bool
	cmd := &cobra.Command{
		Use:   "goto [symbol]",
		Short: "Jump to a symbol definition, picking interactively when several exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := log.New(os.Stderr, "goto ", log.LstdFlags)
			index, err := openIndex(cfg, logger)
			if err != nil {
				return err
			}
			defer index.Close()
			sym, locations, err := resolveTarget(newResolver(index, cfg), args, at)
			if err != nil {
				return err
			}
			editor := cfg.Editor
			if printOnly {
				editor = ""
			}
			controller := &navigate.Controller{
				Opener:   editorOpener{command: editor, out: cmd.OutOrStdout()},
				Notifier: statusNotifier{out: cmd.ErrOrStderr()},
				Picker:   tuiPicker{},
				Logger:   logger,
			}
			return controller.Navigate(sym, locations)
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Resolve the symbol under path:row:col instead of an argument")
	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the chosen target instead of launching the editor")
	return cmd
}
