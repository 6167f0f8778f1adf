package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/pableur/symnav/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the LSP server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := log.New(os.Stderr, "lsp ", log.LstdFlags)
			index, err := openIndex(cfg, logger)
			if err != nil {
				return err
			}
			defer index.Close()
			srv := server.New(index, cfg.Workspace, cfg.Conventions, logger)
			logger.Printf("serving on stdio, workspace %s", cfg.Workspace)
			return srv.Run(cmd.Context(), stdioReadWriteCloser{})
		},
	}
	return cmd
}

// stdioReadWriteCloser bridges stdin/stdout into the single stream the
// JSON-RPC connection expects.
type stdioReadWriteCloser struct{}

func (stdioReadWriteCloser) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdioReadWriteCloser) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdioReadWriteCloser) Close() error                { return nil }
