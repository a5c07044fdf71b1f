package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/extdoc/js/codebase"
	"github.com/dhamidi/extdoc/project"
	"github.com/dhamidi/extdoc/ui"
)

func newUICmd() *cobra.Command {
	var addr string
	var rootDir string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Start the documentation web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := project.LoadFrom(rootDir)
			if err != nil {
				return err
			}

			cb := codebase.New(rootDir)
			files, err := proj.Files()
			if err != nil {
				return err
			}
			for _, file := range files {
				if err := cb.ScanFile(file); err != nil {
					return fmt.Errorf("scan %s: %w", file, err)
				}
			}

			server, err := ui.NewServer(cb, proj.Title)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			displayAddr := addr
			if strings.HasPrefix(addr, ":") {
				displayAddr = "localhost" + addr
			}
			fmt.Printf("Starting server at http://%s\n", displayAddr)
			return http.ListenAndServe(addr, server)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "address to listen on")
	cmd.Flags().StringVarP(&rootDir, "project", "p", ".", "project root directory")

	return cmd
}
