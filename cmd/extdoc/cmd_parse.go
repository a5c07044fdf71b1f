package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/extdoc/js"
	"github.com/dhamidi/extdoc/js/doc"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .js file and dump its documentation nodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := doc.OpenSource(args[0])
			if err != nil {
				return fmt.Errorf("read source: %w", err)
			}

			var nodes []any
			for {
				n, ok := src.Next()
				if !ok {
					break
				}
				nodes = append(nodes, js.ExportNode(n))
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(nodes)
		},
	}

	return cmd
}
