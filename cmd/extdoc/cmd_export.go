package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/extdoc/js"
	"github.com/dhamidi/extdoc/js/doc"
	"github.com/dhamidi/extdoc/project"
)

func newExportCmd() *cobra.Command {
	var format string
	var output string
	var accessors bool

	cmd := &cobra.Command{
		Use:   "export [dir]",
		Short: "Aggregate a project and export the class model",
		Long: `Aggregate a project and export the class model.

Reads extdoc.json from the given directory (default: the current
directory) and writes the aggregated classes as JSON or YAML.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rootDir := "."
			if len(args) == 1 {
				rootDir = args[0]
			}

			classes, _, err := aggregateProject(rootDir)
			if err != nil {
				return err
			}

			js.InjectEventOptions(classes)
			if accessors {
				js.SynthesizeAccessors(classes)
			}

			exported := js.ExportClasses(classes)

			var data []byte
			switch format {
			case "json":
				data, err = json.MarshalIndent(exported, "", "  ")
			case "yaml":
				data, err = yaml.Marshal(exported)
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
			if err != nil {
				return fmt.Errorf("encode %s: %w", format, err)
			}
			if len(data) > 0 && data[len(data)-1] != '\n' {
				data = append(data, '\n')
			}

			if output == "" || output == "-" {
				_, err = os.Stdout.Write(data)
				return err
			}
			return os.WriteFile(output, data, 0644)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json, yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&accessors, "accessors", false, "synthesize getter and setter methods for config options")

	return cmd
}

// aggregateProject loads the project at rootDir and aggregates all of
// its source files in sorted order.
func aggregateProject(rootDir string) ([]*js.Class, *project.Project, error) {
	proj, err := project.LoadFrom(rootDir)
	if err != nil {
		return nil, nil, err
	}

	files, err := proj.Files()
	if err != nil {
		return nil, nil, err
	}

	agg := js.NewAggregator()
	for _, file := range files {
		src, err := doc.OpenSource(file)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", file, err)
		}
		if err := agg.Ingest(src); err != nil {
			return nil, nil, fmt.Errorf("aggregate %s: %w", file, err)
		}
	}
	agg.Finalize()

	return agg.Classes(), proj, nil
}
