package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tbo47/control-diagram/diagram"
	"github.com/tbo47/control-diagram/export"
	"github.com/tbo47/control-diagram/validation"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <diagram-file>",
	Short: "Convert a saved diagram to another format",
	Long: `Read a diagram document and write it out as JSON or SVG.

Examples:
  pidedit export plant.json                    # Pretty-print the document
  pidedit export -f svg -o plant.svg plant.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json",
		"output format (json, svg)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		"output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var doc diagram.Diagram
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	validator := validation.NewValidator()
	validator.AllowUnresolved = true
	for _, e := range validator.Validate(doc) {
		fmt.Fprintf(os.Stderr, "warning: shape %d: %s\n", e.ShapeID, e.Message)
	}

	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	exporter, err := export.NewExporter(format)
	if err != nil {
		return err
	}
	out, err := exporter.Export(doc)
	if err != nil {
		return err
	}
	if exportOutput == "" {
		fmt.Print(out)
		return nil
	}
	return os.WriteFile(exportOutput, []byte(out), 0644)
}
