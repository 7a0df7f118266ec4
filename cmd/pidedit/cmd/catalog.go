package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tbo47/control-diagram/catalog"
	"github.com/tbo47/control-diagram/diagram"
)

var catalogTimeout time.Duration

var catalogCmd = &cobra.Command{
	Use:   "catalog [url-or-file]",
	Short: "List the templates in a shape catalog",
	Long: `Fetch a shape catalog document over HTTP (or read it from a local
file) and list its templates. With no argument, lists the built-in set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().DurationVar(&catalogTimeout, "timeout", 10*time.Second,
		"fetch timeout")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	templates := catalog.Builtin()
	if len(args) == 1 {
		var err error
		templates, err = loadCatalog(cmd, args[0])
		if err != nil {
			return err
		}
	}
	for _, tpl := range templates {
		fmt.Printf("%-20s %-15s %3gx%-3g %d anchors\n",
			tpl.Name, tpl.Type, tpl.Width, tpl.Height, len(tpl.Anchors))
	}
	return nil
}

func loadCatalog(cmd *cobra.Command, source string) ([]diagram.ShapeTemplate, error) {
	if _, err := os.Stat(source); err == nil {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, err
		}
		return catalog.Parse(data)
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), catalogTimeout)
	defer cancel()
	return catalog.Fetch(ctx, nil, source)
}
