package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pidedit",
	Short: "Piping and instrumentation diagram editor",
	Long: `Compose piping-and-instrumentation diagrams in the terminal: place
shapes from a catalog, drag between anchors to connect them with orthogonal
routed lines, and save the result as a self-contained JSON document.

Examples:
  pidedit edit plant.json                  # Edit a diagram interactively
  pidedit export -f svg plant.json         # Render a saved diagram to SVG
  pidedit catalog https://example.com/catalog.json   # List a shape catalog`,
	Version: "0.2.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cobra.OnInitialize(func() {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	})
}
