package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tbo47/control-diagram/catalog"
	"github.com/tbo47/control-diagram/editor"
)

var editCatalog string

var editCmd = &cobra.Command{
	Use:   "edit [diagram-file]",
	Short: "Edit a diagram interactively",
	Long: `Open the interactive editor. Click a palette entry to place a shape,
drag shapes to move them, drag from an anchor to another shape's anchor to
connect them. Right-click a shape for its context menu.

Keys: s save, Esc deselect/close menu, q quit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&editCatalog, "catalog", "c", "",
		"shape catalog URL or file (default built-in set)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	templates := catalog.Builtin()
	if editCatalog != "" {
		var err error
		templates, err = loadCatalog(cmd, editCatalog)
		if err != nil {
			return err
		}
	}

	ed := editor.New()
	filename := ""
	if len(args) == 1 {
		filename = args[0]
		if data, err := os.ReadFile(filename); err == nil {
			if err := ed.ImportJSON(data); err != nil {
				return err
			}
			slog.Debug("diagram loaded", "file", filename, "shapes", ed.Model().Len())
		}
	}

	t, err := newTUI(ed, templates, filename)
	if err != nil {
		return err
	}
	return t.run()
}
