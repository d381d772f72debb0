package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/corkboard/internal/wire"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import projects from JSON (single document or legacy multi-project file)",
	Long: `Import board data from JSON text. A file argument is read, otherwise
stdin. An object with a "project" key imports one board; an object
with a "projects" key imports every project of a legacy export.
Imports never overwrite existing projects: colliding ids get fresh
ones.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("failed to read import data: %w", err)
		}

		resp, err := wire.BoardService().ImportProjectJSON(ctx, string(data))
		if err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		fmt.Printf("✓ Imported %d project(s):\n", len(resp.ImportedProjectIDs))
		for _, id := range resp.ImportedProjectIDs {
			fmt.Printf("  %s\n", idColor(id))
		}
		return nil
	},
}

// ImportCmd returns the import command.
func ImportCmd() *cobra.Command {
	return importCmd
}
