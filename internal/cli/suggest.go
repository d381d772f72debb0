package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/corkboard/internal/ports/primary"
	"github.com/example/corkboard/internal/wire"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Apply AI-generated board suggestions",
}

var suggestApplyCmd = &cobra.Command{
	Use:   "apply [file]",
	Short: "Validate and apply a suggestion payload to a project",
	Long: `Apply a suggestion payload (JSON with "lists", "items", and "moves")
to a project. References to lists and items may be abbreviated ids
or names; instructions whose references cannot be resolved are
skipped, not fatal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		projectID, _ := cmd.Flags().GetString("project")

		var payload []byte
		var err error
		if len(args) == 1 {
			payload, err = os.ReadFile(args[0])
		} else {
			payload, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("failed to read suggestion payload: %w", err)
		}

		resp, err := wire.BoardService().ApplySuggestions(ctx, primary.ApplySuggestionsRequest{
			ProjectID: projectID,
			Payload:   payload,
		})
		if err != nil {
			return fmt.Errorf("failed to apply suggestions: %w", err)
		}

		fmt.Printf("✓ Applied suggestions: %d list(s), %d item(s), %d move(s)",
			resp.CreatedLists, resp.CreatedItems, resp.AppliedMoves)
		if resp.Skipped > 0 {
			fmt.Printf(" (%d skipped)", resp.Skipped)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	suggestApplyCmd.Flags().StringP("project", "p", "", "Project ID (required)")
	_ = suggestApplyCmd.MarkFlagRequired("project")

	suggestCmd.AddCommand(suggestApplyCmd)
}

// SuggestCmd returns the suggest command tree.
func SuggestCmd() *cobra.Command {
	return suggestCmd
}
