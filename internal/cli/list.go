package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/corkboard/internal/ports/primary"
	"github.com/example/corkboard/internal/wire"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Manage lists (ordered board columns)",
}

var listCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new list at the end of a project's columns",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		projectID, _ := cmd.Flags().GetString("project")
		description, _ := cmd.Flags().GetString("description")

		list, err := wire.BoardService().CreateList(ctx, primary.CreateListRequest{
			ProjectID:   projectID,
			Title:       args[0],
			Description: description,
		})
		if err != nil {
			return fmt.Errorf("failed to create list: %w", err)
		}

		fmt.Printf("✓ Created list %s: %s (position %d)\n", idColor(list.ID), list.Title, list.Order)
		return nil
	},
}

var listUpdateCmd = &cobra.Command{
	Use:   "update [list-id]",
	Short: "Update a list's title or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		projectID, _ := cmd.Flags().GetString("project")

		req := primary.UpdateListRequest{ProjectID: projectID, ListID: args[0]}
		if cmd.Flags().Changed("title") {
			title, _ := cmd.Flags().GetString("title")
			req.Title = &title
		}
		if cmd.Flags().Changed("description") {
			description, _ := cmd.Flags().GetString("description")
			req.Description = &description
		}

		list, err := wire.BoardService().UpdateList(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to update list: %w", err)
		}

		fmt.Printf("✓ Updated list %s: %s\n", idColor(list.ID), list.Title)
		return nil
	},
}

var listDeleteCmd = &cobra.Command{
	Use:   "delete [list-id]",
	Short: "Delete a list; its items become loose",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		projectID, _ := cmd.Flags().GetString("project")

		err := wire.BoardService().DeleteList(ctx, primary.DeleteListRequest{
			ProjectID: projectID,
			ListID:    args[0],
		})
		if err != nil {
			return fmt.Errorf("failed to delete list: %w", err)
		}

		fmt.Printf("✓ Deleted list %s (items moved to loose)\n", idColor(args[0]))
		return nil
	},
}

var listDuplicateCmd = &cobra.Command{
	Use:   "duplicate [list-id]",
	Short: "Clone a list and its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		projectID, _ := cmd.Flags().GetString("project")

		resp, err := wire.BoardService().DuplicateList(ctx, primary.DuplicateListRequest{
			ProjectID: projectID,
			ListID:    args[0],
		})
		if err != nil {
			return fmt.Errorf("failed to duplicate list: %w", err)
		}

		fmt.Printf("✓ Created list %s: %s (%d items cloned)\n", idColor(resp.List.ID), resp.List.Title, resp.ClonedItems)
		return nil
	},
}

var listReorderCmd = &cobra.Command{
	Use:   "reorder [list-id...]",
	Short: "Reorder a project's lists to the given sequence",
	Long: `Reorder a project's lists. Ids that do not belong to the project are
ignored; lists omitted from the sequence keep their relative order
after the named ones.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		projectID, _ := cmd.Flags().GetString("project")

		lists, err := wire.BoardService().ReorderLists(ctx, primary.ReorderListsRequest{
			ProjectID:  projectID,
			IDsInOrder: args,
		})
		if err != nil {
			return fmt.Errorf("failed to reorder lists: %w", err)
		}

		fmt.Printf("✓ Reordered %d list(s):\n", len(lists))
		for _, l := range lists {
			fmt.Printf("  [%d] %s  %s\n", l.Order, l.Title, idColor(l.ID))
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{listCreateCmd, listUpdateCmd, listDeleteCmd, listDuplicateCmd, listReorderCmd} {
		c.Flags().StringP("project", "p", "", "Project ID (required)")
		_ = c.MarkFlagRequired("project")
	}

	listCreateCmd.Flags().StringP("description", "d", "", "List description")
	listUpdateCmd.Flags().String("title", "", "New title")
	listUpdateCmd.Flags().StringP("description", "d", "", "New description")

	listCmd.AddCommand(listCreateCmd)
	listCmd.AddCommand(listUpdateCmd)
	listCmd.AddCommand(listDeleteCmd)
	listCmd.AddCommand(listDuplicateCmd)
	listCmd.AddCommand(listReorderCmd)
}

// ListCmd returns the list command tree.
func ListCmd() *cobra.Command {
	return listCmd
}
