package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/corkboard/internal/ports/primary"
	"github.com/example/corkboard/internal/wire"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage items (cards on a board)",
}

var itemCreateCmd = &cobra.Command{
	Use:   "create [label]",
	Short: "Create a new item; without --list it is created loose",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		projectID, _ := cmd.Flags().GetString("project")
		listID, _ := cmd.Flags().GetString("list")
		description, _ := cmd.Flags().GetString("description")

		req := primary.CreateItemRequest{
			ProjectID:   projectID,
			Label:       args[0],
			Description: description,
		}
		if listID != "" {
			req.ListID = &listID
		}

		item, err := wire.BoardService().CreateItem(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to create item: %w", err)
		}

		where := "loose"
		if item.ListID != nil {
			where = "list " + *item.ListID
		}
		fmt.Printf("✓ Created item %s: %s (%s, position %d)\n", idColor(item.ID), item.Label, where, item.Order)
		return nil
	},
}

var itemUpdateCmd = &cobra.Command{
	Use:   "update [item-id]",
	Short: "Update an item's label or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		projectID, _ := cmd.Flags().GetString("project")

		req := primary.UpdateItemRequest{ProjectID: projectID, ItemID: args[0]}
		if cmd.Flags().Changed("label") {
			label, _ := cmd.Flags().GetString("label")
			req.Label = &label
		}
		if cmd.Flags().Changed("description") {
			description, _ := cmd.Flags().GetString("description")
			req.Description = &description
		}

		item, err := wire.BoardService().UpdateItem(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to update item: %w", err)
		}

		fmt.Printf("✓ Updated item %s: %s\n", idColor(item.ID), item.Label)
		return nil
	},
}

var itemDeleteCmd = &cobra.Command{
	Use:   "delete [item-id]",
	Short: "Delete an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		projectID, _ := cmd.Flags().GetString("project")

		err := wire.BoardService().DeleteItem(ctx, primary.DeleteItemRequest{
			ProjectID: projectID,
			ItemID:    args[0],
		})
		if err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
		}

		fmt.Printf("✓ Deleted item %s\n", idColor(args[0]))
		return nil
	},
}

var itemMoveCmd = &cobra.Command{
	Use:   "move [item-id]",
	Short: "Move an item to a position in a list (or loose)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		projectID, _ := cmd.Flags().GetString("project")
		toList, _ := cmd.Flags().GetString("to-list")
		toIndex, _ := cmd.Flags().GetInt("to-index")

		req := primary.MoveItemRequest{
			ProjectID: projectID,
			ItemID:    args[0],
			ToIndex:   toIndex,
		}
		if toList != "" {
			req.ToListID = &toList
		}

		item, err := wire.BoardService().MoveItem(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to move item: %w", err)
		}

		where := "loose"
		if item.ListID != nil {
			where = "list " + *item.ListID
		}
		fmt.Printf("✓ Moved item %s to %s, position %d\n", idColor(item.ID), where, item.Order)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{itemCreateCmd, itemUpdateCmd, itemDeleteCmd, itemMoveCmd} {
		c.Flags().StringP("project", "p", "", "Project ID (required)")
		_ = c.MarkFlagRequired("project")
	}

	itemCreateCmd.Flags().StringP("list", "l", "", "List ID (omit for loose)")
	itemCreateCmd.Flags().StringP("description", "d", "", "Item description")

	itemUpdateCmd.Flags().String("label", "", "New label")
	itemUpdateCmd.Flags().StringP("description", "d", "", "New description")

	itemMoveCmd.Flags().String("to-list", "", "Target list ID (omit for loose)")
	itemMoveCmd.Flags().Int("to-index", 0, "Target position (clamped to container bounds)")

	itemCmd.AddCommand(itemCreateCmd)
	itemCmd.AddCommand(itemUpdateCmd)
	itemCmd.AddCommand(itemDeleteCmd)
	itemCmd.AddCommand(itemMoveCmd)
}

// ItemCmd returns the item command tree.
func ItemCmd() *cobra.Command {
	return itemCmd
}
