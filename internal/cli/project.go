// Package cli contains the cobra commands that expose the store.
package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/corkboard/internal/ports/primary"
	"github.com/example/corkboard/internal/wire"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects (boards of lists and items)",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new project",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		description, _ := cmd.Flags().GetString("description")

		project, err := wire.BoardService().CreateProject(ctx, primary.CreateProjectRequest{
			Title:       args[0],
			Description: description,
		})
		if err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		fmt.Printf("✓ Created project %s: %s\n", idColor(project.ID), project.Title)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects, most recently updated first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		summaries, err := wire.BoardService().ListProjectSummaries(ctx)
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		if len(summaries) == 0 {
			fmt.Println("No projects found.")
			return nil
		}

		fmt.Printf("Found %d project(s):\n\n", len(summaries))
		for _, s := range summaries {
			fmt.Printf("  %s  %s  (%d lists, %d items)\n", idColor(s.ID), s.Title, s.ListCount, s.ItemCount)
		}
		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show [project-id]",
	Short: "Show a project's full board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		pb, err := wire.BoardService().GetProjectBoard(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to load board: %w", err)
		}

		fmt.Printf("%s  %s\n", idColor(pb.Project.ID), color.New(color.Bold).Sprint(pb.Project.Title))
		if pb.Project.Description != "" {
			fmt.Printf("  %s\n", pb.Project.Description)
		}
		for _, l := range pb.Lists {
			fmt.Printf("\n  [%d] %s  %s\n", l.Order, l.Title, idColor(l.ID))
			for _, it := range pb.Items {
				if it.ListID != nil && *it.ListID == l.ID {
					fmt.Printf("      %d. %s  %s\n", it.Order, it.Label, idColor(it.ID))
				}
			}
		}
		loose := false
		for _, it := range pb.Items {
			if it.ListID == nil {
				if !loose {
					fmt.Printf("\n  (loose)\n")
					loose = true
				}
				fmt.Printf("      %d. %s  %s\n", it.Order, it.Label, idColor(it.ID))
			}
		}
		return nil
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update [project-id]",
	Short: "Update a project's title or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		req := primary.UpdateProjectRequest{ProjectID: args[0]}
		if cmd.Flags().Changed("title") {
			title, _ := cmd.Flags().GetString("title")
			req.Title = &title
		}
		if cmd.Flags().Changed("description") {
			description, _ := cmd.Flags().GetString("description")
			req.Description = &description
		}

		project, err := wire.BoardService().UpdateProject(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to update project: %w", err)
		}

		fmt.Printf("✓ Updated project %s: %s\n", idColor(project.ID), project.Title)
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete [project-id]",
	Short: "Delete a project and its whole board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := wire.BoardService().DeleteProject(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}

		fmt.Printf("✓ Deleted project %s\n", idColor(args[0]))
		return nil
	},
}

// idColor renders record ids dimmed so titles stand out in listings.
func idColor(id string) string {
	return color.New(color.FgCyan).Sprint(id)
}

func init() {
	projectCreateCmd.Flags().StringP("description", "d", "", "Project description")

	projectUpdateCmd.Flags().String("title", "", "New title")
	projectUpdateCmd.Flags().StringP("description", "d", "", "New description")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}

// ProjectCmd returns the project command tree.
func ProjectCmd() *cobra.Command {
	return projectCmd
}
