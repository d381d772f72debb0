package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/corkboard/internal/cli"
	"github.com/example/corkboard/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "corkboard",
		Short:   "corkboard - board-style planning from the terminal",
		Version: version.String(),
		Long: `corkboard is a CLI for board-style planning: projects hold ordered
lists (columns) and items (cards), stored as one document per project.
AI-generated suggestions can be validated and applied on top.`,
	}

	rootCmd.AddCommand(cli.ProjectCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.ItemCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.SuggestCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
