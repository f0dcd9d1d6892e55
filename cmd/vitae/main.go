package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/vitae/cmd/vitae/commands"
	"github.com/teranos/vitae/logger"
)

var rootCmd = &cobra.Command{
	Use:   "vitae",
	Short: "vitae - research-group record filtering and reporting",
	Long: `vitae - Record filtering for research-group content management.

vitae filters collections of semi-structured records (people, publications,
grants, patents, presentations) down to the subset relevant to a person or
time window, and prints sorted, enriched views for report generators.

Available commands:
  publist       - List publications for a set of authors
  grants        - List grants for a set of team members
  presentations - List presentations for a group member
  version       - Show version information

Examples:
  vitae publist "A. Person" --since 2019-01-01
  vitae grants "A. Person" --pi
  vitae presentations apolo --types invited,keynote`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonOutput); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Output machine-readable JSON")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory holding <collection>.yml files (default from config)")

	rootCmd.AddCommand(commands.PublistCmd)
	rootCmd.AddCommand(commands.GrantsCmd)
	rootCmd.AddCommand(commands.PresentationsCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
