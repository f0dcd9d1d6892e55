package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/vitae/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return outputJSON(info)
		}
		pterm.Println(info.String())
		pterm.Printf("go: %s  platform: %s\n", info.GoVersion, info.Platform)
		return nil
	},
}
