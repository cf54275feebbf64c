// internal/commands/explore.go
package hkomcp

import (
	"github.com/mwiater/hkomcp/internal/tui"
	"github.com/spf13/cobra"
)

// exploreCmd opens the interactive tool browser.
var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Browse the tool catalogue interactively",
	Long:  `Open a terminal browser over the registered tools. Press / to filter, enter to view a tool's schema and q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		return tui.Explore(reg)
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
