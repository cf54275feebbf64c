// internal/commands/list_commands.go
package hkomcp

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// commandInfo holds the path and description of a command for display.
type commandInfo struct {
	path        string
	description string
}

// commandsCmd implements 'list commands', which prints the available
// commands and subcommands in a hierarchical, indented, two-column format.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	Long:  `The 'commands' subcommand lists all commands and subcommands in a hierarchical, indented format, with the command path in the first column and its short description in the second column.`,
	Run: func(cmd *cobra.Command, args []string) {
		printCommands(cmd.OutOrStdout(), collectCommandData(rootCmd, "", ""))
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
}

// printCommands writes the command tree in two aligned columns, skipping
// the generated completion commands.
func printCommands(out io.Writer, commands []commandInfo) {
	filtered := make([]commandInfo, 0, len(commands))
	width := 0
	for _, c := range commands {
		if strings.Contains(c.path, "completion") {
			continue
		}
		filtered = append(filtered, c)
		width = max(width, len(c.path))
	}

	fmt.Fprintln(out, "Commands and Subcommands:")
	for _, c := range filtered {
		fmt.Fprintf(out, "  %-*s  %s\n", width, c.path, c.description)
	}
}

// collectCommandData walks the command tree and returns a flattened slice of
// indented path/description pairs.
func collectCommandData(cmd *cobra.Command, currentPath string, indent string) []commandInfo {
	fullPath := cmd.Name()
	if currentPath != "" {
		fullPath = currentPath + " " + cmd.Name()
	}

	all := []commandInfo{{path: indent + fullPath, description: cmd.Short}}
	for _, sub := range cmd.Commands() {
		all = append(all, collectCommandData(sub, fullPath, indent+"  ")...)
	}
	return all
}
