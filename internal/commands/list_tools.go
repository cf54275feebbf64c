// internal/commands/list_tools.go
package hkomcp

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/mwiater/hkomcp/internal/registry"
	"github.com/mwiater/hkomcp/internal/util"
	"github.com/mwiater/hkomcp/mcp/tools"
	"github.com/spf13/cobra"
)

const descriptionWidth = 60

var toolSearch string

// toolsCmd implements 'list tools', which prints the registered tools in
// registration order, optionally filtered by a fuzzy search.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the registered MCP tools",
	Long:  `The 'tools' subcommand prints every registered tool with its parameters. Use --search to fuzzy-match tool names and descriptions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		return printTools(cmd.OutOrStdout(), reg.Search(toolSearch), toolSearch)
	},
}

func init() {
	toolsCmd.Flags().StringVarP(&toolSearch, "search", "s", "", "fuzzy filter on tool name or description")
	listCmd.AddCommand(toolsCmd)
}

func printTools(out io.Writer, found []registry.Tool, query string) error {
	if len(found) == 0 {
		fmt.Fprintf(out, "No tools match %q\n", query)
		return nil
	}

	rows := make([][]string, 0, len(found))
	for _, t := range found {
		rows = append(rows, []string{
			t.Name,
			paramSummary(t.Name),
			util.TruncateRunes(util.FirstSentence(t.Description), descriptionWidth),
		})
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("62"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers("TOOL", "PARAMETERS", "DESCRIPTION").
		Rows(rows...)

	fmt.Fprintln(out, tbl.String())
	fmt.Fprintln(out, color.New(color.FgCyan).Sprintf("%d tool(s)", len(found)))
	return nil
}

// paramSummary lists declared parameters, marking required ones with '*'.
func paramSummary(name string) string {
	d, ok := tools.Lookup(name)
	if !ok || len(d.Params) == 0 {
		return "-"
	}
	names := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		if p.Required {
			names = append(names, p.Name+"*")
			continue
		}
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
