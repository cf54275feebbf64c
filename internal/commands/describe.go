// internal/commands/describe.go
package hkomcp

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/k0kubun/pp"
	"github.com/mwiater/hkomcp/internal/registry"
	"github.com/mwiater/hkomcp/mcp/tools"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// describeCmd prints a tool's description and input schema.
var describeCmd = &cobra.Command{
	Use:   "describe <tool>",
	Short: "Show a tool's description and input schema",
	Long:  `Show the description and JSON input schema of a registered tool, rendered as YAML. With --debug the full operation descriptor is dumped as well.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		tool, ok := reg.Lookup(args[0])
		if !ok {
			return fmt.Errorf("%w: %s", registry.ErrUnknownTool, args[0])
		}
		if err := describeTool(cmd.OutOrStdout(), tool); err != nil {
			return err
		}
		if DebugEnabled() {
			if d, ok := tools.Lookup(tool.Name); ok {
				pp.Fprintln(cmd.OutOrStdout(), d)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func describeTool(out io.Writer, tool registry.Tool) error {
	var schema any
	if err := json.Unmarshal(tool.Schema, &schema); err != nil {
		return fmt.Errorf("decode schema for %s: %w", tool.Name, err)
	}
	doc := struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		InputSchema any    `yaml:"inputSchema"`
	}{tool.Name, tool.Description, schema}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode %s: %w", tool.Name, err)
	}
	return enc.Close()
}
