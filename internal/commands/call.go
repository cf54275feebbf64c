// internal/commands/call.go
package hkomcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/itchyny/gojq"
	"github.com/mwiater/hkomcp/internal/adapter"
	"github.com/mwiater/hkomcp/mcp/tools"
	"github.com/spf13/cobra"
)

var (
	callArgs  []string
	callQuery string
)

// callCmd invokes one tool through the same pipeline the MCP server uses.
var callCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Invoke a tool once and print its output",
	Long: `Invoke a registered tool with key=value arguments and print the normalized output.

Integer parameters are converted from text before validation. --jq applies a jq
filter to JSON output, for example:

  hkomcp call rhrread --jq '.temperature.data[0]'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		raw, err := parseKeyValues(callArgs)
		if err != nil {
			return err
		}
		toolArgs := make(map[string]any, len(raw))
		if d, ok := tools.Lookup(args[0]); ok {
			if toolArgs, err = adapter.ParseArgs(d, raw); err != nil {
				return reportRejection(cmd.ErrOrStderr(), err)
			}
		} else {
			for k, v := range raw {
				toolArgs[k] = v
			}
		}

		text, err := reg.Call(cmd.Context(), args[0], toolArgs)
		if err != nil {
			return reportRejection(cmd.ErrOrStderr(), err)
		}
		if text == adapter.Sentinel {
			color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(), "no data returned; run with --debug for the upstream failure")
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}
		if callQuery != "" {
			if text, err = applyJQ(callQuery, text); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	callCmd.Flags().StringArrayVarP(&callArgs, "arg", "a", nil, "tool argument as key=value (repeatable)")
	callCmd.Flags().StringVar(&callQuery, "jq", "", "jq filter applied to JSON output")
	rootCmd.AddCommand(callCmd)
}

func parseKeyValues(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --arg %q: expected key=value", pair)
		}
		out[key] = value
	}
	return out, nil
}

func reportRejection(out io.Writer, err error) error {
	var verr *adapter.ValidationError
	if errors.As(err, &verr) {
		color.New(color.FgRed).Fprintf(out, "rejected: %s\n", verr.Error())
	}
	return err
}

// applyJQ runs query over a JSON document, printing each result on its own line.
func applyJQ(query, text string) (string, error) {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return "", fmt.Errorf("invalid jq query: %w", err)
	}
	var input any
	if err := json.Unmarshal([]byte(text), &input); err != nil {
		return "", fmt.Errorf("--jq needs JSON output: %w", err)
	}

	var lines []string
	iter := parsed.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return "", fmt.Errorf("jq error: %w", err)
		}
		b, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to encode result: %w", err)
		}
		lines = append(lines, string(b))
	}
	return strings.Join(lines, "\n"), nil
}
