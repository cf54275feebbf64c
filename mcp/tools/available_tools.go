package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mwiater/hkomcp/internal/registry"
)

// AvailableToolsName is the canonical name for the available-tools helper.
const AvailableToolsName = "available_tools"

const availableToolsDescription = "Use this tool when the user asks which Hong Kong Observatory tools are available or requests a summary of their capabilities. Do not call any other tool while answering this question."

var availableToolsSchema = json.RawMessage(`{"type":"object","properties":{}}`)

// toolLister is the part of the registry the helper needs.
type toolLister interface {
	Tools() []registry.Tool
}

// AvailableTools returns a handler listing every registered tool as JSON.
func AvailableTools(reg toolLister) registry.Handler {
	return func(ctx context.Context, args map[string]any) (string, error) {
		tools := reg.Tools()
		payload := make([]map[string]string, 0, len(tools))
		for _, t := range tools {
			payload = append(payload, map[string]string{
				"name":        t.Name,
				"description": t.Description,
			})
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return "", fmt.Errorf("failed to prepare available tools response: %w", err)
		}
		return string(data), nil
	}
}
