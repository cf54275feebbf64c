// internal/mcpserver/server.go
// Package mcpserver exposes the tool registry over the Model Context Protocol.
package mcpserver

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mwiater/hkomcp/internal/adapter"
	"github.com/mwiater/hkomcp/internal/registry"
)

const (
	serverName = "hkomcp"
	// Version is reported to clients during initialization.
	Version = "0.3.0"
)

// New binds every registered tool to a fresh MCP server and seals the registry.
// Metrics may be nil.
func New(reg *registry.Registry, metrics *Metrics) *server.MCPServer {
	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if metrics != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(metrics.Middleware()))
	}
	s := server.NewMCPServer(serverName, Version, opts...)

	reg.Seal()
	for _, t := range reg.Tools() {
		tool := mcp.NewToolWithRawSchema(t.Name, t.Description, t.Schema)
		tool.Annotations = mcp.ToolAnnotation{
			ReadOnlyHint:    mcp.ToBoolPtr(true),
			DestructiveHint: mcp.ToBoolPtr(false),
			OpenWorldHint:   mcp.ToBoolPtr(true),
		}
		s.AddTool(tool, toolHandler(reg, t.Name))
	}
	return s
}

// toolHandler adapts a registry call to an MCP tool result. Rejections become
// error results so the client sees the violated constraint.
func toolHandler(reg *registry.Registry, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := reg.Call(ctx, name, req.GetArguments())
		if err != nil {
			var verr *adapter.ValidationError
			if errors.As(err, &verr) {
				return mcp.NewToolResultError(verr.Error()), nil
			}
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}
