package mcpserver

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/mwiater/hkomcp/internal/adapter"
	"github.com/mwiater/hkomcp/internal/appconfig"
	"github.com/mwiater/hkomcp/internal/registry"
	"github.com/mwiater/hkomcp/mcp/tools"
)

// Runtime is a fully wired server.
type Runtime struct {
	Registry *registry.Registry
	Metrics  *Metrics
	Server   *server.MCPServer
}

// Assemble builds the pipeline, registers the catalogue and binds it to an MCP
// server. A nil fetcher uses the HTTP client; a nil clock uses the wall clock.
func Assemble(cfg appconfig.Config, fetcher adapter.Fetcher, clock adapter.Clock) (*Runtime, error) {
	reg, metrics, err := NewRegistry(cfg, fetcher, clock)
	if err != nil {
		return nil, err
	}
	return &Runtime{Registry: reg, Metrics: metrics, Server: New(reg, metrics)}, nil
}

// NewRegistry builds the catalogue registry without binding it to a server.
func NewRegistry(cfg appconfig.Config, fetcher adapter.Fetcher, clock adapter.Clock) (*registry.Registry, *Metrics, error) {
	settings := cfg.AdapterSettings()
	if fetcher == nil {
		fetcher = adapter.NewHTTPClient(settings.Timeout)
	}
	var metrics *Metrics
	if cfg.Metrics {
		metrics = NewMetrics()
		fetcher = metrics.InstrumentFetcher(fetcher)
	}

	reg := registry.New()
	if err := tools.Register(reg, adapter.NewPipeline(settings, clock, fetcher)); err != nil {
		return nil, nil, fmt.Errorf("register tools: %w", err)
	}
	return reg, metrics, nil
}
