// internal/commands/runtime.go
package hkomcp

import (
	"github.com/mwiater/hkomcp/internal/adapter"
	"github.com/mwiater/hkomcp/internal/mcpserver"
	"github.com/mwiater/hkomcp/internal/registry"
)

// Overridden in tests. Nil values select the HTTP client and the wall clock.
var (
	newFetcher = func() adapter.Fetcher { return nil }
	newClock   = func() adapter.Clock { return nil }
)

// buildRegistry wires the catalogue against the loaded configuration.
func buildRegistry() (*registry.Registry, error) {
	reg, _, err := mcpserver.NewRegistry(*GetConfig(), newFetcher(), newClock())
	return reg, err
}
