package tools

import (
	"fmt"

	"github.com/mwiater/hkomcp/internal/adapter"
	"github.com/mwiater/hkomcp/internal/registry"
)

// Register adds every catalogue operation to reg in catalogue order, each bound
// to the pipeline, followed by the available_tools helper.
func Register(reg *registry.Registry, p *adapter.Pipeline) error {
	settings := p.Settings()
	for _, d := range Catalogue() {
		schema, err := adapter.SchemaJSON(d, settings)
		if err != nil {
			return fmt.Errorf("schema for %s: %w", d.Name, err)
		}
		if err := reg.Register(d.Name, d.Description, schema, p.Handler(d)); err != nil {
			return err
		}
	}
	return reg.Register(AvailableToolsName, availableToolsDescription, availableToolsSchema, AvailableTools(reg))
}
