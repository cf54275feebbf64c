package adapter

import "encoding/json"

// Schema renders the descriptor as the JSON Schema advertised to clients.
// Clock-relative bounds are left out since they move with the calendar.
func Schema(d Descriptor, s Settings) map[string]any {
	props := make(map[string]any, len(d.Params))
	required := []string{}
	for _, p := range d.Params {
		prop := map[string]any{"type": p.Kind.jsonType()}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		if def, ok := resolveDefault(p, s); ok {
			prop["default"] = def
		}
		if p.Range != nil {
			if !p.Range.Min.Relative {
				prop["minimum"] = p.Range.Min.Value
			}
			if !p.Range.Max.Relative {
				prop["maximum"] = p.Range.Max.Value
			}
		}
		switch {
		case p.Pattern != "":
			prop["pattern"] = p.Pattern
		case p.Date != nil:
			prop["pattern"] = p.Date.Pattern
		}
		if p.Required && p.Kind == KindString {
			prop["minLength"] = 1
		}
		props[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// SchemaJSON is Schema encoded for the MCP tool listing.
func SchemaJSON(d Descriptor, s Settings) (json.RawMessage, error) {
	return json.Marshal(Schema(d, s))
}

// structuralSchema keeps only type, presence and emptiness checks. Domain
// rules are enforced afterwards so their messages stay uniform.
func structuralSchema(d Descriptor) map[string]any {
	props := make(map[string]any, len(d.Params))
	required := []string{}
	for _, p := range d.Params {
		prop := map[string]any{"type": p.Kind.jsonType()}
		if p.Required && p.Kind == KindString {
			prop["minLength"] = 1
		}
		props[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}
	schema := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
