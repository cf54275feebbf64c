package adapter

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Params is a validated parameter set. Values are string or int.
type Params map[string]any

// Has reports whether the parameter is present.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Int returns an integer parameter.
func (p Params) Int(name string) (int, bool) {
	v, ok := p[name].(int)
	return v, ok
}

// String returns a string parameter.
func (p Params) String(name string) (string, bool) {
	v, ok := p[name].(string)
	return v, ok
}

// Format returns the response format the operation should produce.
func (p Params) Format(d Descriptor) string {
	if d.Format != DualFormat {
		return FormatJSON
	}
	if f, ok := p.String(FormatParam); ok && f != "" {
		return f
	}
	if d.DefaultFormat != "" {
		return d.DefaultFormat
	}
	return FormatJSON
}

// ParseArgs converts textual key=value arguments into typed tool arguments
// using the descriptor's parameter kinds. Undeclared keys are passed through as strings.
func ParseArgs(d Descriptor, raw map[string]string) (map[string]any, error) {
	args := make(map[string]any, len(raw))
	for key, value := range raw {
		p, ok := d.Param(key)
		if !ok || p.Kind != KindInteger {
			args[key] = value
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, &ValidationError{Tool: d.Name, Field: key, Message: fmt.Sprintf("%q is not an integer", value)}
		}
		args[key] = n
	}
	return args, nil
}

func resolveDefault(p Param, s Settings) (any, bool) {
	switch def := p.Default.(type) {
	case nil:
		return nil, false
	case settingDefault:
		if def == DefaultLanguage {
			return s.Language, true
		}
		return nil, false
	default:
		return def, true
	}
}

func coerce(p Param, v any) (any, error) {
	if p.Kind == KindString {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("must be a string")
		}
		return s, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return nil, fmt.Errorf("must be an integer")
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return nil, fmt.Errorf("must be an integer")
		}
		return int(i), nil
	default:
		return nil, fmt.Errorf("must be an integer")
	}
}
