// internal/registry/registry.go
// Package registry holds the ordered set of tools exposed to MCP clients.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mwiater/hkomcp/internal/logging"
)

var (
	// ErrUnknownTool is returned by Call for names that were never registered.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrSealed is returned by Register once the registry has been bound to a server.
	ErrSealed = errors.New("registry is sealed")
)

// Handler executes a tool. A non-nil error means the call was rejected.
type Handler func(ctx context.Context, args map[string]any) (string, error)

// Tool is one registered {name, schema, handler} triple.
type Tool struct {
	Name        string
	Description string
	Schema      json.RawMessage
	Handler     Handler
}

// Registry keeps tools in registration order.
type Registry struct {
	mu     sync.RWMutex
	tools  []Tool
	index  map[string]int
	sealed bool
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds a tool. Names must be unique and the schema must be valid JSON.
func (r *Registry) Register(name, description string, schema json.RawMessage, handler Handler) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("register tool: empty name")
	}
	if handler == nil {
		return fmt.Errorf("register tool %s: nil handler", name)
	}
	if !json.Valid(schema) {
		return fmt.Errorf("register tool %s: schema is not valid JSON", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return fmt.Errorf("register tool %s: %w", name, ErrSealed)
	}
	if _, exists := r.index[name]; exists {
		return fmt.Errorf("register tool %s: already registered", name)
	}
	r.index[name] = len(r.tools)
	r.tools = append(r.tools, Tool{Name: name, Description: description, Schema: schema, Handler: handler})
	return nil
}

// Seal stops further registration.
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

// Tools returns a copy of the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[name]
	if !ok {
		return Tool{}, false
	}
	return r.tools[i], true
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Call runs a tool by name, tagging ctx with a fresh call id when it has none.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	tool, ok := r.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if logging.CallID(ctx) == "" {
		ctx = logging.WithCallID(ctx, uuid.NewString())
	}
	logging.LogRequest(ctx, "in", "", name, args)
	return tool.Handler(ctx, args)
}
