package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/docboost"
	"github.com/google/jsonschema-go/jsonschema"
)

// Handler executes a tool with validated arguments.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// ToolDefinition is the public description of a tool returned by tools/list.
type ToolDefinition struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

// Tool pairs a definition with its handler.
type Tool struct {
	ToolDefinition
	Handler Handler
}

type registeredTool struct {
	tool   *Tool
	schema *jsonschema.Resolved
}

// Registry maps tool names to tools. It is immutable once built.
type Registry struct {
	tools map[string]registeredTool
	order []string
}

// NewRegistry builds a registry from tools, resolving every input schema.
func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{tools: make(map[string]registeredTool, len(tools))}

	for i := range tools {
		t := &tools[i]
		if t.Name == "" {
			return nil, fmt.Errorf("tool %d has no name", i)
		}
		if _, ok := r.tools[t.Name]; ok {
			return nil, fmt.Errorf("duplicate tool %q", t.Name)
		}
		if t.Handler == nil {
			return nil, fmt.Errorf("tool %q has no handler", t.Name)
		}
		if t.InputSchema == nil {
			return nil, fmt.Errorf("tool %q has no input schema", t.Name)
		}

		resolved, err := t.InputSchema.Resolve(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve schema of tool %q: %w", t.Name, err)
		}

		r.tools[t.Name] = registeredTool{tool: t, schema: resolved}
		r.order = append(r.order, t.Name)
	}

	return r, nil
}

// Lookup returns the tool with the given name.
func (r *Registry) Lookup(name string) (*Tool, bool) {
	rt, ok := r.tools[name]
	if !ok {
		return nil, false
	}
	return rt.tool, true
}

// Definitions returns the definitions of all tools in registration order.
func (r *Registry) Definitions() []ToolDefinition {
	defs := make([]ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name].tool.ToolDefinition)
	}
	return defs
}

// Call validates args against the tool's input schema and runs its handler.
// Absent arguments are treated as an empty object.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (any, error) {
	rt, ok := r.tools[name]
	if !ok {
		return nil, docboost.Errorf(docboost.ENOTFOUND, "Unknown tool: %s", name)
	}

	if len(args) == 0 || string(args) == "null" {
		args = json.RawMessage("{}")
	}

	var instance any
	if err := json.Unmarshal(args, &instance); err != nil {
		return nil, docboost.Errorf(docboost.EINVALID, "invalid arguments: %v", err)
	}
	if err := rt.schema.Validate(instance); err != nil {
		return nil, docboost.Errorf(docboost.EINVALID, "invalid arguments: %v", err)
	}

	return rt.tool.Handler(ctx, args)
}
