// Package registry holds the static mapping from tool name to descriptor
// and handler. The registry is populated once at process start and is
// read-only afterwards, so it is shared across invocations without locking.
package registry

import (
	"errors"
	"fmt"

	"github.com/creativeops/studio-mcp/pkg/types"
)

var (
	// ErrDuplicateName is returned when a tool name is registered twice.
	ErrDuplicateName = errors.New("duplicate tool name")
	// ErrNotFound is returned when no tool matches the requested name.
	ErrNotFound = errors.New("tool not found")
)

type entry struct {
	descriptor types.ToolDescriptor
	handler    types.Handler
}

// Registry maps tool names to their descriptors and handlers.
type Registry struct {
	entries map[string]entry
	order   []string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]entry),
	}
}

// Register adds a tool to the registry. Names must be unique; the first
// registration wins and a duplicate fails without displacing it.
func (r *Registry) Register(descriptor types.ToolDescriptor, handler types.Handler) error {
	if descriptor.Name == "" {
		return errors.New("tool name must not be empty")
	}
	if handler == nil {
		return fmt.Errorf("tool %q has no handler", descriptor.Name)
	}
	if _, exists := r.entries[descriptor.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, descriptor.Name)
	}

	r.entries[descriptor.Name] = entry{descriptor: descriptor, handler: handler}
	r.order = append(r.order, descriptor.Name)
	return nil
}

// Resolve looks up a tool by name.
func (r *Registry) Resolve(name string) (types.ToolDescriptor, types.Handler, error) {
	e, ok := r.entries[name]
	if !ok {
		return types.ToolDescriptor{}, nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return e.descriptor, e.handler, nil
}

// List returns the registered descriptors in registration order.
// The returned slice is a fresh copy on every call.
func (r *Registry) List() []types.ToolDescriptor {
	descriptors := make([]types.ToolDescriptor, 0, len(r.order))
	for _, name := range r.order {
		descriptors = append(descriptors, r.entries[name].descriptor)
	}
	return descriptors
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.entries)
}
