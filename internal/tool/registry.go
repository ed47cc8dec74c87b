package tool

import (
	"fmt"
	"strings"
)

// Registry maps tool names to descriptors. It is populated synchronously
// during process initialization and read-only during request handling, so
// resolution needs no locking.
type Registry struct {
	order  []string
	byName map[string]*Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Descriptor)}
}

// Register inserts a descriptor. A duplicate name is a configuration error:
// the caller should fail startup rather than let last-registered-wins hide a
// collision between providers.
func (r *Registry) Register(d Descriptor) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return fmt.Errorf("register: tool name is required")
	}
	if d.Handler == nil {
		return fmt.Errorf("register %q: handler is required", d.Name)
	}
	if _, exists := r.byName[d.Name]; exists {
		return fmt.Errorf("register %q: %w", d.Name, ErrDuplicateTool)
	}

	seen := make(map[string]struct{}, len(d.Params))
	for _, p := range d.Params {
		if p.Name == "" {
			return fmt.Errorf("register %q: parameter with empty name", d.Name)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("register %q: duplicate parameter %q", d.Name, p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	r.byName[d.Name] = &d
	r.order = append(r.order, d.Name)
	return nil
}

// RegisterAll registers every descriptor, stopping at the first failure.
func (r *Registry) RegisterAll(descs []Descriptor) error {
	for _, d := range descs {
		if err := r.Register(d); err != nil {
			return err
		}
	}
	return nil
}

// Resolve returns the descriptor for name (exact, case-sensitive match).
func (r *Registry) Resolve(name string) (*Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("resolve %q: %w", name, ErrUnknownTool)
	}
	return d, nil
}

// List returns all descriptors in registration order. Callers display this
// directly to humans, so the order must be stable.
func (r *Registry) List() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Names returns all tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}
