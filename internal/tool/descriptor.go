// Package tool holds the authoritative catalog of invokable operations and
// the dispatch path that turns a caller request into a uniform envelope.
package tool

import "context"

// ParamType is the semantic type a parameter value must satisfy.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeInteger ParamType = "integer"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
	TypeObject  ParamType = "object"
	TypeArray   ParamType = "array"
)

// Param declares one handler parameter.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	// Default is applied when an optional parameter is absent. nil means
	// the handler receives no value for that key.
	Default any
}

// Args is the parameter bag bound for a handler invocation. Binding has
// already validated presence and types, so the typed getters below may
// assume well-formed values and fall back to zero values otherwise.
type Args map[string]any

// Handler is the implementation of a single tool.
type Handler func(ctx context.Context, args Args) (any, error)

// Descriptor describes one registered tool. Created once at registration
// time and immutable thereafter; the registry owns all descriptors.
type Descriptor struct {
	Name        string
	Description string
	Params      []Param
	Handler     Handler
}

// ParamNames returns the declared parameter names in declaration order.
func (d *Descriptor) ParamNames() []string {
	names := make([]string, len(d.Params))
	for i, p := range d.Params {
		names[i] = p.Name
	}
	return names
}

// String returns args[key] as a string, or "" if absent.
func (a Args) String(key string) string {
	v, _ := a[key].(string)
	return v
}

// StringOr returns args[key] as a string, or fallback if absent/empty.
func (a Args) StringOr(key, fallback string) string {
	if v, ok := a[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// Int returns args[key] as an int. JSON numbers decode as float64, so both
// representations are accepted.
func (a Args) Int(key string) int {
	switch v := a[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// IntOr returns args[key] as an int, or fallback if absent.
func (a Args) IntOr(key string, fallback int) int {
	if _, ok := a[key]; !ok {
		return fallback
	}
	return a.Int(key)
}

// Bool returns args[key] as a bool, or false if absent.
func (a Args) Bool(key string) bool {
	v, _ := a[key].(bool)
	return v
}

// Has reports whether key is present in the bag.
func (a Args) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Object returns args[key] as a JSON object, or nil if absent.
func (a Args) Object(key string) map[string]any {
	v, _ := a[key].(map[string]any)
	return v
}

// Slice returns args[key] as a raw JSON array, or nil if absent.
func (a Args) Slice(key string) []any {
	v, _ := a[key].([]any)
	return v
}

// StringSlice returns args[key] as a []string, skipping non-string elements.
func (a Args) StringSlice(key string) []string {
	raw := a.Slice(key)
	if raw == nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// ObjectSlice returns args[key] as a []map[string]any, skipping non-object elements.
func (a Args) ObjectSlice(key string) []map[string]any {
	raw := a.Slice(key)
	if raw == nil {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
