package tool

import "fmt"

// BindArgs validates the caller-supplied argument bag against the tool's
// declared parameters and returns the bag the handler will receive.
//
// Policy (applied uniformly across every tool):
//   - missing required parameter  → validation error
//   - unknown extra parameter     → validation error (rejected, not ignored)
//   - declared-type mismatch      → validation error
//   - absent optional parameter   → default applied when one is declared
func BindArgs(d *Descriptor, supplied Args) (Args, *Error) {
	declared := make(map[string]Param, len(d.Params))
	for _, p := range d.Params {
		declared[p.Name] = p
	}

	for key := range supplied {
		if _, ok := declared[key]; !ok {
			return nil, Validationf("tool %q: unknown argument %q (accepted: %v)", d.Name, key, d.ParamNames())
		}
	}

	bound := make(Args, len(d.Params))
	for _, p := range d.Params {
		value, present := supplied[p.Name]
		if !present || value == nil {
			if p.Required {
				return nil, Validationf("tool %q: missing required argument %q", d.Name, p.Name)
			}
			if p.Default != nil {
				bound[p.Name] = p.Default
			}
			continue
		}
		if err := checkType(d.Name, p, value); err != nil {
			return nil, err
		}
		bound[p.Name] = value
	}

	return bound, nil
}

// checkType validates a single value against the declared parameter type.
// JSON decoding produces float64 for every number, so integer parameters
// accept any float64 with no fractional part.
func checkType(tool string, p Param, value any) *Error {
	ok := true
	switch p.Type {
	case TypeString:
		_, ok = value.(string)
	case TypeBoolean:
		_, ok = value.(bool)
	case TypeInteger:
		switch v := value.(type) {
		case int, int64:
		case float64:
			ok = v == float64(int64(v))
		default:
			ok = false
		}
	case TypeNumber:
		switch value.(type) {
		case int, int64, float64:
		default:
			ok = false
		}
	case TypeObject:
		_, ok = value.(map[string]any)
	case TypeArray:
		_, ok = value.([]any)
	default:
		// Undeclared type: accept anything rather than reject valid calls.
	}

	if !ok {
		return Validationf("tool %q: argument %q must be a %s, got %s", tool, p.Name, p.Type, jsonTypeName(value))
	}
	return nil
}

// jsonTypeName names a decoded JSON value's type for error messages.
func jsonTypeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
