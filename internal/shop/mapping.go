package shop

import (
	"encoding/json"
	"fmt"
	"math"
)

// Key is the symbolic spelling of a mapping key. Serialization always emits
// symbolic keys; lookups accept the symbolic or the plain string spelling,
// symbolic first.
type Key string

// Canonical keys shared by the model mappings.
const (
	KeyName     Key = "name"
	KeyEmail    Key = "email"
	KeyAge      Key = "age"
	KeyPrice    Key = "price"
	KeyCategory Key = "category"
	KeyID       Key = "id"
	KeyCustomer Key = "customer"
	KeyItems    Key = "items"
	KeyTotal    Key = "total"
)

// Map is the flat key-value form every model serializes to and constructs
// from. Keys are Key or string values; anything else refuses to marshal.
type Map map[any]any

// lookup resolves k in precedence order: the symbolic spelling wins over the
// string spelling when both are present.
func (m Map) lookup(k Key) (any, bool) {
	if v, ok := m[k]; ok {
		return v, true
	}
	v, ok := m[string(k)]
	return v, ok
}

// stringVal extracts a required string value.
func (m Map) stringVal(k Key) (string, error) {
	v, ok := m.lookup(k)
	if !ok {
		return "", fmt.Errorf("%w: missing key %q", ErrInvalidInput, k)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: key %q: want string, got %T", ErrInvalidInput, k, v)
	}
	return s, nil
}

// stringOr extracts an optional string value, falling back to def.
func (m Map) stringOr(k Key, def string) (string, error) {
	if _, ok := m.lookup(k); !ok {
		return def, nil
	}
	return m.stringVal(k)
}

// intOr extracts an optional integer value, falling back to def. JSON
// decoding hands numbers over as float64, so integral floats are accepted;
// fractional ones are not.
func (m Map) intOr(k Key, def int) (int, error) {
	v, ok := m.lookup(k)
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: key %q: want integer, got %v", ErrInvalidInput, k, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: key %q: want integer, got %T", ErrInvalidInput, k, v)
	}
}

// floatVal extracts a required numeric value.
func (m Map) floatVal(k Key) (float64, error) {
	v, ok := m.lookup(k)
	if !ok {
		return 0, fmt.Errorf("%w: missing key %q", ErrInvalidInput, k)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: key %q: want number, got %T", ErrInvalidInput, k, v)
	}
}

// floatOr extracts an optional numeric value, falling back to def.
func (m Map) floatOr(k Key, def float64) (float64, error) {
	if _, ok := m.lookup(k); !ok {
		return def, nil
	}
	return m.floatVal(k)
}

// MarshalJSON flattens symbolic keys to their string spelling so a Map
// encodes like a plain JSON object.
func (m Map) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch key := k.(type) {
		case Key:
			out[string(key)] = v
		case string:
			out[key] = v
		default:
			return nil, fmt.Errorf("%w: map key %v (%T) is not a string key", ErrInvalidInput, k, k)
		}
	}
	return json.Marshal(out)
}
