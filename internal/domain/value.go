package domain

import (
	"fmt"
	"time"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is the single structured representation shared by the document and
// schema loaders. Both produce the same shape, so the validator and the rule
// engine operate over one closed type with no format-specific branching.
// A Value is immutable after construction.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	seq  []Value
	m    map[string]Value
}

// FromGo converts a decoded JSON/YAML tree (maps, slices, scalars) into a
// Value. Mapping keys must be strings; YAML documents with non-string keys
// are rejected.
func FromGo(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Value{kind: KindNull}, nil
	case bool:
		return Value{kind: KindBool, b: v}, nil
	case int:
		return Value{kind: KindNumber, n: float64(v)}, nil
	case int64:
		return Value{kind: KindNumber, n: float64(v)}, nil
	case uint64:
		return Value{kind: KindNumber, n: float64(v)}, nil
	case float64:
		return Value{kind: KindNumber, n: v}, nil
	case string:
		return Value{kind: KindString, s: v}, nil
	case time.Time:
		// yaml.v3 resolves unquoted timestamp scalars into time.Time; the
		// JSON grammar has no timestamp type, so normalize back to the
		// RFC3339 string a JSON document would carry.
		return Value{kind: KindString, s: v.Format(time.RFC3339)}, nil
	case []byte:
		// yaml !!binary scalars decode to []byte.
		return Value{kind: KindString, s: string(v)}, nil
	case []any:
		seq := make([]Value, 0, len(v))
		for i, item := range v {
			converted, err := FromGo(item)
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			seq = append(seq, converted)
		}
		return Value{kind: KindSequence, seq: seq}, nil
	case map[string]any:
		m := make(map[string]Value, len(v))
		for key, item := range v {
			converted, err := FromGo(item)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", key, err)
			}
			m[key] = converted
		}
		return Value{kind: KindMapping, m: m}, nil
	case map[any]any:
		m := make(map[string]Value, len(v))
		for key, item := range v {
			str, ok := key.(string)
			if !ok {
				return Value{}, fmt.Errorf("mapping key %v is not a string", key)
			}
			converted, err := FromGo(item)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", str, err)
			}
			m[str] = converted
		}
		return Value{kind: KindMapping, m: m}, nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) Bool() bool { return v.b }

func (v Value) Number() float64 { return v.n }

func (v Value) Str() string { return v.s }

// Sequence returns a copy of the elements of a sequence Value, nil
// otherwise. Copying keeps the Value immutable through its accessors.
func (v Value) Sequence() []Value {
	if v.kind != KindSequence {
		return nil
	}
	out := make([]Value, len(v.seq))
	copy(out, v.seq)
	return out
}

// Keys returns the mapping keys in unspecified order, nil for non-mappings.
func (v Value) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	return keys
}

// Get looks up a key in a mapping Value. The second return is false for
// non-mappings and missing keys.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	val, ok := v.m[key]
	return val, ok
}

// Interface converts the Value back into a plain Go tree for consumers that
// expect decoded JSON shapes, such as the schema engine.
func (v Value) Interface() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			out[i] = item.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.m))
		for key, item := range v.m {
			out[key] = item.Interface()
		}
		return out
	default:
		return nil
	}
}
