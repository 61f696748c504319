package schema

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ValueKind tags the variant held by a Value.
type ValueKind uint8

// All value kinds carried by verdicts and diff entries.
const (
	BoolKind ValueKind = iota
	NumberKind
	StringKind
	StringListKind
)

// Value is a tagged variant covering the heterogeneous expected/actual fields
// of branch-protection verdicts, so booleans, counts and check lists compare
// and serialize uniformly.
type Value struct {
	kind ValueKind
	b    bool
	n    int
	s    string
	list []string
}

// BoolValue wraps a boolean.
func BoolValue(v bool) Value { return Value{kind: BoolKind, b: v} }

// NumberValue wraps an integer count.
func NumberValue(n int) Value { return Value{kind: NumberKind, n: n} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: StringKind, s: s} }

// StringListValue wraps an ordered list of strings.
func StringListValue(items []string) Value {
	return Value{kind: StringListKind, list: items}
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// String renders the value for human output.
func (v Value) String() string {
	switch v.kind {
	case BoolKind:
		return strconv.FormatBool(v.b)
	case NumberKind:
		return strconv.Itoa(v.n)
	case StringListKind:
		return "[" + strings.Join(v.list, ", ") + "]"
	default:
		return v.s
	}
}

// native returns the untagged representation used by both marshalers.
func (v Value) native() any {
	switch v.kind {
	case BoolKind:
		return v.b
	case NumberKind:
		return v.n
	case StringListKind:
		if v.list == nil {
			return []string{}
		}
		return v.list
	default:
		return v.s
	}
}

// MarshalJSON renders the value as its native JSON type.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.native())
}

// MarshalYAML renders the value as its native YAML type.
func (v Value) MarshalYAML() (any, error) {
	return v.native(), nil
}
