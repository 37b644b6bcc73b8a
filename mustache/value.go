package mustache

import (
	"slices"
	"strconv"
	"strings"
)

// Value is the data a template is rendered against.
//
// It is a closed union of exactly four variants: [String], [Bool], [List],
// and [Map]. Values are never mutated while a render is in progress.
type Value interface {
	// Kind reports which variant the value is.
	Kind() Kind
	// Equal reports whether other is the same variant with equal contents.
	Equal(other Value) bool

	String() string

	sealed()
}

// Kind identifies the variant of a [Value].
type Kind int

const (
	// KindString is the kind of [String].
	KindString Kind = iota

	// KindBool is the kind of [Bool].
	KindBool

	// KindList is the kind of [List].
	KindList

	// KindMap is the kind of [Map].
	KindMap
)

// String returns a string representation of the value kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"

	case KindBool:
		return "Boolean"

	case KindList:
		return "List"

	case KindMap:
		return "Map"

	default:
		return "Unknown"
	}
}

// String is a text value.
type String string

// Bool is a boolean value.
type Bool bool

// List is an ordered sequence of values. Order drives iteration order.
type List []Value

// Map is a mapping from name to value.
type Map map[string]Value

func (String) Kind() Kind { return KindString }
func (Bool) Kind() Kind   { return KindBool }
func (List) Kind() Kind   { return KindList }
func (Map) Kind() Kind    { return KindMap }

func (String) sealed() {}
func (Bool) sealed()   {}
func (List) sealed()   {}
func (Map) sealed()    {}

// Equal implements [Value].
func (s String) Equal(other Value) bool {
	o, ok := other.(String)

	return ok && s == o
}

// Equal implements [Value].
func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)

	return ok && b == o
}

// Equal implements [Value].
func (l List) Equal(other Value) bool {
	o, ok := other.(List)

	return ok && slices.EqualFunc(l, o, Equal)
}

// Equal implements [Value].
func (m Map) Equal(other Value) bool {
	o, ok := other.(Map)
	if !ok || len(m) != len(o) {
		return false
	}

	for key, val := range m {
		ov, found := o[key]
		if !found || !Equal(val, ov) {
			return false
		}
	}

	return true
}

// Equal reports whether a and b are the same variant with equal contents.
// Two nil values are equal; a nil value never equals a non-nil one.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Equal(b)
}

// Truthy reports whether v selects the contents of a section.
// Absent (nil) values, false, and empty lists are falsy; everything else is
// truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case nil:
		return false

	case Bool:
		return bool(val)

	case List:
		return len(val) > 0

	case String, Map:
		return true

	default:
		return false
	}
}

// Keys returns the keys of m in sorted order.
func (m Map) Keys() []string {
	return sortedKeys(m)
}

// String returns a debug representation of the value.
func (s String) String() string { return "String(" + string(s) + ")" }

// String returns a debug representation of the value.
func (b Bool) String() string {
	return "Boolean(" + strconv.FormatBool(bool(b)) + ")"
}

// String returns a debug representation of the value.
func (l List) String() string {
	part := make([]string, len(l))
	for i, v := range l {
		part[i] = valueString(v)
	}

	return "List[" + strings.Join(part, ", ") + "]"
}

// String returns a debug representation of the value.
func (m Map) String() string {
	keys := m.Keys()

	part := make([]string, len(keys))
	for i, key := range keys {
		part[i] = key + ": " + valueString(m[key])
	}

	return "Map{" + strings.Join(part, ", ") + "}"
}

func valueString(v Value) string {
	if v == nil {
		return "<absent>"
	}

	return v.String()
}
