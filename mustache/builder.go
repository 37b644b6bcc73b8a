package mustache

import (
	"maps"
	"slices"
)

// MapBuilder provides a fluent API for constructing a [Map].
//
// Example:
//
//	data := mustache.NewMapBuilder().
//	    Insert("name", "Ada").
//	    InsertBool("admin", true).
//	    InsertList("langs", func(l *mustache.ListBuilder) {
//	        l.Push("go").Push("c")
//	    }).
//	    InsertMap("address", func(m *mustache.MapBuilder) {
//	        m.Insert("city", "London")
//	    }).
//	    Build()
type MapBuilder struct {
	data Map
}

// NewMapBuilder creates an empty map builder.
func NewMapBuilder() *MapBuilder {
	return &MapBuilder{data: make(Map)}
}

// Insert sets key to a [String]. An existing entry is replaced.
func (b *MapBuilder) Insert(key, value string) *MapBuilder {
	return b.InsertValue(key, String(value))
}

// InsertBool sets key to a [Bool].
func (b *MapBuilder) InsertBool(key string, value bool) *MapBuilder {
	return b.InsertValue(key, Bool(value))
}

// InsertValue sets key to an arbitrary [Value]. A nil value removes key.
func (b *MapBuilder) InsertValue(key string, value Value) *MapBuilder {
	if value == nil {
		delete(b.data, key)

		return b
	}

	b.data[key] = value

	return b
}

// InsertList sets key to the [List] built by fn.
func (b *MapBuilder) InsertList(key string, fn func(*ListBuilder)) *MapBuilder {
	l := NewListBuilder()
	if fn != nil {
		fn(l)
	}

	return b.InsertValue(key, l.Build())
}

// InsertMap sets key to the [Map] built by fn.
func (b *MapBuilder) InsertMap(key string, fn func(*MapBuilder)) *MapBuilder {
	m := NewMapBuilder()
	if fn != nil {
		fn(m)
	}

	return b.InsertValue(key, m.Build())
}

// Build returns the constructed map. Later use of the builder does not
// affect the returned value.
func (b *MapBuilder) Build() Map {
	return maps.Clone(b.data)
}

// ListBuilder provides a fluent API for constructing a [List].
type ListBuilder struct {
	data List
}

// NewListBuilder creates an empty list builder.
func NewListBuilder() *ListBuilder {
	return &ListBuilder{data: List{}}
}

// Push appends a [String].
func (b *ListBuilder) Push(value string) *ListBuilder {
	return b.PushValue(String(value))
}

// PushBool appends a [Bool].
func (b *ListBuilder) PushBool(value bool) *ListBuilder {
	return b.PushValue(Bool(value))
}

// PushValue appends an arbitrary [Value]. Nil values are ignored.
func (b *ListBuilder) PushValue(value Value) *ListBuilder {
	if value != nil {
		b.data = append(b.data, value)
	}

	return b
}

// PushList appends the [List] built by fn.
func (b *ListBuilder) PushList(fn func(*ListBuilder)) *ListBuilder {
	l := NewListBuilder()
	if fn != nil {
		fn(l)
	}

	return b.PushValue(l.Build())
}

// PushMap appends the [Map] built by fn.
func (b *ListBuilder) PushMap(fn func(*MapBuilder)) *ListBuilder {
	m := NewMapBuilder()
	if fn != nil {
		fn(m)
	}

	return b.PushValue(m.Build())
}

// Build returns the constructed list. Later use of the builder does not
// affect the returned value.
func (b *ListBuilder) Build() List {
	return slices.Clone(b.data)
}
