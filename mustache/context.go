package mustache

import (
	"strings"
)

// contextStack holds the in-scope data frames during a render. The innermost
// frame is the last element.
type contextStack []Value

// push returns the stack with v as its new innermost frame.
func (s contextStack) push(v Value) contextStack {
	return append(s, v)
}

// pop returns the stack without its innermost frame.
func (s contextStack) pop() contextStack {
	return s[:len(s)-1]
}

// lookup resolves name against the stack.
//
// A name is looked up in each [Map] frame from innermost to outermost and
// the first entry found wins; frames of other kinds are skipped. The name "."
// is the innermost frame itself. A name containing dots is first tried as a
// literal key. Only when no frame has that key is "a.b.c" resolved as "a"
// followed by a descent through nested maps; any miss along the way makes
// the whole name absent.
func (s contextStack) lookup(name string) (Value, bool) {
	if name == "." {
		if len(s) == 0 {
			return nil, false
		}

		return s[len(s)-1], true
	}

	if val, found := s.lookupPlain(name); found {
		return val, true
	}

	head, rest, dotted := strings.Cut(name, ".")
	if !dotted {
		return nil, false
	}

	val, found := s.lookupPlain(head)
	if !found {
		return nil, false
	}

	for part := range strings.SplitSeq(rest, ".") {
		m, ok := val.(Map)
		if !ok {
			return nil, false
		}

		val, found = m[part]
		if !found {
			return nil, false
		}
	}

	return val, true
}

// lookupPlain finds the innermost map frame containing name.
func (s contextStack) lookupPlain(name string) (Value, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		m, ok := s[i].(Map)
		if !ok {
			continue
		}

		if val, found := m[name]; found {
			return val, true
		}
	}

	return nil, false
}
