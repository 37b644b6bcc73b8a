package mustache

import (
	"sort"
)

func sortedKeys[T any](m map[string]T) []string {
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// kindName returns the variant name of v, or "absent" for nil.
func kindName(v Value) string {
	if v == nil {
		return "absent"
	}

	return v.Kind().String()
}
