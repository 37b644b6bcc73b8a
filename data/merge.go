package data

import (
	"maps"

	"github.com/ardnew/stache/mustache"
)

// Merge returns the union of dst and src. Keys in src replace those in dst,
// except when both values are maps, which are merged recursively.
//
// Neither argument is modified.
func Merge(dst, src mustache.Map) mustache.Map {
	out := maps.Clone(dst)
	if out == nil {
		out = make(mustache.Map, len(src))
	}

	for key, val := range src {
		if sm, ok := val.(mustache.Map); ok {
			if dm, ok := out[key].(mustache.Map); ok {
				out[key] = Merge(dm, sm)

				continue
			}
		}

		out[key] = val
	}

	return out
}
