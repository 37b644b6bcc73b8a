package data

import (
	"testing"

	"github.com/ardnew/stache/mustache"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	dst := mustache.Map{
		"a": mustache.String("1"),
		"m": mustache.Map{"x": mustache.String("x"), "y": mustache.String("y")},
		"l": mustache.List{mustache.String("old")},
	}
	src := mustache.Map{
		"b": mustache.Bool(true),
		"m": mustache.Map{"y": mustache.String("Y"), "z": mustache.String("Z")},
		"l": mustache.List{mustache.String("new")},
	}

	got := Merge(dst, src)
	want := mustache.Map{
		"a": mustache.String("1"),
		"b": mustache.Bool(true),
		"m": mustache.Map{
			"x": mustache.String("x"),
			"y": mustache.String("Y"),
			"z": mustache.String("Z"),
		},
		"l": mustache.List{mustache.String("new")},
	}

	if !got.Equal(want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}

	if _, ok := dst["b"]; ok {
		t.Error("Merge modified dst")
	}

	if dst["m"].(mustache.Map)["y"] != mustache.String("y") {
		t.Error("Merge modified a nested map of dst")
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	got := Merge(nil, mustache.Map{"a": mustache.String("1")})
	if !got.Equal(mustache.Map{"a": mustache.String("1")}) {
		t.Errorf("Merge(nil, src) = %v", got)
	}

	got = Merge(mustache.Map{"a": mustache.String("1")}, nil)
	if !got.Equal(mustache.Map{"a": mustache.String("1")}) {
		t.Errorf("Merge(dst, nil) = %v", got)
	}
}

func TestMerge_MapReplacesScalar(t *testing.T) {
	t.Parallel()

	got := Merge(
		mustache.Map{"k": mustache.String("s")},
		mustache.Map{"k": mustache.Map{"n": mustache.Bool(true)}},
	)

	if !got.Equal(mustache.Map{"k": mustache.Map{"n": mustache.Bool(true)}}) {
		t.Errorf("Merge() = %v", got)
	}
}
