package mustache

import (
	"errors"
	"testing"
)

func TestFromNative(t *testing.T) {
	t.Parallel()

	type label string

	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, nil},
		{"string", "s", String("s")},
		{"named string", label("l"), String("l")},
		{"bool", true, Bool(true)},
		{"int", 42, String("42")},
		{"int64", int64(-7), String("-7")},
		{"int8", int8(3), String("3")},
		{"uint64", uint64(18446744073709551615), String("18446744073709551615")},
		{"float", 1.5, String("1.5")},
		{"whole float", 2.0, String("2")},
		{"float32", float32(0.25), String("0.25")},
		{"value passthrough", Bool(false), Bool(false)},
		{"any slice", []any{"a", 1, nil}, List{String("a"), String("1"), Bool(false)}},
		{"typed slice", []string{"x", "y"}, List{String("x"), String("y")}},
		{"nil slice", []int(nil), List{}},
		{"array", [2]bool{true, false}, List{Bool(true), Bool(false)}},
		{
			"string map",
			map[string]any{"a": "b", "n": nil, "m": map[string]any{"c": []any{}}},
			Map{"a": String("b"), "m": Map{"c": List{}}},
		},
		{
			"any-keyed map",
			map[any]any{"k": true, 1: "one"},
			Map{"k": Bool(true), "1": String("one")},
		},
		{"typed map", map[string]int{"n": 3}, Map{"n": String("3")}},
		{"pointer", new(int), String("0")},
		{"nil pointer", (*int)(nil), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FromNative(tt.in)
			if err != nil {
				t.Fatalf("FromNative(%v) error: %v", tt.in, err)
			}

			if !Equal(got, tt.want) {
				t.Errorf("FromNative(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromNative_Unsupported(t *testing.T) {
	t.Parallel()

	inputs := []any{
		struct{}{},
		make(chan int),
		func() {},
		[]any{"ok", struct{}{}},
		map[string]any{"bad": complex(1, 2)},
		map[[2]int]string{{1, 2}: "x"},
	}

	for _, in := range inputs {
		_, err := FromNative(in)
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("FromNative(%T) = %v, want ErrUnsupportedType", in, err)
		}
	}
}

func TestToNative(t *testing.T) {
	t.Parallel()

	v := Map{
		"s": String("x"),
		"b": Bool(true),
		"l": List{String("a"), Map{}},
	}

	got, ok := ToNative(v).(map[string]any)
	if !ok {
		t.Fatalf("ToNative returned %T", ToNative(v))
	}

	if got["s"] != "x" || got["b"] != true {
		t.Errorf("scalars = %v, %v", got["s"], got["b"])
	}

	l, ok := got["l"].([]any)
	if !ok || len(l) != 2 || l[0] != "a" {
		t.Fatalf("list = %#v", got["l"])
	}

	if _, ok := l[1].(map[string]any); !ok {
		t.Errorf("nested map = %T", l[1])
	}

	if ToNative(nil) != nil {
		t.Error("ToNative(nil) should be nil")
	}

	back, err := FromNative(got)
	if err != nil || !Equal(back, v) {
		t.Errorf("round trip = %v, %v", back, err)
	}
}
