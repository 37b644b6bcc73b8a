package mustache

import "testing"

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nil nil", nil, nil, true},
		{"nil string", nil, String(""), false},
		{"strings", String("a"), String("a"), true},
		{"different strings", String("a"), String("b"), false},
		{"string vs bool", String("true"), Bool(true), false},
		{"bools", Bool(false), Bool(false), true},
		{"empty lists", List{}, List{}, true},
		{"list order", List{String("a"), String("b")}, List{String("b"), String("a")}, false},
		{"list length", List{String("a")}, List{String("a"), String("a")}, false},
		{"maps", Map{"k": List{Bool(true)}}, Map{"k": List{Bool(true)}}, true},
		{"map values", Map{"k": String("v")}, Map{"k": String("w")}, false},
		{"map keys", Map{"k": String("v")}, Map{"j": String("v")}, false},
		{"empty list vs map", List{}, Map{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}

			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    Value
		want bool
	}{
		{nil, false},
		{Bool(false), false},
		{Bool(true), true},
		{List{}, false},
		{List(nil), false},
		{List{Bool(false)}, true},
		{String(""), true},
		{String("x"), true},
		{Map{}, true},
	}

	for _, tt := range tests {
		if got := Truthy(tt.v); got != tt.want {
			t.Errorf("Truthy(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	v := Map{
		"b": List{String("x"), Bool(true)},
		"a": Map{},
		"c": String("y"),
	}

	want := "Map{a: Map{}, b: List[String(x), Boolean(true)], c: String(y)}"
	if got := v.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    Value
		kind Kind
		name string
	}{
		{String(""), KindString, "String"},
		{Bool(false), KindBool, "Boolean"},
		{List{}, KindList, "List"},
		{Map{}, KindMap, "Map"},
	}

	for _, tt := range tests {
		if tt.v.Kind() != tt.kind || tt.kind.String() != tt.name {
			t.Errorf("%v: kind %v (%s)", tt.v, tt.v.Kind(), tt.kind)
		}
	}

	if kindName(nil) != "absent" {
		t.Errorf("kindName(nil) = %q", kindName(nil))
	}
}

func TestMap_Keys(t *testing.T) {
	t.Parallel()

	keys := Map{"c": Bool(true), "a": Bool(true), "b": Bool(true)}.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Keys() = %v", keys)
	}

	if keys := (Map{}).Keys(); len(keys) != 0 {
		t.Errorf("empty Keys() = %v", keys)
	}
}
