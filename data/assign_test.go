package data

import (
	"errors"
	"testing"

	"github.com/ardnew/stache/mustache"
)

func TestAssign(t *testing.T) {
	t.Setenv("STACHE_TEST_USER", "ada")

	root := mustache.Map{
		"site":  mustache.Map{"name": mustache.String("docs")},
		"items": mustache.List{mustache.String("a"), mustache.String("b")},
		"n":     mustache.String("x"),
	}

	tests := []struct {
		assignment string
		path       []string
		want       mustache.Value
	}{
		{`title = upper(site.name) + " home"`, []string{"title"}, mustache.String("DOCS home")},
		{`count=len(items)`, []string{"count"}, mustache.String("2")},
		{`flags.debug = 1 > 0`, []string{"flags", "debug"}, mustache.Bool(true)},
		{`site.owner = env("STACHE_TEST_USER")`, []string{"site", "owner"}, mustache.String("ada")},
		{`pair = ["x", true]`, []string{"pair"}, mustache.List{mustache.String("x"), mustache.Bool(true)}},
		{`n.sub = "replaced"`, []string{"n", "sub"}, mustache.String("replaced")},
	}

	for _, tt := range tests {
		got, err := Assign(root, tt.assignment)
		if err != nil {
			t.Errorf("Assign(%q) error: %v", tt.assignment, err)

			continue
		}

		var v mustache.Value = got
		for _, key := range tt.path {
			m, ok := v.(mustache.Map)
			if !ok {
				t.Fatalf("Assign(%q): %v is not a map", tt.assignment, v)
			}

			v = m[key]
		}

		if !mustache.Equal(v, tt.want) {
			t.Errorf("Assign(%q) stored %v, want %v", tt.assignment, v, tt.want)
		}
	}

	if _, ok := root["title"]; ok {
		t.Error("Assign modified its input")
	}

	if _, ok := root["site"].(mustache.Map)["owner"]; ok {
		t.Error("Assign modified a nested map of its input")
	}
}

func TestAssign_NilRemoves(t *testing.T) {
	t.Parallel()

	root := mustache.Map{"a": mustache.String("1"), "b": mustache.String("2")}

	got, err := Assign(root, "a = nil")
	if err != nil {
		t.Fatalf("Assign error: %v", err)
	}

	if !got.Equal(mustache.Map{"b": mustache.String("2")}) {
		t.Errorf("Assign() = %v", got)
	}
}

func TestAssign_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		assignment string
		want       error
	}{
		{"noequals", ErrAssignment},
		{"a=", ErrAssignment},
		{"=1", ErrAssignment},
		{"a..b=1", ErrAssignment},
		{"a. b=1", ErrAssignment},
		{"a=1 +", ErrExprCompile},
		{"a=items[5]", ErrExprEvaluate},
	}

	root := mustache.Map{"items": mustache.List{mustache.String("x")}}

	for _, tt := range tests {
		_, err := Assign(root, tt.assignment)
		if !errors.Is(err, tt.want) {
			t.Errorf("Assign(%q) = %v, want %v", tt.assignment, err, tt.want)
		}
	}
}

func TestEval_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := Eval(mustache.Map{}, `env`)
	if !errors.Is(err, ErrExprEvaluate) {
		t.Errorf("Eval(env) = %v, want ErrExprEvaluate", err)
	}
}
