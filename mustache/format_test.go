package mustache

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestFormatJSON(t *testing.T) {
	t.Parallel()

	tmpl, err := New("hi {{#s}}{{{v}}}{{/s}}{{>p}}")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	var buf bytes.Buffer
	if err := FormatJSON(context.Background(), &buf, tmpl.Nodes(), 2); err != nil {
		t.Fatalf("FormatJSON error: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(got))
	}

	if got[0]["kind"] != "Text" || got[0]["text"] != "hi " {
		t.Errorf("node 0 = %v", got[0])
	}

	if got[1]["kind"] != "Section" || got[1]["inverted"] != false {
		t.Errorf("node 1 = %v", got[1])
	}

	children, ok := got[1]["children"].([]any)
	if !ok || len(children) != 1 {
		t.Fatalf("children = %v", got[1]["children"])
	}

	child, _ := children[0].(map[string]any)
	if child["name"] != "v" || child["escape"] != false {
		t.Errorf("child = %v", child)
	}

	if got[2]["kind"] != "Partial" || got[2]["column"] != float64(23) {
		t.Errorf("node 2 = %v", got[2])
	}

	buf.Reset()

	if err := FormatJSON(context.Background(), &buf, tmpl.Nodes(), 0); err != nil {
		t.Fatalf("FormatJSON error: %v", err)
	}

	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("compact JSON should be one line, got %q", buf.String())
	}
}

func TestFormatYAML(t *testing.T) {
	t.Parallel()

	tmpl, err := New("{{^missing}}none{{/missing}}")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	for _, indent := range []int{0, 2} {
		var buf bytes.Buffer
		if err := FormatYAML(context.Background(), &buf, tmpl.Nodes(), indent); err != nil {
			t.Fatalf("FormatYAML error: %v", err)
		}

		var got []map[string]any
		if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid YAML %q: %v", buf.String(), err)
		}

		if len(got) != 1 || got[0]["name"] != "missing" || got[0]["inverted"] != true {
			t.Errorf("indent %d: got %v", indent, got)
		}
	}
}

func TestNode_MarshalJSON(t *testing.T) {
	t.Parallel()

	n := &Node{Kind: NodeVariable, Name: "x", Escape: true, Pos: Position{Line: 1, Column: 2}}

	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	want := `{"column":2,"escape":true,"kind":"Variable","line":1,"name":"x"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}
