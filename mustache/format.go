package mustache

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// FormatJSON writes the node tree as JSON to the writer.
func FormatJSON(_ context.Context, w io.Writer, nodes []*Node, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(nodesToNative(nodes), "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(nodesToNative(nodes))
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the node tree as YAML to the writer. An indent of zero
// selects flow style.
func FormatYAML(ctx context.Context, w io.Writer, nodes []*Node, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, nodesToNative(nodes), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

// MarshalJSON implements json.Marshaler for Node.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toNative())
}

func nodesToNative(nodes []*Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = n.toNative()
	}

	return out
}

// toNative converts the node to a map holding only the fields relevant to
// its kind.
func (n *Node) toNative() map[string]any {
	m := map[string]any{
		"kind":   n.Kind.String(),
		"line":   n.Pos.Line,
		"column": n.Pos.Column,
	}

	switch n.Kind {
	case NodeText:
		m["text"] = n.Text

	case NodeVariable:
		m["name"] = n.Name
		m["escape"] = n.Escape

	case NodeSection:
		m["name"] = n.Name
		m["inverted"] = n.Inverted
		m["children"] = nodesToNative(n.Children)

	case NodePartial:
		m["name"] = n.Name
	}

	return m
}
