package mustache

import (
	"context"
	"io"
)

// Template is a compiled and parsed template.
//
// A Template is immutable after construction and may be rendered by
// multiple goroutines concurrently.
type Template struct {
	nodes []*Node
	opts  []Option
}

// New compiles and parses template text.
// The options are also applied to every subsequent [Template.Render].
func New(text string, opts ...Option) (*Template, error) {
	tokens, err := Compile(text, opts...)
	if err != nil {
		return nil, err
	}

	nodes, err := Parse(tokens, opts...)
	if err != nil {
		return nil, err
	}

	return &Template{nodes: nodes, opts: opts}, nil
}

// Nodes returns the root-level node sequence of the template.
func (t *Template) Nodes() []*Node {
	return t.nodes
}

// Render writes the template rendered against root to w.
// See [Render] for details.
func (t *Template) Render(
	ctx context.Context,
	w io.Writer,
	root Value,
	partials PartialResolver,
	opts ...Option,
) error {
	all := append(t.opts[:len(t.opts):len(t.opts)], opts...)

	return Render(ctx, w, t.nodes, root, partials, all...)
}
