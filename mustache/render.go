package mustache

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Render writes the output of nodes rendered against root to w.
//
// The root value must be a [Map]; any other value fails with
// [ErrInvalidRootContext] before anything is written. Names that cannot be
// resolved render as nothing, as do partials that partials cannot resolve.
// A nil partials resolver resolves nothing. A failed write to w is returned
// wrapped in [ErrWrite].
func Render(
	ctx context.Context,
	w io.Writer,
	nodes []*Node,
	root Value,
	partials PartialResolver,
	opts ...Option,
) error {
	cfg := makeConfig(opts...)

	m, ok := root.(Map)
	if !ok {
		return ErrInvalidRootContext.
			With(slog.String("kind", kindName(root)))
	}

	r := &renderer{
		ctx:      ctx,
		w:        w,
		partials: partials,
		cfg:      cfg,
		stack:    contextStack{m},
	}

	r.renderNodes(nodes)

	if r.err != nil {
		return ErrWrite.Wrap(r.err)
	}

	cfg.logger.TraceContext(ctx, "render complete",
		slog.Int("node_count", len(nodes)),
		slog.Int64("bytes_written", r.written))

	return nil
}

// renderer holds the state of a single render call.
type renderer struct {
	ctx      context.Context
	w        io.Writer
	partials PartialResolver
	cfg      config
	stack    contextStack
	depth    int // current partial nesting
	written  int64
	err      error // first write error; stops all further output
}

func (r *renderer) renderNodes(nodes []*Node) {
	for _, n := range nodes {
		if r.err != nil {
			return
		}

		r.renderNode(n)
	}
}

func (r *renderer) renderNode(n *Node) {
	switch n.Kind {
	case NodeText:
		r.write(n.Text)

	case NodeVariable:
		r.renderVariable(n)

	case NodeSection:
		if n.Inverted {
			r.renderInverted(n)
		} else {
			r.renderSection(n)
		}

	case NodePartial:
		r.renderPartial(n)
	}
}

// renderVariable emits the resolved value of a variable. Lists and maps have
// no text form and emit nothing.
func (r *renderer) renderVariable(n *Node) {
	switch val := r.resolve(n.Name).(type) {
	case String:
		if n.Escape {
			r.write(Escape(string(val)))
		} else {
			r.write(string(val))
		}

	case Bool:
		r.write(strconv.FormatBool(bool(val)))

	case List, Map, nil:
		// No output.
	}
}

// renderSection renders the children of a non-inverted section zero or
// more times depending on the resolved value.
func (r *renderer) renderSection(n *Node) {
	switch val := r.resolve(n.Name).(type) {
	case Bool:
		if val {
			r.renderNodes(n.Children)
		}

	case List:
		for _, elem := range val {
			r.stack = r.stack.push(elem)
			r.renderNodes(n.Children)
			r.stack = r.stack.pop()
		}

	case Map:
		r.stack = r.stack.push(val)
		r.renderNodes(n.Children)
		r.stack = r.stack.pop()

	case String:
		r.renderNodes(n.Children)

	case nil:
		// Absent.
	}
}

// renderInverted renders the children of an inverted section once if the
// resolved value is falsy.
func (r *renderer) renderInverted(n *Node) {
	if !Truthy(r.resolve(n.Name)) {
		r.renderNodes(n.Children)
	}
}

// renderPartial renders a resolved partial against the current stack.
func (r *renderer) renderPartial(n *Node) {
	if r.partials == nil {
		r.cfg.logger.DebugContext(r.ctx, "partial not found",
			slog.String("name", n.Name),
			slog.String("reason", "no resolver"))

		return
	}

	if r.depth >= r.cfg.maxDepth {
		r.cfg.logger.WarnContext(r.ctx, "partial depth exceeded",
			slog.String("name", n.Name),
			slog.Int("max_depth", r.cfg.maxDepth))

		return
	}

	nodes, found := r.partials.ResolvePartial(r.ctx, n.Name)
	if !found {
		r.cfg.logger.DebugContext(r.ctx, "partial not found",
			slog.String("name", n.Name),
			slog.String("position", n.Pos.String()))

		return
	}

	r.depth++
	r.renderNodes(nodes)
	r.depth--
}

// resolve looks up name in the context stack; nil means absent.
func (r *renderer) resolve(name string) Value {
	val, found := r.stack.lookup(name)
	if !found {
		r.cfg.logger.TraceContext(r.ctx, "name not found",
			slog.String("name", name),
			slog.Int("frames", len(r.stack)))
	}

	return val
}

func (r *renderer) write(s string) {
	if r.err != nil || s == "" {
		return
	}

	n, err := io.WriteString(r.w, s)
	r.written += int64(n)
	r.err = err
}

// RenderTemplate compiles, parses, and renders template text in one step.
// Compile and parse errors are returned before anything is written to w.
func RenderTemplate(
	ctx context.Context,
	w io.Writer,
	text string,
	root Value,
	partials PartialResolver,
	opts ...Option,
) error {
	tmpl, err := New(text, opts...)
	if err != nil {
		return err
	}

	return Render(ctx, w, tmpl.nodes, root, partials, opts...)
}

// RenderString is like [RenderTemplate] but returns the output as a string.
func RenderString(
	ctx context.Context,
	text string,
	root Value,
	partials PartialResolver,
	opts ...Option,
) (string, error) {
	var sb strings.Builder

	err := RenderTemplate(ctx, &sb, text, root, partials, opts...)
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}
