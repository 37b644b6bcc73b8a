package mustache

import (
	"context"
	"log/slog"
)

// PartialResolver supplies the compiled node sequence of a partial by name.
//
// Resolution failures of any kind are reported as not found; the renderer
// then emits nothing for the partial.
type PartialResolver interface {
	ResolvePartial(ctx context.Context, name string) ([]*Node, bool)
}

// PartialFunc adapts an ordinary function to a [PartialResolver].
type PartialFunc func(ctx context.Context, name string) ([]*Node, bool)

// ResolvePartial implements [PartialResolver].
func (f PartialFunc) ResolvePartial(
	ctx context.Context,
	name string,
) ([]*Node, bool) {
	return f(ctx, name)
}

// Partials is a [PartialResolver] over a fixed set of parsed templates.
type Partials map[string][]*Node

// ResolvePartial implements [PartialResolver].
func (p Partials) ResolvePartial(
	_ context.Context,
	name string,
) ([]*Node, bool) {
	nodes, ok := p[name]

	return nodes, ok
}

// CompilePartials compiles and parses each template source in sources.
// The first template that fails aborts the whole set.
func CompilePartials(sources map[string]string, opts ...Option) (Partials, error) {
	p := make(Partials, len(sources))

	for _, name := range sortedKeys(sources) {
		tmpl, err := New(sources[name], opts...)
		if err != nil {
			return nil, WrapError(err).With(slog.String("partial", name))
		}

		p[name] = tmpl.nodes
	}

	return p, nil
}

// LoaderPartials returns a [PartialResolver] that loads, compiles, and parses
// a partial from loader each time it is referenced. Errors from any stage
// are logged and reported as not found.
//
// Each partial is compiled with the default delimiters: delimiter changes
// never carry over from the including template.
func LoaderPartials(loader Loader, opts ...Option) PartialResolver {
	cfg := makeConfig(opts...)

	return PartialFunc(func(ctx context.Context, name string) ([]*Node, bool) {
		text, err := loader.Load(ctx, name)
		if err != nil {
			cfg.logger.DebugContext(ctx, "partial load failed",
				slog.String("name", name),
				slog.Any("error", WrapError(err)))

			return nil, false
		}

		tmpl, err := New(text, WithLogger(cfg.logger))
		if err != nil {
			cfg.logger.WarnContext(ctx, "partial compile failed",
				slog.String("name", name),
				slog.Any("error", WrapError(err)))

			return nil, false
		}

		return tmpl.nodes, true
	})
}
