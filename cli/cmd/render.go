package cmd

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/stache/data"
	"github.com/ardnew/stache/log"
	"github.com/ardnew/stache/mustache"
)

// maxSuggestions bounds the partial names offered for a missing partial.
const maxSuggestions = 3

// Render renders a template with data read from YAML or JSON documents.
type Render struct {
	Data     []string `help:"Data document (YAML or JSON); later documents override earlier ones" placeholder:"FILE"     short:"d" type:"existingfile"`
	Set      []string `help:"Assign name=expression after reading data"                           placeholder:"NAME=EXPR" sep:"none" short:"s"`
	Partials string   `help:"Directory searched for partials (default: template directory)"       placeholder:"DIR"       short:"p" type:"path"`
	Ext      string   `help:"File extension of partial templates"                                 default:".mustache"     short:"e"`
	Output   string   `help:"Output file or '-' for stdout"                                       default:"-"             short:"o"`
	MaxDepth int      `help:"Maximum partial nesting depth"                                       default:"100"`

	Template string `arg:"" default:"-" help:"Template file or '-' for stdin." name:"template"`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	text, err := readTemplate(ctx, r.Template)
	if err != nil {
		return ErrReadTemplate.
			With(slog.String("template", r.Template)).
			Wrap(err)
	}

	root, err := r.data(ctx)
	if err != nil {
		return err
	}

	tmpl, err := mustache.New(text,
		mustache.WithLogger(log.Default()),
		mustache.WithMaxDepth(r.MaxDepth),
	)
	if err != nil {
		return mustache.WrapError(err).With(slog.String("template", r.Template))
	}

	w, closeOutput, err := r.output(ctx)
	if err != nil {
		return err
	}

	buf := bufio.NewWriter(w)

	err = tmpl.Render(ctx, buf, root, r.partials())
	if err == nil {
		err = buf.Flush()
	}

	if cerr := closeOutput(); err == nil {
		err = cerr
	}

	if err != nil {
		return ErrWriteOutput.
			With(slog.String("output", r.Output)).
			Wrap(err)
	}

	log.DebugContext(ctx, "template rendered",
		slog.String("template", r.Template),
		slog.String("output", r.Output),
		slog.Int("data", len(r.Data)),
	)

	return nil
}

// data decodes and merges every data document, then applies every
// assignment in order.
func (r *Render) data(ctx context.Context) (mustache.Map, error) {
	root := mustache.Map{}

	for _, path := range uniquePaths(r.Data) {
		doc, err := data.DecodeFile(ctx, path)
		if err != nil {
			return nil, ErrReadData.With(slog.String("file", path)).Wrap(err)
		}

		root = data.Merge(root, doc)
	}

	for _, assignment := range r.Set {
		var err error

		root, err = data.Assign(root, assignment)
		if err != nil {
			return nil, ErrReadData.Wrap(err)
		}
	}

	return root, nil
}

// partialDir returns the directory partials are loaded from.
func (r *Render) partialDir() string {
	switch {
	case r.Partials != "":
		return r.Partials
	case r.Template == stdinSource:
		return "."
	default:
		return filepath.Dir(r.Template)
	}
}

// partials returns a resolver that loads partials from [Render.partialDir]
// and logs the closest known names whenever a partial is missing.
func (r *Render) partials() mustache.PartialResolver {
	loader := mustache.FileLoader{Root: r.partialDir(), Ext: r.Ext}
	inner := mustache.LoaderPartials(loader, mustache.WithLogger(log.Default()))

	return mustache.PartialFunc(func(ctx context.Context, name string) ([]*mustache.Node, bool) {
		nodes, ok := inner.ResolvePartial(ctx, name)
		if !ok {
			log.WarnContext(ctx, "partial not found",
				slog.String("name", name),
				slog.String("dir", loader.Root),
				slog.Any("suggest", suggest(loader, name)),
			)
		}

		return nodes, ok
	})
}

// suggest returns up to [maxSuggestions] partial names available to loader
// that fuzzy-match name, best match first.
func suggest(loader mustache.FileLoader, name string) []string {
	names, err := loader.Names()
	if err != nil || len(names) == 0 {
		return nil
	}

	matches := fuzzy.Find(name, names)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}

	return out
}

// output returns the writer selected by [Render.Output] along with a function
// that closes it.
func (r *Render) output(ctx context.Context) (io.Writer, func() error, error) {
	if r.Output == "" || r.Output == stdinSource {
		return outputFrom(ctx), func() error { return nil }, nil
	}

	file, err := os.Create(r.Output)
	if err != nil {
		return nil, nil, ErrWriteOutput.
			With(slog.String("output", r.Output)).
			Wrap(err)
	}

	return file, file.Close, nil
}
