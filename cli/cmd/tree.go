package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/stache/log"
	"github.com/ardnew/stache/mustache"
)

// Tree prints the node tree of a template.
type Tree struct {
	Format string `default:"text" enum:"text,yaml,json" help:"Output format (${enum})." short:"f"`
	Indent int    `default:"2"                          help:"Indent width for formatted output" short:"i"`

	Template string `arg:"" default:"-" help:"Template file or '-' for stdin." name:"template"`
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	text, err := readTemplate(ctx, t.Template)
	if err != nil {
		return ErrReadTemplate.
			With(slog.String("template", t.Template)).
			Wrap(err)
	}

	tmpl, err := mustache.New(text, mustache.WithLogger(log.Default()))
	if err != nil {
		return mustache.WrapError(err).With(slog.String("template", t.Template))
	}

	w := outputFrom(ctx)

	switch t.Format {
	case "text":
		err = mustache.Print(w, tmpl.Nodes())
	case "yaml":
		err = mustache.FormatYAML(ctx, w, tmpl.Nodes(), t.Indent)
	case "json":
		err = mustache.FormatJSON(ctx, w, tmpl.Nodes(), t.Indent)
	default:
		return ErrInvalidFormat.With(slog.String("format", t.Format))
	}

	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
