package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/stache/mustache"
)

// Tokens prints the token sequence of a template, one token per line.
type Tokens struct {
	Template string `arg:"" default:"-" help:"Template file or '-' for stdin." name:"template"`
}

// Run executes the tokens command.
func (t *Tokens) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	text, err := readTemplate(ctx, t.Template)
	if err != nil {
		return ErrReadTemplate.
			With(slog.String("template", t.Template)).
			Wrap(err)
	}

	tokens, err := mustache.Compile(text)
	if err != nil {
		return mustache.WrapError(err).With(slog.String("template", t.Template))
	}

	w := outputFrom(ctx)

	for _, tok := range tokens {
		_, err = fmt.Fprintln(w, tok)
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}
