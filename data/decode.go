package data

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/stache/mustache"
)

// Decode reads a single YAML document from r and converts it to a
// [mustache.Map]. JSON input is accepted as a subset of YAML.
//
// An empty document decodes to an empty Map. A document whose top level is
// not a mapping fails with [ErrNotMapping].
func Decode(ctx context.Context, r io.Reader) (mustache.Map, error) {
	text, err := mustache.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc any

	err = yaml.UnmarshalContext(ctx, []byte(text), &doc)
	if err != nil {
		return nil, ErrDecode.Wrap(err)
	}

	if doc == nil {
		return mustache.Map{}, nil
	}

	val, err := mustache.FromNative(doc)
	if err != nil {
		return nil, ErrDecode.Wrap(err)
	}

	m, ok := val.(mustache.Map)
	if !ok {
		return nil, ErrNotMapping.With(slog.String("kind", val.Kind().String()))
	}

	return m, nil
}

// DecodeFile decodes the document at path. See [Decode].
func DecodeFile(ctx context.Context, path string) (mustache.Map, error) {
	text, err := mustache.LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	m, err := Decode(ctx, strings.NewReader(text))
	if err != nil {
		return nil, mustache.WrapError(err).With(slog.String("path", path))
	}

	return m, nil
}
