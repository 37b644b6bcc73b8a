package data

import (
	"context"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/stache/mustache"
)

// Encode writes v to w as a YAML document. A zero indent selects flow style.
func Encode(ctx context.Context, w io.Writer, v mustache.Value, indent int) error {
	opts := []yaml.EncodeOption{yaml.Flow(indent == 0)}
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	}

	out, err := yaml.MarshalContext(ctx, mustache.ToNative(v), opts...)
	if err != nil {
		return ErrEncode.Wrap(err)
	}

	_, err = w.Write(out)
	if err != nil {
		return mustache.ErrWrite.Wrap(err)
	}

	return nil
}
