package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ardnew/stache/mustache"
)

func TestTokensRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"t.mustache":   "hi {{name}}{{=<% %>=}}<%! note %>",
		"bad.mustache": "{{#",
	})

	var buf bytes.Buffer

	err := (&Tokens{Template: filepath.Join(dir, "t.mustache")}).
		Run(WithOutput(context.Background(), &buf))
	if err != nil {
		t.Fatalf("Tokens.Run() error = %v", err)
	}

	want := "1:1 Text \"hi \"\n" +
		"1:4 Variable \"name\"\n" +
		"1:12 DelimiterChange \"<%\" \"%>\"\n" +
		"1:23 Comment \"note\"\n"
	if buf.String() != want {
		t.Errorf("Tokens.Run() wrote\n%s\nwant\n%s", buf.String(), want)
	}

	err = (&Tokens{Template: filepath.Join(dir, "bad.mustache")}).
		Run(WithOutput(context.Background(), &bytes.Buffer{}))
	if !errors.Is(err, mustache.ErrMalformedTag) {
		t.Errorf("Tokens.Run() error = %v, want ErrMalformedTag", err)
	}
}
