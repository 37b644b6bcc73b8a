package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ardnew/stache/data"
	"github.com/ardnew/stache/mustache"
)

func newRender(dir string) *Render {
	return &Render{
		Ext:      mustache.DefaultExt,
		Output:   stdinSource,
		MaxDepth: 100,
		Template: filepath.Join(dir, "page.mustache"),
	}
}

func renderFixture(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"page.mustache":   "{{>header}}Hi {{name}}{{#items}} {{.}}{{/items}}",
		"header.mustache": "# {{title}}\n",
		"data.yaml":       "name: Ada\ntitle: T\nitems: [a, b]\n",
		"more.json":       `{"name": "Grace"}`,
	})

	return dir
}

func TestRenderRun(t *testing.T) {
	t.Parallel()

	dir := renderFixture(t)

	r := newRender(dir)
	r.Data = []string{
		filepath.Join(dir, "data.yaml"),
		filepath.Join(dir, "more.json"),
		filepath.Join(dir, "data.yaml"),
	}
	r.Set = []string{`title = title + "!"`}

	var buf bytes.Buffer

	err := r.Run(WithOutput(context.Background(), &buf))
	if err != nil {
		t.Fatalf("Render.Run() error = %v", err)
	}

	want := "# T!\nHi Grace a b"
	if got := buf.String(); got != want {
		t.Errorf("Render.Run() wrote %q, want %q", got, want)
	}
}

func TestRenderRunOutputFile(t *testing.T) {
	t.Parallel()

	dir := renderFixture(t)
	out := filepath.Join(dir, "out.txt")

	r := newRender(dir)
	r.Output = out
	r.Set = []string{`title = "X"`, `name = "Y"`}

	err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Render.Run() error = %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != "# X\nHi Y" {
		t.Errorf("output file = %q", got)
	}
}

func TestRenderRunPartialsDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"page.tpl":         "[{{>box}}]",
		"parts/box.tpl":    "box",
		"box.mustache":     "wrong",
		"parts/x.mustache": "",
	})

	r := newRender(dir)
	r.Template = filepath.Join(dir, "page.tpl")
	r.Partials = filepath.Join(dir, "parts")
	r.Ext = ".tpl"

	var buf bytes.Buffer

	err := r.Run(WithOutput(context.Background(), &buf))
	if err != nil {
		t.Fatalf("Render.Run() error = %v", err)
	}

	if buf.String() != "[box]" {
		t.Errorf("Render.Run() wrote %q", buf.String())
	}
}

func TestRenderRunErrors(t *testing.T) {
	t.Parallel()

	dir := renderFixture(t)
	writeFiles(t, dir, map[string]string{
		"bad.mustache": "{{#open}}",
		"list.yaml":    "- a\n",
	})

	tests := []struct {
		name   string
		modify func(r *Render)
		want   []error
	}{
		{
			name:   "missing_template",
			modify: func(r *Render) { r.Template = filepath.Join(dir, "nope.mustache") },
			want:   []error{ErrReadTemplate, mustache.ErrNotFound},
		},
		{
			name:   "parse_error",
			modify: func(r *Render) { r.Template = filepath.Join(dir, "bad.mustache") },
			want:   []error{mustache.ErrUnclosedSection},
		},
		{
			name:   "bad_assignment",
			modify: func(r *Render) { r.Set = []string{"noequals"} },
			want:   []error{ErrReadData, data.ErrAssignment},
		},
		{
			name:   "data_not_mapping",
			modify: func(r *Render) { r.Data = []string{filepath.Join(dir, "list.yaml")} },
			want:   []error{ErrReadData, data.ErrNotMapping},
		},
		{
			name:   "bad_output",
			modify: func(r *Render) { r.Output = filepath.Join(dir, "no", "such", "dir") },
			want:   []error{ErrWriteOutput},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newRender(dir)
			tt.modify(r)

			var buf bytes.Buffer

			err := r.Run(WithOutput(context.Background(), &buf))
			for _, want := range tt.want {
				if !errors.Is(err, want) {
					t.Errorf("Render.Run() error = %v, want %v", err, want)
				}
			}
		})
	}
}

func TestRenderPartialDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r    Render
		want string
	}{
		{Render{Template: "-"}, "."},
		{Render{Template: filepath.Join("a", "b.mustache")}, "a"},
		{Render{Template: "b.mustache", Partials: "p"}, "p"},
	}

	for _, tt := range tests {
		if got := tt.r.partialDir(); got != tt.want {
			t.Errorf("partialDir(%+v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"header.mustache":      "",
		"footer.mustache":      "",
		"nav/heading.mustache": "",
		"sidebar.mustache":     "",
		"notes.txt":            "",
	})

	loader := mustache.NewFileLoader(dir)

	got := suggest(loader, "headr")
	if len(got) == 0 || got[0] != "header" {
		t.Errorf("suggest(headr) = %v, want header first", got)
	}

	if len(got) > maxSuggestions {
		t.Errorf("suggest returned %d names", len(got))
	}

	if slices.Contains(got, "notes") {
		t.Errorf("suggest included a non-template file: %v", got)
	}

	if got := suggest(mustache.NewFileLoader(filepath.Join(dir, "missing")), "x"); got != nil {
		t.Errorf("suggest on missing root = %v", got)
	}
}
