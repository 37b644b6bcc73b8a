package data

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/stache/mustache"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  mustache.Map
	}{
		{
			name:  "empty",
			input: "",
			want:  mustache.Map{},
		},
		{
			name:  "yaml",
			input: "title: Home\ndraft: false\ntags: [a, b]\nauthor:\n  name: Ada\n",
			want: mustache.Map{
				"title":  mustache.String("Home"),
				"draft":  mustache.Bool(false),
				"tags":   mustache.List{mustache.String("a"), mustache.String("b")},
				"author": mustache.Map{"name": mustache.String("Ada")},
			},
		},
		{
			name:  "json",
			input: `{"count": 3, "ratio": 0.5, "none": null}`,
			want: mustache.Map{
				"count": mustache.String("3"),
				"ratio": mustache.String("0.5"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(context.Background(), strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Decode error: %v", err)
			}

			if !got.Equal(tt.want) {
				t.Errorf("Decode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"list", "- a\n- b\n", ErrNotMapping},
		{"scalar", "hello", ErrNotMapping},
		{"syntax", "a: [b", ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(context.Background(), strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode(%q) = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestDecodeFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.yaml")

	err := os.WriteFile(path, []byte("name: stache\n"), 0o644)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := DecodeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("DecodeFile error: %v", err)
	}

	if !got.Equal(mustache.Map{"name": mustache.String("stache")}) {
		t.Errorf("DecodeFile() = %v", got)
	}

	_, err = DecodeFile(context.Background(), filepath.Join(dir, "absent.yaml"))
	if !errors.Is(err, mustache.ErrNotFound) {
		t.Errorf("missing file = %v, want ErrNotFound", err)
	}
}
