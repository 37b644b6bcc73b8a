package mustache

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/readahead"
)

// Loader supplies template source text by name.
//
// A name that does not identify a template fails with an error satisfying
// errors.Is(err, [ErrNotFound]).
type Loader interface {
	Load(ctx context.Context, name string) (string, error)
}

// MapLoader is a [Loader] over in-memory template sources.
type MapLoader map[string]string

// Load implements [Loader].
func (m MapLoader) Load(_ context.Context, name string) (string, error) {
	text, ok := m[name]
	if !ok {
		return "", ErrNotFound.With(slog.String("name", name))
	}

	return text, nil
}

// FileLoader is a [Loader] that reads templates from a directory tree.
//
// The name "header" is read from the file Root/header+Ext. Names may contain
// slashes to address subdirectories but may not escape Root.
type FileLoader struct {
	Root string // directory containing templates; "" means the working directory
	Ext  string // extension appended to each name, including the dot
}

// DefaultExt is the conventional template file extension.
const DefaultExt = ".mustache"

// NewFileLoader returns a [FileLoader] rooted at root using [DefaultExt].
func NewFileLoader(root string) FileLoader {
	return FileLoader{Root: root, Ext: DefaultExt}
}

// Load implements [Loader].
func (l FileLoader) Load(ctx context.Context, name string) (string, error) {
	rel := filepath.FromSlash(name + l.Ext)

	if !filepath.IsLocal(rel) {
		return "", ErrNotFound.
			With(slog.String("name", name)).
			With(slog.String("reason", "path escapes root"))
	}

	text, err := LoadFile(ctx, filepath.Join(l.Root, rel))
	if err != nil {
		return "", WrapError(err).With(slog.String("name", name))
	}

	return text, nil
}

// Names returns the names of all templates under Root with extension Ext,
// in lexical order. It is intended for diagnostics such as suggesting
// alternatives for a missing partial.
func (l FileLoader) Names() ([]string, error) {
	root := l.Root
	if root == "" {
		root = "."
	}

	var names []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(path, l.Ext) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		names = append(names, filepath.ToSlash(strings.TrimSuffix(rel, l.Ext)))

		return nil
	})
	if err != nil {
		return nil, ErrReadInput.Wrap(err).With(slog.String("root", root))
	}

	return names, nil
}

// LoadFile reads the template source at path.
// A missing file fails with an error satisfying errors.Is(err, [ErrNotFound]).
func LoadFile(_ context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound.Wrap(err).With(slog.String("path", path))
		}

		return "", ErrReadInput.Wrap(err).With(slog.String("path", path))
	}
	defer file.Close()

	return ReadAll(file)
}

// ReadAll reads template source from r until EOF.
func ReadAll(r io.Reader) (string, error) {
	// Wrap reader with async read-ahead so that reads overlap with buffering.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return "", ErrReadInput.Wrap(err)
	}

	return string(data), nil
}
