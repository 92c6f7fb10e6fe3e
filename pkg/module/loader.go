package module

import (
	"context"
	"path"
	"sort"
	"strings"

	"github.com/vango-dev/fsroutes/internal/errors"
)

// Loader loads the file at path as a module. path is absolute and
// slash-separated.
type Loader interface {
	Load(ctx context.Context, path string) (*Module, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, path string) (*Module, error)

// Load implements Loader.
func (f LoaderFunc) Load(ctx context.Context, path string) (*Module, error) {
	return f(ctx, path)
}

// Static serves modules from a fixed table. Unknown paths load as empty
// modules.
type Static map[string]*Module

// Load implements Loader.
func (s Static) Load(_ context.Context, p string) (*Module, error) {
	if m, ok := s[p]; ok && m != nil {
		return m, nil
	}
	return New(p), nil
}

// ExtLoader dispatches to a loader by file extension (".go", ".so").
type ExtLoader map[string]Loader

// Load implements Loader. A file whose extension has no loader fails
// with E111.
func (e ExtLoader) Load(ctx context.Context, p string) (*Module, error) {
	ext := strings.ToLower(path.Ext(p))
	l, ok := e[ext]
	if !ok {
		return nil, errors.New("E111").
			WithPath(p).
			WithDetail("Registered extensions: " + strings.Join(e.extensions(), ", "))
	}
	return l.Load(ctx, p)
}

func (e ExtLoader) extensions() []string {
	exts := make([]string, 0, len(e))
	for ext := range e {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// NewDefaultLoader returns the loader used when none is configured:
// ".go" files resolve through DefaultRegistry, ".so" files open as plugins
// exposing the default export and the given HTTP methods.
func NewDefaultLoader(methods []string) ExtLoader {
	return ExtLoader{
		".go": DefaultRegistry,
		".so": NewPluginLoader(append([]string{DefaultExport}, methods...)...),
	}
}
