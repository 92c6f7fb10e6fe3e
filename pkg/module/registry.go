package module

import (
	"context"
	"runtime"
	"sort"
	"strings"
	"sync"
)

// Registry is an export table filled by endpoint files at init time.
// Keys are source file paths as reported by the runtime, which is what
// the walker finds on disk when the program runs from its source tree.
type Registry struct {
	mu    sync.RWMutex
	files map[string][]Entry
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{files: make(map[string][]Entry)}
}

// DefaultRegistry is the registry behind Export and Default.
var DefaultRegistry = NewRegistry()

// Register appends exports for file.
func (r *Registry) Register(file string, entries ...Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files[file] = append(r.files[file], entries...)
}

// Files returns every registered file, sorted.
func (r *Registry) Files() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	files := make([]string, 0, len(r.files))
	for f := range r.files {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// Has reports whether exports were registered for path, matched the way
// Load matches it.
func (r *Registry) Has(path string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.lookup(path)
	return ok
}

// Load implements Loader. A file nothing was registered for loads as an
// empty module.
func (r *Registry) Load(_ context.Context, path string) (*Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, ok := r.lookup(path)
	if !ok {
		return New(path), nil
	}
	return New(path, r.files[key]...), nil
}

// lookup finds the key for path: the exact path, or else the longest key
// that path ends with at a segment boundary. The latter covers binaries
// built with -trimpath, whose keys are module-relative.
func (r *Registry) lookup(path string) (string, bool) {
	if _, ok := r.files[path]; ok {
		return path, true
	}

	best := ""
	for key := range r.files {
		if len(key) > len(best) && strings.HasSuffix(path, "/"+strings.TrimPrefix(key, "/")) {
			best = key
		}
	}
	return best, best != ""
}

// CallerFile returns the source file of the function skip frames above
// the caller of CallerFile.
func CallerFile(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return file
}

// Export registers value under name for the calling source file.
func Export(name string, value any) {
	DefaultRegistry.Register(CallerFile(1), Entry{Name: name, Value: value})
}

// Default registers value as the default export of the calling source
// file.
func Default(value any) {
	DefaultRegistry.Register(CallerFile(1), Entry{Name: DefaultExport, Value: value})
}
