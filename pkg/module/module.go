package module

import (
	"net/http"
	"reflect"
	"sort"
)

// DefaultExport is the export name used for a module's default value.
const DefaultExport = "default"

// Entry is one named value exported by a module.
type Entry struct {
	Name  string
	Value any
}

// Module is the ordered export table of one loaded file.
type Module struct {
	path   string
	names  []string
	values map[string]any
}

// New creates a module for path. Entries keep their order; a repeated
// name keeps its first position and takes the last value.
func New(path string, entries ...Entry) *Module {
	m := &Module{path: path, values: make(map[string]any, len(entries))}
	for _, e := range entries {
		m.set(e.Name, e.Value)
	}
	return m
}

// FromMap creates a module from a map. Names are ordered lexically.
func FromMap(path string, exports map[string]any) *Module {
	names := make([]string, 0, len(exports))
	for name := range exports {
		names = append(names, name)
	}
	sort.Strings(names)

	m := &Module{path: path, values: make(map[string]any, len(exports))}
	for _, name := range names {
		m.set(name, exports[name])
	}
	return m
}

func (m *Module) set(name string, value any) {
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = value
}

// Path returns the file the module was loaded from.
func (m *Module) Path() string { return m.path }

// Names returns the export names in declaration order.
func (m *Module) Names() []string {
	return append([]string(nil), m.names...)
}

// Get returns the export called name.
func (m *Module) Get(name string) (any, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Default returns the default export.
func (m *Module) Default() (any, bool) {
	return m.Get(DefaultExport)
}

// Len returns the number of exports.
func (m *Module) Len() int { return len(m.names) }

// Callable reports whether v can serve as a route handler: a non-nil
// function value or an http.Handler.
func Callable(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(http.Handler); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}
