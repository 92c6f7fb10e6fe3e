package module

import (
	"context"
	"path/filepath"
	"plugin"
	"reflect"
	"strings"
	"unicode"

	"github.com/vango-dev/fsroutes/internal/errors"
)

// SymbolTable is the part of *plugin.Plugin the loader uses.
type SymbolTable interface {
	Lookup(symName string) (plugin.Symbol, error)
}

// PluginLoader loads Go plugins built with -buildmode=plugin.
//
// Plugins cannot list their symbols, so the loader tries a fixed set of
// export names. Each name is tried as "Get", "GET" and "get"; the export
// keeps the lower-case name. A variable symbol holding a function is
// dereferenced.
type PluginLoader struct {
	// Symbols are the export names to look up, in output order.
	Symbols []string

	// Open opens the plugin at path. Defaults to plugin.Open.
	Open func(path string) (SymbolTable, error)
}

// NewPluginLoader creates a PluginLoader probing symbols.
func NewPluginLoader(symbols ...string) *PluginLoader {
	return &PluginLoader{Symbols: symbols, Open: openPlugin}
}

func openPlugin(path string) (SymbolTable, error) {
	p, err := plugin.Open(filepath.FromSlash(path))
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Load implements Loader. A plugin that cannot be opened fails with E110;
// a symbol that is found but not callable fails with E112.
func (l *PluginLoader) Load(_ context.Context, path string) (*Module, error) {
	open := l.Open
	if open == nil {
		open = openPlugin
	}

	table, err := open(path)
	if err != nil {
		return nil, errors.New("E110").WithPath(path).Wrap(err)
	}

	var entries []Entry
	for _, name := range l.Symbols {
		for _, symName := range spellings(name) {
			sym, err := table.Lookup(symName)
			if err != nil {
				continue
			}
			value, ok := symbolValue(sym)
			if !ok {
				return nil, errors.New("E112").
					WithPath(path).
					WithDetail("Symbol " + symName + " is not a function or http.Handler")
			}
			entries = append(entries, Entry{Name: strings.ToLower(name), Value: value})
			break
		}
	}

	return New(path, entries...), nil
}

// spellings returns the exported identifiers a plugin may use for name.
func spellings(name string) []string {
	if name == "" {
		return nil
	}
	title := []rune(name)
	title[0] = unicode.ToUpper(title[0])

	out := []string{string(title)}
	for _, s := range []string{strings.ToUpper(name), name} {
		dup := false
		for _, o := range out {
			dup = dup || o == s
		}
		if !dup {
			out = append(out, s)
		}
	}
	return out
}

// symbolValue unwraps a plugin symbol into a callable value.
func symbolValue(sym plugin.Symbol) (any, bool) {
	if Callable(sym) {
		return sym, true
	}
	rv := reflect.ValueOf(sym)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, false
	}
	elem := rv.Elem().Interface()
	if Callable(elem) {
		return elem, true
	}
	return nil, false
}
