package router

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/vango-dev/fsroutes/pkg/module"
	"github.com/vango-dev/fsroutes/pkg/routepath"
)

// Route describes one discovered HTTP route.
type Route struct {
	// Method is the lower-case HTTP method (e.g., "get").
	Method string `json:"method"`

	// Path is the URL pattern (e.g., "/users/:id/stuff").
	Path string `json:"route"`

	// Handler is taken from the loaded module's exports: a func value or
	// an http.Handler. Never nil for routes the default matchers produce.
	Handler any `json:"-"`

	// File is the endpoint file the route came from.
	File string `json:"file,omitempty"`
}

// String returns "METHOD /path".
func (r Route) String() string {
	return strings.ToUpper(r.Method) + " " + r.Path
}

// MatchContext is what a Matcher sees for one candidate file.
type MatchContext struct {
	// Module is the loaded endpoint file.
	Module *module.Module

	// Metadata is the route information derived from the file's path.
	Metadata routepath.Metadata

	// Root is the endpoints directory that owns the file.
	Root string

	// Methods are the configured HTTP methods, lower-case.
	Methods []string

	// Logger is the debug sink. Never nil.
	Logger *slog.Logger
}

// IsMethod reports whether name is one of the configured HTTP methods.
func (c *MatchContext) IsMethod(name string) bool {
	return slices.Contains(c.Methods, name)
}

// Matcher decides whether a loaded module is a route source and, if so,
// which routes it produces. Matchers must be stateless.
type Matcher interface {
	// Test reports whether the matcher applies to the module.
	Test(ctx *MatchContext) bool

	// Extract returns the routes of a module Test accepted.
	Extract(ctx *MatchContext) []Route
}

// MatcherFuncs adapts a pair of functions to the Matcher interface.
type MatcherFuncs struct {
	TestFunc    func(ctx *MatchContext) bool
	ExtractFunc func(ctx *MatchContext) []Route
}

// Test implements Matcher.
func (m MatcherFuncs) Test(ctx *MatchContext) bool {
	return m.TestFunc != nil && m.TestFunc(ctx)
}

// Extract implements Matcher.
func (m MatcherFuncs) Extract(ctx *MatchContext) []Route {
	if m.ExtractFunc == nil {
		return nil
	}
	return m.ExtractFunc(ctx)
}
