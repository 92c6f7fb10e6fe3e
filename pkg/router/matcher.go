package router

import (
	"github.com/vango-dev/fsroutes/pkg/module"
	"github.com/vango-dev/fsroutes/pkg/routepath"
)

// VerbFileMatcher handles files named after an HTTP method: the default
// export of foo/bar/get.go is the GET handler for /foo/bar.
//
// The file name alone decides the match, so a verb-named file never falls
// through to VerbExportMatcher. Without a callable default export it
// produces no routes.
type VerbFileMatcher struct{}

// Test implements Matcher.
func (VerbFileMatcher) Test(ctx *MatchContext) bool {
	return ctx.IsMethod(ctx.Metadata.Name)
}

// Extract implements Matcher.
func (VerbFileMatcher) Extract(ctx *MatchContext) []Route {
	def, ok := ctx.Module.Default()
	if !ok || !module.Callable(def) {
		ctx.Logger.Debug("skipping http method file without a callable default export",
			"path", ctx.Module.Path(),
			"method", ctx.Metadata.Name,
		)
		return nil
	}

	route := "/" + ctx.Metadata.Route
	ctx.Logger.Debug("adding route named after http method",
		"method", ctx.Metadata.Name,
		"route", route,
	)
	return []Route{{Method: ctx.Metadata.Name, Path: route, Handler: def}}
}

// VerbExportMatcher handles modules exporting functions named after HTTP
// methods: foo/bar/baz.go exporting get and post serves /foo/bar/baz,
// and foo/bar/index.go serves /foo/bar.
//
// A module qualifies when some of its exports are method names; other
// exports are skipped.
type VerbExportMatcher struct{}

// Test implements Matcher.
func (VerbExportMatcher) Test(ctx *MatchContext) bool {
	for _, name := range ctx.Module.Names() {
		if ctx.IsMethod(name) {
			return true
		}
	}
	return false
}

// Extract implements Matcher.
func (VerbExportMatcher) Extract(ctx *MatchContext) []Route {
	route := routepath.JoinRoute(ctx.Metadata.Route, ctx.Metadata.Name)
	if ctx.Metadata.Name == routepath.IndexName {
		ctx.Logger.Debug("index file folded into enclosing folder", "route", route)
	}

	var routes []Route
	for _, name := range ctx.Module.Names() {
		if !ctx.IsMethod(name) {
			ctx.Logger.Debug("skipping non-HTTP-method export", "export", name)
			continue
		}
		handler, _ := ctx.Module.Get(name)
		if !module.Callable(handler) {
			ctx.Logger.Debug("skipping export that is not callable", "export", name)
			continue
		}
		ctx.Logger.Debug("adding route from http method export", "method", name, "route", route)
		routes = append(routes, Route{Method: name, Path: route, Handler: handler})
	}
	return routes
}

// DefaultMatchers returns the built-in matchers in precedence order.
func DefaultMatchers() []Matcher {
	return []Matcher{VerbFileMatcher{}, VerbExportMatcher{}}
}

// Suite returns custom followed by the built-in matchers.
func Suite(custom ...Matcher) []Matcher {
	suite := make([]Matcher, 0, len(custom)+2)
	suite = append(suite, custom...)
	return append(suite, DefaultMatchers()...)
}

// Match runs matchers in order and returns the routes of the first one
// whose Test accepts ctx. No match yields no routes.
func Match(matchers []Matcher, ctx *MatchContext) []Route {
	for _, m := range matchers {
		if m.Test(ctx) {
			return m.Extract(ctx)
		}
	}
	ctx.Logger.Debug("no matcher accepted module", "path", ctx.Module.Path())
	return nil
}
