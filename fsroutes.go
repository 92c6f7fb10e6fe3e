// Package fsroutes turns a directory tree into HTTP route descriptors.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/fsroutes"
//
// Endpoint files live below a directory named "endpoints" and register
// their handlers from init():
//
//	// api/endpoints/users/_id/index.go
//	package user
//
//	func init() {
//	    fsroutes.Export("get", getUser)
//	    fsroutes.Export("delete", deleteUser)
//	}
//
// The go tool ignores source files whose names begin with "_" or ".", so
// a parameter segment must be a directory (users/_id/get.go) or a plugin
// (users/_id.so). BuildRoutes logs a warning for such .go files. Packages
// under "_" directories are skipped by "./..." patterns too and must be
// imported explicitly:
//
//	import _ "example.com/app/api/endpoints/users/_id"
//
// The program that imports those packages discovers and serves them:
//
//	routes, err := fsroutes.BuildRoutes(ctx, "./api", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r := chi.NewRouter()
//	if err := fsroutes.Mount(r, routes); err != nil {
//	    log.Fatal(err)
//	}
package fsroutes

import (
	"context"

	"github.com/vango-dev/fsroutes/internal/errors"
	"github.com/vango-dev/fsroutes/pkg/module"
	"github.com/vango-dev/fsroutes/pkg/mount"
	"github.com/vango-dev/fsroutes/pkg/router"
)

// =============================================================================
// Discovery (re-export from pkg/router)
// =============================================================================

// Route describes one discovered HTTP route.
type Route = router.Route

// Config configures BuildRoutes. A nil *Config uses the defaults.
type Config = router.Config

// Matcher decides which routes a loaded endpoint file produces.
type Matcher = router.Matcher

// MatcherFuncs adapts a pair of functions to Matcher.
type MatcherFuncs = router.MatcherFuncs

// MatchContext is what a Matcher sees for one endpoint file.
type MatchContext = router.MatchContext

// DefaultHTTPMethods is the verb vocabulary used when none is configured.
var DefaultHTTPMethods = router.DefaultHTTPMethods

// BuildRoutes discovers the routes below root. See router.BuildRoutes.
func BuildRoutes(ctx context.Context, root string, cfg *Config) ([]Route, error) {
	return router.BuildRoutes(ctx, root, cfg)
}

// Mount registers routes on a chi router. See mount.Mount.
var Mount = mount.Mount

// =============================================================================
// Errors (re-export from internal/errors)
// =============================================================================

// Error is the structured error returned by fsroutes. Use errors.As to
// read its Code.
type Error = errors.Error

// ErrorCode returns the fsroutes error code in err's chain, or "".
func ErrorCode(err error) string {
	return errors.Code(err)
}

// =============================================================================
// Endpoint registration (re-export from pkg/module)
// =============================================================================

// Export registers value under name for the calling source file. Call it
// from init() in an endpoint file.
func Export(name string, value any) {
	module.DefaultRegistry.Register(module.CallerFile(1), module.Entry{Name: name, Value: value})
}

// Default registers value as the default export of the calling source
// file. Call it from init() in a verb-named endpoint file (get.go).
func Default(value any) {
	module.DefaultRegistry.Register(module.CallerFile(1), module.Entry{Name: module.DefaultExport, Value: value})
}
