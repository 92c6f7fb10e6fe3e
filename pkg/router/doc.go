// Package router discovers HTTP routes from a directory tree.
//
// Files below any directory named "endpoints" become route sources. The
// file's position below that directory gives the URL path, and its
// exports give the handlers.
//
// # File Structure Convention
//
//	api/endpoints/
//	├── users.go                 → exports get, post  → GET/POST /users
//	├── users/
//	│   └── _id/
//	│       ├── index.go         → exports get, put   → GET/PUT /users/:id
//	│       └── stuff/
//	│           └── get.go       → default export     → GET /users/:id/stuff
//	└── health/
//	    └── get.go               → default export     → GET /health
//
// # Parameters
//
// Any path segment starting with an underscore is a parameter:
//
//	_id     → :id
//	_org    → :org
//
// # Matchers
//
// Each loaded file is offered to an ordered list of matchers; the first
// whose Test accepts it produces the file's routes. The built-ins are:
//
//  1. VerbFileMatcher: the file is named after a method (get.go). Route:
//     the enclosing folder, served by the default export. A verb-named file
//     without a callable default export produces nothing.
//  2. VerbExportMatcher: the file exports method-named values. Route: the
//     folder plus the file name, with index folded away.
//
// Config.CustomRouteMatchers run before the built-ins. Files no matcher
// accepts produce no routes.
//
// # Usage
//
//	routes, err := router.BuildRoutes(ctx, "./api", nil)
//	if err != nil {
//	    return err
//	}
//	for _, r := range routes {
//	    // r.Method == "get", r.Path == "/users/:id", r.Handler == <export>
//	}
package router
