// Package mount binds discovered routes onto a chi router.
//
//	routes, err := fsroutes.BuildRoutes(ctx, "./api", nil)
//	if err != nil {
//	    return err
//	}
//	r := chi.NewRouter()
//	if err := mount.Mount(r, routes); err != nil {
//	    return err
//	}
package mount

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/fsroutes/internal/errors"
	"github.com/vango-dev/fsroutes/pkg/routepath"
	"github.com/vango-dev/fsroutes/pkg/router"
)

// Handler converts a route handler to an http.Handler. It accepts
// http.Handler values and func(http.ResponseWriter, *http.Request).
func Handler(v any) (http.Handler, bool) {
	switch h := v.(type) {
	case http.Handler:
		return h, h != nil
	case func(http.ResponseWriter, *http.Request):
		return http.HandlerFunc(h), h != nil
	default:
		return nil, false
	}
}

// Mount registers every route on r. Parameters are rewritten from
// ":name" to chi's "{name}" and methods chi does not know are registered
// with chi.RegisterMethod. Nothing is registered if any route cannot be
// mounted: an unsupported handler type, a method that is not an HTTP
// token, or a repeated parameter name. The error (E140) names the first
// such route.
func Mount(r chi.Router, routes []router.Route) error {
	handlers := make([]http.Handler, len(routes))
	for i, route := range routes {
		if err := check(route); err != nil {
			return err
		}
		h, ok := Handler(route.Handler)
		if !ok {
			return errors.New("E140").
				WithPath(route.File).
				WithDetail(fmt.Sprintf("%s has handler of type %T", route, route.Handler))
		}
		handlers[i] = h
	}

	for i, route := range routes {
		method := strings.ToUpper(route.Method)
		chi.RegisterMethod(method)
		r.Method(method, routepath.ToBracePattern(route.Path), handlers[i])
	}
	return nil
}

// check rejects routes chi would panic on.
func check(route router.Route) error {
	if !isToken(route.Method) {
		return errors.New("E140").
			WithPath(route.File).
			WithDetail(fmt.Sprintf("%q is not a valid HTTP method", route.Method))
	}
	if name := routepath.DuplicateParam(route.Path); name != "" {
		return errors.New("E140").
			WithPath(route.File).
			WithDetail(fmt.Sprintf("%s uses parameter %q more than once", route, name))
	}
	return nil
}

// isToken reports whether s is an RFC 9110 token, the syntax of a method.
func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case strings.IndexByte("!#$%&'*+-.^_`|~", c) >= 0:
		default:
			return false
		}
	}
	return true
}

// Router builds a new chi router serving routes, with middlewares
// applied in order.
func Router(routes []router.Route, middlewares ...func(http.Handler) http.Handler) (chi.Router, error) {
	r := chi.NewRouter()
	r.Use(middlewares...)
	if err := Mount(r, routes); err != nil {
		return nil, err
	}
	return r, nil
}
