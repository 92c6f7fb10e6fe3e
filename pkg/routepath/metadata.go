// Package routepath derives URL routes from endpoint file paths.
package routepath

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// IndexName is the file name folded into its enclosing folder's route.
const IndexName = "index"

// Metadata is the route information implied by a file's position below
// its endpoints root.
type Metadata struct {
	// Name is the file's base name without extension, after parameter
	// rewriting (e.g. "index", "get", ":id").
	Name string

	// Route is the slash-joined directory prefix without a leading slash.
	// Empty when the file sits directly in the endpoints root.
	Route string
}

// ToSlash returns p with every separator rewritten to "/".
// Backslashes are converted on all platforms.
func ToSlash(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")
}

// ParamSegment rewrites a "_name" segment to ":name".
// Any other segment is returned unchanged.
func ParamSegment(seg string) string {
	if strings.HasPrefix(seg, "_") {
		return ":" + seg[1:]
	}
	return seg
}

// Relative returns file relative to root using forward slashes.
// It fails when file does not lie below root.
func Relative(root, file string) (string, error) {
	rel, err := filepath.Rel(filepath.FromSlash(root), filepath.FromSlash(file))
	if err != nil {
		return "", err
	}
	rel = ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%s is not below %s", file, root)
	}
	return rel, nil
}

// Extract computes the Metadata of file relative to the endpoints root.
//
// Every segment, the file name included, goes through ParamSegment:
//
//	users/_id/stuff/index.js → {Name: "index", Route: "users/:id/stuff"}
//	foo/bar/get.go           → {Name: "get", Route: "foo/bar"}
//	baz.go                   → {Name: "baz", Route: ""}
func Extract(root, file string) (Metadata, error) {
	rel, err := Relative(root, file)
	if err != nil {
		return Metadata{}, err
	}

	segments := strings.Split(rel, "/")
	for i, seg := range segments {
		segments[i] = ParamSegment(seg)
	}

	base := segments[len(segments)-1]
	ext := path.Ext(base)
	if ext == base {
		// Dotfiles like ".env" have no extension.
		ext = ""
	}

	return Metadata{
		Name:  strings.TrimSuffix(base, ext),
		Route: strings.Join(segments[:len(segments)-1], "/"),
	}, nil
}

// JoinRoute builds the absolute route for a file named name under prefix.
// A file named "index" is folded into its enclosing folder.
//
//	JoinRoute("foo/bar", "baz")   → "/foo/bar/baz"
//	JoinRoute("foo/bar", "index") → "/foo/bar"
//	JoinRoute("", "users")        → "/users"
//	JoinRoute("", "index")        → "/"
func JoinRoute(prefix, name string) string {
	var elems []string
	if prefix != "" {
		elems = append(elems, prefix)
	}
	if name != IndexName {
		elems = append(elems, name)
	}
	return "/" + strings.Join(elems, "/")
}

// ToBracePattern converts ":name" segments to "{name}", the parameter
// syntax of chi and net/http.ServeMux.
//
//	/users/:id/stuff → /users/{id}/stuff
func ToBracePattern(route string) string {
	segments := strings.Split(route, "/")
	for i, seg := range segments {
		if len(seg) > 1 && seg[0] == ':' {
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

// Params returns the parameter names of route in order, repeats included.
//
//	/users/:id/posts/:post → [id post]
func Params(route string) []string {
	var names []string
	for _, seg := range strings.Split(route, "/") {
		if len(seg) > 1 && seg[0] == ':' {
			names = append(names, seg[1:])
		}
	}
	return names
}

// DuplicateParam returns the first parameter name route uses twice, or "".
func DuplicateParam(route string) string {
	seen := make(map[string]bool)
	for _, name := range Params(route) {
		if seen[name] {
			return name
		}
		seen[name] = true
	}
	return ""
}
