package router

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vango-dev/fsroutes/pkg/routepath"
)

// =============================================================================
// Route Validation
// =============================================================================

// ValidationError represents a route validation error.
type ValidationError struct {
	// Type is the error category
	Type ValidationErrorType

	// Message is the human-readable error message
	Message string

	// Files are the source files involved
	Files []string

	// Path is the conflicting URL pattern
	Path string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// ValidationErrorType categorizes validation errors.
type ValidationErrorType string

const (
	// ErrorDuplicateRoute indicates two files produce the same method and path.
	// Example: users/index.go exporting get and users.go exporting get
	ErrorDuplicateRoute ValidationErrorType = "DUPLICATE_ROUTE"

	// ErrorParamNameConflict indicates one path position uses different
	// parameter names.
	// Example: /users/:id and /users/:userId/posts
	ErrorParamNameConflict ValidationErrorType = "PARAM_NAME_CONFLICT"

	// ErrorDuplicateParam indicates one route uses a parameter name twice.
	// Example: _id/_id/get.go → /:id/:id
	ErrorDuplicateParam ValidationErrorType = "DUPLICATE_PARAM"
)

// MultiValidationError wraps multiple validation errors.
type MultiValidationError struct {
	Errors []ValidationError
}

func (e *MultiValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d route validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks discovered routes for conflicts a router would reject
// or silently resolve. Returns nil, or a *MultiValidationError.
func Validate(routes []Route) error {
	var errs []ValidationError
	errs = append(errs, duplicateRoutes(routes)...)
	errs = append(errs, paramNameConflicts(routes)...)
	errs = append(errs, duplicateParams(routes)...)

	if len(errs) > 0 {
		return &MultiValidationError{Errors: errs}
	}
	return nil
}

// duplicateRoutes reports method+path pairs produced more than once.
func duplicateRoutes(routes []Route) []ValidationError {
	type key struct{ method, path string }

	var order []key
	byKey := make(map[key][]string)
	for _, r := range routes {
		k := key{r.Method, r.Path}
		if _, ok := byKey[k]; !ok {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], r.File)
	}

	var errs []ValidationError
	for _, k := range order {
		files := byKey[k]
		if len(files) < 2 {
			continue
		}
		errs = append(errs, ValidationError{
			Type:    ErrorDuplicateRoute,
			Message: fmt.Sprintf("%s %s is defined %d times", strings.ToUpper(k.method), k.path, len(files)),
			Files:   files,
			Path:    k.path,
		})
	}
	return errs
}

// paramNameConflicts reports path positions where sibling routes name the
// same parameter differently.
func paramNameConflicts(routes []Route) []ValidationError {
	type seen struct {
		name string
		file string
		path string
	}

	// prefix (with params normalized) → first param name seen after it
	names := make(map[string]seen)
	reported := make(map[string]bool)

	var errs []ValidationError
	for _, r := range routes {
		segments := strings.Split(strings.Trim(r.Path, "/"), "/")
		prefix := ""
		for _, seg := range segments {
			if strings.HasPrefix(seg, ":") {
				first, ok := names[prefix]
				switch {
				case !ok:
					names[prefix] = seen{name: seg, file: r.File, path: r.Path}
				case first.name != seg && !reported[prefix]:
					reported[prefix] = true
					errs = append(errs, ValidationError{
						Type:    ErrorParamNameConflict,
						Message: fmt.Sprintf("%s and %s name the parameter after %q differently", first.path, r.Path, "/"+prefix),
						Files:   []string{first.file, r.File},
						Path:    r.Path,
					})
				}
				seg = ":"
			}
			prefix += seg + "/"
		}
	}
	return errs
}

// duplicateParams reports routes that repeat a parameter name, once per
// path.
func duplicateParams(routes []Route) []ValidationError {
	var (
		errs     []ValidationError
		reported = make(map[string]bool)
	)
	for _, r := range routes {
		name := routepath.DuplicateParam(r.Path)
		if name == "" || reported[r.Path] {
			continue
		}
		reported[r.Path] = true
		errs = append(errs, ValidationError{
			Type:    ErrorDuplicateParam,
			Message: fmt.Sprintf("%s uses parameter %q more than once", r.Path, name),
			Files:   []string{r.File},
			Path:    r.Path,
		})
	}
	return errs
}

// SortBySpecificity orders routes so that more specific paths come first:
// more segments first, then static segments before parameters. The sort
// is stable, so equally specific routes keep discovery order.
func SortBySpecificity(routes []Route) {
	sort.SliceStable(routes, func(i, j int) bool {
		return calculateSpecificity(routes[i].Path) > calculateSpecificity(routes[j].Path)
	})
}

// calculateSpecificity returns a numeric score for route specificity.
// Higher scores = more specific = matched first.
func calculateSpecificity(path string) int {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if path == "/" {
		segments = nil
	}
	score := len(segments) * 100

	for _, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			score += 10
		} else {
			score += 50
		}
	}
	return score
}

// FormatValidationError formats a validation error for display:
//
//	ERROR: GET /users is defined 2 times
//	  /srv/api/endpoints/users.go → /users
//	  /srv/api/endpoints/users/index.go → /users
func FormatValidationError(err ValidationError) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("ERROR: %s\n", err.Message))
	for _, file := range err.Files {
		sb.WriteString(fmt.Sprintf("  %s → %s\n", file, err.Path))
	}

	return sb.String()
}
