// Package pathfilter decides which discovered files are route candidates
// using include and exclude glob patterns.
//
// Patterns use doublestar syntax: "**" matches any number of directories,
// "{a,b}" is alternation and "[abc]" a character class. Dotfiles get no
// special treatment, so "*" matches ".hidden" just like "visible".
package pathfilter

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vango-dev/fsroutes/internal/errors"
)

// DefaultInclusionPattern selects Go sources and Go plugins that live
// anywhere below a directory named "endpoints".
const DefaultInclusionPattern = "**/endpoints/**/*.{go,so}"

// DefaultExclusionPatterns reject test folders and test files.
var DefaultExclusionPatterns = []string{
	"**/__tests__/**",
	"**/testdata/**",
	"**/*_test.go",
	"**/*.{spec,test}.*",
}

// Filter matches paths against include and exclude patterns.
type Filter struct {
	include []string
	exclude []string
}

// New validates the patterns and returns a Filter. An invalid pattern
// fails with E130.
func New(include, exclude []string) (*Filter, error) {
	for _, p := range append(append([]string(nil), include...), exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.New("E130").WithPath(p)
		}
	}
	return &Filter{
		include: append([]string(nil), include...),
		exclude: append([]string(nil), exclude...),
	}, nil
}

// Default returns the Filter built from the default patterns.
func Default() *Filter {
	f, _ := New([]string{DefaultInclusionPattern}, DefaultExclusionPatterns)
	return f
}

// Match reports whether path matches at least one inclusion pattern and
// no exclusion pattern. path is slash-separated; a leading "/" is ignored.
func (f *Filter) Match(path string) bool {
	return f.Included(path) && !f.Excluded(path)
}

// Included reports whether path matches an inclusion pattern.
func (f *Filter) Included(path string) bool {
	return matchAny(f.include, path)
}

// Excluded reports whether path matches an exclusion pattern.
func (f *Filter) Excluded(path string) bool {
	return matchAny(f.exclude, path)
}

func matchAny(patterns []string, path string) bool {
	path = strings.TrimPrefix(path, "/")
	for _, p := range patterns {
		// Patterns were validated in New.
		if ok, _ := doublestar.Match(strings.TrimPrefix(p, "/"), path); ok {
			return true
		}
	}
	return false
}
