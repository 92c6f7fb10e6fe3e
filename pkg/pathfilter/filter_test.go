package pathfilter

import (
	"testing"

	"github.com/vango-dev/fsroutes/internal/errors"
)

func TestDefaultFilter(t *testing.T) {
	f := Default()

	tests := []struct {
		path string
		want bool
	}{
		{"/srv/app/api/endpoints/users.go", true},
		{"/srv/app/api/endpoints/foo/bar/get.go", true},
		{"/srv/app/endpoints/users/_id/index.so", true},
		{"/srv/app/endpoints/.hidden.go", true},
		{"/srv/app/api/endpoints/users.js", false},
		{"/srv/app/api/users.go", false},
		{"/srv/app/endpointsx/users.go", false},
		{"/srv/app/api/endpoints/users_test.go", false},
		{"/srv/app/api/endpoints/something.test.go", false},
		{"/srv/app/api/endpoints/something.spec.so", false},
		{"/srv/app/someFolder/__tests__/this/endpoints/folder/skipped.go", false},
		{"/srv/app/endpoints/__tests__/get.go", false},
		{"/srv/app/endpoints/testdata/get.go", false},
		{"srv/app/endpoints/get.go", true},
	}

	for _, tt := range tests {
		if got := f.Match(tt.path); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestCustomPatterns(t *testing.T) {
	f, err := New(
		[]string{"**/endpoints/**/*.{js,mjs,ts}"},
		[]string{"**/private/**", "**/[._]*"},
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{"/app/endpoints/users.mjs", true},
		{"/app/endpoints/users.ts", true},
		{"/app/endpoints/users.go", false},
		{"/app/endpoints/private/users.js", false},
		{"/app/endpoints/.env.js", false},
		{"/app/endpoints/_draft.js", false},
	}

	for _, tt := range tests {
		if got := f.Match(tt.path); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIncludedExcluded(t *testing.T) {
	f := Default()
	p := "/app/endpoints/users_test.go"
	if !f.Included(p) {
		t.Error("Included() should be true for a .go file below endpoints")
	}
	if !f.Excluded(p) {
		t.Error("Excluded() should be true for a _test.go file")
	}
}

func TestNoIncludePatterns(t *testing.T) {
	f, err := New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if f.Match("/app/endpoints/get.go") {
		t.Error("a filter without inclusion patterns should match nothing")
	}
}

func TestNewInvalidPattern(t *testing.T) {
	_, err := New([]string{"**/endpoints/[a-"}, nil)
	if errors.Code(err) != "E130" {
		t.Fatalf("New() error = %v, want E130", err)
	}

	_, err = New(nil, []string{"{unclosed"})
	if errors.Code(err) != "E130" {
		t.Fatalf("New() error = %v, want E130", err)
	}
}

func TestNewCopiesPatterns(t *testing.T) {
	include := []string{"**/endpoints/**/*.go"}
	f, err := New(include, nil)
	if err != nil {
		t.Fatal(err)
	}
	include[0] = "nothing"
	if !f.Match("/app/endpoints/get.go") {
		t.Error("Filter should not alias the caller's slice")
	}
}
