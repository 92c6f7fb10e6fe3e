package routepath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParamSegment(t *testing.T) {
	tests := []struct {
		seg  string
		want string
	}{
		{"_id", ":id"},
		{"_userId", ":userId"},
		{"users", "users"},
		{"index", "index"},
		{"a_b", "a_b"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ParamSegment(tt.seg); got != tt.want {
			t.Errorf("ParamSegment(%q) = %q, want %q", tt.seg, got, tt.want)
		}
	}
}

func TestToSlash(t *testing.T) {
	if got := ToSlash(`api\endpoints\users.go`); got != "api/endpoints/users.go" {
		t.Errorf("ToSlash() = %q", got)
	}
	if got := ToSlash("/srv/app/endpoints"); got != "/srv/app/endpoints" {
		t.Errorf("ToSlash() = %q", got)
	}
}

func TestRelative(t *testing.T) {
	rel, err := Relative("/srv/api/endpoints", "/srv/api/endpoints/users/_id/index.go")
	if err != nil {
		t.Fatalf("Relative() error = %v", err)
	}
	if rel != "users/_id/index.go" {
		t.Errorf("Relative() = %q", rel)
	}

	if _, err := Relative("/srv/api/endpoints", "/srv/other/file.go"); err == nil {
		t.Error("Relative() should fail for a file outside the root")
	}
}

func TestExtract(t *testing.T) {
	root := "/srv/api/endpoints"

	tests := []struct {
		file string
		want Metadata
	}{
		{"/srv/api/endpoints/foo/bar/get.go", Metadata{Name: "get", Route: "foo/bar"}},
		{"/srv/api/endpoints/foo/bar/baz.go", Metadata{Name: "baz", Route: "foo/bar"}},
		{"/srv/api/endpoints/users.go", Metadata{Name: "users", Route: ""}},
		{"/srv/api/endpoints/users/_id/stuff/index.go", Metadata{Name: "index", Route: "users/:id/stuff"}},
		{"/srv/api/endpoints/users/_id.so", Metadata{Name: ":id", Route: "users"}},
		{"/srv/api/endpoints/_org/_repo/post.go", Metadata{Name: "post", Route: ":org/:repo"}},
		{"/srv/api/endpoints/v1.2/list.handlers.go", Metadata{Name: "list.handlers", Route: "v1.2"}},
		{"/srv/api/endpoints/.hidden", Metadata{Name: ".hidden", Route: ""}},
	}

	for _, tt := range tests {
		got, err := Extract(root, tt.file)
		if err != nil {
			t.Errorf("Extract(%q) error = %v", tt.file, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Extract(%q) = %+v, want %+v", tt.file, got, tt.want)
		}
	}
}

func TestJoinRoute(t *testing.T) {
	tests := []struct {
		prefix string
		name   string
		want   string
	}{
		{"foo/bar", "baz", "/foo/bar/baz"},
		{"foo/bar/baz", "index", "/foo/bar/baz"},
		{"", "users", "/users"},
		{"", "index", "/"},
		{"users/:id", ":postId", "/users/:id/:postId"},
	}

	for _, tt := range tests {
		if got := JoinRoute(tt.prefix, tt.name); got != tt.want {
			t.Errorf("JoinRoute(%q, %q) = %q, want %q", tt.prefix, tt.name, got, tt.want)
		}
	}
}

func TestToBracePattern(t *testing.T) {
	tests := []struct {
		route string
		want  string
	}{
		{"/users/:id/stuff", "/users/{id}/stuff"},
		{"/:org/:repo", "/{org}/{repo}"},
		{"/", "/"},
		{"/plain", "/plain"},
		{"/odd/:", "/odd/:"},
	}

	for _, tt := range tests {
		if got := ToBracePattern(tt.route); got != tt.want {
			t.Errorf("ToBracePattern(%q) = %q, want %q", tt.route, got, tt.want)
		}
	}
}

func TestParams(t *testing.T) {
	tests := []struct {
		route string
		want  []string
		dup   string
	}{
		{"/", nil, ""},
		{"/users", nil, ""},
		{"/users/:id/posts/:post", []string{"id", "post"}, ""},
		{"/:id/:id", []string{"id", "id"}, "id"},
		{"/:org/x/:id/y/:org", []string{"org", "id", "org"}, "org"},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Params(tt.route)); diff != "" {
				t.Errorf("Params() mismatch (-want +got):\n%s", diff)
			}
			if got := DuplicateParam(tt.route); got != tt.dup {
				t.Errorf("DuplicateParam() = %q, want %q", got, tt.dup)
			}
		})
	}
}
