package module

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryLoadExact(t *testing.T) {
	r := NewRegistry()
	get := func() {}
	r.Register("/src/app/api/endpoints/users.go", Entry{Name: "get", Value: get})
	r.Register("/src/app/api/endpoints/users.go", Entry{Name: "post", Value: get})

	m, err := r.Load(context.Background(), "/src/app/api/endpoints/users.go")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"get", "post"}, m.Names()); diff != "" {
		t.Errorf("Names() mismatch:\n%s", diff)
	}
}

func TestRegistryLoadTrimpath(t *testing.T) {
	r := NewRegistry()
	r.Register("example.com/app/api/endpoints/users.go", Entry{Name: "get", Value: func() {}})
	r.Register("api/endpoints/users.go", Entry{Name: "put", Value: func() {}})

	m, err := r.Load(context.Background(), "/home/ci/example.com/app/api/endpoints/users.go")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"get"}, m.Names()); diff != "" {
		t.Errorf("longest suffix should win:\n%s", diff)
	}

	m, _ = r.Load(context.Background(), "/home/ci/xapi/endpoints/users.go")
	if m.Len() != 0 {
		t.Errorf("suffix must align with a segment boundary, got %v", m.Names())
	}
}

func TestRegistryHas(t *testing.T) {
	r := NewRegistry()
	r.Register("example.com/app/api/endpoints/users.go")

	tests := []struct {
		path string
		want bool
	}{
		{"example.com/app/api/endpoints/users.go", true},
		{"/home/dev/src/example.com/app/api/endpoints/users.go", true},
		{"/home/dev/src/example.com/app/api/endpoints/posts.go", false},
		{"/home/dev/src/other-example.com/app/api/endpoints/users.go", false},
	}

	for _, tt := range tests {
		if got := r.Has(tt.path); got != tt.want {
			t.Errorf("Has(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestRegistryUnknownFile(t *testing.T) {
	m, err := NewRegistry().Load(context.Background(), "/src/endpoints/helpers.go")
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 0 {
		t.Errorf("unknown file should load empty, got %v", m.Names())
	}
}

func TestExportUsesCallerFile(t *testing.T) {
	Export("get", func() {})
	Default(func() {})

	file := CallerFile(0)
	if !strings.HasSuffix(file, "/registry_test.go") {
		t.Fatalf("CallerFile(0) = %q", file)
	}

	m, err := DefaultRegistry.Load(context.Background(), file)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"get", "default"}, m.Names()); diff != "" {
		t.Errorf("Names() mismatch:\n%s", diff)
	}
	found := false
	for _, f := range DefaultRegistry.Files() {
		found = found || f == file
	}
	if !found {
		t.Errorf("Files() = %v, want it to contain %s", DefaultRegistry.Files(), file)
	}
}
