package fswalk

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/vango-dev/fsroutes/internal/errors"
)

// memTree writes files (path → contents) into a fresh in-memory fs.
func memTree(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, contents := range files {
		if err := afero.WriteFile(fsys, name, []byte(contents), 0o644); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
	}
	return fsys
}

func TestWalkerFiles(t *testing.T) {
	fsys := memTree(t, map[string]string{
		"/app/b/endpoints/users.go":       "",
		"/app/a/endpoints/foo/bar/get.go": "",
		"/app/a/endpoints/foo/baz.go":     "",
		"/app/readme.md":                  "",
		"/app/a/endpoints/.hidden.go":     "",
	})

	files, err := New(fsys, nil).Files(context.Background(), "/app")
	if err != nil {
		t.Fatalf("Files() error = %v", err)
	}

	want := []string{
		"/app/a/endpoints/.hidden.go",
		"/app/a/endpoints/foo/bar/get.go",
		"/app/a/endpoints/foo/baz.go",
		"/app/b/endpoints/users.go",
		"/app/readme.md",
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("Files() mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkerFilesDeterministic(t *testing.T) {
	fsys := memTree(t, map[string]string{
		"/app/z.go":   "",
		"/app/m/n.go": "",
		"/app/a.go":   "",
	})
	w := New(fsys, nil)

	first, err := w.Files(context.Background(), "/app")
	if err != nil {
		t.Fatal(err)
	}
	second, err := w.Files(context.Background(), "/app")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two walks differ:\n%s", diff)
	}
}

func TestWalkerEmptyRoot(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("/app/endpoints", 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := New(fsys, nil).Files(context.Background(), "/app")
	if err != nil {
		t.Fatalf("Files() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Files() = %v, want none", files)
	}
}

func TestWalkerRootIsFile(t *testing.T) {
	fsys := memTree(t, map[string]string{"/app/endpoints/get.go": ""})

	files, err := New(fsys, nil).Files(context.Background(), "/app/endpoints/get.go")
	if err != nil {
		t.Fatalf("Files() error = %v", err)
	}
	if diff := cmp.Diff([]string{"/app/endpoints/get.go"}, files); diff != "" {
		t.Errorf("Files() mismatch:\n%s", diff)
	}
}

func TestWalkerMissingRoot(t *testing.T) {
	_, err := New(afero.NewMemMapFs(), nil).Files(context.Background(), "/nope")
	if errors.Code(err) != "E101" {
		t.Fatalf("Files() error = %v, want E101", err)
	}
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist: %v", err)
	}
}

func TestWalkerCancelled(t *testing.T) {
	fsys := memTree(t, map[string]string{"/app/endpoints/get.go": ""})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files, err := New(fsys, nil).Files(ctx, "/app")
	if files != nil {
		t.Errorf("Files() returned partial result %v", files)
	}
	if errors.Code(err) != "E150" || !stderrors.Is(err, context.Canceled) {
		t.Errorf("Files() error = %v, want E150 wrapping context.Canceled", err)
	}
}

func TestWalkerDeepNesting(t *testing.T) {
	const depth = 2000
	dir := "/app" + strings.Repeat("/d", depth)
	fsys := memTree(t, map[string]string{dir + "/leaf.go": ""})

	files, err := New(fsys, nil).Files(context.Background(), "/app")
	if err != nil {
		t.Fatalf("Files() error = %v", err)
	}
	if len(files) != 1 || files[0] != dir+"/leaf.go" {
		t.Errorf("Files() = %v", files)
	}
}

func TestWalkerSymlinkCycle(t *testing.T) {
	root := t.TempDir()
	endpoints := filepath.Join(root, "endpoints")
	if err := os.MkdirAll(endpoints, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(endpoints, "get.go"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(root, filepath.Join(endpoints, "loop")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	files, err := New(afero.NewOsFs(), nil).Files(context.Background(), root)
	if err != nil {
		t.Fatalf("Files() error = %v", err)
	}
	if len(files) != 1 || !strings.HasSuffix(files[0], "/endpoints/get.go") {
		t.Errorf("Files() = %v, want only endpoints/get.go", files)
	}
}
