package module

import (
	"context"
	"testing"

	"github.com/vango-dev/fsroutes/internal/errors"
)

func TestExtLoader(t *testing.T) {
	goMod := New("/a/endpoints/users.go", Entry{Name: "get", Value: func() {}})
	l := ExtLoader{
		".go": Static{"/a/endpoints/users.go": goMod},
	}

	m, err := l.Load(context.Background(), "/a/endpoints/users.go")
	if err != nil || m != goMod {
		t.Fatalf("Load(.go) = %v, %v", m, err)
	}

	m, err = l.Load(context.Background(), "/a/endpoints/users.js")
	if m != nil {
		t.Errorf("Load(.js) returned module %v", m)
	}
	if errors.Code(err) != "E111" {
		t.Errorf("Load(.js) error = %v, want E111", err)
	}
}

func TestExtLoaderIsCaseInsensitive(t *testing.T) {
	l := ExtLoader{".go": Static{}}
	if _, err := l.Load(context.Background(), "/a/endpoints/USERS.GO"); err != nil {
		t.Errorf("Load(.GO) error = %v", err)
	}
}
