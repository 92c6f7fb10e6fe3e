package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestOrDiscard(t *testing.T) {
	if OrDiscard(nil) != Discard {
		t.Error("OrDiscard(nil) should return Discard")
	}
	l := slog.Default()
	if OrDiscard(l) != l {
		t.Error("OrDiscard should return a non-nil logger unchanged")
	}
}

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug record written without verbose: %q", buf.String())
	}

	New(&buf, true).Debug("shown", "path", "/x")
	if !strings.Contains(buf.String(), "msg=shown") || !strings.Contains(buf.String(), "path=/x") {
		t.Errorf("verbose logger output = %q", buf.String())
	}
}
