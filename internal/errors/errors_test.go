package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "filesystem error",
			code:    "E101",
			wantMsg: "Root directory not found",
			wantCat: CategoryFilesystem,
		},
		{
			name:    "module error",
			code:    "E110",
			wantMsg: "Endpoint module failed to load",
			wantCat: CategoryModule,
		},
		{
			name:    "pattern error",
			code:    "E130",
			wantMsg: "Invalid glob pattern",
			wantCat: CategoryPattern,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	err := New("E101").WithPath("/srv/app").Wrap(fs.ErrNotExist)
	want := "E101: Root directory not found (/srv/app): file does not exist"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	plain := &Error{Message: "test error"}
	if plain.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", plain.Error(), "test error")
	}
}

func TestError_IsAndAs(t *testing.T) {
	err := fmt.Errorf("building: %w", New("E110").WithPath("a.go").Wrap(fs.ErrPermission))

	if !stderrors.Is(err, New("E110")) {
		t.Error("errors.Is should match on code")
	}
	if stderrors.Is(err, New("E101")) {
		t.Error("errors.Is should not match a different code")
	}
	if !stderrors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is should see the wrapped cause")
	}

	var fe *Error
	if !stderrors.As(err, &fe) {
		t.Fatal("errors.As should find *Error")
	}
	if fe.Path != "a.go" {
		t.Errorf("Path = %q, want %q", fe.Path, "a.go")
	}
	if Code(err) != "E110" {
		t.Errorf("Code() = %q, want E110", Code(err))
	}
	if Code(fs.ErrClosed) != "" {
		t.Error("Code() of a plain error should be empty")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E110") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	fe := New("E101")
	if FromError(fmt.Errorf("ctx: %w", fe), "E110") != fe {
		t.Error("FromError should return a wrapped *Error as-is")
	}

	result := FromError(fs.ErrNotExist, "E110")
	if result.Wrapped != fs.ErrNotExist || result.Code != "E110" {
		t.Errorf("FromError = %+v, want E110 wrapping fs.ErrNotExist", result)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E101").WithPath("/srv/app").Wrap(fs.ErrNotExist)
	out := err.Format()

	for _, want := range []string{
		"ERROR E101: Root directory not found",
		"/srv/app",
		"Cause: file does not exist",
		"Hint: Check that the path exists and is readable",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}

	if got := err.FormatCompact(); got != "/srv/app: E101: Root directory not found" {
		t.Errorf("FormatCompact() = %q", got)
	}
}

func TestFormatJSON(t *testing.T) {
	got := New("E130").WithPath("**/[").FormatJSON()
	if !strings.HasPrefix(got, `{"code":"E130","category":"pattern","message":"Invalid glob pattern","path":"**/["`) {
		t.Errorf("FormatJSON() = %s", got)
	}
	if !strings.HasSuffix(got, "}") {
		t.Errorf("FormatJSON() not closed: %s", got)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six", 10)
	for _, l := range lines {
		if len(l) > 10 {
			t.Errorf("line %q exceeds width", l)
		}
	}
	if strings.Join(lines, " ") != "one two three four five six" {
		t.Errorf("wrapText lost words: %v", lines)
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText of empty text should be nil")
	}
}

func TestGetAllCodesHaveTemplates(t *testing.T) {
	for _, code := range GetAllCodes() {
		tmpl, ok := GetTemplate(code)
		if !ok || tmpl.Message == "" || tmpl.Category == "" {
			t.Errorf("code %s has incomplete template %+v", code, tmpl)
		}
	}
}
