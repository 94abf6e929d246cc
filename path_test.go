package imurl_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/imurl"
)

func TestURL_AppendPathSegment(t *testing.T) {
	t.Parallel()

	u := imurl.MustParse("https://example.com/a")

	got, err := u.AppendPathSegment("b")
	if err != nil {
		t.Fatalf("u.AppendPathSegment() error = %v, want nil", err)
	}
	if want := "https://example.com/a/b"; got.String() != want {
		t.Errorf("u.AppendPathSegment() = %q, want %q", got, want)
	}
	if want := "https://example.com/a"; u.String() != want {
		t.Errorf("receiver changed: %q, want %q", u, want)
	}

	_, err = u.AppendPathSegment("b/c")
	if diff := cmp.Diff(err, imurl.ErrInvalidComponents, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("u.AppendPathSegment(b/c) error = %v, want %v\ndiff (-got +want):\n%v", err, imurl.ErrInvalidComponents, diff)
	}
}

func TestURL_SetPathSegment(t *testing.T) {
	t.Parallel()

	u := imurl.MustParse("https://example.com/blog/article/1")

	got, err := u.SetPathSegment(2, "2")
	if err != nil {
		t.Fatalf("u.SetPathSegment() error = %v, want nil", err)
	}
	if want := "https://example.com/blog/article/2"; got.String() != want {
		t.Errorf("u.SetPathSegment() = %q, want %q", got, want)
	}

	if _, err = u.SetPathSegment(3, "x"); err == nil {
		t.Error("u.SetPathSegment(3, x) error = nil, want out of range error")
	}
	_, err = u.SetPathSegment(0, "a/b")
	if diff := cmp.Diff(err, imurl.ErrInvalidComponents, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("u.SetPathSegment(0, a/b) error = %v, want %v\ndiff (-got +want):\n%v", err, imurl.ErrInvalidComponents, diff)
	}
}

func TestURL_DeletePathSegment(t *testing.T) {
	t.Parallel()

	u := imurl.MustParse("https://example.com/blog/article/1")

	got, err := u.DeletePathSegment(1)
	if err != nil {
		t.Fatalf("u.DeletePathSegment() error = %v, want nil", err)
	}
	if want := "https://example.com/blog/1"; got.String() != want {
		t.Errorf("u.DeletePathSegment() = %q, want %q", got, want)
	}

	if _, err = u.DeletePathSegment(42); err == nil {
		t.Error("u.DeletePathSegment(42) error = nil, want out of range error")
	}
}

func TestURL_FilePath(t *testing.T) {
	t.Parallel()

	sep := string(filepath.Separator)

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"absolute", "file:///var/log/app.log", strings.Join([]string{"", "var", "log", "app.log"}, sep)},
		{"decoded segments", "file:///a%20dir/file", strings.Join([]string{"", "a dir", "file"}, sep)},
		{"no path", "https://example.com", ""},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := imurl.MustParse(c.input).FilePath(), c.want; got != want {
				t.Errorf("imurl.MustParse(%q).FilePath() = %q, want %q", c.input, got, want)
			}
		})
	}
}

func TestURL_PathString(t *testing.T) {
	t.Parallel()

	u := imurl.MustParse("https://example.com/a/b/")
	if got, want := u.PathString(), "/a/b/"; got != want {
		t.Errorf("u.PathString() = %q, want %q", got, want)
	}

	p := u.Path()
	if diff := cmp.Diff(p.Segments(), []string{"a", "b"}); diff != "" {
		t.Errorf("u.Path().Segments() diff (-got +want):\n%v", diff)
	}
	if !p.IsAbs() || !p.HasTrailingSlash() {
		t.Errorf("u.Path() flags = abs %v, trailing %v, want true, true", p.IsAbs(), p.HasTrailingSlash())
	}
}
