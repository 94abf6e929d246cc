package errorutil_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/imurl/internal/errorutil"
)

const errSentinel errorutil.Error = "sentinel"

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		args    []any
		wantMsg string
	}{
		{"no args", nil, "sentinel"},
		{"message", []any{"details"}, "sentinel: details"},
		{"format and args", []any{"item %d", 42}, "sentinel: item 42"},
		{"wraps error", []any{errorutil.Error("cause")}, "sentinel: cause"},
		{"already wrapped", []any{errorutil.NewWrapperError(errSentinel, "inner")}, "sentinel: inner"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(errSentinel, c.args...)
			if !errors.Is(err, errSentinel) {
				t.Errorf("errors.Is(err, errSentinel) = false, want true, err = %v", err)
			}
			if got, want := err.Error(), c.wantMsg; got != want {
				t.Errorf("err.Error() = %q, want %q", got, want)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	e1 := errorutil.Error("first")
	e2 := errorutil.Error("second")

	cases := []struct {
		name    string
		errs    []error
		wantNil bool
		wantMsg string
	}{
		{"no errors", nil, true, ""},
		{"all nil", []error{nil, nil}, true, ""},
		{"single passes through", []error{nil, e1}, false, "first"},
		{"multiple bullets every entry", []error{e1, nil, e2}, false, "\n  - first\n  - second"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.Join(c.errs...)
			if c.wantNil {
				if err != nil {
					t.Fatalf("errorutil.Join() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("errorutil.Join() = nil, want error")
			}
			if got, want := err.Error(), c.wantMsg; got != want {
				t.Errorf("err.Error() = %q, want %q", got, want)
			}
		})
	}

	t.Run("errors.Is finds every member", func(t *testing.T) {
		t.Parallel()

		err := errorutil.Join(e1, e2)
		if !errors.Is(err, e1) || !errors.Is(err, e2) {
			t.Errorf("errors.Is does not find members of %v", err)
		}
	})
}

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := errorutil.Errorf("segment %d %q", 2, "a b")
	if got, want := err.Error(), `segment 2 "a b"`; got != want {
		t.Errorf("err.Error() = %q, want %q", got, want)
	}
}
