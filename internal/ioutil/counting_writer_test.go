package ioutil_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ghettovoice/imurl/internal/ioutil"
)

func TestCountingWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.NewCountingWriter(&sb)

	cw.WriteString("abc")
	cw.Fprint("/", "def")
	cw.Call(func(w io.Writer) (int, error) {
		return io.WriteString(w, "!")
	})

	num, err := cw.Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if want := len("abc/def!"); num != want {
		t.Errorf("cw.Result() num = %d, want %d", num, want)
	}
	if got, want := sb.String(), "abc/def!"; got != want {
		t.Errorf("written %q, want %q", got, want)
	}
}

func TestCountingWriter_failure(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("broken pipe")
	cw := ioutil.NewCountingWriter(failWriter{err: wantErr})

	if _, err := cw.WriteString("abc"); !errors.Is(err, wantErr) {
		t.Errorf("cw.WriteString() error = %v, want %v", err, wantErr)
	}
	// Writes after the first failure are no-ops.
	if n, err := cw.Write([]byte("def")); n != 0 || !errors.Is(err, wantErr) {
		t.Errorf("cw.Write() = %d, %v, want 0, %v", n, err, wantErr)
	}
	if num, err := cw.Result(); num != 0 || !errors.Is(err, wantErr) {
		t.Errorf("cw.Result() = %d, %v, want 0, %v", num, err, wantErr)
	}
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }
