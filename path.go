package imurl

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/imurl/internal/errorutil"
)

// AppendPathSegment returns a new URL with the segment appended to the path.
// Separators are structural, so a segment containing '/' fails with
// [ErrInvalidComponents].
func (u *URL) AppendPathSegment(seg string) (*URL, error) {
	if err := checkSegment(seg); err != nil {
		return nil, errtrace.Wrap(err)
	}
	u2 := u.Clone()
	if u2 == nil {
		u2 = &URL{}
	}
	u2.path = u2.path.WithAppended(seg)
	return u2, nil
}

// SetPathSegment returns a new URL with the i-th path segment replaced.
// An out-of-range index fails with an invalid argument error, a segment
// containing '/' with [ErrInvalidComponents].
func (u *URL) SetPathSegment(i int, seg string) (*URL, error) {
	if err := checkSegment(seg); err != nil {
		return nil, errtrace.Wrap(err)
	}
	u2 := u.Clone()
	if u2 == nil {
		u2 = &URL{}
	}
	p, ok := u2.path.WithSegment(i, seg)
	if !ok {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("path segment index %d out of range [0, %d)", i, u2.path.Len()))
	}
	u2.path = p
	return u2, nil
}

// DeletePathSegment returns a new URL with the i-th path segment removed.
// An out-of-range index fails with an invalid argument error.
func (u *URL) DeletePathSegment(i int) (*URL, error) {
	u2 := u.Clone()
	if u2 == nil {
		u2 = &URL{}
	}
	p, ok := u2.path.WithoutSegment(i)
	if !ok {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("path segment index %d out of range [0, %d)", i, u2.path.Len()))
	}
	u2.path = p
	return u2, nil
}

func checkSegment(seg string) error {
	if strings.IndexByte(seg, '/') >= 0 {
		return newInvalidComponentsErr("path segment %q contains separator", seg) //errtrace:skip
	}
	return nil
}
