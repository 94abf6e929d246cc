package imurl

import (
	"github.com/ghettovoice/imurl/internal/errorutil"
	"github.com/ghettovoice/imurl/internal/grammar"
)

// ErrMalformedComponent is returned by [Parse] when a structurally required
// sub-token cannot be interpreted: a non-numeric or out-of-range port, or a
// scheme token with an invalid character where the colon makes the scheme
// mandatory. The error message names the offending component and substring.
// Unknown but well-formed schemes and hosts never produce this error.
var ErrMalformedComponent error = grammar.ErrMalformedInput

// ErrEmptyInput is returned by [Parse] on empty input.
var ErrEmptyInput error = grammar.ErrEmptyInput

// ErrInvalidComponents is returned by [New], [URL.Replace] and the
// path-segment operations when the resulting field combination would violate
// the data model: userinfo or port without a host, or a path segment
// containing the '/' separator.
const ErrInvalidComponents errorutil.Error = "invalid components"

func newInvalidComponentsErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidComponents, args...) //errtrace:skip
}
