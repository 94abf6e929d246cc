package imurl

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/imurl/internal/grammar"
	"github.com/ghettovoice/imurl/internal/types"
	"github.com/ghettovoice/imurl/internal/util"
)

// Parse parses a URL reference from the given input src (string or []byte).
//
// The parser is permissive about vocabulary and strict about grammar: any
// syntactically well-formed scheme or host is accepted opaquely, while a
// malformed port or scheme token fails with [ErrMalformedComponent] and an
// empty input fails with [ErrEmptyInput]. Scheme and host are lower-cased;
// every other component is kept raw for round-trip fidelity.
func Parse[T ~string | ~[]byte](src T) (*URL, error) {
	parts, err := grammar.SplitURL(src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	u := &URL{
		scheme:      parts.Scheme,
		host:        parts.Host,
		hasHost:     parts.HasHost,
		port:        parts.Port,
		hasPort:     parts.HasPort,
		path:        types.ParsePath(parts.Path),
		params:      types.ParsePairs(parts.Params, ';'),
		hasParams:   parts.HasParams,
		query:       types.ParsePairs(parts.Query, '&'),
		hasQuery:    parts.HasQuery,
		fragment:    parts.Fragment,
		hasFragment: parts.HasFragment,
	}
	if parts.HasUser {
		if parts.HasPasswd {
			u.user = UserPassword(parts.User, parts.Passwd)
		} else {
			u.user = User(parts.User)
		}
	}
	return u, nil
}

// MustParse is like [Parse] but panics on error.
// It simplifies initialization of URL constants in tests and examples.
func MustParse[T ~string | ~[]byte](src T) *URL {
	return util.Must2(Parse(src))
}
