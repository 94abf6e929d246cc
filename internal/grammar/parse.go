// Package grammar implements the URL reference grammar: delimiter scanning,
// char-class predicates and percent-encoding primitives.
package grammar

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/imurl/internal/constraints"
	"github.com/ghettovoice/imurl/internal/errorutil"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// URLParts is the raw decomposition of a URL reference produced by [SplitURL].
// All fields hold verbatim substrings of the input; nothing is unescaped.
// Has* flags record component presence, which is distinct from emptiness
// (a bare "?" has an empty query, no "?" has no query at all).
type URLParts struct {
	Scheme      string
	User        string
	Passwd      string
	Host        string
	Port        uint16
	Path        string
	Params      string
	Query       string
	Fragment    string
	HasUser     bool
	HasPasswd   bool
	HasHost     bool
	HasPort     bool
	HasParams   bool
	HasQuery    bool
	HasFragment bool
}

// SplitURL scans a URL reference into its raw components.
//
// The grammar is permissive about vocabulary and strict about structure:
// unknown schemes and arbitrary hosts pass through opaquely, while a
// non-numeric or out-of-range port and a malformed scheme token fail with
// [ErrMalformedInput] naming the offending substring.
func SplitURL[T constraints.Byteseq](src T) (URLParts, error) {
	var parts URLParts
	if len(src) == 0 {
		return parts, errtrace.Wrap(ErrEmptyInput)
	}

	s := string(src)

	s, err := splitScheme(s, &parts)
	if err != nil {
		return URLParts{}, errtrace.Wrap(err)
	}
	s, err = splitAuthority(s, &parts)
	if err != nil {
		return URLParts{}, errtrace.Wrap(err)
	}

	if i := strings.IndexByte(s, '#'); i >= 0 {
		parts.Fragment, parts.HasFragment = s[i+1:], true
		s = s[:i]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		parts.Query, parts.HasQuery = s[i+1:], true
		s = s[:i]
	}
	if i := strings.IndexByte(s, ';'); i >= 0 {
		parts.Params, parts.HasParams = s[i+1:], true
		s = s[:i]
	}
	parts.Path = s
	return parts, nil
}

// splitScheme cuts a leading "scheme:" token off s.
// A colon appearing before any of "/?#;" makes the scheme mandatory:
// in that position a token that does not match the scheme shape is an error.
func splitScheme(s string, parts *URLParts) (string, error) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ':':
			tok := s[:i]
			if !IsSchemeToken(tok) {
				return "", errtrace.Wrap(newMalformedInputErr("scheme %q", tok))
			}
			parts.Scheme = strings.ToLower(tok)
			return s[i+1:], nil
		case '/', '?', '#', ';':
			return s, nil
		}
	}
	return s, nil
}

// splitAuthority cuts a leading "//userinfo@host:port" section off s.
// The authority runs up to the next "/?#;" or the end of input.
func splitAuthority(s string, parts *URLParts) (string, error) {
	if !strings.HasPrefix(s, "//") {
		return s, nil
	}

	auth := s[2:]
	rest := ""
	if i := strings.IndexAny(auth, "/?#;"); i >= 0 {
		auth, rest = auth[:i], auth[i:]
	}
	parts.HasHost = true

	if i := strings.LastIndexByte(auth, '@'); i >= 0 {
		userinfo := auth[:i]
		auth = auth[i+1:]
		parts.HasUser = true
		if j := strings.IndexByte(userinfo, ':'); j >= 0 {
			parts.User, parts.Passwd, parts.HasPasswd = userinfo[:j], userinfo[j+1:], true
		} else {
			parts.User = userinfo
		}
	}

	host, portStr, hasPort, err := splitHostPort(auth)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	parts.Host = strings.ToLower(host)
	if hasPort {
		port, err := ParsePort(portStr)
		if err != nil {
			return "", errtrace.Wrap(err)
		}
		parts.Port, parts.HasPort = port, true
	}
	return rest, nil
}

func splitHostPort(s string) (host, port string, hasPort bool, err error) {
	if strings.HasPrefix(s, "[") {
		i := strings.IndexByte(s, ']')
		if i < 0 {
			return "", "", false, errtrace.Wrap(newMalformedInputErr("host %q: missing ']'", s))
		}
		host = s[1:i]
		rest := s[i+1:]
		if rest == "" {
			return host, "", false, nil
		}
		if rest[0] != ':' {
			return "", "", false, errtrace.Wrap(newMalformedInputErr("host %q: unexpected %q after ']'", s, rest))
		}
		return host, rest[1:], true, nil
	}
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		return s[:i], s[i+1:], true, nil
	}
	return s, "", false, nil
}

// ParsePort parses a decimal port number in the 0-65535 range.
func ParsePort[T constraints.Byteseq](s T) (uint16, error) {
	str := string(s)
	if str == "" {
		return 0, errtrace.Wrap(newMalformedInputErr("port is empty"))
	}
	port, err := strconv.ParseUint(str, 10, 16)
	if err != nil {
		return 0, errtrace.Wrap(newMalformedInputErr("port %q", str))
	}
	return uint16(port), nil
}
