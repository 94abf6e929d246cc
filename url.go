package imurl

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/imurl/internal/errorutil"
	"github.com/ghettovoice/imurl/internal/types"
)

// Pair is a single key/value entry of a query or parameter list.
type Pair = types.Pair

// Pairs is an ordered key/value list with duplicate keys allowed.
type Pairs = types.Pairs

// Path is the structural form of a URL path: raw segments plus slash flags.
type Path = types.Path

// RenderOptions contains options for rendering URLs.
type RenderOptions = types.RenderOptions

// KV returns a Pair with the given key and value.
func KV(key, value string) Pair { return types.KV(key, value) }

// Flag returns a valueless Pair with the given key.
func Flag(key string) Pair { return types.Flag(key) }

var (
	_ types.Renderer        = (*URL)(nil)
	_ types.Equalable       = (*URL)(nil)
	_ types.Validatable     = (*URL)(nil)
	_ types.ValidFlag       = (*URL)(nil)
	_ types.Cloneable[*URL] = (*URL)(nil)
)

// URL is an immutable URL value.
//
// The zero value denotes an empty URL reference and is ready to use. All
// component fields are unexported and no method writes through the receiver:
// transformations return a new URL holding a fully independent copy of the
// decomposition, so no two URLs ever share mutable state.
type URL struct {
	scheme      string
	user        UserInfo
	host        string
	port        uint16
	path        Path
	params      Pairs
	query       Pairs
	fragment    string
	hasHost     bool
	hasPort     bool
	hasParams   bool
	hasQuery    bool
	hasFragment bool
}

// Scheme returns the scheme in lower-cased canonical form,
// or an empty string for a scheme-relative URL.
func (u *URL) Scheme() string {
	if u == nil {
		return ""
	}
	return u.scheme
}

// User returns the userinfo section. A zero [UserInfo] means the URL has none.
func (u *URL) User() UserInfo {
	if u == nil {
		return UserInfo{}
	}
	return u.user
}

// Host returns the host and a flag indicating whether an authority section is
// present. The flag distinguishes a URL without authority ("mailto:box") from
// one with an empty host ("file:///p"). IPv6 hosts are returned unbracketed.
func (u *URL) Host() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.host, u.hasHost
}

// Port returns the port, in case it is set, and a bool flag indicating whether it is set.
func (u *URL) Port() (uint16, bool) {
	if u == nil {
		return 0, false
	}
	return u.port, u.hasPort
}

// Path returns the structural path.
func (u *URL) Path() Path {
	if u == nil {
		return Path{}
	}
	return u.path.Clone()
}

// PathString returns the path re-joined with '/' per its slash flags.
func (u *URL) PathString() string {
	if u == nil {
		return ""
	}
	return u.path.String()
}

// FilePath returns the percent-decoded path segments joined with the host
// system's path separator. It is a read-only view and is never parsed back.
func (u *URL) FilePath() string {
	if u == nil {
		return ""
	}
	return u.path.Platform()
}

// Parameters returns a copy of the ordered path parameter list.
func (u *URL) Parameters() Pairs {
	if u == nil {
		return nil
	}
	return u.params.Clone()
}

// Query returns a copy of the ordered query pair list.
func (u *URL) Query() Pairs {
	if u == nil {
		return nil
	}
	return u.query.Clone()
}

// Fragment returns the fragment and a flag indicating whether one is present.
// A bare "#" yields an empty fragment with the flag set.
func (u *URL) Fragment() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.fragment, u.hasFragment
}

// Clone returns a deep copy of the URL.
func (u *URL) Clone() *URL {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.path = u.path.Clone()
	u2.params = u.params.Clone()
	u2.query = u.query.Clone()
	return &u2
}

// Replace returns a new URL equal to the receiver with only the components
// named by opts overridden. Omitted components carry over unchanged. The
// result is validated: a combination violating the data model fails with
// [ErrInvalidComponents] and the receiver stays usable.
func (u *URL) Replace(opts ...Option) (*URL, error) {
	u2 := u.Clone()
	if u2 == nil {
		u2 = &URL{}
	}
	for _, opt := range opts {
		opt.apply(u2)
	}
	u2.normalize()
	if err := u2.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u2, nil
}

// normalize repairs derived presence flags after direct field overrides.
func (u *URL) normalize() {
	if len(u.params) > 0 {
		u.hasParams = true
	}
	if len(u.query) > 0 {
		u.hasQuery = true
	}
}

// Validate checks the URL against the data model invariants and reports
// every violation at once.
func (u *URL) Validate() error {
	if u == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil URL"))
	}

	var errs []error
	if !u.hasHost {
		if !u.user.IsZero() {
			errs = append(errs, errorutil.Errorf("userinfo requires a host"))
		}
		if u.hasPort {
			errs = append(errs, errorutil.Errorf("port requires a host"))
		}
		if seg, ok := u.path.Segment(0); ok && seg == "" && u.path.IsAbs() {
			// "//x" as a host-less path would re-parse as an authority.
			errs = append(errs, errorutil.Errorf("absolute path without host begins with an empty segment"))
		}
	}
	for i, seg := range u.path.Segments() {
		for j := 0; j < len(seg); j++ {
			if seg[j] == '/' {
				errs = append(errs, errorutil.Errorf("path segment %d %q contains separator", i, seg))
				break
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errtrace.Wrap(newInvalidComponentsErr(errorutil.Join(errs...)))
}

// Equal compares this URL with another for equality, accepting URL and *URL.
// Equality is field-wise on the decomposed form: two differently written
// strings denoting the same decomposition compare equal.
func (u *URL) Equal(val any) bool {
	var other *URL
	switch v := val.(type) {
	case URL:
		other = &v
	case *URL:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return u.scheme == other.scheme &&
		u.user.Equal(other.user) &&
		u.hasHost == other.hasHost &&
		u.host == other.host &&
		u.hasPort == other.hasPort &&
		u.port == other.port &&
		u.path.Equal(other.path) &&
		u.hasParams == other.hasParams &&
		u.params.Equal(other.params) &&
		u.hasQuery == other.hasQuery &&
		u.query.Equal(other.query) &&
		u.hasFragment == other.hasFragment &&
		u.fragment == other.fragment
}

// IsZero checks whether the URL is empty.
func (u *URL) IsZero() bool {
	return u == nil || u.Equal(&URL{})
}

// IsValid checks whether the URL is non-empty and satisfies the data model invariants.
func (u *URL) IsValid() bool {
	return u != nil && !u.IsZero() && u.Validate() == nil
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URL) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URL{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
