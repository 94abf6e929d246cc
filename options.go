package imurl

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/imurl/internal/types"
	"github.com/ghettovoice/imurl/internal/util"
)

// New builds a URL from explicit components.
//
//	u, err := imurl.New(
//	    imurl.WithScheme("https"),
//	    imurl.WithHost("example.com"),
//	    imurl.WithPath("/search"),
//	    imurl.WithQuery(imurl.Pairs{imurl.KV("q", "term")}),
//	)
//
// A component combination violating the data model fails with
// [ErrInvalidComponents].
func New(opts ...Option) (*URL, error) {
	return errtrace.Wrap2((&URL{}).Replace(opts...))
}

// Option overrides a single URL component in [New] and [URL.Replace].
// With* options set a component, Without* options clear it; a component not
// named by any option keeps its previous value.
type Option interface {
	apply(u *URL)
}

type optionFunc func(*URL)

func (fn optionFunc) apply(u *URL) { fn(u) }

// WithScheme sets the scheme. The value is lower-cased to canonical form.
func WithScheme(scheme string) Option {
	return optionFunc(func(u *URL) { u.scheme = util.LCase(scheme) })
}

// WithoutScheme clears the scheme, making the URL scheme-relative.
func WithoutScheme() Option {
	return optionFunc(func(u *URL) { u.scheme = "" })
}

// WithUser sets the userinfo section.
func WithUser(user UserInfo) Option {
	return optionFunc(func(u *URL) { u.user = user })
}

// WithoutUser clears the userinfo section.
func WithoutUser() Option {
	return optionFunc(func(u *URL) { u.user = UserInfo{} })
}

// WithHost sets the host and marks the authority section present.
// The value is lower-cased; IPv6 brackets are stripped to the canonical
// unbracketed form.
func WithHost(host string) Option {
	return optionFunc(func(u *URL) {
		u.host = util.LCase(strings.Trim(host, "[]"))
		u.hasHost = true
	})
}

// WithoutHost removes the whole authority section: host, userinfo and port.
func WithoutHost() Option {
	return optionFunc(func(u *URL) {
		u.host = ""
		u.hasHost = false
		u.user = UserInfo{}
		u.port = 0
		u.hasPort = false
	})
}

// WithPort sets the port.
func WithPort(port uint16) Option {
	return optionFunc(func(u *URL) {
		u.port = port
		u.hasPort = true
	})
}

// WithoutPort clears the port.
func WithoutPort() Option {
	return optionFunc(func(u *URL) {
		u.port = 0
		u.hasPort = false
	})
}

// WithPath sets the path from its string form, splitting it on '/'.
func WithPath(path string) Option {
	return optionFunc(func(u *URL) { u.path = types.ParsePath(path) })
}

// WithPathSegments sets the path from explicit segments and slash flags.
func WithPathSegments(segs []string, abs, trailing bool) Option {
	return optionFunc(func(u *URL) { u.path = types.NewPath(segs, abs, trailing) })
}

// WithoutPath clears the path.
func WithoutPath() Option {
	return optionFunc(func(u *URL) { u.path = Path{} })
}

// WithParameters sets the ordered path parameter list.
func WithParameters(params Pairs) Option {
	return optionFunc(func(u *URL) {
		u.params = params.Clone()
		u.hasParams = true
	})
}

// WithoutParameters clears the path parameters.
func WithoutParameters() Option {
	return optionFunc(func(u *URL) {
		u.params = nil
		u.hasParams = false
	})
}

// WithQuery sets the ordered query pair list. An empty list still marks the
// query present, producing a bare "?" on rendering.
func WithQuery(query Pairs) Option {
	return optionFunc(func(u *URL) {
		u.query = query.Clone()
		u.hasQuery = true
	})
}

// WithRawQuery sets the query from its raw string form, splitting it on '&'.
func WithRawQuery(query string) Option {
	return optionFunc(func(u *URL) {
		u.query = types.ParsePairs(query, '&')
		u.hasQuery = true
	})
}

// WithoutQuery clears the query.
func WithoutQuery() Option {
	return optionFunc(func(u *URL) {
		u.query = nil
		u.hasQuery = false
	})
}

// WithFragment sets the fragment. An empty value still marks the fragment
// present, producing a bare "#" on rendering.
func WithFragment(fragment string) Option {
	return optionFunc(func(u *URL) {
		u.fragment = fragment
		u.hasFragment = true
	})
}

// WithoutFragment clears the fragment.
func WithoutFragment() Option {
	return optionFunc(func(u *URL) {
		u.fragment = ""
		u.hasFragment = false
	})
}
