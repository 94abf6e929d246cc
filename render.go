package imurl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/imurl/internal/grammar"
	"github.com/ghettovoice/imurl/internal/ioutil"
	"github.com/ghettovoice/imurl/internal/util"
)

// RenderTo writes the URL to the provided writer.
//
// The output is a pure function of the decomposed components. Components
// parsed from a string come back byte-for-byte except for one-time
// normalization: scheme and host case, and percent-encoding of characters
// that would be structural in their position. Re-parsing rendered output and
// rendering again is a fixed point.
func (u *URL) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if u.scheme != "" {
		cw.Fprint(u.scheme, ":")
	}
	if u.hasHost {
		cw.Fprint("//")
		if !u.user.IsZero() {
			cw.Fprint(u.user, "@")
		}
		if strings.IndexByte(u.host, ':') >= 0 {
			cw.Fprint("[", u.host, "]")
		} else {
			cw.Fprint(u.host)
		}
		if u.hasPort {
			cw.Fprint(":", strconv.Itoa(int(u.port)))
		}
	}
	cw.Call(u.renderPath)
	cw.Call(u.renderParams)
	cw.Call(u.renderQuery)
	if u.hasFragment {
		cw.Fprint("#", grammar.Escape(u.fragment, shouldEscapeFragmentChar))
	}
	return errtrace.Wrap2(cw.Result())
}

func (u *URL) renderPath(w io.Writer) (num int, err error) {
	if u.path.IsZero() {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if u.path.IsAbs() {
		cw.Fprint("/")
	}
	for i, seg := range u.path.Segments() {
		if i > 0 {
			cw.Fprint("/")
		}
		seg = grammar.Escape(seg, shouldEscapePathChar)
		if i == 0 && u.scheme == "" && !u.path.IsAbs() {
			// A colon in the first segment of a scheme-less relative path
			// would re-parse as a scheme delimiter.
			seg = strings.ReplaceAll(seg, ":", "%3A")
		}
		cw.Fprint(seg)
	}
	if u.path.HasTrailingSlash() && u.path.Len() > 0 {
		cw.Fprint("/")
	}
	return errtrace.Wrap2(cw.Result())
}

func (u *URL) renderParams(w io.Writer) (num int, err error) {
	if !u.hasParams {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if len(u.params) == 0 {
		cw.Fprint(";")
		return errtrace.Wrap2(cw.Result())
	}
	for _, p := range u.params {
		cw.Fprint(";", grammar.Escape(p.Key, shouldEscapeParamChar))
		if p.HasValue {
			cw.Fprint("=", grammar.Escape(p.Value, shouldEscapeParamChar))
		}
	}
	return errtrace.Wrap2(cw.Result())
}

func (u *URL) renderQuery(w io.Writer) (num int, err error) {
	if !u.hasQuery {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint("?")
	for i, p := range u.query {
		if i > 0 {
			cw.Fprint("&")
		}
		cw.Fprint(grammar.Escape(p.Key, shouldEscapeQueryChar))
		if p.HasValue {
			cw.Fprint("=", grammar.Escape(p.Value, shouldEscapeQueryChar))
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URL.
func (u *URL) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URL.
func (u *URL) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URL.
func (u *URL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URL
		type URL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URL)(u))
		return
	}
}
