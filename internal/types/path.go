package types

import (
	"path/filepath"
	"strings"

	"github.com/ghettovoice/imurl/internal/constraints"
	"github.com/ghettovoice/imurl/internal/grammar"
	"github.com/ghettovoice/imurl/internal/util"
)

// Path is the structural form of a URL path: an ordered sequence of raw
// segments plus leading and trailing slash flags. Separators are structural,
// so segments never contain '/'. The pre-split form lets segment-level
// operations work without re-parsing a string.
type Path struct {
	segs     []string
	abs      bool
	trailing bool
}

// ParsePath splits a raw path string on '/' into a [Path].
// Empty segments between separators are kept for round-trip fidelity.
func ParsePath[T constraints.Byteseq](src T) Path {
	s := string(src)
	if s == "" {
		return Path{}
	}

	var p Path
	if s[0] == '/' {
		p.abs = true
		s = s[1:]
	}
	if s != "" && s[len(s)-1] == '/' {
		p.trailing = true
		s = s[:len(s)-1]
	}
	if s != "" || p.trailing {
		p.segs = strings.Split(s, "/")
	}
	return p
}

// NewPath builds a [Path] from explicit segments and flags.
// Whether segments are separator-free is the caller's concern.
func NewPath(segs []string, abs, trailing bool) Path {
	var cp []string
	if len(segs) > 0 {
		cp = make([]string, len(segs))
		copy(cp, segs)
	}
	return Path{segs: cp, abs: abs, trailing: trailing}
}

// Segments returns a copy of the raw segment sequence.
func (p Path) Segments() []string {
	if p.segs == nil {
		return nil
	}
	out := make([]string, len(p.segs))
	copy(out, p.segs)
	return out
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segs) }

// Segment returns the i-th segment and whether the index is in range.
func (p Path) Segment(i int) (string, bool) {
	if i < 0 || i >= len(p.segs) {
		return "", false
	}
	return p.segs[i], true
}

// IsAbs reports whether the path has a leading slash.
func (p Path) IsAbs() bool { return p.abs }

// HasTrailingSlash reports whether the path has a trailing slash.
func (p Path) HasTrailingSlash() bool { return p.trailing }

// IsZero checks whether the path is empty.
func (p Path) IsZero() bool { return len(p.segs) == 0 && !p.abs && !p.trailing }

// WithSegment returns a copy of the path with the i-th segment replaced.
// The second return value reports whether the index was in range.
func (p Path) WithSegment(i int, seg string) (Path, bool) {
	if i < 0 || i >= len(p.segs) {
		return Path{}, false
	}
	p2 := p.Clone()
	p2.segs[i] = seg
	return p2, true
}

// WithAppended returns a copy of the path with the segment appended.
func (p Path) WithAppended(seg string) Path {
	p2 := p.Clone()
	p2.segs = append(p2.segs, seg)
	return p2
}

// WithoutSegment returns a copy of the path with the i-th segment removed.
// The second return value reports whether the index was in range.
func (p Path) WithoutSegment(i int) (Path, bool) {
	if i < 0 || i >= len(p.segs) {
		return Path{}, false
	}
	p2 := Path{abs: p.abs, trailing: p.trailing}
	if len(p.segs) > 1 {
		p2.segs = make([]string, 0, len(p.segs)-1)
		p2.segs = append(p2.segs, p.segs[:i]...)
		p2.segs = append(p2.segs, p.segs[i+1:]...)
	}
	if len(p2.segs) == 0 {
		p2.trailing = false
	}
	return p2, true
}

// String joins the segments back with '/' per the slash flags.
func (p Path) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if p.abs {
		sb.WriteString("/")
	}
	for i, seg := range p.segs {
		if i > 0 {
			sb.WriteString("/")
		}
		sb.WriteString(seg)
	}
	if p.trailing && len(p.segs) > 0 {
		sb.WriteString("/")
	}
	return sb.String()
}

// Platform returns the percent-decoded segments joined with the host
// system's path separator. It is a read-only view: the result is never
// parsed back into a Path.
func (p Path) Platform() string {
	sep := string(filepath.Separator)
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if p.abs {
		sb.WriteString(sep)
	}
	for i, seg := range p.segs {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(grammar.Unescape(seg))
	}
	return sb.String()
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	return NewPath(p.segs, p.abs, p.trailing)
}

// Equal compares this path with another for equality, accepting Path and *Path.
func (p Path) Equal(val any) bool {
	var other Path
	switch v := val.(type) {
	case Path:
		other = v
	case *Path:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	if p.abs != other.abs || p.trailing != other.trailing || len(p.segs) != len(other.segs) {
		return false
	}
	for i := range p.segs {
		if p.segs[i] != other.segs[i] {
			return false
		}
	}
	return true
}
