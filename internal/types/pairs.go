package types

import (
	"strings"

	"github.com/ghettovoice/imurl/internal/constraints"
)

// Pair is a single key/value entry of a query or parameter list.
// HasValue distinguishes a bare key ("?flag") from a key with an empty
// value ("?flag="), both of which are legal and round-trip differently.
type Pair struct {
	Key      string
	Value    string
	HasValue bool
}

// KV returns a Pair with the given key and value.
func KV(key, value string) Pair { return Pair{Key: key, Value: value, HasValue: true} }

// Flag returns a valueless Pair with the given key.
func Flag(key string) Pair { return Pair{Key: key} }

// Pairs is an ordered key/value list with duplicate keys allowed.
// It keeps the original pair order, which is significant for URLs:
// a query may legally repeat a key and consumers may rely on ordering.
// Keys are case-sensitive.
type Pairs []Pair

// ParsePairs splits src on sep and each item on the first '=' into a pair.
// An item without '=' becomes a valueless pair. Empty items are dropped.
func ParsePairs[T constraints.Byteseq](src T, sep byte) Pairs {
	s := string(src)
	if s == "" {
		return nil
	}

	var ps Pairs
	for len(s) > 0 {
		item := s
		if i := strings.IndexByte(s, sep); i >= 0 {
			item, s = s[:i], s[i+1:]
		} else {
			s = ""
		}
		if item == "" {
			continue
		}
		if i := strings.IndexByte(item, '='); i >= 0 {
			ps = append(ps, KV(item[:i], item[i+1:]))
		} else {
			ps = append(ps, Flag(item))
		}
	}
	return ps
}

// Get returns all values associated with the key in original order.
// Valueless pairs contribute an empty string.
func (ps Pairs) Get(key string) []string {
	var vals []string
	for _, p := range ps {
		if p.Key == key {
			vals = append(vals, p.Value)
		}
	}
	return vals
}

// Has checks whether a given key is in the list.
func (ps Pairs) Has(key string) bool {
	for _, p := range ps {
		if p.Key == key {
			return true
		}
	}
	return false
}

// Set returns a copy of the list where all occurrences of the key are
// collapsed into a single pair holding value. The pair keeps the position
// of the first original occurrence, or is appended when the key is absent.
// All other pairs keep their relative order.
func (ps Pairs) Set(key, value string) Pairs {
	out := make(Pairs, 0, len(ps)+1)
	done := false
	for _, p := range ps {
		if p.Key != key {
			out = append(out, p)
			continue
		}
		if !done {
			out = append(out, KV(key, value))
			done = true
		}
	}
	if !done {
		out = append(out, KV(key, value))
	}
	return out
}

// Add returns a copy of the list with an additional occurrence of the key
// appended, leaving existing occurrences untouched.
func (ps Pairs) Add(key, value string) Pairs {
	out := make(Pairs, 0, len(ps)+1)
	out = append(out, ps...)
	return append(out, KV(key, value))
}

// AddFlag returns a copy of the list with an additional valueless pair appended.
func (ps Pairs) AddFlag(key string) Pairs {
	out := make(Pairs, 0, len(ps)+1)
	out = append(out, ps...)
	return append(out, Flag(key))
}

// Del returns a copy of the list with all occurrences of the key removed.
// A missing key is not an error: the copy equals the receiver.
func (ps Pairs) Del(key string) Pairs {
	if !ps.Has(key) {
		return ps.Clone()
	}
	var out Pairs
	for _, p := range ps {
		if p.Key != key {
			out = append(out, p)
		}
	}
	return out
}

// Clone returns a copy of the list.
func (ps Pairs) Clone() Pairs {
	if ps == nil {
		return nil
	}
	out := make(Pairs, len(ps))
	copy(out, ps)
	return out
}

// Equal compares this list with another for equality, accepting Pairs and *Pairs.
// Order is significant.
func (ps Pairs) Equal(val any) bool {
	var other Pairs
	switch v := val.(type) {
	case Pairs:
		other = v
	case *Pairs:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	if len(ps) != len(other) {
		return false
	}
	for i := range ps {
		if ps[i] != other[i] {
			return false
		}
	}
	return true
}

// IsZero checks whether the list is empty.
func (ps Pairs) IsZero() bool { return len(ps) == 0 }
