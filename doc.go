// Package imurl provides an immutable URL value type with structured access
// to its components and non-destructive transformations.
//
// # Overview
//
// A [URL] wraps the canonical decomposition of a URL reference: scheme,
// userinfo, host, port, path segments, path parameters, query pairs and
// fragment. Once constructed a URL is never mutated; every transformation
// ([URL.Replace], the query, parameter and path-segment operations) builds a
// new value and leaves the receiver untouched, so URLs may be freely shared
// between goroutines without coordination.
//
// # Construction
//
//	u, err := imurl.Parse("https://example.com/search?q=term")
//	u := imurl.MustParse("https://example.com")
//	u, err := imurl.New(
//	    imurl.WithScheme("https"),
//	    imurl.WithHost("example.com"),
//	    imurl.WithPort(8080),
//	)
//
// The component constructor and [URL.Replace] validate the result: authority
// fields require a host, so combining userinfo or a port with an absent host
// fails with [ErrInvalidComponents].
//
// # Component semantics
//
// Absent components are distinct from present-but-empty ones wherever the
// grammar allows the distinction: "https://x.test" has no query while
// "https://x.test?" has an empty one, and "mailto:box" has no host while
// "file:///p" has an empty one. Query pairs keep their original order and may
// repeat keys; a bare key ("?flag") is distinct from an empty value
// ("?flag=").
//
// # Transformations
//
//	u = u.SetQuery("q", "new").AddQuery("page", "2").DeleteQuery("debug")
//
// Each call returns a new URL. [URL.SetQuery] collapses every occurrence of
// the key into one pair at the first occurrence's position, [URL.AddQuery]
// appends an extra occurrence, and [URL.DeleteQuery] of a missing key is a
// no-op. Path parameters (";key=value" sections) mirror the same operations,
// and path segments can be appended, replaced or deleted by index.
//
// # Equality and map keys
//
// [URL.Equal] compares the decomposed form field-wise, so two differently
// written strings that denote the same decomposition compare equal. URL
// values hold slices and are not comparable with ==; use the canonical
// [URL.String] form as a map key.
package imurl
