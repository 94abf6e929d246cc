package imurl

import "github.com/ghettovoice/imurl/internal/grammar"

// shouldEscapeUserChar reports whether the given username byte needs escaping.
func shouldEscapeUserChar(c byte) bool {
	return c == ':' || !(grammar.IsCharUnreserved(c) || grammar.IsSubDelimChar(c))
}

// shouldEscapePasswdChar reports whether the given password byte needs escaping.
func shouldEscapePasswdChar(c byte) bool {
	return !(grammar.IsCharUnreserved(c) || grammar.IsSubDelimChar(c) || c == ':')
}

// shouldEscapePathChar reports whether the given path segment byte needs escaping.
// The separator and the parameter delimiter are structural and always escaped.
func shouldEscapePathChar(c byte) bool {
	return c == '/' || c == ';' || !grammar.IsPChar(c)
}

// shouldEscapeParamChar reports whether the given path parameter byte needs escaping.
func shouldEscapeParamChar(c byte) bool {
	return c == ';' || c == '=' || !(grammar.IsPChar(c) || c == '/')
}

// shouldEscapeQueryChar reports whether the given query key or value byte needs escaping.
func shouldEscapeQueryChar(c byte) bool {
	return c == '&' || c == '=' || !(grammar.IsPChar(c) || c == '/' || c == '?')
}

// shouldEscapeFragmentChar reports whether the given fragment byte needs escaping.
func shouldEscapeFragmentChar(c byte) bool {
	return !(grammar.IsPChar(c) || c == '/' || c == '?')
}
