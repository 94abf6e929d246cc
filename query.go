package imurl

// GetQuery returns all values associated with the key in original order,
// supporting repeated keys. A valueless pair ("?flag") contributes an empty
// string; a missing key yields nil.
func (u *URL) GetQuery(key string) []string {
	if u == nil {
		return nil
	}
	return u.query.Get(key)
}

// HasQuery checks whether the query contains the key.
func (u *URL) HasQuery(key string) bool {
	return u != nil && u.query.Has(key)
}

// SetQuery returns a new URL where all occurrences of the key are collapsed
// into a single pair holding value. The pair keeps the position of the first
// original occurrence, or is appended when the key is absent. The receiver
// is left untouched.
func (u *URL) SetQuery(key, value string) *URL {
	u2 := u.Clone()
	if u2 == nil {
		u2 = &URL{}
	}
	u2.query = u2.query.Set(key, value)
	u2.hasQuery = true
	return u2
}

// AddQuery returns a new URL with an additional occurrence of the key
// appended, leaving existing occurrences untouched.
func (u *URL) AddQuery(key, value string) *URL {
	u2 := u.Clone()
	if u2 == nil {
		u2 = &URL{}
	}
	u2.query = u2.query.Add(key, value)
	u2.hasQuery = true
	return u2
}

// DeleteQuery returns a new URL with all occurrences of the key removed.
// Deleting a missing key is not an error: the result equals the receiver,
// so an empty-but-present query section ("?") keeps its marker.
// Removing the last pair removes the query section entirely.
func (u *URL) DeleteQuery(key string) *URL {
	u2 := u.Clone()
	if u2 == nil {
		u2 = &URL{}
	}
	had := len(u2.query)
	u2.query = u2.query.Del(key)
	if len(u2.query) == 0 && had > 0 {
		u2.hasQuery = false
	}
	return u2
}

// GetParameter returns all values associated with the key in the path
// parameter list, in original order. A flag parameter (";lr") contributes an
// empty string; a missing key yields nil.
func (u *URL) GetParameter(key string) []string {
	if u == nil {
		return nil
	}
	return u.params.Get(key)
}

// HasParameter checks whether the path parameter list contains the key.
func (u *URL) HasParameter(key string) bool {
	return u != nil && u.params.Has(key)
}

// SetParameter returns a new URL where all occurrences of the path parameter
// key are collapsed into a single pair holding value, at the position of the
// first original occurrence (appended when absent).
func (u *URL) SetParameter(key, value string) *URL {
	u2 := u.Clone()
	if u2 == nil {
		u2 = &URL{}
	}
	u2.params = u2.params.Set(key, value)
	u2.hasParams = true
	return u2
}

// AddParameter returns a new URL with an additional occurrence of the path
// parameter key appended, leaving existing occurrences untouched.
func (u *URL) AddParameter(key, value string) *URL {
	u2 := u.Clone()
	if u2 == nil {
		u2 = &URL{}
	}
	u2.params = u2.params.Add(key, value)
	u2.hasParams = true
	return u2
}

// DeleteParameter returns a new URL with all occurrences of the path
// parameter key removed; a missing key is a no-op, leaving an
// empty-but-present section (";") marker in place. Removing the last pair
// removes the parameter section entirely.
func (u *URL) DeleteParameter(key string) *URL {
	u2 := u.Clone()
	if u2 == nil {
		u2 = &URL{}
	}
	had := len(u2.params)
	u2.params = u2.params.Del(key)
	if len(u2.params) == 0 && had > 0 {
		u2.hasParams = false
	}
	return u2
}
