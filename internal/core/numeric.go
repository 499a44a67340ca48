package core

// asInt returns the integer value of Int and Bool values.
func asInt(v Value) (int64, bool) {
	switch v := v.(type) {
	case Int:
		return int64(v), true
	case Bool:
		if v {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// asFloat returns the value of any number (Int, Float or Bool) as a float64.
func asFloat(v Value) (float64, bool) {
	if f, ok := v.(Float); ok {
		return float64(f), true
	}
	i, ok := asInt(v)
	return float64(i), ok
}

// IsNumber reports whether v is an Int, a Float or a Bool.
func IsNumber(v Value) bool {
	_, ok := asFloat(v)
	return ok
}

// IsIntegral reports whether v is an Int or a Bool.
func IsIntegral(v Value) bool {
	_, ok := asInt(v)
	return ok
}

// AsInt64 returns the value of an Int or a Bool, other values cause a *TypeError.
func AsInt64(v Value) (int64, error) {
	i, ok := asInt(v)
	if !ok {
		return 0, NewTypeError("'%s' object cannot be interpreted as an integer", v.TypeName())
	}
	return i, nil
}

// AsFloat64 returns the value of a number, other values cause a *TypeError.
func AsFloat64(v Value) (float64, error) {
	f, ok := asFloat(v)
	if !ok {
		return 0, NewTypeError("must be real number, not %s", v.TypeName())
	}
	return f, nil
}
