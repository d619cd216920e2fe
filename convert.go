package pwtext

import "fmt"

// Scalar is the set of types values can be converted to and from.
type Scalar interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Lookup converts the value stored under key to T.
// It reports false if the key is absent or the value does not scan as T.
//
// Numbers and booleans are scanned like fmt.Sscan: leading whitespace is skipped
// and scanning stops at the first character that does not belong to the value,
// so "10px" reads as 10. Strings are returned unchanged.
func Lookup[T Scalar](d *Document, key string) (T, bool) {
	var result T

	raw, ok := d.values[key]
	if !ok {
		return result, false
	}

	if s, isString := any(&result).(*string); isString {
		*s = raw

		return result, true
	}

	_, err := fmt.Sscan(raw, &result)
	if err != nil {
		var zero T

		return zero, false
	}

	return result, true
}

// Get converts the value stored under key to T, returning the zero value if
// the key is absent or the conversion fails.
func Get[T Scalar](d *Document, key string) T {
	result, _ := Lookup[T](d, key)

	return result
}

// Set formats v and stores it under key. Strings are stored unchanged.
func Set[T Scalar](d *Document, key string, v T) {
	if s, isString := any(v).(string); isString {
		d.Set(key, s)

		return
	}

	d.Set(key, fmt.Sprint(v))
}
