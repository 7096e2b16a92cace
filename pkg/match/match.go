// Package match compares expected values with the values found in a
// database.
package match

import "reflect"

// Matcher reports whether an original (actual) value matches the
// expected one.
type Matcher interface {
	Match(original, expected any) bool
}

// Func adapts a function to the Matcher interface.
type Func func(original, expected any) bool

// Match calls f.
func (f Func) Match(original, expected any) bool {
	return f(original, expected)
}

// Equaler is implemented by values with their own notion of equality.
type Equaler interface {
	Equal(other any) bool
}

// Equal delegates to the native equality of the expected value.
// No normalization happens: 1 (int) does not match 1.0 (float64).
type Equal struct{}

// Match returns expected.Equal(original) when the expected value
// implements Equaler, and reflect.DeepEqual(expected, original) otherwise.
func (Equal) Match(original, expected any) bool {
	if e, ok := expected.(Equaler); ok {
		return e.Equal(original)
	}
	return reflect.DeepEqual(expected, original)
}

// Values is the type-safe form of Equal for comparable types.
func Values[T comparable](original, expected T) bool {
	return expected == original
}

var _ Matcher = Equal{}
