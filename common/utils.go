package common

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Sign returns -1 when negative is set and +1 otherwise. Channels use it to turn an
// inversion flag into a direction multiplier.
//
// Parameters:
//   - negative: whether the result should be negative
//
// Returns:
//   - float32: -1 or +1
func Sign(negative bool) float32 {
	if negative {
		return -1
	}
	return 1
}
