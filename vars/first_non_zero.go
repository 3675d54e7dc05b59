package vars

// FirstNonZero picks the first non-zero value, which orders flag over
// config file over built-in default.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
