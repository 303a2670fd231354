package ds

// Repeat makes a slice of n copies of value.
func Repeat[T any](n int, value T) []T {
	ts := make([]T, n)
	for i := range ts {
		ts[i] = value
	}
	return ts
}
