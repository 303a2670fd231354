package ds

// NearestDivisibleByM rounds n up to a multiple of m. Parser bins pad strings and the string
// pool to 4 bytes with it.
func NearestDivisibleByM(n int, m int) int {
	if rem := n % m; rem != 0 {
		return n + m - rem
	}
	return n
}
