package calc

// Number covers the numeric kinds the demo helpers operate on.
type Number interface {
	~int | ~int64 | ~float64
}

// Square returns n*n.
func Square[N Number](n N) N {
	return n * n
}

// Cube returns n*n*n.
func Cube[N Number](n N) N {
	return n * n * n
}

// Factorial computes n! recursively. Any n <= 1 (including negatives)
// returns 1, and results overflow int past n = 20; callers get the raw
// wrapped value, not an error.
func Factorial(n int) int {
	if n <= 1 {
		return 1
	}
	return n * Factorial(n-1)
}
