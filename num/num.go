// Package num implements various utility functions regarding numeric types.
package num

// IsPowerOfTwo returns whether x is a power of two.
// Returns false if x is not positive.
func IsPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// NextPowerOfTwo returns the smallest power of two not less than x.
// Returns 1 if x is not positive.
func NextPowerOfTwo(x int) int {
	r := 1
	for r < x {
		r <<= 1
	}
	return r
}

// Log2 returns the base-2 logarithm of x, rounded down.
// Panics if x is not positive.
func Log2(x int) int {
	if x <= 0 {
		panic("log2 undefined for nonpositive x")
	}

	r := 0
	for x > 1 {
		x >>= 1
		r++
	}
	return r
}
