// Package bitint provides power-of-2 helpers used when sizing FFT
// transforms and sample buffers. All operations are allocation-free
// and constant time.
package bitint

import "math/bits"

// NextPowerOfTwo returns the next power of 2 >= size. Powers of 2 are
// returned unchanged; zero and negative inputs yield 1.
//
// The size-1 subtraction keeps exact powers of 2 from being doubled:
// bits.Len(7) == 3 so 8 maps back to 1<<3 == 8.
func NextPowerOfTwo(size int) int {
	if size <= 0 {
		return 1
	}
	return 1 << bits.Len(uint(size-1))
}

// IsPowerOfTwo reports whether n is a positive power of 2. Powers of 2
// have exactly one bit set, so n & (n-1) clears it to zero.
func IsPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
