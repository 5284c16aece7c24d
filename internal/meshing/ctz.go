package meshing

import "math/bits"

// trailingZeros64 returns the index (0..63) of the lowest set bit of x.
// It is undefined for x == 0; every call site below only ever invokes it
// after checking the word is non-zero, mirroring the CTZ intrinsic the
// algorithm this package ports relies on (__builtin_ctzll / _BitScanForward64).
func trailingZeros64(x uint64) int {
	return bits.TrailingZeros64(x)
}
