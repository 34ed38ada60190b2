// Package bits contains fixed-width field arithmetic shared by the handle
// encoding and its tooling.
package bits

// WordBits is the width of each half of a packed 64-bit word.
const WordBits = 32

// Join64 packs hi into the upper 32 bits and lo into the lower 32 bits.
func Join64(hi, lo uint32) uint64 {
	return uint64(hi)<<WordBits | uint64(lo)
}

// Split64 is the inverse of Join64.
func Split64(v uint64) (hi, lo uint32) {
	return uint32(v >> WordBits), uint32(v)
}
