package bits

import "fmt"

// Mask32 returns a mask with the low n bits set. n is clamped to [0, 32].
func Mask32(n uint32) uint32 {
	if n >= 32 {
		return ^uint32(0)
	}
	return 1<<n - 1
}

// Fits32 reports whether v is representable in an n-bit unsigned field.
func Fits32(v, n uint32) bool {
	return v&^Mask32(n) == 0
}

// AddOverflowSafe adds b to the n-bit field value a, returning ok = false when
// the sum does not fit in n bits. a is masked to n bits before the add.
func AddOverflowSafe(a, b, n uint32) (uint32, bool) {
	mask := Mask32(n)
	a &= mask
	if b > mask || a > mask-b {
		return (a + b) & mask, false
	}
	return a + b, true
}

// CheckFieldBounds validates that v fits in an n-bit field. It returns an
// error describing the field and the largest legal value otherwise.
//
//	if err := bits.CheckFieldBounds("kind", uint32(k), 2); err != nil {
//	    return fmt.Errorf("encode: %w", err)
//	}
func CheckFieldBounds(field string, v, n uint32) error {
	if n > 32 {
		return fmt.Errorf("%s: width %d exceeds 32 bits", field, n)
	}
	if !Fits32(v, n) {
		return fmt.Errorf("%s: value %d exceeds %d-bit field (max %d)", field, v, n, Mask32(n))
	}
	return nil
}
