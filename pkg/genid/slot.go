package genid

import "strconv"

// SlotIndex is an opaque 32-bit ordinal into an externally owned table.
type SlotIndex uint32

// Slot wraps a raw slot number.
func Slot(raw uint32) SlotIndex {
	return SlotIndex(raw)
}

// Raw returns the slot number.
func (s SlotIndex) Raw() uint32 {
	return uint32(s)
}

// Int returns the slot number as an int, for indexing slices.
func (s SlotIndex) Int() int {
	return int(s)
}

func (s SlotIndex) String() string {
	return strconv.FormatUint(uint64(s), 10)
}
