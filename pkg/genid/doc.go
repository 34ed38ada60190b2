// Package genid implements generational identifiers: 64-bit handles that pack
// a slot index, a small kind tag and a reuse counter into one integer.
//
// # Overview
//
// Slot-map and arena style tables hand out handles instead of pointers. When a
// slot is freed and reused, the owning table bumps the handle's counter so any
// handle issued for the previous occupant no longer compares equal. The kind
// tag records which variant of a tagged union lives in the slot.
//
// This package only encodes and decodes the handle. It owns no storage, does
// no allocation and never fails at runtime.
//
// # Bit Layout
//
//	bits 63 .. 64-W   kind tag  (W bits)
//	bits 63-W .. 32   counter   (32-W bits)
//	bits 31 .. 0      slot index
//
// The width class W is a type parameter:
//
//	Narrow  W=1   2 kinds   31 counter bits
//	Small   W=2   4 kinds   30 counter bits
//	Medium  W=3   8 kinds   29 counter bits
//	Wide    W=4  16 kinds   28 counter bits
//
// # Usage Example
//
//	h := genid.FromSlot[genid.Small](genid.Slot(10))
//	h.SetKind(genid.Kind[genid.Small](2))
//	key := h.ToInteger()          // store or compare as uint64
//
//	// slot 10 recycled
//	h.Increment(1)
//	kind, counter, slot := h.Unpack()
//
//	back := genid.FromInteger[genid.Small](key)
//
// # Caller Obligations
//
// Kind values must be below 2^W and counters below 2^(32-W). Neither is
// checked. Increment wraps the counter modulo 2^(32-W) and never touches the
// kind bits. Use CheckKind, CheckCounter and CheckIncrement at trust
// boundaries, or build with -tags genid_debug to make every mutator panic on
// a violated precondition.
//
// # Thread Safety
//
// All types are plain values with no shared state. Copies are independent.
package genid
