package genid

import (
	"cmp"
	"fmt"
	"hash/maphash"

	"github.com/joshuapare/genid/internal/bits"
)

// Handle is a generational identifier: a generation word in the high 32 bits
// and a slot index in the low 32 bits.
//
// Layout (bit 63 = MSB):
//
//	63 .. 64-W   kind tag
//	63-W .. 32   counter
//	31 .. 0      slot index
//
// Handles are comparable, and two handles are == exactly when their
// ToInteger values are equal, so they can be used directly as map keys.
type Handle[W Width] struct {
	gen  Generation[W]
	slot SlotIndex
}

// FromSlot returns a fresh handle for s with counter 1 and kind 0.
func FromSlot[W Width](s SlotIndex) Handle[W] {
	return Handle[W]{gen: DefaultGeneration[W](), slot: s}
}

// FromComponents packs kind, counter and slot into a handle. Counter bits
// above 32-W are dropped.
func FromComponents[W Width](kind KindTag[W], counter uint32, s SlotIndex) Handle[W] {
	h := FromSlot[W](s)
	h.SetCounter(counter)
	h.SetKind(kind)
	return h
}

// FromInteger is the inverse of Handle.ToInteger.
func FromInteger[W Width](v uint64) Handle[W] {
	hi, lo := bits.Split64(v)
	return Handle[W]{gen: Generation[W](hi), slot: SlotIndex(lo)}
}

// Combine builds a handle for slot s carrying generation word g.
func Combine[W Width](s SlotIndex, g Generation[W]) Handle[W] {
	kind, counter := g.Unpack()
	h := FromSlot[W](s)
	h.SetKind(kind)
	h.SetCounter(counter)
	return h
}

// CombineKind builds a handle for slot s carrying kind k and the default
// counter.
func CombineKind[W Width](s SlotIndex, k KindTag[W]) Handle[W] {
	h := FromSlot[W](s)
	h.SetKind(k)
	h.SetCounter(DefaultCounter)
	return h
}

// ToInteger flattens the handle to its canonical 64-bit form.
func (h Handle[W]) ToInteger() uint64 {
	return bits.Join64(h.gen.Raw(), h.slot.Raw())
}

// Unpack returns the kind, counter and slot.
func (h Handle[W]) Unpack() (KindTag[W], uint32, SlotIndex) {
	kind, counter := h.gen.Unpack()
	return kind, counter, h.slot
}

func (h *Handle[W]) SetSlot(s SlotIndex) { h.slot = s }

func (h Handle[W]) Slot() SlotIndex { return h.slot }

func (h *Handle[W]) SetKind(k KindTag[W]) { h.gen.SetKind(k) }

func (h Handle[W]) Kind() KindTag[W] { return h.gen.Kind() }

func (h *Handle[W]) SetCounter(v uint32) { h.gen.SetCounter(v) }

func (h Handle[W]) Counter() uint32 { return h.gen.Counter() }

func (h *Handle[W]) SetGeneration(g Generation[W]) { h.gen = g }

func (h Handle[W]) Generation() Generation[W] { return h.gen }

// Increment bumps the counter in place, preserving the kind. Owners call it
// when a slot is recycled so previously issued handles stop matching.
func (h *Handle[W]) Increment(delta uint32) {
	h.gen.Increment(delta)
}

// Add returns a copy of h with the counter incremented by delta.
func (h Handle[W]) Add(delta uint32) Handle[W] {
	h.Increment(delta)
	return h
}

// WithSlot returns a copy of h pointing at slot s.
func (h Handle[W]) WithSlot(s SlotIndex) Handle[W] {
	h.slot = s
	return h
}

// WithKind returns a copy of h with the kind replaced.
func (h Handle[W]) WithKind(k KindTag[W]) Handle[W] {
	h.SetKind(k)
	return h
}

// WithCounter returns a copy of h with the counter replaced.
func (h Handle[W]) WithCounter(v uint32) Handle[W] {
	h.SetCounter(v)
	return h
}

// Compare orders handles by ToInteger: generation word first, slot second.
// It is suitable for slices.SortFunc(hs, Handle[W].Compare).
func (h Handle[W]) Compare(o Handle[W]) int {
	return cmp.Compare(h.ToInteger(), o.ToInteger())
}

func (h Handle[W]) Less(o Handle[W]) bool {
	return h.ToInteger() < o.ToInteger()
}

func (h Handle[W]) Equal(o Handle[W]) bool {
	return h.ToInteger() == o.ToInteger()
}

// Hash hashes the 64-bit form of h with seed.
func (h Handle[W]) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, h.ToInteger())
}

// IsZero reports whether h is the all-zero handle, which FromSlot never
// returns.
func (h Handle[W]) IsZero() bool {
	return h.ToInteger() == 0
}

// String renders kind/counter@slot, e.g. "1:1/1@10".
func (h Handle[W]) String() string {
	return h.gen.String() + "@" + h.slot.String()
}

func (h Handle[W]) GoString() string {
	var w W
	return fmt.Sprintf("genid.Handle[%s](0x%016X)", w.Name(), h.ToInteger())
}
