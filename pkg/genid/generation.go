package genid

import (
	"cmp"
	"strconv"
)

// DefaultCounter is the counter of a freshly created generation word, so a
// handle from FromSlot never has a zero generation word and zero can mean
// "uninitialised".
const DefaultCounter uint32 = 1

// Generation is the 32-bit high half of a handle.
//
// Layout (bit 31 = MSB):
//
//	31 .. 32-W   kind tag (W bits)
//	31-W .. 0    counter  (32-W bits)
type Generation[W Width] uint32

// DefaultGeneration returns a word with counter 1 and kind 0.
func DefaultGeneration[W Width]() Generation[W] {
	return Generation[W](DefaultCounter)
}

// GenerationFromRaw wraps a raw generation word unchanged.
func GenerationFromRaw[W Width](raw uint32) Generation[W] {
	return Generation[W](raw)
}

// NewGeneration packs kind and counter. Counter bits above 32-W are dropped.
func NewGeneration[W Width](kind KindTag[W], counter uint32) Generation[W] {
	var g Generation[W]
	g.SetCounter(counter)
	g.SetKind(kind)
	return g
}

// WithKind returns g with its kind field replaced by k.
func WithKind[W Width](g Generation[W], k KindTag[W]) Generation[W] {
	g.SetKind(k)
	return g
}

// SetKind replaces the kind field. The counter is left untouched.
func (g *Generation[W]) SetKind(k KindTag[W]) {
	assertKind(k)
	g.setKind(k)
}

func (g *Generation[W]) setKind(k KindTag[W]) {
	*g = Generation[W](uint32(*g)&counterMask[W]() | uint32(k)<<kindShift[W]())
}

// Kind returns the kind field.
func (g Generation[W]) Kind() KindTag[W] {
	return KindTag[W](uint32(g) >> kindShift[W]())
}

// SetCounter replaces the counter field, preserving the kind.
func (g *Generation[W]) SetCounter(v uint32) {
	assertCounter[W](v)
	kind := g.Kind()
	*g = Generation[W](v & counterMask[W]())
	g.setKind(kind)
}

// Counter returns the counter field.
func (g Generation[W]) Counter() uint32 {
	return uint32(g) & counterMask[W]()
}

// Increment adds delta to the counter. The kind is reapplied after the add,
// so a carry out of the counter field is discarded and the counter wraps
// modulo 2^(32-W). Use CheckIncrement to detect the wrap.
func (g *Generation[W]) Increment(delta uint32) {
	assertIncrement(*g, delta)
	kind := g.Kind()
	*g = Generation[W](uint32(*g) + delta)
	g.setKind(kind)
}

// Unpack returns the kind and counter fields.
func (g Generation[W]) Unpack() (KindTag[W], uint32) {
	return g.Kind(), g.Counter()
}

// WithCounter returns a copy of g with the counter replaced.
func (g Generation[W]) WithCounter(v uint32) Generation[W] {
	g.SetCounter(v)
	return g
}

// WithKind returns a copy of g with the kind replaced.
func (g Generation[W]) WithKind(k KindTag[W]) Generation[W] {
	g.SetKind(k)
	return g
}

// Add returns a copy of g with the counter incremented by delta.
func (g Generation[W]) Add(delta uint32) Generation[W] {
	g.Increment(delta)
	return g
}

// Times combines g with slot s into a handle.
func (g Generation[W]) Times(s SlotIndex) Handle[W] {
	return Combine(s, g)
}

// Raw returns the packed 32-bit word.
func (g Generation[W]) Raw() uint32 {
	return uint32(g)
}

// IsZero reports whether the word is all zero bits.
func (g Generation[W]) IsZero() bool {
	return g == 0
}

// Compare orders by raw word, so kind dominates counter.
func (g Generation[W]) Compare(o Generation[W]) int {
	return cmp.Compare(g, o)
}

func (g Generation[W]) String() string {
	return g.Kind().String() + "/" + strconv.FormatUint(uint64(g.Counter()), 10)
}
