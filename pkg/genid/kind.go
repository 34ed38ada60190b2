package genid

import (
	"strconv"

	"github.com/joshuapare/genid/internal/bits"
)

// KindTag identifies which variant a handle refers to. Its raw value must be
// below 2^W; the type does not enforce this (see CheckKind).
type KindTag[W Width] uint8

// Kind wraps a raw kind value without range checking.
func Kind[W Width](raw uint8) KindTag[W] {
	return KindTag[W](raw)
}

func NewKind2(raw uint8) Kind2   { return Kind2(raw) }
func NewKind4(raw uint8) Kind4   { return Kind4(raw) }
func NewKind8(raw uint8) Kind8   { return Kind8(raw) }
func NewKind16(raw uint8) Kind16 { return Kind16(raw) }

// Raw returns the kind value.
func (k KindTag[W]) Raw() uint8 {
	return uint8(k)
}

// Fits reports whether the kind value is representable in W bits.
func (k KindTag[W]) Fits() bool {
	return bits.Fits32(uint32(k), kindBits[W]())
}

// Plus sets k on a copy of g.
func (k KindTag[W]) Plus(g Generation[W]) Generation[W] {
	return WithKind(g, k)
}

// Times builds a handle for slot s carrying kind k and the default counter.
func (k KindTag[W]) Times(s SlotIndex) Handle[W] {
	return CombineKind(s, k)
}

// String renders "<value>:<kind bits>", e.g. "3:2".
func (k KindTag[W]) String() string {
	return strconv.Itoa(int(k)) + ":" + strconv.Itoa(int(kindBits[W]()))
}
