package genid

import (
	"fmt"
	"strings"

	"github.com/joshuapare/genid/internal/bits"
)

// Width selects how many of the generation word's 32 bits hold the kind tag.
// The set is closed: Narrow, Small, Medium and Wide are the only
// implementations.
type Width interface {
	// KindBits is the number of high bits reserved for the kind tag.
	KindBits() uint32
	// Name is the width class name used in diagnostics.
	Name() string

	width()
}

// Narrow reserves 1 bit for the kind tag: 2 kinds, 31 counter bits.
type Narrow struct{}

// Small reserves 2 bits for the kind tag: 4 kinds, 30 counter bits.
type Small struct{}

// Medium reserves 3 bits for the kind tag: 8 kinds, 29 counter bits.
type Medium struct{}

// Wide reserves 4 bits for the kind tag: 16 kinds, 28 counter bits.
type Wide struct{}

func (Narrow) KindBits() uint32 { return 1 }
func (Small) KindBits() uint32  { return 2 }
func (Medium) KindBits() uint32 { return 3 }
func (Wide) KindBits() uint32   { return 4 }

func (Narrow) Name() string { return "narrow" }
func (Small) Name() string  { return "small" }
func (Medium) Name() string { return "medium" }
func (Wide) Name() string   { return "wide" }

func (Narrow) width() {}
func (Small) width()  {}
func (Medium) width() {}
func (Wide) width()   {}

// Instantiations named by kind cardinality.
type (
	Kind2  = KindTag[Narrow]
	Kind4  = KindTag[Small]
	Kind8  = KindTag[Medium]
	Kind16 = KindTag[Wide]

	Generation2  = Generation[Narrow]
	Generation4  = Generation[Small]
	Generation8  = Generation[Medium]
	Generation16 = Generation[Wide]

	Handle2  = Handle[Narrow]
	Handle4  = Handle[Small]
	Handle8  = Handle[Medium]
	Handle16 = Handle[Wide]
)

func kindBits[W Width]() uint32 {
	var w W
	return w.KindBits()
}

// kindShift is the bit position of the kind field's lowest bit.
func kindShift[W Width]() uint32 {
	return bits.WordBits - kindBits[W]()
}

func counterMask[W Width]() uint32 {
	return bits.Mask32(kindShift[W]())
}

// Layout describes the bit layout of one width class at runtime.
type Layout struct {
	Name            string `json:"name"`
	KindBits        uint32 `json:"kind_bits"`
	CounterBits     uint32 `json:"counter_bits"`
	KindCardinality uint32 `json:"kind_cardinality"`
	MaxKind         uint8  `json:"max_kind"`
	MaxCounter      uint32 `json:"max_counter"`
	KindMask        uint32 `json:"kind_mask"`
	CounterMask     uint32 `json:"counter_mask"`
}

// LayoutOf returns the layout of width class W.
func LayoutOf[W Width]() Layout {
	var w W
	k := w.KindBits()
	cm := counterMask[W]()
	return Layout{
		Name:            w.Name(),
		KindBits:        k,
		CounterBits:     bits.WordBits - k,
		KindCardinality: 1 << k,
		MaxKind:         uint8(bits.Mask32(k)),
		MaxCounter:      cm,
		KindMask:        ^cm,
		CounterMask:     cm,
	}
}

// Layouts returns every width class in ascending kind width.
func Layouts() []Layout {
	return []Layout{
		LayoutOf[Narrow](),
		LayoutOf[Small](),
		LayoutOf[Medium](),
		LayoutOf[Wide](),
	}
}

// LayoutByName resolves a width class by its name ("narrow", "small",
// "medium", "wide") or its kind cardinality alias ("kind2" .. "kind16").
func LayoutByName(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "narrow", "kind2":
		return LayoutOf[Narrow](), nil
	case "small", "kind4":
		return LayoutOf[Small](), nil
	case "medium", "kind8":
		return LayoutOf[Medium](), nil
	case "wide", "kind16":
		return LayoutOf[Wide](), nil
	}
	return Layout{}, fmt.Errorf("%w: %q", ErrUnknownWidth, name)
}
